package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, s *Service) error
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context, filter Filter) ([]*Service, int, error)
	Update(ctx context.Context, s *Service) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, s *Service) error {
	const query = `
		INSERT INTO public.services (name, description, category, price_cents, duration_min)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, s.Name, s.Description, s.Category, s.PriceCents, s.DurationMin).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create service failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	const query = `
		SELECT id, name, description, category, price_cents, duration_min, created_at, updated_at
		FROM public.services
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var s Service
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.PriceCents, &s.DurationMin, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get service failed: %w", err)
	}
	return &s, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Service, int, error) {
	var args []interface{}
	queryBase := `
		SELECT id, name, description, category, price_cents, duration_min, created_at, updated_at, count(*) OVER() as total_count
		FROM public.services
		WHERE 1=1
	`
	paramIndex := 1

	if filter.Category != "" {
		queryBase += fmt.Sprintf(" AND category = $%d", paramIndex)
		args = append(args, filter.Category)
		paramIndex++
	}

	queryBase += " ORDER BY name ASC"

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	queryBase += fmt.Sprintf(" LIMIT $%d OFFSET $%d", paramIndex, paramIndex+1)
	args = append(args, filter.PageSize, offset)

	rows, err := r.pool.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list services failed: %w", err)
	}
	defer rows.Close()

	var result []*Service
	var total int

	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.Category, &s.PriceCents, &s.DurationMin, &s.CreatedAt, &s.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan service failed: %w", err)
		}
		result = append(result, &s)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, s *Service) error {
	const query = `
		UPDATE public.services
		SET name = $1, description = $2, category = $3, price_cents = $4, duration_min = $5, updated_at = now()
		WHERE id = $6
	`
	ct, err := r.pool.Exec(ctx, query, s.Name, s.Description, s.Category, s.PriceCents, s.DurationMin, s.ID)
	if err != nil {
		return fmt.Errorf("update service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.services WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete service failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
