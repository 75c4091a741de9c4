package barber

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, b *Barber) error
	GetByID(ctx context.Context, id string) (*Barber, error)
	List(ctx context.Context, filter Filter) ([]*Barber, int, error)
	Update(ctx context.Context, b *Barber) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Barber) error {
	const query = `
		INSERT INTO public.barbers (name, specialization, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query, b.Name, b.Specialization, b.Status).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create barber failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Barber, error) {
	const query = `
		SELECT id, name, specialization, status, created_at, updated_at
		FROM public.barbers
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var b Barber
	if err := row.Scan(&b.ID, &b.Name, &b.Specialization, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get barber failed: %w", err)
	}
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Barber, int, error) {
	var args []interface{}
	queryBase := `
		SELECT id, name, specialization, status, created_at, updated_at, count(*) OVER() as total_count
		FROM public.barbers
		WHERE 1=1
	`
	paramIndex := 1

	if filter.Status != "" {
		queryBase += fmt.Sprintf(" AND status = $%d", paramIndex)
		args = append(args, filter.Status)
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
		return nil, 0, fmt.Errorf("list barbers failed: %w", err)
	}
	defer rows.Close()

	var result []*Barber
	var total int

	for rows.Next() {
		var b Barber
		if err := rows.Scan(&b.ID, &b.Name, &b.Specialization, &b.Status, &b.CreatedAt, &b.UpdatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan barber failed: %w", err)
		}
		result = append(result, &b)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, b *Barber) error {
	const query = `
		UPDATE public.barbers
		SET name = $1, specialization = $2, status = $3, updated_at = now()
		WHERE id = $4
	`
	ct, err := r.pool.Exec(ctx, query, b.Name, b.Specialization, b.Status, b.ID)
	if err != nil {
		return fmt.Errorf("update barber failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.barbers WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete barber failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
