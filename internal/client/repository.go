package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrPhoneAlreadyUsed = errors.New("phone already registered")

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, id string) (*Client, error)
	GetByPhone(ctx context.Context, phone string) (*Client, error)
	List(ctx context.Context, filter Filter) ([]*Client, int, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, c *Client) error {
	const query = `
		INSERT INTO public.clients (name, phone, email)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, c.Name, c.Phone, c.Email).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrPhoneAlreadyUsed
		}
		return fmt.Errorf("create client failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Client, error) {
	const query = `
		SELECT id, name, phone, email, created_at
		FROM public.clients
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var c Client
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) GetByPhone(ctx context.Context, phone string) (*Client, error) {
	const query = `
		SELECT id, name, phone, email, created_at
		FROM public.clients
		WHERE phone = $1
	`
	row := r.pool.QueryRow(ctx, query, phone)

	var c Client
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get client by phone failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Client, int, error) {
	var args []interface{}
	queryBase := `
		SELECT id, name, phone, email, created_at, count(*) OVER() as total_count
		FROM public.clients
		WHERE 1=1
	`
	paramIndex := 1

	if filter.Phone != "" {
		queryBase += fmt.Sprintf(" AND phone = $%d", paramIndex)
		args = append(args, filter.Phone)
		paramIndex++
	}

	queryBase += " ORDER BY created_at DESC"

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
		return nil, 0, fmt.Errorf("list clients failed: %w", err)
	}
	defer rows.Close()

	var result []*Client
	var total int

	for rows.Next() {
		var c Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan client failed: %w", err)
		}
		result = append(result, &c)
	}

	return result, total, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.clients WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete client failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
