package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, w *Window) error
	GetByID(ctx context.Context, id string) (*Window, error)
	// WindowsFor returns every window for the barber on the given calendar
	// date, ordered by opening time ascending.
	WindowsFor(ctx context.Context, barberID string, date time.Time) ([]Window, error)
	List(ctx context.Context, filter Filter) ([]*Window, int, error)
	Update(ctx context.Context, w *Window) error
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, w *Window) error {
	const query = `
		INSERT INTO public.availability_windows (barber_id, date, available_from, available_until, is_open, reason)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	err := r.pool.QueryRow(ctx, query, w.BarberID, w.Date, w.From, w.Until, w.IsOpen, w.Reason).
		Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return fmt.Errorf("create availability window failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Window, error) {
	const query = `
		SELECT id, barber_id, date, available_from, available_until, is_open, reason, created_at
		FROM public.availability_windows
		WHERE id = $1
	`
	row := r.pool.QueryRow(ctx, query, id)

	var w Window
	if err := row.Scan(&w.ID, &w.BarberID, &w.Date, &w.From, &w.Until, &w.IsOpen, &w.Reason, &w.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get availability window failed: %w", err)
	}
	return &w, nil
}

func (r *pgxRepository) WindowsFor(ctx context.Context, barberID string, date time.Time) ([]Window, error) {
	const query = `
		SELECT id, barber_id, date, available_from, available_until, is_open, reason, created_at
		FROM public.availability_windows
		WHERE barber_id = $1 AND date = $2::date
		ORDER BY available_from ASC
	`
	rows, err := r.pool.Query(ctx, query, barberID, date)
	if err != nil {
		return nil, fmt.Errorf("query availability windows failed: %w", err)
	}
	defer rows.Close()

	var windows []Window
	for rows.Next() {
		var w Window
		if err := rows.Scan(&w.ID, &w.BarberID, &w.Date, &w.From, &w.Until, &w.IsOpen, &w.Reason, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan availability window failed: %w", err)
		}
		windows = append(windows, w)
	}

	return windows, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Window, int, error) {
	var args []interface{}
	queryBase := `
		SELECT id, barber_id, date, available_from, available_until, is_open, reason, created_at, count(*) OVER() as total_count
		FROM public.availability_windows
		WHERE 1=1
	`
	paramIndex := 1

	if filter.BarberID != "" {
		queryBase += fmt.Sprintf(" AND barber_id = $%d", paramIndex)
		args = append(args, filter.BarberID)
		paramIndex++
	}
	if filter.DateFrom != nil {
		queryBase += fmt.Sprintf(" AND date >= $%d::date", paramIndex)
		args = append(args, *filter.DateFrom)
		paramIndex++
	}
	if filter.DateTo != nil {
		queryBase += fmt.Sprintf(" AND date <= $%d::date", paramIndex)
		args = append(args, *filter.DateTo)
		paramIndex++
	}

	queryBase += " ORDER BY date ASC, available_from ASC"

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
		return nil, 0, fmt.Errorf("list availability windows failed: %w", err)
	}
	defer rows.Close()

	var result []*Window
	var total int

	for rows.Next() {
		var w Window
		if err := rows.Scan(&w.ID, &w.BarberID, &w.Date, &w.From, &w.Until, &w.IsOpen, &w.Reason, &w.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("scan availability window failed: %w", err)
		}
		result = append(result, &w)
	}

	return result, total, nil
}

func (r *pgxRepository) Update(ctx context.Context, w *Window) error {
	const query = `
		UPDATE public.availability_windows
		SET date = $1, available_from = $2, available_until = $3, is_open = $4, reason = $5
		WHERE id = $6
	`
	ct, err := r.pool.Exec(ctx, query, w.Date, w.From, w.Until, w.IsOpen, w.Reason, w.ID)
	if err != nil {
		return fmt.Errorf("update availability window failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.availability_windows WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete availability window failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
