package payment

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id string) (*Payment, error)
	GetCompletedByBooking(ctx context.Context, bookingID string) (*Payment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*Payment, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}

type pgRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

const insertPaymentQuery = `
	INSERT INTO public.payments (id, booking_id, method, amount_cents, status, paid_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at
`

func (r *pgRepository) Create(ctx context.Context, p *Payment) error {
	row := r.pool.QueryRow(ctx, insertPaymentQuery,
		p.ID, p.BookingID, p.Method, p.AmountCents, p.Status, p.PaidAt,
	)
	if err := row.Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

const getPaymentQuery = `
	SELECT id, booking_id, method, amount_cents, status, paid_at, created_at
	FROM public.payments
	WHERE id = $1
`

func (r *pgRepository) GetByID(ctx context.Context, id string) (*Payment, error) {
	row := r.pool.QueryRow(ctx, getPaymentQuery, id)
	return scanPayment(row)
}

const getCompletedByBookingQuery = `
	SELECT id, booking_id, method, amount_cents, status, paid_at, created_at
	FROM public.payments
	WHERE booking_id = $1 AND status = 'completed'
	LIMIT 1
`

func (r *pgRepository) GetCompletedByBooking(ctx context.Context, bookingID string) (*Payment, error) {
	row := r.pool.QueryRow(ctx, getCompletedByBookingQuery, bookingID)
	return scanPayment(row)
}

const listByBookingQuery = `
	SELECT id, booking_id, method, amount_cents, status, paid_at, created_at
	FROM public.payments
	WHERE booking_id = $1
	ORDER BY created_at ASC
`

func (r *pgRepository) ListByBooking(ctx context.Context, bookingID string) ([]*Payment, error) {
	rows, err := r.pool.Query(ctx, listByBookingQuery, bookingID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*Payment
	for rows.Next() {
		var p Payment
		err := rows.Scan(&p.ID, &p.BookingID, &p.Method, &p.AmountCents, &p.Status, &p.PaidAt, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}

const updatePaymentStatusQuery = `
	UPDATE public.payments
	SET status = $2
	WHERE id = $1
`

func (r *pgRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	tag, err := r.pool.Exec(ctx, updatePaymentStatusQuery, id, status)
	if err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPayment(row pgx.Row) (*Payment, error) {
	var p Payment
	err := row.Scan(&p.ID, &p.BookingID, &p.Method, &p.AmountCents, &p.Status, &p.PaidAt, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return &p, nil
}
