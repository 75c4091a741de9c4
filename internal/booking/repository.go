package booking

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tx is the slice of the repository visible inside a per-barber critical
// section. Reads through it see every booking committed by earlier holders
// of the same barber's lock.
type Tx interface {
	ActiveForDay(ctx context.Context, barberID string, dayStart, dayEnd time.Time) ([]*Booking, error)
	Create(ctx context.Context, b *Booking) error
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	SetPaymentStatus(ctx context.Context, id string, status PaymentStatus) error
	// WithBarberLock runs fn while holding an exclusive per-barber lock.
	// Requests for different barbers proceed concurrently; requests for the
	// same barber serialize. The insert fn performs commits atomically with
	// the lock release.
	WithBarberLock(ctx context.Context, barberID string, fn func(tx Tx) error) error
}

type pgRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgRepository{pool: pool}
}

const getBookingQuery = `
	SELECT b.id, b.barber_id, b.service_id, b.client_id, b.start_time,
	       b.duration_min, b.price_cents, b.status, b.payment_status,
	       b.created_at, b.updated_at,
	       br.name AS barber_name, s.name AS service_name, c.name AS client_name
	FROM public.bookings b
	JOIN public.barbers br ON br.id = b.barber_id
	JOIN public.services s ON s.id = b.service_id
	JOIN public.clients c ON c.id = b.client_id
	WHERE b.id = $1
`

func (r *pgRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	row := r.pool.QueryRow(ctx, getBookingQuery, id)

	var b Booking
	err := row.Scan(
		&b.ID, &b.BarberID, &b.ServiceID, &b.ClientID, &b.StartTime,
		&b.DurationMin, &b.PriceCents, &b.Status, &b.PaymentStatus,
		&b.CreatedAt, &b.UpdatedAt,
		&b.BarberName, &b.ServiceName, &b.ClientName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return &b, nil
}

func (r *pgRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	builder := sq.Select(
		"b.id", "b.barber_id", "b.service_id", "b.client_id", "b.start_time",
		"b.duration_min", "b.price_cents", "b.status", "b.payment_status",
		"b.created_at", "b.updated_at",
		"br.name AS barber_name", "s.name AS service_name", "c.name AS client_name",
		"count(*) OVER() AS total",
	).
		From("public.bookings b").
		Join("public.barbers br ON br.id = b.barber_id").
		Join("public.services s ON s.id = b.service_id").
		Join("public.clients c ON c.id = b.client_id").
		PlaceholderFormat(sq.Dollar)

	if filter.BarberID != "" {
		builder = builder.Where(sq.Eq{"b.barber_id": filter.BarberID})
	}
	if filter.ClientID != "" {
		builder = builder.Where(sq.Eq{"b.client_id": filter.ClientID})
	}
	if len(filter.Statuses) > 0 {
		builder = builder.Where(sq.Eq{"b.status": filter.Statuses})
	}
	if filter.StartFrom != nil {
		builder = builder.Where(sq.GtOrEq{"b.start_time": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		builder = builder.Where(sq.Lt{"b.start_time": *filter.StartTo})
	}

	builder = builder.OrderBy(listOrderClause(filter)).
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var (
		bookings []*Booking
		total    int
	)
	for rows.Next() {
		var b Booking
		err := rows.Scan(
			&b.ID, &b.BarberID, &b.ServiceID, &b.ClientID, &b.StartTime,
			&b.DurationMin, &b.PriceCents, &b.Status, &b.PaymentStatus,
			&b.CreatedAt, &b.UpdatedAt,
			&b.BarberName, &b.ServiceName, &b.ClientName,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, total, nil
}

func listOrderClause(filter Filter) string {
	column := "b.start_time"
	if filter.SortBy == "created_at" {
		column = "b.created_at"
	}
	order := "ASC"
	if filter.SortOrder == "desc" {
		order = "DESC"
	}
	return column + " " + order
}

const updateStatusQuery = `
	UPDATE public.bookings
	SET status = $2, updated_at = now()
	WHERE id = $1
`

func (r *pgRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	tag, err := r.pool.Exec(ctx, updateStatusQuery, id, status)
	if err != nil {
		return fmt.Errorf("update booking status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const setPaymentStatusQuery = `
	UPDATE public.bookings
	SET payment_status = $2, updated_at = now()
	WHERE id = $1
`

func (r *pgRepository) SetPaymentStatus(ctx context.Context, id string, status PaymentStatus) error {
	tag, err := r.pool.Exec(ctx, setPaymentStatusQuery, id, status)
	if err != nil {
		return fmt.Errorf("set booking payment status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgRepository) WithBarberLock(ctx context.Context, barberID string, fn func(tx Tx) error) error {
	pgtx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer pgtx.Rollback(ctx)

	// Advisory lock keyed by the barber id, held until commit or rollback.
	// This serializes admissions per barber without blocking other barbers.
	_, err = pgtx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, barberID)
	if err != nil {
		return fmt.Errorf("acquire barber lock: %w", err)
	}

	if err := fn(&pgTx{tx: pgtx}); err != nil {
		return err
	}
	if err := pgtx.Commit(ctx); err != nil {
		return fmt.Errorf("commit booking tx: %w", err)
	}
	return nil
}

type pgTx struct {
	tx pgx.Tx
}

const activeForDayQuery = `
	SELECT id, barber_id, service_id, client_id, start_time,
	       duration_min, price_cents, status, payment_status,
	       created_at, updated_at
	FROM public.bookings
	WHERE barber_id = $1
	  AND status != 'cancelled'
	  AND start_time >= $2
	  AND start_time < $3
	ORDER BY start_time ASC
`

func (t *pgTx) ActiveForDay(ctx context.Context, barberID string, dayStart, dayEnd time.Time) ([]*Booking, error) {
	rows, err := t.tx.Query(ctx, activeForDayQuery, barberID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		var b Booking
		err := rows.Scan(
			&b.ID, &b.BarberID, &b.ServiceID, &b.ClientID, &b.StartTime,
			&b.DurationMin, &b.PriceCents, &b.Status, &b.PaymentStatus,
			&b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate bookings: %w", err)
	}
	return bookings, nil
}

const insertBookingQuery = `
	INSERT INTO public.bookings (
		id, barber_id, service_id, client_id, start_time,
		duration_min, price_cents, status, payment_status
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at, updated_at
`

func (t *pgTx) Create(ctx context.Context, b *Booking) error {
	row := t.tx.QueryRow(ctx, insertBookingQuery,
		b.ID, b.BarberID, b.ServiceID, b.ClientID, b.StartTime,
		b.DurationMin, b.PriceCents, b.Status, b.PaymentStatus,
	)
	if err := row.Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}
