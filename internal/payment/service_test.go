package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpfade/barbershop-backend/internal/booking"
)

type memRepository struct {
	payments map[string]*Payment
}

func newMemRepository() *memRepository {
	return &memRepository{payments: make(map[string]*Payment)}
}

func (r *memRepository) Create(ctx context.Context, p *Payment) error {
	p.CreatedAt = time.Now()
	copied := *p
	r.payments[p.ID] = &copied
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Payment, error) {
	p, ok := r.payments[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *memRepository) GetCompletedByBooking(ctx context.Context, bookingID string) (*Payment, error) {
	for _, p := range r.payments {
		if p.BookingID == bookingID && p.Status == StatusCompleted {
			copied := *p
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepository) ListByBooking(ctx context.Context, bookingID string) ([]*Payment, error) {
	var out []*Payment
	for _, p := range r.payments {
		if p.BookingID == bookingID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *memRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	p, ok := r.payments[id]
	if !ok {
		return ErrNotFound
	}
	p.Status = status
	return nil
}

type memLedger struct {
	bookings map[string]*booking.Booking
}

func (l *memLedger) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	b, ok := l.bookings[id]
	if !ok {
		return nil, booking.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (l *memLedger) SetPaymentStatus(ctx context.Context, id string, status booking.PaymentStatus) error {
	b, ok := l.bookings[id]
	if !ok {
		return booking.ErrNotFound
	}
	b.PaymentStatus = status
	return nil
}

func newFixture() (Service, *memRepository, *memLedger) {
	repo := newMemRepository()
	ledger := &memLedger{bookings: map[string]*booking.Booking{
		"bk-1": {ID: "bk-1", PriceCents: 3500, Status: booking.StatusConfirmed, PaymentStatus: booking.PaymentPending},
		"bk-2": {ID: "bk-2", PriceCents: 2000, Status: booking.StatusCancelled, PaymentStatus: booking.PaymentPending},
	}}
	return NewService(repo, ledger), repo, ledger
}

func TestRecordPayment(t *testing.T) {
	t.Run("defaults to the booking price snapshot", func(t *testing.T) {
		svc, _, ledger := newFixture()

		p, err := svc.Record(context.Background(), RecordRequest{BookingID: "bk-1", Method: MethodCash})
		require.NoError(t, err)

		assert.Equal(t, int64(3500), p.AmountCents)
		assert.Equal(t, StatusCompleted, p.Status)
		require.NotNil(t, p.PaidAt)
		assert.Equal(t, booking.PaymentPaid, ledger.bookings["bk-1"].PaymentStatus)
	})

	t.Run("explicit amount wins", func(t *testing.T) {
		svc, _, _ := newFixture()

		amount := int64(3000)
		p, err := svc.Record(context.Background(), RecordRequest{BookingID: "bk-1", Method: MethodCreditCard, AmountCents: &amount})
		require.NoError(t, err)
		assert.Equal(t, int64(3000), p.AmountCents)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		svc, _, _ := newFixture()

		amount := int64(-1)
		_, err := svc.Record(context.Background(), RecordRequest{BookingID: "bk-1", Method: MethodCash, AmountCents: &amount})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unsupported method", func(t *testing.T) {
		svc, _, _ := newFixture()

		_, err := svc.Record(context.Background(), RecordRequest{BookingID: "bk-1", Method: "barter"})
		assert.ErrorIs(t, err, ErrInvalidMethod)
	})

	t.Run("cancelled booking cannot be paid", func(t *testing.T) {
		svc, _, _ := newFixture()

		_, err := svc.Record(context.Background(), RecordRequest{BookingID: "bk-2", Method: MethodCash})
		assert.ErrorIs(t, err, ErrBookingInvalid)
	})

	t.Run("double payment is rejected", func(t *testing.T) {
		svc, _, _ := newFixture()
		ctx := context.Background()

		_, err := svc.Record(ctx, RecordRequest{BookingID: "bk-1", Method: MethodCash})
		require.NoError(t, err)

		_, err = svc.Record(ctx, RecordRequest{BookingID: "bk-1", Method: MethodPayPal})
		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc, _, _ := newFixture()

		_, err := svc.Record(context.Background(), RecordRequest{BookingID: "nope", Method: MethodCash})
		assert.ErrorIs(t, err, booking.ErrNotFound)
	})
}

func TestRefundPayment(t *testing.T) {
	t.Run("completed payment refunds and flags the booking", func(t *testing.T) {
		svc, _, ledger := newFixture()
		ctx := context.Background()

		p, err := svc.Record(ctx, RecordRequest{BookingID: "bk-1", Method: MethodCash})
		require.NoError(t, err)

		refunded, err := svc.Refund(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, StatusRefunded, refunded.Status)
		assert.Equal(t, booking.PaymentRefunded, ledger.bookings["bk-1"].PaymentStatus)

		// Once refunded it cannot be refunded again.
		_, err = svc.Refund(ctx, p.ID)
		assert.ErrorIs(t, err, ErrNotRefundable)
	})

	t.Run("refund frees the booking for a fresh payment", func(t *testing.T) {
		svc, _, _ := newFixture()
		ctx := context.Background()

		p, err := svc.Record(ctx, RecordRequest{BookingID: "bk-1", Method: MethodCash})
		require.NoError(t, err)

		_, err = svc.Refund(ctx, p.ID)
		require.NoError(t, err)

		_, err = svc.Record(ctx, RecordRequest{BookingID: "bk-1", Method: MethodMobileWallet})
		assert.NoError(t, err)
	})

	t.Run("unknown payment", func(t *testing.T) {
		svc, _, _ := newFixture()
		_, err := svc.Refund(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
