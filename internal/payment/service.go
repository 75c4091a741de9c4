package payment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sharpfade/barbershop-backend/internal/booking"
)

type RecordRequest struct {
	BookingID   string
	Method      Method
	AmountCents *int64
}

// BookingLedger is the slice of the booking store payments need: look up the
// booking being paid for and flip its payment flag.
type BookingLedger interface {
	GetByID(ctx context.Context, id string) (*booking.Booking, error)
	SetPaymentStatus(ctx context.Context, id string, status booking.PaymentStatus) error
}

type Service interface {
	Record(ctx context.Context, req RecordRequest) (*Payment, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*Payment, error)
	Refund(ctx context.Context, id string) (*Payment, error)
}

type service struct {
	repo     Repository
	bookings BookingLedger
	now      func() time.Time
}

func NewService(repo Repository, bookings BookingLedger) Service {
	return &service{
		repo:     repo,
		bookings: bookings,
		now:      time.Now,
	}
}

// Record takes payment for a booking. The amount defaults to the booking's
// price snapshot when the request leaves it unset.
func (s *service) Record(ctx context.Context, req RecordRequest) (*Payment, error) {
	if !req.Method.Valid() {
		return nil, ErrInvalidMethod
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.Status == booking.StatusCancelled {
		return nil, ErrBookingInvalid
	}

	if _, err := s.repo.GetCompletedByBooking(ctx, req.BookingID); err == nil {
		return nil, ErrAlreadyPaid
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	amount := b.PriceCents
	if req.AmountCents != nil {
		if *req.AmountCents < 0 {
			return nil, ErrInvalidAmount
		}
		amount = *req.AmountCents
	}

	paidAt := s.now()
	p := &Payment{
		ID:          uuid.NewString(),
		BookingID:   b.ID,
		Method:      req.Method,
		AmountCents: amount,
		Status:      StatusCompleted,
		PaidAt:      &paidAt,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := s.bookings.SetPaymentStatus(ctx, b.ID, booking.PaymentPaid); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByBooking(ctx context.Context, bookingID string) ([]*Payment, error) {
	return s.repo.ListByBooking(ctx, bookingID)
}

func (s *service) Refund(ctx context.Context, id string) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.Status != StatusCompleted {
		return nil, ErrNotRefundable
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusRefunded); err != nil {
		return nil, err
	}
	p.Status = StatusRefunded

	if err := s.bookings.SetPaymentStatus(ctx, p.BookingID, booking.PaymentRefunded); err != nil {
		return nil, err
	}
	return p, nil
}
