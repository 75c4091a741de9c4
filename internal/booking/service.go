package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sharpfade/barbershop-backend/internal/availability"
	"github.com/sharpfade/barbershop-backend/internal/barber"
	"github.com/sharpfade/barbershop-backend/internal/client"
	"github.com/sharpfade/barbershop-backend/internal/notification"
	catalog "github.com/sharpfade/barbershop-backend/internal/service"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Cancel(ctx context.Context, id string) (*Booking, error)
	Complete(ctx context.Context, id string) (*Booking, error)
}

type service struct {
	repo      Repository
	catalog   catalog.Manager
	barberSvc barber.Service
	clientSvc client.Service
	availSvc  availability.Service
	notifier  *notification.Dispatcher
	loc       *time.Location
	now       func() time.Time
}

func NewService(
	repo Repository,
	catalogMgr catalog.Manager,
	barberSvc barber.Service,
	clientSvc client.Service,
	availSvc availability.Service,
	notifier *notification.Dispatcher,
	loc *time.Location,
) Service {
	return &service{
		repo:      repo,
		catalog:   catalogMgr,
		barberSvc: barberSvc,
		clientSvc: clientSvc,
		availSvc:  availSvc,
		notifier:  notifier,
		loc:       loc,
		now:       time.Now,
	}
}

// Create admits a new booking. Reference data (service, barber, client,
// availability windows) is read outside the critical section; only the
// overlap check and the insert run under the per-barber lock, so the scan
// always sees every booking committed by earlier winners.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	if req.BarberID == "" || req.ServiceID == "" || req.ClientID == "" {
		return nil, ErrMissingField
	}

	svc, err := s.catalog.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if svc.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}

	brb, err := s.barberSvc.GetByID(ctx, req.BarberID)
	if err != nil {
		if errors.Is(err, barber.ErrNotFound) {
			return nil, ErrBarberNotFound
		}
		return nil, err
	}

	cl, err := s.clientSvc.GetByID(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, err
	}

	start := req.StartTime.In(s.loc)
	day := availability.DateOnly(start, s.loc)
	windows, err := s.availSvc.WindowsFor(ctx, req.BarberID, day)
	if err != nil {
		return nil, fmt.Errorf("load availability: %w", err)
	}

	b := &Booking{
		ID:            uuid.NewString(),
		BarberID:      brb.ID,
		ServiceID:     svc.ID,
		ClientID:      cl.ID,
		StartTime:     start,
		DurationMin:   svc.DurationMin,
		PriceCents:    svc.PriceCents,
		Status:        StatusConfirmed,
		PaymentStatus: PaymentPending,
	}

	err = s.repo.WithBarberLock(ctx, req.BarberID, func(tx Tx) error {
		// Containment pins the booking inside its calendar day, so the day
		// bounds are an exact neighbor set for the overlap check.
		neighbors, err := tx.ActiveForDay(ctx, req.BarberID, day, day.AddDate(0, 0, 1))
		if err != nil {
			return err
		}

		_, err = evaluate(start, svc.DurationMin, snapshot{
			Now:          s.now(),
			BarberActive: brb.IsActive(),
			Windows:      windows,
			Neighbors:    neighbors,
			Location:     s.loc,
		})
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}
		return tx.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	b.BarberName = brb.Name
	b.ServiceName = svc.Name
	b.ClientName = cl.Name

	s.notifier.Dispatch(notification.Event{
		ClientID:  cl.ID,
		BookingID: b.ID,
		Kind:      notification.KindConfirmation,
		Message:   fmt.Sprintf("Your %s appointment with %s on %s is confirmed.", svc.Name, brb.Name, start.Format("Jan 2 15:04")),
	})
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return s.repo.List(ctx, filter)
}

// Cancel releases the booking's slot. The overlap check skips cancelled
// bookings, so the interval becomes admissible again immediately.
func (s *service) Cancel(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled

	s.notifier.Dispatch(notification.Event{
		ClientID:  b.ClientID,
		BookingID: b.ID,
		Kind:      notification.KindCancellation,
		Message:   fmt.Sprintf("Your appointment on %s has been cancelled.", b.StartTime.In(s.loc).Format("Jan 2 15:04")),
	})
	return b, nil
}

func (s *service) Complete(ctx context.Context, id string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Status != StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCompleted); err != nil {
		return nil, err
	}
	b.Status = StatusCompleted
	return b, nil
}
