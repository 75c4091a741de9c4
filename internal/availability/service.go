package availability

import (
	"context"
	"errors"
	"time"

	"github.com/sharpfade/barbershop-backend/internal/barber"
)

type CreateRequest struct {
	BarberID string
	Date     time.Time
	From     string
	Until    string
	IsOpen   bool
	Reason   string
}

type UpdateRequest struct {
	Date   *time.Time
	From   *string
	Until  *string
	IsOpen *bool
	Reason *string
}

// Service manages availability windows. Windows are written by barber
// management flows and read (without locking) by the booking engine; a stale
// read during an edit is tolerated since availability changes are rare
// relative to booking volume.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Window, error)
	GetByID(ctx context.Context, id string) (*Window, error)
	WindowsFor(ctx context.Context, barberID string, date time.Time) ([]Window, error)
	List(ctx context.Context, filter Filter) ([]*Window, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Window, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo      Repository
	barberSvc barber.Service
}

func NewService(repo Repository, barberSvc barber.Service) Service {
	return &service{
		repo:      repo,
		barberSvc: barberSvc,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Window, error) {
	if _, err := s.barberSvc.GetByID(ctx, req.BarberID); err != nil {
		if errors.Is(err, barber.ErrNotFound) {
			return nil, barber.ErrNotFound
		}
		return nil, err
	}

	w := &Window{
		BarberID: req.BarberID,
		Date:     req.Date,
		From:     req.From,
		Until:    req.Until,
		IsOpen:   req.IsOpen,
		Reason:   req.Reason,
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Window, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) WindowsFor(ctx context.Context, barberID string, date time.Time) ([]Window, error) {
	return s.repo.WindowsFor(ctx, barberID, date)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Window, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Window, error) {
	w, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		w.Date = *req.Date
	}
	if req.From != nil {
		w.From = *req.From
	}
	if req.Until != nil {
		w.Until = *req.Until
	}
	if req.IsOpen != nil {
		w.IsOpen = *req.IsOpen
	}
	if req.Reason != nil {
		w.Reason = *req.Reason
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
