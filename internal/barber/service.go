package barber

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name           string
	Specialization string
}

type UpdateRequest struct {
	Name           *string
	Specialization *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Barber, error)
	GetByID(ctx context.Context, id string) (*Barber, error)
	List(ctx context.Context, filter Filter) ([]*Barber, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Barber, error)
	SetStatus(ctx context.Context, id string, status Status) (*Barber, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Barber, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	b := &Barber{
		Name:           strings.TrimSpace(req.Name),
		Specialization: req.Specialization,
		Status:         StatusActive,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Barber, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Barber, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Barber, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Specialization != nil {
		b.Specialization = *req.Specialization
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// SetStatus flips the barber lifecycle state. Existing bookings are left
// untouched; only future booking requests observe the new state.
func (s *service) SetStatus(ctx context.Context, id string, status Status) (*Barber, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.Status = status

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
