package service

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Description string
	Category    string
	PriceCents  int64
	DurationMin int
}

type UpdateRequest struct {
	Name        *string
	Description *string
	Category    *string
	PriceCents  *int64
	DurationMin *int
}

// Manager exposes the catalog operations. ResolveDuration is the lookup the
// booking engine snapshots from; it never has side effects.
type Manager interface {
	Create(ctx context.Context, req CreateRequest) (*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context, filter Filter) ([]*Service, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Service, error)
	Delete(ctx context.Context, id string) error
	ResolveDuration(ctx context.Context, id string) (int, error)
}

type manager struct {
	repo Repository
}

func NewManager(repo Repository) Manager {
	return &manager{repo: repo}
}

func (m *manager) Create(ctx context.Context, req CreateRequest) (*Service, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if req.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}

	s := &Service{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		PriceCents:  req.PriceCents,
		DurationMin: req.DurationMin,
	}

	if err := m.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *manager) GetByID(ctx context.Context, id string) (*Service, error) {
	return m.repo.GetByID(ctx, id)
}

func (m *manager) List(ctx context.Context, filter Filter) ([]*Service, int, error) {
	return m.repo.List(ctx, filter)
}

func (m *manager) Update(ctx context.Context, id string, req UpdateRequest) (*Service, error) {
	s, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		s.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Category != nil {
		s.Category = *req.Category
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, ErrInvalidPrice
		}
		s.PriceCents = *req.PriceCents
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			return nil, ErrInvalidDuration
		}
		s.DurationMin = *req.DurationMin
	}

	if err := m.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (m *manager) Delete(ctx context.Context, id string) error {
	if _, err := m.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return m.repo.Delete(ctx, id)
}

// ResolveDuration looks up the fixed duration of a service in minutes.
// A stored non-positive duration is reported as ErrInvalidDuration rather
// than silently producing a zero-length booking.
func (m *manager) ResolveDuration(ctx context.Context, id string) (int, error) {
	s, err := m.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if s.DurationMin <= 0 {
		return 0, ErrInvalidDuration
	}
	return s.DurationMin, nil
}
