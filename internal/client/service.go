package client

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type CreateRequest struct {
	Name  string
	Phone string
	Email string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Client, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	GetOrCreate(ctx context.Context, req CreateRequest) (*Client, error)
	List(ctx context.Context, filter Filter) ([]*Client, int, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Client, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if strings.TrimSpace(req.Phone) == "" {
		return nil, ErrEmptyPhone
	}

	c := &Client{
		Name:  strings.TrimSpace(req.Name),
		Phone: strings.TrimSpace(req.Phone),
		Email: strings.TrimSpace(req.Email),
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Client, error) {
	return s.repo.GetByID(ctx, id)
}

// GetOrCreate returns the client registered under the phone number, creating
// a new record when none exists. Used by walk-in booking flows.
func (s *service) GetOrCreate(ctx context.Context, req CreateRequest) (*Client, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, ErrEmptyPhone
	}

	existing, err := s.repo.GetByPhone(ctx, phone)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup client by phone failed: %w", err)
	}

	return s.Create(ctx, req)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Client, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
