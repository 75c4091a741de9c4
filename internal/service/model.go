package service

import (
	"errors"
	"time"
)

var (
	ErrNotFound        = errors.New("service not found")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidDuration = errors.New("service duration must be a positive number of minutes")
	ErrInvalidPrice    = errors.New("service price cannot be negative")
)

// Service represents an offering from the shop catalog (e.g. haircut,
// beard trim). Price and duration are snapshotted into bookings at creation
// time, so later edits never rewrite existing bookings.
type Service struct {
	ID          string
	Name        string
	Description string
	Category    string
	PriceCents  int64
	DurationMin int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for listing catalog services.
type Filter struct {
	Category string
	Page     int
	PageSize int
}
