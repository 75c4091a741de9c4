package barber

import (
	"errors"
	"time"
)

var (
	ErrNotFound  = errors.New("barber not found")
	ErrEmptyName = errors.New("name cannot be empty")
	ErrInactive  = errors.New("barber is inactive")
)

// Status is the lifecycle state of a barber. Only active barbers accept
// new bookings; deactivating a barber never invalidates existing bookings.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Barber represents a member of staff that clients can book.
type Barber struct {
	ID             string
	Name           string
	Specialization string
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive reports whether the barber currently accepts new bookings.
func (b *Barber) IsActive() bool {
	return b.Status == StatusActive
}

// Filter defines parameters for listing barbers.
type Filter struct {
	Status   string
	Page     int
	PageSize int
}
