package booking

import (
	"fmt"
	"time"

	"github.com/sharpfade/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.NotFound("booking not found")
	ErrServiceNotFound     = apperror.NotFound("service not found")
	ErrBarberNotFound      = apperror.NotFound("barber not found")
	ErrClientNotFound      = apperror.NotFound("client not found")
	ErrBarberInactive      = apperror.Conflict("barber is not accepting bookings")
	ErrPastBooking         = apperror.BadRequest("booking time cannot be in the past")
	ErrOutsideAvailability = apperror.Conflict("barber is not available for the entire requested time slot")
	ErrSlotConflict        = apperror.Conflict("time slot conflicts with an existing booking")
	ErrInvalidDuration     = apperror.BadRequest("service has an invalid duration")
	ErrMissingField        = apperror.BadRequest("barber_id, service_id and client_id are required")
	ErrInvalidTransition   = apperror.Conflict("invalid booking state transition")
)

// ConflictError reports which committed booking blocked admission.
// It matches ErrSlotConflict under errors.Is.
type ConflictError struct {
	ConflictingID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot conflicts with an existing booking (%s)", e.ConflictingID)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// Booking is a committed appointment. Duration and price are snapshots taken
// from the service at creation time; later catalog edits never touch them.
// The end time is always derived from start plus duration, never stored.
type Booking struct {
	ID            string
	BarberID      string
	ServiceID     string
	ClientID      string
	StartTime     time.Time
	DurationMin   int
	PriceCents    int64
	Status        Status
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined display fields, populated by read queries only.
	BarberName  string
	ServiceName string
	ClientName  string
}

// EndTime derives when the appointment ends.
func (b *Booking) EndTime() time.Time {
	return b.StartTime.Add(time.Duration(b.DurationMin) * time.Minute)
}

// IsActive reports whether the booking still occupies its slot.
// Cancelled bookings free their slot for future requests.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CreateRequest is the input to the admission path.
type CreateRequest struct {
	BarberID  string
	ServiceID string
	ClientID  string
	StartTime time.Time
}

// Filter is the typed query specification for listing bookings.
type Filter struct {
	BarberID  string
	ClientID  string
	Statuses  []Status
	StartFrom *time.Time
	StartTo   *time.Time
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
