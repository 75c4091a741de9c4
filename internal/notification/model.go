package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

// Kind classifies what a notification is about.
type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindCancellation Kind = "cancellation"
	KindReminder     Kind = "reminder"
)

// Notification is a message for a client about one of their bookings.
type Notification struct {
	ID        string
	ClientID  string
	BookingID string
	Kind      Kind
	Message   string
	Read      bool
	CreatedAt time.Time
}

// Filter defines parameters for listing notifications.
type Filter struct {
	ClientID string
	Unread   bool
	Page     int
	PageSize int
}
