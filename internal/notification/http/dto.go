package http

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/notification"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	BookingID string    `json:"booking_id"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		ClientID:  n.ClientID,
		BookingID: n.BookingID,
		Kind:      string(n.Kind),
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
