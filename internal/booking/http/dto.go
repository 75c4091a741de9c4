package http

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/booking"
)

type CreateBookingRequest struct {
	BarberID  string    `json:"barber_id" binding:"required,uuid"`
	ServiceID string    `json:"service_id" binding:"required,uuid"`
	ClientID  string    `json:"client_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	BarberID      string    `json:"barber_id"`
	BarberName    string    `json:"barber_name,omitempty"`
	ServiceID     string    `json:"service_id"`
	ServiceName   string    `json:"service_name,omitempty"`
	ClientID      string    `json:"client_id"`
	ClientName    string    `json:"client_name,omitempty"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	DurationMin   int       `json:"duration_min"`
	PriceCents    int64     `json:"price_cents"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		BarberID:      b.BarberID,
		BarberName:    b.BarberName,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		ClientID:      b.ClientID,
		ClientName:    b.ClientName,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime(),
		DurationMin:   b.DurationMin,
		PriceCents:    b.PriceCents,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
