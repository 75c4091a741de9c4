package http

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/barber"
)

type CreateBarberRequest struct {
	Name           string `json:"name" binding:"required"`
	Specialization string `json:"specialization"`
}

type UpdateBarberRequest struct {
	Name           *string `json:"name"`
	Specialization *string `json:"specialization"`
}

type SetBarberStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

type BarberResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Specialization string    `json:"specialization,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BarberTag is the compact reference embedded in other responses.
type BarberTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewBarberResponse(b *barber.Barber) BarberResponse {
	return BarberResponse{
		ID:             b.ID,
		Name:           b.Name,
		Specialization: b.Specialization,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
