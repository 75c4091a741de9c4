package http

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/service"
)

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	DurationMin int    `json:"duration_min" binding:"required,gt=0"`
}

type UpdateServiceRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	PriceCents  *int64  `json:"price_cents"`
	DurationMin *int    `json:"duration_min"`
}

type ServiceResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	DurationMin int       `json:"duration_min"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceTag is the compact reference embedded in other responses.
type ServiceTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func NewServiceResponse(s *service.Service) ServiceResponse {
	return ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Category:    s.Category,
		PriceCents:  s.PriceCents,
		DurationMin: s.DurationMin,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
