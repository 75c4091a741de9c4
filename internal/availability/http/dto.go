package http

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/availability"
)

const dateLayout = "2006-01-02"

type CreateWindowRequest struct {
	BarberID string `json:"barber_id" binding:"required,uuid"`
	Date     string `json:"date" binding:"required,datetime=2006-01-02"`
	From     string `json:"from" binding:"required,datetime=15:04"`
	Until    string `json:"until" binding:"required,datetime=15:04"`
	IsOpen   *bool  `json:"is_open" binding:"required"`
	Reason   string `json:"reason"`
}

type UpdateWindowRequest struct {
	Date   *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	From   *string `json:"from" binding:"omitempty,datetime=15:04"`
	Until  *string `json:"until" binding:"omitempty,datetime=15:04"`
	IsOpen *bool   `json:"is_open"`
	Reason *string `json:"reason"`
}

type WindowResponse struct {
	ID        string    `json:"id"`
	BarberID  string    `json:"barber_id"`
	Date      string    `json:"date"`
	From      string    `json:"from"`
	Until     string    `json:"until"`
	IsOpen    bool      `json:"is_open"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewWindowResponse(w *availability.Window) WindowResponse {
	return WindowResponse{
		ID:        w.ID,
		BarberID:  w.BarberID,
		Date:      w.Date.Format(dateLayout),
		From:      w.From,
		Until:     w.Until,
		IsOpen:    w.IsOpen,
		Reason:    w.Reason,
		CreatedAt: w.CreatedAt,
	}
}
