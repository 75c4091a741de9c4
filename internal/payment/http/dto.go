package http

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/payment"
)

type RecordPaymentRequest struct {
	BookingID   string `json:"booking_id" binding:"required,uuid"`
	Method      string `json:"method" binding:"required,oneof=credit_card paypal cash mobile_wallet"`
	AmountCents *int64 `json:"amount_cents"`
}

type PaymentResponse struct {
	ID          string     `json:"id"`
	BookingID   string     `json:"booking_id"`
	Method      string     `json:"method"`
	AmountCents int64      `json:"amount_cents"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func NewPaymentResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		BookingID:   p.BookingID,
		Method:      string(p.Method),
		AmountCents: p.AmountCents,
		Status:      string(p.Status),
		PaidAt:      p.PaidAt,
		CreatedAt:   p.CreatedAt,
	}
}
