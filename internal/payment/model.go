package payment

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.NotFound("payment not found")
	ErrInvalidMethod  = apperror.BadRequest("unsupported payment method")
	ErrInvalidAmount  = apperror.BadRequest("payment amount cannot be negative")
	ErrAlreadyPaid    = apperror.Conflict("booking already has a completed payment")
	ErrNotRefundable  = apperror.Conflict("only completed payments can be refunded")
	ErrBookingInvalid = apperror.Conflict("cannot take payment for a cancelled booking")
)

type Method string

const (
	MethodCreditCard   Method = "credit_card"
	MethodPayPal       Method = "paypal"
	MethodCash         Method = "cash"
	MethodMobileWallet Method = "mobile_wallet"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCreditCard, MethodPayPal, MethodCash, MethodMobileWallet:
		return true
	}
	return false
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRefunded  Status = "refunded"
)

// Payment records money taken for a booking. The amount defaults to the
// booking's price snapshot, so catalog price edits after booking never change
// what the client owes.
type Payment struct {
	ID          string
	BookingID   string
	Method      Method
	AmountCents int64
	Status      Status
	PaidAt      *time.Time
	CreatedAt   time.Time
}
