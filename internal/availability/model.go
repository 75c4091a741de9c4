package availability

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("availability window not found")
	ErrInvalidTimeRange = apperror.BadRequest("window start must be before window end")
	ErrInvalidClock     = apperror.BadRequest("times must be HH:MM wall clock values")
)

// clockLayout is the wall-clock format windows are declared in.
const clockLayout = "15:04"

// Window is a barber's declared open (or explicitly blocked) time range on a
// calendar date. A closed window (IsOpen=false) represents a break or holiday
// carved out of the working day. A barber may have several windows per date.
type Window struct {
	ID        string
	BarberID  string
	Date      time.Time // calendar day, time component ignored
	From      string    // wall clock "HH:MM"
	Until     string    // wall clock "HH:MM", strictly after From
	IsOpen    bool
	Reason    string
	CreatedAt time.Time
}

// Validate checks the wall-clock fields. It does not touch the database.
func (w *Window) Validate() error {
	from, err := time.Parse(clockLayout, w.From)
	if err != nil {
		return ErrInvalidClock
	}
	until, err := time.Parse(clockLayout, w.Until)
	if err != nil {
		return ErrInvalidClock
	}
	if !from.Before(until) {
		return ErrInvalidTimeRange
	}
	return nil
}

// StartAt materializes the window's opening instant on its date in loc.
func (w *Window) StartAt(loc *time.Location) time.Time {
	return clockOn(w.Date, w.From, loc)
}

// EndAt materializes the window's closing instant on its date in loc.
func (w *Window) EndAt(loc *time.Location) time.Time {
	return clockOn(w.Date, w.Until, loc)
}

func clockOn(date time.Time, clock string, loc *time.Location) time.Time {
	t, err := time.Parse(clockLayout, clock)
	if err != nil {
		// Validated on write; a malformed stored value collapses to midnight.
		t = time.Time{}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc)
}

// DateOnly normalizes a timestamp to its calendar day in loc.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// Filter defines parameters for listing windows.
type Filter struct {
	BarberID string
	DateFrom *time.Time
	DateTo   *time.Time
	Page     int
	PageSize int
}
