package booking

import (
	"time"

	"github.com/sharpfade/barbershop-backend/internal/availability"
)

// snapshot holds everything admission needs to decide, captured before the
// decision is made. Keeping the checks pure over this struct makes the rules
// testable without a database.
type snapshot struct {
	Now          time.Time
	BarberActive bool
	Windows      []availability.Window
	Neighbors    []*Booking
	Location     *time.Location
}

// isContained reports whether [start, end) lies wholly inside a single open
// window and intersects no closed window. A window pair like open 09:00-17:00
// plus closed 12:00-13:00 therefore rejects any booking crossing lunch.
func isContained(start, end time.Time, windows []availability.Window, loc *time.Location) bool {
	inside := false
	for _, w := range windows {
		ws := w.StartAt(loc)
		we := w.EndAt(loc)
		if w.IsOpen {
			if !ws.After(start) && !we.Before(end) {
				inside = true
			}
			continue
		}
		// Closed windows veto on any intersection, boundary touches excluded.
		if ws.Before(end) && we.After(start) {
			return false
		}
	}
	return inside
}

// findConflict returns the id of the first active booking whose interval
// overlaps [start, end). Intervals are half-open, so a booking ending exactly
// at start (or starting exactly at end) does not conflict.
func findConflict(start, end time.Time, neighbors []*Booking) (string, bool) {
	for _, n := range neighbors {
		if !n.IsActive() {
			continue
		}
		if n.StartTime.Before(end) && n.EndTime().After(start) {
			return n.ID, true
		}
	}
	return "", false
}

// evaluate runs the admission checks in fixed order: past, barber status,
// availability containment, overlap. It returns the derived end time on
// success; on failure the first violated rule wins.
func evaluate(start time.Time, durationMin int, snap snapshot) (time.Time, error) {
	if durationMin <= 0 {
		return time.Time{}, ErrInvalidDuration
	}
	if start.Before(snap.Now) {
		return time.Time{}, ErrPastBooking
	}
	if !snap.BarberActive {
		return time.Time{}, ErrBarberInactive
	}

	end := start.Add(time.Duration(durationMin) * time.Minute)
	if !isContained(start, end, snap.Windows, snap.Location) {
		return time.Time{}, ErrOutsideAvailability
	}
	if id, ok := findConflict(start, end, snap.Neighbors); ok {
		return time.Time{}, &ConflictError{ConflictingID: id}
	}
	return end, nil
}
