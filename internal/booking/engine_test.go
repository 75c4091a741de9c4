package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpfade/barbershop-backend/internal/availability"
)

var testDay = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func window(from, until string, open bool) availability.Window {
	return availability.Window{
		BarberID: "barber-1",
		Date:     testDay,
		From:     from,
		Until:    until,
		IsOpen:   open,
	}
}

func at(clock string) time.Time {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		panic(err)
	}
	return time.Date(testDay.Year(), testDay.Month(), testDay.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

func neighbor(id, start string, durationMin int, status Status) *Booking {
	return &Booking{
		ID:          id,
		BarberID:    "barber-1",
		StartTime:   at(start),
		DurationMin: durationMin,
		Status:      status,
	}
}

func TestIsContained(t *testing.T) {
	workday := []availability.Window{window("09:00", "17:00", true)}
	withLunch := []availability.Window{
		window("09:00", "17:00", true),
		window("12:00", "13:00", false),
	}

	cases := []struct {
		name    string
		windows []availability.Window
		start   string
		end     string
		want    bool
	}{
		{"inside open window", workday, "10:00", "10:45", true},
		{"fills entire window", workday, "09:00", "17:00", true},
		{"starts before opening", workday, "08:30", "09:15", false},
		{"ends after closing", workday, "16:30", "17:15", false},
		{"no windows at all", nil, "10:00", "10:45", false},
		{"only closed windows", []availability.Window{window("09:00", "17:00", false)}, "10:00", "10:45", false},
		{"crosses closed lunch window", withLunch, "11:30", "12:30", false},
		{"contained in closed window", withLunch, "12:15", "12:45", false},
		{"ends exactly at closed start", withLunch, "11:00", "12:00", true},
		{"starts exactly at closed end", withLunch, "13:00", "14:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := isContained(at(tc.start), at(tc.end), tc.windows, time.UTC)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsContainedSplitDay(t *testing.T) {
	// Two disjoint open windows: a booking must fit inside one of them.
	split := []availability.Window{
		window("09:00", "12:00", true),
		window("14:00", "18:00", true),
	}

	assert.True(t, isContained(at("10:00"), at("11:30"), split, time.UTC))
	assert.True(t, isContained(at("14:00"), at("15:00"), split, time.UTC))
	// Spans the gap, so no single window contains it.
	assert.False(t, isContained(at("11:00"), at("14:30"), split, time.UTC))
	assert.False(t, isContained(at("12:30"), at("13:30"), split, time.UTC))
}

func TestFindConflict(t *testing.T) {
	existing := []*Booking{
		neighbor("b1", "10:00", 60, StatusConfirmed),
		neighbor("b2", "13:00", 30, StatusConfirmed),
		neighbor("b3", "15:00", 45, StatusCancelled),
	}

	t.Run("overlap is detected", func(t *testing.T) {
		id, found := findConflict(at("10:30"), at("11:30"), existing)
		require.True(t, found)
		assert.Equal(t, "b1", id)
	})

	t.Run("containment counts as overlap", func(t *testing.T) {
		id, found := findConflict(at("10:15"), at("10:45"), existing)
		require.True(t, found)
		assert.Equal(t, "b1", id)
	})

	t.Run("back to back is allowed", func(t *testing.T) {
		_, found := findConflict(at("11:00"), at("13:00"), existing)
		assert.False(t, found)
	})

	t.Run("ending at an existing start is allowed", func(t *testing.T) {
		_, found := findConflict(at("12:00"), at("13:00"), existing)
		assert.False(t, found)
	})

	t.Run("cancelled bookings do not block", func(t *testing.T) {
		_, found := findConflict(at("15:00"), at("15:45"), existing)
		assert.False(t, found)
	})
}

func TestEvaluate(t *testing.T) {
	base := snapshot{
		Now:          at("08:00"),
		BarberActive: true,
		Windows:      []availability.Window{window("09:00", "17:00", true)},
		Neighbors:    []*Booking{neighbor("b1", "10:00", 60, StatusConfirmed)},
		Location:     time.UTC,
	}

	t.Run("admits a free slot and derives the end", func(t *testing.T) {
		end, err := evaluate(at("11:00"), 45, base)
		require.NoError(t, err)
		assert.Equal(t, at("11:45"), end)
	})

	t.Run("rejects past start", func(t *testing.T) {
		snap := base
		snap.Now = at("12:00")
		_, err := evaluate(at("11:00"), 45, snap)
		assert.ErrorIs(t, err, ErrPastBooking)
	})

	t.Run("rejects inactive barber", func(t *testing.T) {
		snap := base
		snap.BarberActive = false
		_, err := evaluate(at("11:00"), 45, snap)
		assert.ErrorIs(t, err, ErrBarberInactive)
	})

	t.Run("rejects slot outside availability", func(t *testing.T) {
		_, err := evaluate(at("18:00"), 30, base)
		assert.ErrorIs(t, err, ErrOutsideAvailability)
	})

	t.Run("rejects overlap and names the blocker", func(t *testing.T) {
		_, err := evaluate(at("10:30"), 30, base)
		require.ErrorIs(t, err, ErrSlotConflict)

		var conflict *ConflictError
		require.True(t, errors.As(err, &conflict))
		assert.Equal(t, "b1", conflict.ConflictingID)
	})

	t.Run("rejects non positive duration", func(t *testing.T) {
		_, err := evaluate(at("11:00"), 0, base)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("past check wins over inactive barber", func(t *testing.T) {
		snap := base
		snap.Now = at("12:00")
		snap.BarberActive = false
		_, err := evaluate(at("11:00"), 45, snap)
		assert.ErrorIs(t, err, ErrPastBooking)
	})

	t.Run("availability check wins over overlap", func(t *testing.T) {
		// Slot both overlaps b1 and leaks past closing; containment is
		// checked first.
		snap := base
		snap.Neighbors = []*Booking{neighbor("b1", "16:30", 60, StatusConfirmed)}
		_, err := evaluate(at("16:45"), 60, snap)
		assert.ErrorIs(t, err, ErrOutsideAvailability)
	})

	t.Run("booking crossing midnight is rejected", func(t *testing.T) {
		// No window can contain an interval that runs past the day's end.
		_, err := evaluate(at("16:50"), 600, base)
		assert.ErrorIs(t, err, ErrOutsideAvailability)
	})
}
