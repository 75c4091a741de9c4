package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowValidate(t *testing.T) {
	cases := []struct {
		name    string
		from    string
		until   string
		wantErr error
	}{
		{"valid range", "09:00", "17:00", nil},
		{"one minute window", "09:00", "09:01", nil},
		{"inverted range", "17:00", "09:00", ErrInvalidTimeRange},
		{"zero length range", "09:00", "09:00", ErrInvalidTimeRange},
		{"garbage from", "morning", "17:00", ErrInvalidClock},
		{"garbage until", "09:00", "late", ErrInvalidClock},
		{"seconds not accepted", "09:00:00", "17:00", ErrInvalidClock},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := &Window{From: tc.from, Until: tc.until}
			err := w.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestWindowMaterialization(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	w := Window{
		Date:  time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		From:  "09:30",
		Until: "17:00",
	}

	start := w.StartAt(berlin)
	end := w.EndAt(berlin)

	assert.Equal(t, time.Date(2026, 9, 14, 9, 30, 0, 0, berlin), start)
	assert.Equal(t, time.Date(2026, 9, 14, 17, 0, 0, 0, berlin), end)
	assert.True(t, start.Before(end))
}

func TestDateOnly(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	// 23:30 UTC is already the next day in Berlin.
	late := time.Date(2026, 9, 14, 23, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, berlin), DateOnly(late, berlin))

	noon := time.Date(2026, 9, 14, 12, 0, 0, 0, berlin)
	assert.Equal(t, time.Date(2026, 9, 14, 0, 0, 0, 0, berlin), DateOnly(noon, berlin))
}
