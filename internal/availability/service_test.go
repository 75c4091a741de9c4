package availability

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpfade/barbershop-backend/internal/barber"
)

type memRepository struct {
	windows map[string]*Window
	nextID  int
}

func newMemRepository() *memRepository {
	return &memRepository{windows: make(map[string]*Window)}
}

func (r *memRepository) Create(ctx context.Context, w *Window) error {
	r.nextID++
	w.ID = "win-" + strconv.Itoa(r.nextID)
	copied := *w
	r.windows[w.ID] = &copied
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Window, error) {
	w, ok := r.windows[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *w
	return &copied, nil
}

func (r *memRepository) WindowsFor(ctx context.Context, barberID string, date time.Time) ([]Window, error) {
	var out []Window
	for _, w := range r.windows {
		if w.BarberID == barberID && w.Date.Equal(date) {
			out = append(out, *w)
		}
	}
	return out, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Window, int, error) {
	var out []*Window
	for _, w := range r.windows {
		if filter.BarberID != "" && w.BarberID != filter.BarberID {
			continue
		}
		copied := *w
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *memRepository) Update(ctx context.Context, w *Window) error {
	if _, ok := r.windows[w.ID]; !ok {
		return ErrNotFound
	}
	copied := *w
	r.windows[w.ID] = &copied
	return nil
}

func (r *memRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.windows[id]; !ok {
		return ErrNotFound
	}
	delete(r.windows, id)
	return nil
}

type stubBarbers struct {
	barber.Service
	known map[string]bool
}

func (s *stubBarbers) GetByID(ctx context.Context, id string) (*barber.Barber, error) {
	if !s.known[id] {
		return nil, barber.ErrNotFound
	}
	return &barber.Barber{ID: id, Status: barber.StatusActive}, nil
}

func newService() (Service, *memRepository) {
	repo := newMemRepository()
	svc := NewService(repo, &stubBarbers{known: map[string]bool{"barber-1": true}})
	return svc, repo
}

var day = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

func TestCreateWindow(t *testing.T) {
	ctx := context.Background()

	t.Run("valid open window", func(t *testing.T) {
		svc, _ := newService()

		w, err := svc.Create(ctx, CreateRequest{
			BarberID: "barber-1",
			Date:     day,
			From:     "09:00",
			Until:    "17:00",
			IsOpen:   true,
		})
		require.NoError(t, err)
		assert.NotEmpty(t, w.ID)
		assert.True(t, w.IsOpen)
	})

	t.Run("closed window carries a reason", func(t *testing.T) {
		svc, _ := newService()

		w, err := svc.Create(ctx, CreateRequest{
			BarberID: "barber-1",
			Date:     day,
			From:     "12:00",
			Until:    "13:00",
			IsOpen:   false,
			Reason:   "lunch",
		})
		require.NoError(t, err)
		assert.Equal(t, "lunch", w.Reason)
	})

	t.Run("unknown barber", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Create(ctx, CreateRequest{
			BarberID: "nope",
			Date:     day,
			From:     "09:00",
			Until:    "17:00",
			IsOpen:   true,
		})
		assert.ErrorIs(t, err, barber.ErrNotFound)
	})

	t.Run("inverted range", func(t *testing.T) {
		svc, _ := newService()

		_, err := svc.Create(ctx, CreateRequest{
			BarberID: "barber-1",
			Date:     day,
			From:     "17:00",
			Until:    "09:00",
			IsOpen:   true,
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestUpdateWindowRevalidates(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	w, err := svc.Create(ctx, CreateRequest{
		BarberID: "barber-1",
		Date:     day,
		From:     "09:00",
		Until:    "17:00",
		IsOpen:   true,
	})
	require.NoError(t, err)

	bad := "08:00"
	_, err = svc.Update(ctx, w.ID, UpdateRequest{Until: &bad})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	good := "18:00"
	updated, err := svc.Update(ctx, w.ID, UpdateRequest{Until: &good})
	require.NoError(t, err)
	assert.Equal(t, "18:00", updated.Until)
}

func TestWindowsFor(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{BarberID: "barber-1", Date: day, From: "09:00", Until: "12:00", IsOpen: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{BarberID: "barber-1", Date: day, From: "14:00", Until: "18:00", IsOpen: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateRequest{BarberID: "barber-1", Date: day.AddDate(0, 0, 1), From: "09:00", Until: "12:00", IsOpen: true})
	require.NoError(t, err)

	windows, err := svc.WindowsFor(ctx, "barber-1", day)
	require.NoError(t, err)
	assert.Len(t, windows, 2)
}
