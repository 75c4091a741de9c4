package barber

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	barbers map[string]*Barber
	nextID  int
}

func newMemRepository() *memRepository {
	return &memRepository{barbers: make(map[string]*Barber)}
}

func (r *memRepository) Create(ctx context.Context, b *Barber) error {
	r.nextID++
	b.ID = "barber-" + strconv.Itoa(r.nextID)
	copied := *b
	r.barbers[b.ID] = &copied
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Barber, error) {
	b, ok := r.barbers[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Barber, int, error) {
	var out []*Barber
	for _, b := range r.barbers {
		if filter.Status != "" && string(b.Status) != filter.Status {
			continue
		}
		copied := *b
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *memRepository) Update(ctx context.Context, b *Barber) error {
	if _, ok := r.barbers[b.ID]; !ok {
		return ErrNotFound
	}
	copied := *b
	r.barbers[b.ID] = &copied
	return nil
}

func (r *memRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.barbers[id]; !ok {
		return ErrNotFound
	}
	delete(r.barbers, id)
	return nil
}

func TestCreateBarber(t *testing.T) {
	svc := NewService(newMemRepository())
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{Name: " Marco ", Specialization: "fades"})
	require.NoError(t, err)
	assert.Equal(t, "Marco", b.Name)
	assert.Equal(t, StatusActive, b.Status)
	assert.True(t, b.IsActive())

	_, err = svc.Create(ctx, CreateRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestSetBarberStatus(t *testing.T) {
	svc := NewService(newMemRepository())
	ctx := context.Background()

	b, err := svc.Create(ctx, CreateRequest{Name: "Marco"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, b.ID, StatusInactive)
	require.NoError(t, err)
	assert.False(t, updated.IsActive())

	updated, err = svc.SetStatus(ctx, b.ID, StatusActive)
	require.NoError(t, err)
	assert.True(t, updated.IsActive())

	_, err = svc.SetStatus(ctx, "nope", StatusInactive)
	assert.ErrorIs(t, err, ErrNotFound)
}
