package service

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memRepository struct {
	services map[string]*Service
	nextID   int
}

func newMemRepository() *memRepository {
	return &memRepository{services: make(map[string]*Service)}
}

func (r *memRepository) Create(ctx context.Context, s *Service) error {
	r.nextID++
	s.ID = "svc-" + strconv.Itoa(r.nextID)
	copied := *s
	r.services[s.ID] = &copied
	return nil
}

func (r *memRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	s, ok := r.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *s
	return &copied, nil
}

func (r *memRepository) List(ctx context.Context, filter Filter) ([]*Service, int, error) {
	var out []*Service
	for _, s := range r.services {
		if filter.Category != "" && s.Category != filter.Category {
			continue
		}
		copied := *s
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *memRepository) Update(ctx context.Context, s *Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return ErrNotFound
	}
	copied := *s
	r.services[s.ID] = &copied
	return nil
}

func (r *memRepository) Delete(ctx context.Context, id string) error {
	if _, ok := r.services[id]; !ok {
		return ErrNotFound
	}
	delete(r.services, id)
	return nil
}

func TestCreateService(t *testing.T) {
	mgr := NewManager(newMemRepository())
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		s, err := mgr.Create(ctx, CreateRequest{Name: "  Haircut ", PriceCents: 3500, DurationMin: 45})
		require.NoError(t, err)
		assert.Equal(t, "Haircut", s.Name)
		assert.NotEmpty(t, s.ID)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := mgr.Create(ctx, CreateRequest{Name: "   ", PriceCents: 100, DurationMin: 30})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("non positive duration", func(t *testing.T) {
		_, err := mgr.Create(ctx, CreateRequest{Name: "Trim", PriceCents: 100, DurationMin: 0})
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := mgr.Create(ctx, CreateRequest{Name: "Trim", PriceCents: -1, DurationMin: 30})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestResolveDuration(t *testing.T) {
	repo := newMemRepository()
	mgr := NewManager(repo)
	ctx := context.Background()

	s, err := mgr.Create(ctx, CreateRequest{Name: "Beard Trim", PriceCents: 1500, DurationMin: 20})
	require.NoError(t, err)

	t.Run("returns stored duration", func(t *testing.T) {
		got, err := mgr.ResolveDuration(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, 20, got)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := mgr.ResolveDuration(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("corrupt stored duration is rejected", func(t *testing.T) {
		repo.services[s.ID].DurationMin = 0
		_, err := mgr.ResolveDuration(ctx, s.ID)
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})
}

func TestUpdateService(t *testing.T) {
	mgr := NewManager(newMemRepository())
	ctx := context.Background()

	s, err := mgr.Create(ctx, CreateRequest{Name: "Haircut", PriceCents: 3500, DurationMin: 45})
	require.NoError(t, err)

	newPrice := int64(4000)
	updated, err := mgr.Update(ctx, s.ID, UpdateRequest{PriceCents: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, int64(4000), updated.PriceCents)
	assert.Equal(t, 45, updated.DurationMin)

	badDuration := -5
	_, err = mgr.Update(ctx, s.ID, UpdateRequest{DurationMin: &badDuration})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = mgr.Update(ctx, "nope", UpdateRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}
