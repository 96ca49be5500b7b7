package cache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kryva/kryva/internal/store"
)

type MockDocs struct {
	mock.Mock
}

func (m *MockDocs) Get(ctx context.Context, key string) (store.Snapshot, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(store.Snapshot), args.Error(1)
}

func (m *MockDocs) Update(ctx context.Context, key string, fields map[string]any) error {
	return m.Called(ctx, key, fields).Error(0)
}

type MockSnapshots struct {
	mock.Mock
}

func (m *MockSnapshots) Get(ctx context.Context, id string) (store.Snapshot, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(store.Snapshot), args.Error(1)
}

func (m *MockSnapshots) Version(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSnapshots) SetIfVersion(ctx context.Context, id string, s store.Snapshot, version int64) error {
	return m.Called(ctx, id, s, version).Error(0)
}

func (m *MockSnapshots) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var snap = store.Snapshot{
	Exists: true,
	Data:   map[string]any{"demographics": map[string]any{"name": "Ana"}},
}

func TestCachedStore_Get(t *testing.T) {
	tests := []struct {
		name  string
		setup func(d *MockDocs, c *MockSnapshots)
		want  store.Snapshot
		err   bool
	}{
		{
			name: "Cache hit",
			setup: func(d *MockDocs, c *MockSnapshots) {
				c.On("Get", mock.Anything, "u1").Return(snap, nil)
			},
			want: snap,
		},
		{
			name: "Cache miss fills cache",
			setup: func(d *MockDocs, c *MockSnapshots) {
				c.On("Get", mock.Anything, "u1").Return(store.Snapshot{}, redis.Nil)
				c.On("Version", mock.Anything, "u1").Return(int64(3), nil)
				d.On("Get", mock.Anything, "u1").Return(snap, nil)
				c.On("SetIfVersion", mock.Anything, "u1", snap, int64(3)).Return(nil)
			},
			want: snap,
		},
		{
			name: "Cache set failure ignored",
			setup: func(d *MockDocs, c *MockSnapshots) {
				c.On("Get", mock.Anything, "u1").Return(store.Snapshot{}, redis.Nil)
				c.On("Version", mock.Anything, "u1").Return(int64(0), nil)
				d.On("Get", mock.Anything, "u1").Return(snap, nil)
				c.On("SetIfVersion", mock.Anything, "u1", snap, int64(0)).Return(errors.New("redis down"))
			},
			want: snap,
		},
		{
			name: "Invalidated during fill",
			setup: func(d *MockDocs, c *MockSnapshots) {
				c.On("Get", mock.Anything, "u1").Return(store.Snapshot{}, redis.Nil)
				c.On("Version", mock.Anything, "u1").Return(int64(3), nil)
				d.On("Get", mock.Anything, "u1").Return(snap, nil)
				c.On("SetIfVersion", mock.Anything, "u1", snap, int64(3)).Return(ErrStale)
			},
			want: snap,
		},
		{
			name: "Version read failure skips fill",
			setup: func(d *MockDocs, c *MockSnapshots) {
				c.On("Get", mock.Anything, "u1").Return(store.Snapshot{}, redis.Nil)
				c.On("Version", mock.Anything, "u1").Return(int64(0), errors.New("redis down"))
				d.On("Get", mock.Anything, "u1").Return(snap, nil)
			},
			want: snap,
		},
		{
			name: "Store failure",
			setup: func(d *MockDocs, c *MockSnapshots) {
				c.On("Get", mock.Anything, "u1").Return(store.Snapshot{}, redis.Nil)
				c.On("Version", mock.Anything, "u1").Return(int64(0), nil)
				d.On("Get", mock.Anything, "u1").Return(store.Snapshot{}, errors.New("mongo down"))
			},
			err: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := new(MockDocs), new(MockSnapshots)
			tt.setup(d, c)

			got, err := NewCachedStore(d, c, nil).Get(context.Background(), "u1")

			if tt.err {
				require.Error(t, err)
				c.AssertNotCalled(t, "SetIfVersion", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			d.AssertExpectations(t)
			c.AssertExpectations(t)
		})
	}
}

func TestCachedStore_Update(t *testing.T) {
	fields := map[string]any{"demographics.name": "Ana"}

	t.Run("Invalidates after write", func(t *testing.T) {
		d, c := new(MockDocs), new(MockSnapshots)
		d.On("Update", mock.Anything, "u1", fields).Return(nil)
		c.On("Delete", mock.Anything, "u1").Return(errors.New("redis down"))

		require.NoError(t, NewCachedStore(d, c, nil).Update(context.Background(), "u1", fields))
		c.AssertExpectations(t)
	})

	t.Run("Write failure keeps cache", func(t *testing.T) {
		d, c := new(MockDocs), new(MockSnapshots)
		d.On("Update", mock.Anything, "u1", fields).Return(errors.New("denied"))

		require.Error(t, NewCachedStore(d, c, nil).Update(context.Background(), "u1", fields))
		c.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

type memSnapshots struct {
	mu    sync.Mutex
	snaps map[string]store.Snapshot
	gens  map[string]int64
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{snaps: map[string]store.Snapshot{}, gens: map[string]int64{}}
}

func (m *memSnapshots) Get(_ context.Context, id string) (store.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.snaps[id]
	if !ok {
		return store.Snapshot{}, redis.Nil
	}
	return s, nil
}

func (m *memSnapshots) Version(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gens[id], nil
}

func (m *memSnapshots) SetIfVersion(_ context.Context, id string, s store.Snapshot, version int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.gens[id] != version {
		return ErrStale
	}
	m.snaps[id] = s
	return nil
}

func (m *memSnapshots) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gens[id]++
	delete(m.snaps, id)
	return nil
}

func TestCachedStore_UpdateDuringFillIsNotCached(t *testing.T) {
	fields := map[string]any{"demographics.name": "Ana Souza"}
	fresh := store.Snapshot{
		Exists: true,
		Data:   map[string]any{"demographics": map[string]any{"name": "Ana Souza"}},
	}

	d, c := new(MockDocs), newMemSnapshots()
	cs := NewCachedStore(d, c, nil)

	d.On("Update", mock.Anything, "u1", fields).Return(nil)
	d.On("Get", mock.Anything, "u1").Return(snap, nil).Once().Run(func(mock.Arguments) {
		require.NoError(t, cs.Update(context.Background(), "u1", fields))
	})
	d.On("Get", mock.Anything, "u1").Return(fresh, nil).Once()

	got, err := cs.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	_, err = c.Get(context.Background(), "u1")
	assert.ErrorIs(t, err, redis.Nil)

	got, err = cs.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, fresh, got)

	cached, err := c.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, fresh, cached)
	d.AssertExpectations(t)
}
