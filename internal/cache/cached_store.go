package cache

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kryva/kryva/internal/store"
)

// Documents is the store being cached.
type Documents interface {
	Get(ctx context.Context, key string) (store.Snapshot, error)
	Update(ctx context.Context, key string, fields map[string]any) error
}

// Snapshots is the cache backend. ProfileCache implements it.
type Snapshots interface {
	Get(ctx context.Context, id string) (store.Snapshot, error)
	Version(ctx context.Context, id string) (int64, error)
	SetIfVersion(ctx context.Context, id string, s store.Snapshot, version int64) error
	Delete(ctx context.Context, id string) error
}

// CachedStore reads through the cache and invalidates on update.
// A fill is only written if no invalidation happened since the miss, so a
// read racing an update cannot cache the older document.
// Cache failures are logged and never fail the call.
type CachedStore struct {
	Docs  Documents
	Cache Snapshots
	Log   *zap.Logger
}

func NewCachedStore(docs Documents, c Snapshots, log *zap.Logger) *CachedStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedStore{Docs: docs, Cache: c, Log: log}
}

func (s *CachedStore) Get(ctx context.Context, key string) (store.Snapshot, error) {
	if snap, err := s.Cache.Get(ctx, key); err == nil {
		return snap, nil
	}
	version, verr := s.Cache.Version(ctx, key)
	snap, err := s.Docs.Get(ctx, key)
	if err != nil {
		return store.Snapshot{}, err
	}
	if verr != nil {
		s.Log.Warn("profile cache version read failed", zap.String("user_id", key), zap.Error(verr))
		return snap, nil
	}
	switch err := s.Cache.SetIfVersion(ctx, key, snap, version); {
	case errors.Is(err, ErrStale):
		s.Log.Debug("profile changed during cache fill", zap.String("user_id", key))
	case err != nil:
		s.Log.Warn("profile cache set failed", zap.String("user_id", key), zap.Error(err))
	}
	return snap, nil
}

func (s *CachedStore) Update(ctx context.Context, key string, fields map[string]any) error {
	if err := s.Docs.Update(ctx, key, fields); err != nil {
		return err
	}
	s.Invalidate(ctx, key)
	return nil
}

// Invalidate drops the cached snapshot for key.
func (s *CachedStore) Invalidate(ctx context.Context, key string) {
	if err := s.Cache.Delete(ctx, key); err != nil {
		s.Log.Warn("profile cache delete failed", zap.String("user_id", key), zap.Error(err))
	}
}
