// Package cache keeps profile document snapshots in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kryva/kryva/internal/store"
)

const TTL = time.Hour

// ErrStale is returned by SetIfVersion when the profile was invalidated
// after the version was read.
var ErrStale = errors.New("profile changed while it was being cached")

type ProfileCache struct{ R *redis.Client }

func key(id string) string { return "profile:" + id }

// Bumped on every invalidation so a fill that raced a write can be refused.
func genKey(id string) string { return "profile:" + id + ":gen" }

func (c *ProfileCache) Get(ctx context.Context, id string) (store.Snapshot, error) {
	b, err := c.R.Get(ctx, key(id)).Bytes()
	if err != nil {
		return store.Snapshot{}, err
	}
	var s store.Snapshot
	return s, json.Unmarshal(b, &s)
}

// Version returns the invalidation counter for id, 0 when none was recorded.
func (c *ProfileCache) Version(ctx context.Context, id string) (int64, error) {
	v, err := c.R.Get(ctx, genKey(id)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// SetIfVersion stores s only while the invalidation counter still equals
// version.
func (c *ProfileCache) SetIfVersion(ctx context.Context, id string, s store.Snapshot, version int64) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	err = c.R.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey(id)).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != version {
			return ErrStale
		}
		_, err = tx.TxPipelined(ctx, func(p redis.Pipeliner) error {
			p.Set(ctx, key(id), b, TTL)
			return nil
		})
		return err
	}, genKey(id))

	if errors.Is(err, redis.TxFailedErr) {
		return ErrStale
	}
	return err
}

// Delete drops the snapshot and bumps the invalidation counter.
func (c *ProfileCache) Delete(ctx context.Context, id string) error {
	_, err := c.R.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, genKey(id))
		p.Expire(ctx, genKey(id), TTL)
		p.Del(ctx, key(id))
		return nil
	})
	return err
}
