// Package cache provides a short-TTL read-through cache in front of the
// scoreboard source. It bounds upstream traffic when many clients poll the
// same contest week; correctness never depends on it.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gridstake/pickem/internal/adapters/scoreboard"
	"github.com/gridstake/pickem/internal/domain/model"
	"github.com/gridstake/pickem/pkg/logger"
	"github.com/gridstake/pickem/pkg/metrics"
)

// Default cache configuration constants.
const (
	defaultTTL = 10 * time.Second
)

// Store is the slice of the redis client the cache needs. *redis.Client
// satisfies it; tests substitute a fake.
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// SnapshotCache decorates a scoreboard source with a redis-backed snapshot
// cache. Redis being unreachable degrades to a plain fetch, never to a
// failed computation.
type SnapshotCache struct {
	source scoreboard.Source
	store  Store
	ttl    time.Duration
	logger logger.Logger
}

// Option applies a configuration option to the SnapshotCache.
type Option func(*SnapshotCache)

// WithTTL sets the snapshot expiry.
func WithTTL(ttl time.Duration) Option {
	return func(c *SnapshotCache) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithLogger sets a custom logger for the cache.
func WithLogger(l logger.Logger) Option {
	return func(c *SnapshotCache) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a snapshot cache over source backed by store.
func New(source scoreboard.Source, store Store, opts ...Option) *SnapshotCache {
	c := &SnapshotCache{
		source: source,
		store:  store,
		ttl:    defaultTTL,
		logger: logger.Get().Named("cache"),
	}

	// Apply all options
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch returns the cached snapshot when fresh, otherwise fetches from the
// wrapped source and stores the result best-effort.
func (c *SnapshotCache) Fetch(ctx context.Context, year, seasonType, week int) ([]model.RawGame, error) {
	key := snapshotKey(year, seasonType, week)

	data, err := c.store.Get(ctx, key).Bytes()
	if err == nil {
		var games []model.RawGame
		if jsonErr := json.Unmarshal(data, &games); jsonErr == nil {
			metrics.RecordCacheHit()
			return games, nil
		}
		// A corrupt entry falls through to a fresh fetch.
		c.logger.Warn(ctx, "discarding undecodable cached snapshot", logger.String("key", key))
	} else if err != redis.Nil {
		metrics.RecordCacheError()
		c.logger.Warn(ctx, "snapshot cache read failed", logger.String("key", key), logger.Error(err))
	}
	metrics.RecordCacheMiss()

	games, err := c.source.Fetch(ctx, year, seasonType, week)
	if err != nil {
		return nil, err
	}

	if data, jsonErr := json.Marshal(games); jsonErr == nil {
		if setErr := c.store.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			metrics.RecordCacheError()
			c.logger.Warn(ctx, "snapshot cache write failed", logger.String("key", key), logger.Error(setErr))
		}
	}
	return games, nil
}

func snapshotKey(year, seasonType, week int) string {
	return fmt.Sprintf("scoreboard:%d:%d:%d", year, seasonType, week)
}
