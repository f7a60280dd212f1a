// Package cache provides the weather reading stores: a Redis-backed one for
// deployments that share a reading across instances, and an in-process one
// for single-instance or local runs. Both satisfy weather.Store, with a miss
// reported as (nil, nil) rather than an error.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/rioguia/rioguia-api/internal/weather"
)

// readingKey is the single key the current reading lives under. The guide
// covers one city, so there is nothing to parameterize.
const readingKey = "weather:rio:current"

// RedisStore keeps the current reading in Redis with an expiry matching the
// service TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore constructs a RedisStore. The ttl doubles as the Redis key
// expiry; the weather service still checks reading age itself, so the expiry
// is a backstop, not the source of truth.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

// Get retrieves the stored reading. Returns nil, nil on a miss.
func (s *RedisStore) Get(ctx context.Context) (*weather.Reading, error) {
	val, err := s.client.Get(ctx, readingKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("weather cache get: %w", err)
	}

	var r weather.Reading
	if err := json.Unmarshal([]byte(val), &r); err != nil {
		return nil, fmt.Errorf("unmarshaling cached reading: %w", err)
	}
	return &r, nil
}

// Set stores the reading with the configured expiry. A nil reading is a
// no-op.
func (s *RedisStore) Set(ctx context.Context, r *weather.Reading) error {
	if r == nil {
		return nil
	}

	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshaling reading: %w", err)
	}

	if err := s.client.Set(ctx, readingKey, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("weather cache set: %w", err)
	}
	return nil
}

// Ping verifies Redis connectivity, for the health endpoint.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// MemoryStore keeps the current reading in process memory. Used when no
// REDIS_URL is configured.
type MemoryStore struct {
	c *gocache.Cache
}

// NewMemoryStore constructs a MemoryStore with the given expiry.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{c: gocache.New(ttl, 2*ttl)}
}

// Get retrieves the stored reading. Returns nil, nil on a miss; it cannot
// fail, the error return satisfies weather.Store.
func (s *MemoryStore) Get(_ context.Context) (*weather.Reading, error) {
	v, ok := s.c.Get(readingKey)
	if !ok {
		return nil, nil
	}
	r := v.(weather.Reading)
	return &r, nil
}

// Set stores the reading. A nil reading is a no-op.
func (s *MemoryStore) Set(_ context.Context, r *weather.Reading) error {
	if r == nil {
		return nil
	}
	s.c.Set(readingKey, *r, gocache.DefaultExpiration)
	return nil
}

// Ping always succeeds: process memory is reachable by definition.
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}
