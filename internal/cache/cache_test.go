package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rioguia/rioguia-api/internal/cache"
	"github.com/rioguia/rioguia-api/internal/weather"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*cache.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisStore(client, ttl), mr
}

func sampleReading() *weather.Reading {
	return &weather.Reading{
		Temperature: 31.2,
		FeelsLike:   33.0,
		Condition:   weather.ConditionClear,
		Humidity:    72,
		WindSpeed:   12.5,
		Description: "Céu limpo, dia perfeito de praia",
		ObservedAt:  time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC).UnixMilli(),
	}
}

func TestRedisStore_SetAndGet(t *testing.T) {
	s, _ := newRedisStore(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, sampleReading()))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *sampleReading(), *got, "the reading must round-trip bit-identically")
}

func TestRedisStore_Miss(t *testing.T) {
	s, _ := newRedisStore(t, time.Hour)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got, "miss should be nil, nil")
}

func TestRedisStore_SetNilIsNoop(t *testing.T) {
	s, _ := newRedisStore(t, time.Hour)
	require.NoError(t, s.Set(context.Background(), nil))

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStore_Expiry(t *testing.T) {
	s, mr := newRedisStore(t, 30*time.Minute)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, sampleReading()))

	mr.FastForward(31 * time.Minute)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should be gone after the TTL backstop")
}

func TestRedisStore_GetAfterServerGone(t *testing.T) {
	s, mr := newRedisStore(t, time.Hour)
	mr.Close()

	_, err := s.Get(context.Background())
	require.Error(t, err, "a dead backend is an error for the caller to degrade on")
}

func TestRedisStore_Ping(t *testing.T) {
	s, mr := newRedisStore(t, time.Hour)
	require.NoError(t, s.Ping(context.Background()))

	mr.Close()
	require.Error(t, s.Ping(context.Background()))
}

func TestMemoryStore_SetAndGet(t *testing.T) {
	s := cache.NewMemoryStore(time.Hour)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, sampleReading()))

	got, err := s.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, *sampleReading(), *got)
}

func TestMemoryStore_Miss(t *testing.T) {
	s := cache.NewMemoryStore(time.Hour)

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_Expiry(t *testing.T) {
	s := cache.NewMemoryStore(20 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, sampleReading()))
	time.Sleep(40 * time.Millisecond)

	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "entry should expire")
}

func TestMemoryStore_SetNilIsNoop(t *testing.T) {
	s := cache.NewMemoryStore(time.Hour)
	require.NoError(t, s.Set(context.Background(), nil))

	got, err := s.Get(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_PingAlwaysOK(t *testing.T) {
	s := cache.NewMemoryStore(time.Hour)
	require.NoError(t, s.Ping(context.Background()))
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := cache.Connect(context.Background(), "not-a-url")
	require.Error(t, err)
}

func TestConnect_UnreachableServer(t *testing.T) {
	_, err := cache.Connect(context.Background(), "redis://localhost:19999")
	require.Error(t, err)
}

func TestConnect_MiniredisRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := cache.Connect(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	s := cache.NewRedisStore(client, time.Hour)
	require.NoError(t, s.Set(context.Background(), sampleReading()))
}
