package weather

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/rioguia/rioguia-api/internal/limiter"
)

// DefaultTTL is how long a cached reading stays fresh.
const DefaultTTL = 30 * time.Minute

// refreshDebounce coalesces bursts of forced-refresh requests into a single
// simulated read.
const refreshDebounce = 250 * time.Millisecond

// warnInterval caps how often store failures are logged; a dead store would
// otherwise warn on every request.
const warnInterval = time.Minute

// Store is the cache the service reads through. A miss is (nil, nil), not an
// error. Implementations live in internal/cache.
type Store interface {
	Get(ctx context.Context) (*Reading, error)
	Set(ctx context.Context, r *Reading) error
}

// Service serves the current simulated reading with cached-or-refresh
// semantics: a stored reading younger than the TTL is returned unchanged, and
// anything else triggers one simulated read shared by all concurrent callers.
// Store failures are never surfaced; the service degrades to simulating as if
// the cache were empty.
type Service struct {
	store Store
	sim   *Simulator
	ttl   time.Duration
	log   *slog.Logger

	now     func() time.Time
	group   singleflight.Group
	warn    *limiter.Throttler
	refresh *limiter.Debouncer
}

// NewService constructs a Service. A non-positive ttl falls back to
// DefaultTTL.
func NewService(store Store, sim *Simulator, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		store:   store,
		sim:     sim,
		ttl:     ttl,
		log:     log,
		now:     time.Now,
		warn:    limiter.NewThrottler(warnInterval),
		refresh: limiter.NewDebouncer(refreshDebounce),
	}
}

// Current returns the cached reading if it is still fresh, otherwise a newly
// simulated one. Simulation cannot fail, so there is no error to return.
func (s *Service) Current(ctx context.Context) Reading {
	if cached := s.cached(ctx); cached != nil {
		return *cached
	}

	v, _, _ := s.group.Do("current", func() (any, error) {
		// Re-check under the flight: a concurrent caller may have
		// refreshed while this one waited.
		if cached := s.cached(ctx); cached != nil {
			return *cached, nil
		}
		return s.simulateAndStore(ctx), nil
	})
	return v.(Reading)
}

// RequestRefresh schedules a forced refresh regardless of freshness. Bursts
// collapse into one simulated read, delivered asynchronously; callers keep
// seeing the previous reading until the new one lands in the store.
func (s *Service) RequestRefresh() {
	s.refresh.Call(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		r := s.simulateAndStore(ctx)
		s.log.Info("weather refreshed on request", "condition", r.Condition)
	})
}

// Close cancels any pending forced refresh.
func (s *Service) Close() {
	s.refresh.Stop()
}

// cached returns the stored reading if present and within the TTL. Store
// errors degrade to a miss.
func (s *Service) cached(ctx context.Context) *Reading {
	r, err := s.store.Get(ctx)
	if err != nil {
		s.warnStore("weather store get failed", err)
		return nil
	}
	if r == nil {
		return nil
	}
	if s.now().UnixMilli()-r.ObservedAt >= s.ttl.Milliseconds() {
		return nil
	}
	return r
}

func (s *Service) simulateAndStore(ctx context.Context) Reading {
	r := s.sim.Simulate(s.now())
	if err := s.store.Set(ctx, &r); err != nil {
		s.warnStore("weather store set failed", err)
	}
	return r
}

func (s *Service) warnStore(msg string, err error) {
	s.warn.Do(func() {
		s.log.Warn(msg, "err", err)
	})
}
