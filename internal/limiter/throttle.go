package limiter

import (
	"time"

	"golang.org/x/time/rate"
)

// Throttler admits at most one execution per interval, leading edge: the
// first call in an idle period always passes, calls inside the active window
// are dropped (never queued), and the window restarts on each admitted call.
type Throttler struct {
	lim *rate.Limiter
}

// NewThrottler returns a Throttler for the given interval. A zero or
// negative interval disables throttling entirely.
func NewThrottler(interval time.Duration) *Throttler {
	if interval <= 0 {
		return &Throttler{lim: rate.NewLimiter(rate.Inf, 1)}
	}
	return &Throttler{lim: rate.NewLimiter(rate.Every(interval), 1)}
}

// Allow reports whether a call may proceed now, consuming the window if so.
func (t *Throttler) Allow() bool {
	return t.lim.Allow()
}

// Do runs fn if the window permits and reports whether it ran.
func (t *Throttler) Do(fn func()) bool {
	if !t.lim.Allow() {
		return false
	}
	fn()
	return true
}
