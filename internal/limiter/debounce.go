// Package limiter provides the two rate limiters the guide uses to coalesce
// bursts of work: a trailing-edge debouncer and a leading-edge throttler.
package limiter

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls: each Call cancels the previously
// scheduled function and schedules the new one delay later, so only the last
// call in any burst executes. Execution happens on a timer goroutine.
//
// The debouncer owns at most one pending timer at a time; repeated calls
// never leak timers.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer returns a Debouncer with the given delay. A zero delay still
// defers execution to a timer goroutine (fires almost immediately).
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Call schedules fn to run after the configured delay, replacing any
// previously scheduled function. The last call in a burst wins.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending execution. Safe to call multiple times.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
