package limiter_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rioguia/rioguia-api/internal/limiter"
)

func TestDebouncer_BurstExecutesOnceWithLastCall(t *testing.T) {
	d := limiter.NewDebouncer(60 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	var last atomic.Int32

	for i := 1; i <= 3; i++ {
		i := i
		d.Call(func() {
			fired.Add(1)
			last.Store(int32(i))
		})
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), last.Load(), "only the last call of the burst should run")

	// Nothing else should fire after the window settles.
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestDebouncer_SeparateBurstsEachFire(t *testing.T) {
	d := limiter.NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var fired atomic.Int32
	d.Call(func() { fired.Add(1) })
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, 2*time.Millisecond)

	d.Call(func() { fired.Add(1) })
	require.Eventually(t, func() bool { return fired.Load() == 2 }, time.Second, 2*time.Millisecond)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := limiter.NewDebouncer(30 * time.Millisecond)

	var fired atomic.Int32
	d.Call(func() { fired.Add(1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Zero(t, fired.Load(), "stopped debouncer must not fire")

	// Stop is idempotent.
	d.Stop()
}

func TestDebouncer_ZeroDelayStillFires(t *testing.T) {
	d := limiter.NewDebouncer(0)
	defer d.Stop()

	var fired atomic.Int32
	d.Call(func() { fired.Add(1) })
	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
}

func TestThrottler_LeadingEdge(t *testing.T) {
	th := limiter.NewThrottler(100 * time.Millisecond)

	assert.True(t, th.Allow(), "first call in an idle period always passes")
	assert.False(t, th.Allow(), "second call inside the window is dropped")

	time.Sleep(120 * time.Millisecond)
	assert.True(t, th.Allow(), "call after the window passes again")
	assert.False(t, th.Allow())
}

func TestThrottler_Do(t *testing.T) {
	th := limiter.NewThrottler(100 * time.Millisecond)

	ran := 0
	assert.True(t, th.Do(func() { ran++ }))
	assert.False(t, th.Do(func() { ran++ }), "dropped call must not run fn")
	assert.Equal(t, 1, ran)
}

func TestThrottler_ZeroIntervalIsUnrestricted(t *testing.T) {
	th := limiter.NewThrottler(0)
	for i := 0; i < 10; i++ {
		assert.True(t, th.Allow())
	}
}
