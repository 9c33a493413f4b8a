package syncbench

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced Clock for deterministic tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestStopwatchStartsWithZeroElapsed(t *testing.T) {
	watch := NewStopwatch()
	assert.Equal(t, time.Duration(0), watch.Elapsed())
}

func TestStopwatchImmediateStop(t *testing.T) {
	watch := NewStopwatch()
	elapsed := watch.Reset().Stop().Elapsed()

	assert.GreaterOrEqual(t, elapsed, time.Duration(0))
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func TestStopwatchMeasuresSleep(t *testing.T) {
	const sleep = 50 * time.Millisecond

	watch := NewStopwatch()
	watch.Reset()
	time.Sleep(sleep)
	watch.Stop()

	elapsed := watch.Elapsed()
	require.GreaterOrEqual(t, elapsed, sleep)
	assert.Less(t, elapsed, sleep+time.Second, "scheduling jitter out of bounds")
}

func TestStopwatchDeterministicInterval(t *testing.T) {
	clock := newFakeClock()
	watch := NewStopwatchWith(clock.Now, time.Millisecond)

	watch.Reset()
	clock.Advance(1232*time.Millisecond + 900*time.Microsecond)
	watch.Stop()

	assert.Equal(t, 1232*time.Millisecond+900*time.Microsecond, watch.Elapsed())
	assert.Equal(t, float64(1232), watch.Ticks(time.Millisecond))
	assert.InDelta(t, 1.2329, watch.Seconds(), 1e-9)
}

func TestStopwatchCyclesAreIndependent(t *testing.T) {
	clock := newFakeClock()
	watch := NewStopwatchWith(clock.Now, time.Millisecond)

	watch.Reset()
	clock.Advance(10 * time.Millisecond)
	watch.Stop()
	require.Equal(t, 10*time.Millisecond, watch.Elapsed())

	watch.Reset()
	clock.Advance(5 * time.Millisecond)
	watch.Stop()
	assert.Equal(t, 5*time.Millisecond, watch.Elapsed())
}

func TestStopwatchResetClearsEnd(t *testing.T) {
	clock := newFakeClock()
	watch := NewStopwatchWith(clock.Now, time.Millisecond)

	clock.Advance(7 * time.Millisecond)
	watch.Stop()
	require.Equal(t, 7*time.Millisecond, watch.Elapsed())

	clock.Advance(3 * time.Millisecond)
	watch.Reset()
	assert.Equal(t, time.Duration(0), watch.Elapsed())
}

func TestStopwatchTicksTruncates(t *testing.T) {
	clock := newFakeClock()
	watch := NewStopwatchWith(clock.Now, time.Millisecond)

	watch.Reset()
	clock.Advance(1500 * time.Microsecond)
	watch.Stop()

	assert.Equal(t, float64(1), watch.Ticks(time.Millisecond))
	assert.Equal(t, float64(1500), watch.Ticks(time.Microsecond))
	// Non-positive unit falls back to the display unit.
	assert.Equal(t, float64(1), watch.Ticks(0))
}

func TestStopwatchString(t *testing.T) {
	clock := newFakeClock()

	watch := NewStopwatchWith(clock.Now, time.Millisecond)
	watch.Reset()
	clock.Advance(1232 * time.Millisecond)
	watch.Stop()
	assert.Equal(t, "1232ms", watch.String())

	seconds := NewStopwatchWith(clock.Now, time.Second)
	seconds.Reset()
	clock.Advance(2500 * time.Millisecond)
	seconds.Stop()
	assert.Equal(t, "2s", seconds.String())
}

func TestStopwatchDefaults(t *testing.T) {
	watch := NewStopwatchWith(nil, 0)
	watch.Reset().Stop()
	assert.GreaterOrEqual(t, watch.Elapsed(), time.Duration(0))
	assert.Less(t, watch.Elapsed(), 100*time.Millisecond)
}

func TestStopwatchChaining(t *testing.T) {
	watch := NewStopwatch()
	assert.Same(t, watch, watch.Reset())
	assert.Same(t, watch, watch.Stop())
}
