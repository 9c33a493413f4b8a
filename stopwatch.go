package syncbench

import (
	"fmt"
	"time"
)

// Clock is a time source for a Stopwatch. The default is time.Now, whose
// readings carry the runtime's monotonic clock, so intervals are immune to
// wall-clock adjustments.
type Clock func() time.Time

// Stopwatch measures the interval between a reset and a stop. It is
// reusable: Reset starts a fresh measurement that does not accumulate
// prior cycles. A Stopwatch has no internal locking; each instance belongs
// to a single goroutine unless the caller synchronizes access.
type Stopwatch struct {
	clock Clock
	unit  time.Duration
	start time.Time
	end   time.Time
}

// DefaultUnit is the display unit used by NewStopwatch.
const DefaultUnit = time.Millisecond

// NewStopwatch creates a stopwatch on the system monotonic clock, already
// running (start and end are both the current instant).
func NewStopwatch() *Stopwatch {
	return NewStopwatchWith(time.Now, DefaultUnit)
}

// NewStopwatchWith creates a stopwatch on an explicit clock and display
// unit. Tests use this to inject a fake clock.
func NewStopwatchWith(clock Clock, unit time.Duration) *Stopwatch {
	if clock == nil {
		clock = time.Now
	}
	if unit <= 0 {
		unit = DefaultUnit
	}
	s := &Stopwatch{clock: clock, unit: unit}
	return s.Reset()
}

// Reset starts a new measurement: both start and end become the current
// instant. Returns the stopwatch for chaining.
func (s *Stopwatch) Reset() *Stopwatch {
	now := s.clock()
	s.start = now
	s.end = now
	return s
}

// Stop marks the end of the current measurement. Returns the stopwatch for
// chaining. Elapsed is meaningful once Stop has been called after the most
// recent Reset.
func (s *Stopwatch) Stop() *Stopwatch {
	s.end = s.clock()
	return s
}

// Elapsed returns end minus start. Non-negative under a monotonic clock.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.end.Sub(s.start)
}

// Ticks returns the elapsed interval truncated into whole units, e.g.
// Ticks(time.Millisecond) for an elapsed 1232.9ms interval is 1232.
// A non-positive unit falls back to the stopwatch's display unit.
func (s *Stopwatch) Ticks(unit time.Duration) float64 {
	if unit <= 0 {
		unit = s.unit
	}
	return float64(s.Elapsed() / unit)
}

// Seconds returns the elapsed interval as floating-point seconds.
func (s *Stopwatch) Seconds() float64 {
	return s.Elapsed().Seconds()
}

// String renders the elapsed interval in the stopwatch's display unit.
func (s *Stopwatch) String() string {
	if suffix, ok := unitSuffix(s.unit); ok {
		return fmt.Sprintf("%.0f%s", s.Ticks(s.unit), suffix)
	}
	return s.Elapsed().Truncate(s.unit).String()
}

func unitSuffix(unit time.Duration) (string, bool) {
	switch unit {
	case time.Nanosecond:
		return "ns", true
	case time.Microsecond:
		return "µs", true
	case time.Millisecond:
		return "ms", true
	case time.Second:
		return "s", true
	case time.Minute:
		return "m", true
	case time.Hour:
		return "h", true
	}
	return "", false
}
