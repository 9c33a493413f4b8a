package syncbench

import (
	"sync"
	"sync/atomic"
	"time"
)

// OpStats aggregates counter events into per-operation totals. Its Observe
// method satisfies Observer, so it can be attached to a SharedCounter,
// alone or through MultiObserver. Safe for concurrent use.
type OpStats struct {
	mutex  sync.RWMutex
	counts map[Op]*atomic.Uint64
	last   atomic.Uint64
}

// NewOpStats creates an empty stats aggregator.
func NewOpStats() *OpStats {
	return &OpStats{counts: make(map[Op]*atomic.Uint64)}
}

// Observe records one event.
func (s *OpStats) Observe(e Event) {
	s.mutex.RLock()
	count, exists := s.counts[e.Op]
	s.mutex.RUnlock()

	if !exists {
		s.mutex.Lock()
		if count, exists = s.counts[e.Op]; !exists {
			count = &atomic.Uint64{}
			s.counts[e.Op] = count
		}
		s.mutex.Unlock()
	}

	count.Add(1)
	s.last.Store(e.Value)
}

// Count returns how many events of the given operation were observed.
func (s *OpStats) Count(op Op) uint64 {
	s.mutex.RLock()
	count, exists := s.counts[op]
	s.mutex.RUnlock()

	if !exists {
		return 0
	}
	return count.Load()
}

// LastValue returns the value carried by the most recently observed event.
func (s *OpStats) LastValue() uint64 {
	return s.last.Load()
}

// StatsSnapshot is a point-in-time view of an OpStats.
type StatsSnapshot struct {
	Reads      uint64
	Increments uint64
	Resets     uint64
	LastValue  uint64
}

// Snapshot returns the current totals.
func (s *OpStats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Reads:      s.Count(OpRead),
		Increments: s.Count(OpIncrement),
		Resets:     s.Count(OpReset),
		LastValue:  s.LastValue(),
	}
}

// LapRecorder aggregates repeated stopwatch measurements ("laps") into
// count, total, min, max and mean. Safe for concurrent use, though the
// canonical lap loop runs on one goroutine.
type LapRecorder struct {
	mutex sync.RWMutex
	seen  bool
	total time.Duration
	min   time.Duration
	max   time.Duration
	count atomic.Int64
}

// NewLapRecorder creates an empty recorder.
func NewLapRecorder() *LapRecorder {
	return &LapRecorder{}
}

// Record adds one lap.
func (r *LapRecorder) Record(d time.Duration) {
	r.mutex.Lock()
	if !r.seen {
		r.min = d
		r.seen = true
	} else if d < r.min {
		r.min = d
	}
	if d > r.max {
		r.max = d
	}
	r.total += d
	r.mutex.Unlock()

	r.count.Add(1)
}

// LapSummary describes the laps recorded so far.
type LapSummary struct {
	Count int64
	Total time.Duration
	Min   time.Duration
	Max   time.Duration
	Mean  time.Duration
}

// Summary returns the current aggregate. Mean is zero when no laps were
// recorded.
func (r *LapRecorder) Summary() LapSummary {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	n := r.count.Load()
	summary := LapSummary{
		Count: n,
		Total: r.total,
		Min:   r.min,
		Max:   r.max,
	}
	if n > 0 {
		summary.Mean = r.total / time.Duration(n)
	}
	return summary
}
