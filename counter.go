package syncbench

import (
	"sync"
)

// SharedCounter is an unsigned counter guarded by a reader/writer lock:
// any number of goroutines may read it concurrently, while increments and
// resets take the exclusive lock and block all other access.
//
// Fairness between competing readers and writers is whatever sync.RWMutex
// provides; no ordering is guaranteed beyond mutual exclusion.
type SharedCounter struct {
	mutex    sync.RWMutex
	value    uint64
	observer Observer
}

// NewSharedCounter creates a counter starting at zero. The observer is
// invoked after every operation while the corresponding lock is still held;
// it may be nil. Observers must not call back into the counter.
func NewSharedCounter(observer Observer) *SharedCounter {
	return &SharedCounter{observer: observer}
}

// Get returns the current value under the shared lock. It may run
// concurrently with other Get calls and blocks only while a writer holds
// the lock.
func (c *SharedCounter) Get() uint64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	v := c.value
	if c.observer != nil {
		c.observer(Event{Op: OpRead, Value: v})
	}
	return v
}

// Increment adds one to the counter under the exclusive lock and returns
// the new value.
func (c *SharedCounter) Increment() uint64 {
	return c.Add(1)
}

// Add adds delta to the counter under the exclusive lock and returns the
// new value.
func (c *SharedCounter) Add(delta uint64) uint64 {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.value += delta
	v := c.value
	if c.observer != nil {
		c.observer(Event{Op: OpIncrement, Value: v})
	}
	return v
}

// Reset sets the counter back to zero under the exclusive lock.
func (c *SharedCounter) Reset() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.value = 0
	if c.observer != nil {
		c.observer(Event{Op: OpReset, Value: 0})
	}
}
