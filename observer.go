package syncbench

import (
	"go.uber.org/zap"
)

// Op identifies a counter operation.
type Op int

const (
	OpRead Op = iota
	OpIncrement
	OpReset
)

// String implements fmt.Stringer
func (o Op) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpIncrement:
		return "increment"
	case OpReset:
		return "reset"
	}
	return "unknown"
}

// Event describes a single completed counter operation. Value is the value
// observed by a read or produced by a write.
type Event struct {
	Op    Op
	Value uint64
}

// Observer receives an Event after each counter operation. It runs on the
// calling goroutine while the operation's lock is still held, so events
// from concurrent readers may interleave in any order.
type Observer func(Event)

// LogObserver returns an observer that emits one debug line per operation.
// A nil logger yields a nil observer.
func LogObserver(logger *zap.Logger) Observer {
	if logger == nil {
		return nil
	}
	return func(e Event) {
		logger.Debug("counter operation",
			zap.Stringer("op", e.Op),
			zap.Uint64("value", e.Value))
	}
}

// MultiObserver fans one event out to several observers in order. Nil
// entries are skipped.
func MultiObserver(observers ...Observer) Observer {
	return func(e Event) {
		for _, obs := range observers {
			if obs != nil {
				obs(e)
			}
		}
	}
}
