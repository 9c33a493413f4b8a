// Package syncbench provides small concurrency demonstration primitives:
// a reader/writer-locked shared counter and a reusable monotonic stopwatch,
// plus collector-style helpers for aggregating what a contention run did.
//
// Design goals:
//   - Many concurrent readers or exactly one writer on the shared counter
//   - Interval timing on the monotonic clock, immune to wall-clock changes
//   - Diagnostics through an optional observer hook instead of hardwired
//     console output, so the core stays testable
//
// Basic usage:
//
//	counter := syncbench.NewSharedCounter(syncbench.LogObserver(logger))
//
//	go func() { counter.Increment() }()
//	go func() { _ = counter.Get() }()
//
//	watch := syncbench.NewStopwatch()
//	// ... work ...
//	watch.Stop()
//	fmt.Println(watch) // e.g. "1232ms"
//
// Each Stopwatch is meant for a single owner; share a SharedCounter freely.
package syncbench
