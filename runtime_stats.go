package syncbench

import (
	"runtime"
	"time"
)

// RuntimeStats captures the runtime figures the demo reports after a
// contention run.
type RuntimeStats struct {
	Goroutines int
	HeapAlloc  uint64
	HeapSys    uint64
	GCRuns     uint32
	GCPause    time.Duration
}

// ReadRuntimeStats samples the current process state.
func ReadRuntimeStats() RuntimeStats {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return RuntimeStats{
		Goroutines: runtime.NumGoroutine(),
		HeapAlloc:  ms.HeapAlloc,
		HeapSys:    ms.HeapSys,
		GCRuns:     ms.NumGC,
		GCPause:    time.Duration(ms.PauseTotalNs),
	}
}
