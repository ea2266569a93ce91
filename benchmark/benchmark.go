// benchmark.go
// Resource-usage wrapper for the timed pass of the suite.
// Measures execution time and memory usage for any wrapped function.

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

const mb = 1024.0 * 1024.0

// Snapshot holds what Measure observed around a single call.
type Snapshot struct {
	Elapsed         time.Duration
	MemUsed         int64 // change in live heap, may be negative after a GC
	TotalAllocated  uint64
	HeapAlloc       uint64
	Sys             uint64
	GCCycles        uint32
	NumCPU          int
	GoroutinesStart int
	GoroutinesEnd   int
}

// Measure runs f once and records its runtime and memory usage.
func Measure(f func()) Snapshot {
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	s := Snapshot{
		NumCPU:          runtime.NumCPU(),
		GoroutinesStart: runtime.NumGoroutine(),
	}
	start := time.Now()

	f()

	s.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	s.GoroutinesEnd = runtime.NumGoroutine()

	s.MemUsed = int64(memEnd.Alloc) - int64(memStart.Alloc)
	s.TotalAllocated = memEnd.TotalAlloc - memStart.TotalAlloc
	s.HeapAlloc = memEnd.HeapAlloc
	s.Sys = memEnd.Sys
	s.GCCycles = memEnd.NumGC - memStart.NumGC
	return s
}

// Run wraps f with environment and resource reporting written to w.
func Run(w io.Writer, label string, f func()) Snapshot {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)

	// Environment, for repeatability
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	s := Measure(f)
	s.Write(w)
	return s
}

// Write prints the resource lines of s.
func (s Snapshot) Write(w io.Writer) {
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", s.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", float64(s.MemUsed)/mb)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", float64(s.TotalAllocated)/mb)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", float64(s.HeapAlloc)/mb)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", s.GCCycles)
	fmt.Fprintf(w, "[Benchmark] Total System Memory Allocated: %.2f MB\n", float64(s.Sys)/mb)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", s.NumCPU)
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", s.GoroutinesStart, s.GoroutinesEnd)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}
