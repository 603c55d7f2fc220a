// package profiler reports render loop frame rates and memory pressure to the
// log at a fixed cadence.
package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler accumulates frame counts between reports and samples the runtime
// memory stats when a report is due. One Profiler belongs to one loop; it is
// not safe for concurrent use.
type Profiler struct {
	frames         int
	windowStart    time.Time
	reportInterval time.Duration

	memStats      runtime.MemStats
	prevGCCount   uint32
	prevHeapTotal uint64
}

// NewProfiler creates a Profiler that reports once per second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		windowStart:    time.Now(),
		reportInterval: time.Second,
	}
}

// SetReportInterval changes how often Tick writes a report. Intervals of zero
// or less keep the current setting.
//
// Parameters:
//   - interval: the time between reports
func (p *Profiler) SetReportInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	p.reportInterval = interval
}

// Tick records one rendered frame and, when the report interval has elapsed,
// logs frames per second, live heap size, allocation rate, and GC activity
// over the window.
//
// Returns:
//   - bool: true if a report was logged this tick
func (p *Profiler) Tick() bool {
	p.frames++
	now := time.Now()
	elapsed := now.Sub(p.windowStart)
	if elapsed < p.reportInterval {
		return false
	}

	fps := float64(p.frames) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	heapMB := float64(p.memStats.Alloc) / 1024 / 1024
	churn := p.memStats.TotalAlloc - p.prevHeapTotal
	churnMBps := float64(churn) / 1024 / 1024 / elapsed.Seconds()

	gcCount := p.memStats.NumGC
	gcInWindow := gcCount - p.prevGCCount
	var lastPauseUs uint64
	if gcCount > 0 {
		// PauseNs is a circular buffer of the last 256 GC pauses.
		lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000
	}

	log.Printf("[profiler] fps %.1f | heap %.1f MB | alloc %.2f MB/s | gc %d this window (last pause %d µs)",
		fps, heapMB, churnMBps, gcInWindow, lastPauseUs)

	p.frames = 0
	p.windowStart = now
	p.prevGCCount = gcCount
	p.prevHeapTotal = p.memStats.TotalAlloc
	return true
}
