package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval, optionally followed by a
// caller-provided status line.
type Profiler struct {
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	logger         *log.Logger
	status         func() string
	now            func() time.Time
}

// NewProfiler creates a new Profiler logging to the standard logger once per second.
//
// Parameters:
//   - options: functional options to configure the profiler
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		logger:         log.Default(),
		now:            time.Now,
	}
	for _, option := range options {
		option(p)
	}
	p.lastTime = p.now()
	return p
}

// SetStatus sets a function whose result is appended to every stats line.
// Pass nil to log stats only.
//
// Parameters:
//   - status: function producing a short status string
func (p *Profiler) SetStatus(status func() string) {
	p.status = status
}

// Tick should be called once per engine tick.
// Logs TPS, heap usage, GC count and the status line when the interval has elapsed.
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick() bool {
	p.tickCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	tps := float64(p.tickCount) / elapsed.Seconds()

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	gcDelta := p.memStats.NumGC - p.lastGCCount

	line := ""
	if p.status != nil {
		line = " | " + p.status()
	}
	p.logger.Printf("[Profiler] TPS: %.2f | Heap: %.2f MB | GC: +%d%s", tps, allocMB, gcDelta, line)

	p.tickCount = 0
	p.lastTime = currentTime
	p.lastGCCount = p.memStats.NumGC
	return true
}
