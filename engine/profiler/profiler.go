package profiler

import (
	"log"
	"runtime"
	"time"
)

// Stats is one reporting window of tick timing.
type Stats struct {
	// TicksPerSecond is the measured tick rate over the window.
	TicksPerSecond float64
	// AvgDelta is the mean dt handed to the tick callback, in seconds.
	AvgDelta float32
	// MaxDelta is the largest dt seen in the window, in seconds.
	MaxDelta float32
}

// Profiler tracks tick rate, tick delta and memory statistics for performance monitoring.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	deltaSum       float32
	deltaMax       float32
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats
	now            func() time.Time
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
		now:            time.Now,
	}
}

// SetInterval changes how often statistics are reported. Non-positive values are ignored.
//
// Parameters:
//   - interval: time between reports
func (p *Profiler) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.updateInterval = interval
	}
}

// Last returns the most recently reported window.
func (p *Profiler) Last() Stats {
	return p.last
}

// Tick should be called once per engine tick with the tick's dt.
// Logs performance statistics when the update interval has elapsed.
// Statistics include: tick rate, average and worst dt, heap usage, allocation rate and GC count/pause times.
//
// Parameters:
//   - dt: seconds elapsed since the previous tick
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(dt float32) bool {
	p.tickCount++
	p.deltaSum += dt
	if dt > p.deltaMax {
		p.deltaMax = dt
	}

	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	p.last = Stats{
		TicksPerSecond: float64(p.tickCount) / elapsed.Seconds(),
		AvgDelta:       p.deltaSum / float32(p.tickCount),
		MaxDelta:       p.deltaMax,
	}

	runtime.ReadMemStats(&p.memStats)
	allocMB := float64(p.memStats.Alloc) / 1024 / 1024
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
	allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 GC pauses.
	gcCount := p.memStats.NumGC
	var maxPauseUs uint64
	startIdx := p.lastGCCount
	if gcCount-startIdx > 256 {
		startIdx = gcCount - 256
	}
	for i := startIdx; i < gcCount; i++ {
		if pause := p.memStats.PauseNs[i%256] / 1000; pause > maxPauseUs {
			maxPauseUs = pause
		}
	}

	log.Printf("[Profiler] TPS: %.2f | dt avg: %.2f ms, max: %.2f ms | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (max: %d µs)",
		p.last.TicksPerSecond, p.last.AvgDelta*1000, p.last.MaxDelta*1000, allocMB, allocRateMB, gcCount, maxPauseUs)

	p.tickCount = 0
	p.deltaSum = 0
	p.deltaMax = 0
	p.lastTime = currentTime
	p.lastGCCount = gcCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}
