package profiler

import (
	"math"
	"testing"
	"time"
)

func TestTickReportsWindowStats(t *testing.T) {
	start := time.Unix(0, 0)
	clock := start
	p := NewProfiler()
	p.now = func() time.Time { return clock }
	p.lastTime = start

	deltas := []float32{0.01, 0.03, 0.02}
	for i, dt := range deltas {
		clock = start.Add(time.Duration(i+1) * 300 * time.Millisecond)
		if logged := p.Tick(dt); logged {
			t.Fatalf("tick %d logged before the interval elapsed", i)
		}
	}

	clock = start.Add(time.Second)
	if !p.Tick(0.04) {
		t.Fatalf("expected stats after one second")
	}

	got := p.Last()
	if math.Abs(got.TicksPerSecond-4) > 1e-9 {
		t.Fatalf("TPS = %v, want 4", got.TicksPerSecond)
	}
	if math.Abs(float64(got.AvgDelta-0.025)) > 1e-6 {
		t.Fatalf("avg dt = %v, want 0.025", got.AvgDelta)
	}
	if got.MaxDelta != 0.04 {
		t.Fatalf("max dt = %v, want 0.04", got.MaxDelta)
	}
}

func TestSetIntervalIgnoresNonPositive(t *testing.T) {
	p := NewProfiler()
	p.SetInterval(0)
	if p.updateInterval != time.Second {
		t.Fatalf("interval = %v, want 1s", p.updateInterval)
	}
	p.SetInterval(250 * time.Millisecond)
	if p.updateInterval != 250*time.Millisecond {
		t.Fatalf("interval = %v, want 250ms", p.updateInterval)
	}
}
