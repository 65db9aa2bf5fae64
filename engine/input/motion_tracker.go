package input

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// MotionTracker buffers relative pointer motion between ticks.
// Window callbacks record deltas as they arrive; the owning controller consumes the buffered
// delta once per tick, which resets it. A delta that is not consumed before the next record is
// overwritten (or summed, when accumulating) and never queued.
type MotionTracker interface {
	// Record stores a relative pointer motion delta.
	//
	// Parameters:
	//   - dx, dy: motion since the previous pointer event, in pixels
	Record(dx, dy float32)

	// Consume returns the buffered delta and resets it to zero.
	//
	// Returns:
	//   - mgl32.Vec2: the buffered delta, or the zero vector if nothing was recorded
	Consume() mgl32.Vec2

	// Peek returns the buffered delta without resetting it.
	//
	// Returns:
	//   - mgl32.Vec2: the buffered delta
	Peek() mgl32.Vec2

	// Accumulate reports whether bursts of motion are summed rather than overwritten.
	//
	// Returns:
	//   - bool: true if recording sums deltas
	Accumulate() bool
}

type motionTrackerImpl struct {
	mu         *sync.Mutex
	delta      mgl32.Vec2
	accumulate bool
}

var _ MotionTracker = &motionTrackerImpl{}

// NewMotionTracker creates a MotionTracker. By default the latest recorded delta wins.
//
// Parameters:
//   - options: functional options to configure the tracker
//
// Returns:
//   - MotionTracker: the newly created tracker
func NewMotionTracker(options ...MotionTrackerOption) MotionTracker {
	mt := &motionTrackerImpl{
		mu: &sync.Mutex{},
	}
	for _, option := range options {
		option(mt)
	}
	return mt
}

func (mt *motionTrackerImpl) Record(dx, dy float32) {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	if mt.accumulate {
		mt.delta = mt.delta.Add(mgl32.Vec2{dx, dy})
		return
	}
	mt.delta = mgl32.Vec2{dx, dy}
}

func (mt *motionTrackerImpl) Consume() mgl32.Vec2 {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	d := mt.delta
	mt.delta = mgl32.Vec2{}
	return d
}

func (mt *motionTrackerImpl) Peek() mgl32.Vec2 {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.delta
}

func (mt *motionTrackerImpl) Accumulate() bool {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	return mt.accumulate
}

// MotionTrackerOption is a functional option for configuring a MotionTracker.
type MotionTrackerOption func(*motionTrackerImpl)

// WithAccumulate selects whether deltas recorded within one tick are summed.
//
// Parameters:
//   - accumulate: true to sum bursts, false to keep only the latest delta
//
// Returns:
//   - MotionTrackerOption: functional option to set the recording policy
func WithAccumulate(accumulate bool) MotionTrackerOption {
	return func(mt *motionTrackerImpl) {
		mt.accumulate = accumulate
	}
}
