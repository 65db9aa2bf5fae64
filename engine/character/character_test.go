package character

import (
	"image/color"
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-motion/common"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
	"github.com/Carmen-Shannon/oxy-motion/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

type fixedAxes struct {
	forwardBackward float32
	leftRight       float32
}

func (f *fixedAxes) Axis(negative, positive string) float32 {
	switch {
	case negative == input.ActionMoveBackward && positive == input.ActionMoveForward:
		return f.forwardBackward
	case negative == input.ActionMoveRight && positive == input.ActionMoveLeft:
		return f.leftRight
	}
	return 0
}

type recordingResolver struct {
	calls    int
	velocity mgl32.Vec3
}

func (r *recordingResolver) Resolve(_ game_object.GameObject, velocity mgl32.Vec3, _ float32) {
	r.calls++
	r.velocity = velocity
}

type recordingIndicator struct {
	color color.Color
}

func (r *recordingIndicator) SetColor(c color.Color) {
	r.color = c
}

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestDiagonalVelocityIsCapped(t *testing.T) {
	axes := &fixedAxes{forwardBackward: 1, leftRight: 1}
	c := NewController(game_object.NewGameObject(),
		WithMaxSpeed(10),
		WithMovementSmoothing(1),
		WithAxisReader(axes),
	)

	c.Update(1)

	v := c.Velocity()
	if !near(v.Len(), 10, 1e-4) {
		t.Fatalf("speed = %v, want 10", v.Len())
	}
	// Local Z + local X with identity orientation points along +X +Z.
	want := mgl32.Vec3{1, 0, 1}.Normalize().Mul(10)
	if !v.ApproxEqualThreshold(want, 1e-4) {
		t.Fatalf("velocity = %v, want %v", v, want)
	}
}

func TestSingleAxisIsNotCapped(t *testing.T) {
	c := NewController(game_object.NewGameObject(),
		WithMaxSpeed(10),
		WithMovementSmoothing(1),
		WithAxisReader(&fixedAxes{forwardBackward: 0.5}),
	)

	c.Update(1)

	if got := c.Velocity(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 5}, 1e-4) {
		t.Fatalf("velocity = %v, want (0, 0, 5)", got)
	}
}

func TestReleasedAxisTargetsZero(t *testing.T) {
	axes := &fixedAxes{forwardBackward: 1}
	c := NewController(game_object.NewGameObject(),
		WithMaxSpeed(10),
		WithMovementSmoothing(0.5),
		WithAxisReader(axes),
	)

	c.Update(1)
	fb, _ := c.Speeds()
	if !near(fb, 5, 1e-4) {
		t.Fatalf("speed after one second = %v, want 5", fb)
	}

	axes.forwardBackward = 0
	c.Update(1)
	fb, _ = c.Speeds()
	if !near(fb, 2.5, 1e-4) {
		t.Fatalf("speed after release = %v, want 2.5", fb)
	}
}

func TestSixtyHertzAcceleration(t *testing.T) {
	c := NewController(game_object.NewGameObject(),
		WithMaxSpeed(10),
		WithMovementSmoothing(0.995),
		WithAxisReader(&fixedAxes{forwardBackward: 1}),
	)

	c.Update(1.0 / 60.0)

	fb, lr := c.Speeds()
	want := 10 * common.DampFactor(0.995, 1.0/60.0)
	if !near(fb, want, 1e-4) || lr != 0 {
		t.Fatalf("speeds = (%v, %v), want (%v, 0)", fb, lr, want)
	}
}

func TestVelocityFollowsLocalFrame(t *testing.T) {
	body := game_object.NewGameObject(game_object.WithRotation(0, math.Pi/2, 0))
	c := NewController(body,
		WithMaxSpeed(4),
		WithMovementSmoothing(1),
		WithAxisReader(&fixedAxes{forwardBackward: 1}),
	)

	c.Update(0.5)

	// A quarter turn maps local +Z onto world +X; the requested velocity is scaled by dt.
	if got := c.Velocity(); !got.ApproxEqualThreshold(mgl32.Vec3{2, 0, 0}, 1e-4) {
		t.Fatalf("velocity = %v, want (2, 0, 0)", got)
	}
}

func TestPointerMotionConsumedOncePerTick(t *testing.T) {
	body := game_object.NewGameObject()
	tracker := input.NewMotionTracker()
	c := NewController(body,
		WithRotationSpeed(0.5),
		WithMotionSource(tracker),
	)

	tracker.Record(-4, 0)
	tracker.Record(-2, 0)

	c.Update(1)
	first := body.Heading()
	if first == 0 {
		t.Fatalf("heading did not change after pointer motion")
	}
	// Latest delta wins: -(-2) * 0.5 * 1.
	if !near(first, 1, 1e-4) {
		t.Fatalf("heading = %v, want 1", first)
	}

	c.Update(1)
	if second := body.Heading(); !near(second, first, 1e-6) {
		t.Fatalf("heading moved from %v to %v with no new motion", first, second)
	}
}

func TestResolverReceivesRequestedVelocity(t *testing.T) {
	resolver := &recordingResolver{}
	c := NewController(game_object.NewGameObject(),
		WithMaxSpeed(10),
		WithMovementSmoothing(1),
		WithAxisReader(&fixedAxes{leftRight: -1}),
		WithResolver(resolver),
	)

	c.Update(0.1)

	if resolver.calls != 1 {
		t.Fatalf("resolver called %d times, want 1", resolver.calls)
	}
	if !resolver.velocity.ApproxEqualThreshold(mgl32.Vec3{-1, 0, 0}, 1e-4) {
		t.Fatalf("resolver velocity = %v, want (-1, 0, 0)", resolver.velocity)
	}
}

func TestDirectResolverTranslatesBody(t *testing.T) {
	body := game_object.NewGameObject()
	c := NewController(body,
		WithMaxSpeed(10),
		WithMovementSmoothing(1),
		WithAxisReader(&fixedAxes{forwardBackward: 1}),
		WithResolver(DirectResolver{}),
	)

	c.Update(0.5)

	// velocity = 10 * 0.5, integrated over another 0.5 seconds.
	if got := body.Position(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 2.5}, 1e-4) {
		t.Fatalf("position = %v, want (0, 0, 2.5)", got)
	}
}

func TestMissingCollaboratorsAreTolerated(t *testing.T) {
	NewController(nil).Update(1)

	body := game_object.NewGameObject()
	c := NewController(body)
	c.Update(1)
	c.SetDebugIndicatorColor(color.White)

	if body.Position() != (mgl32.Vec3{}) || body.Heading() != 0 {
		t.Fatalf("body moved without input collaborators")
	}
}

func TestDisabledBodyIsSkipped(t *testing.T) {
	body := game_object.NewGameObject(game_object.WithEnabled(false))
	resolver := &recordingResolver{}
	NewController(body, WithResolver(resolver)).Update(1)
	if resolver.calls != 0 {
		t.Fatalf("disabled body was resolved")
	}
}

func TestDebugIndicatorColor(t *testing.T) {
	indicator := &recordingIndicator{}
	c := NewController(game_object.NewGameObject(), WithDebugIndicator(indicator))
	c.SetDebugIndicatorColor(color.RGBA{R: 255, A: 255})
	if indicator.color != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("indicator color = %v", indicator.color)
	}
}

func TestSmoothnessIsClamped(t *testing.T) {
	c := NewController(game_object.NewGameObject(), WithMovementSmoothing(1.5))
	if c.MovementSmoothing() != 1 {
		t.Fatalf("MovementSmoothing = %v, want 1", c.MovementSmoothing())
	}
}
