package scene

import (
	"sync"
	"testing"

	"github.com/Carmen-Shannon/oxy-motion/engine/camera"
	"github.com/Carmen-Shannon/oxy-motion/engine/character"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
	"github.com/Carmen-Shannon/oxy-motion/engine/input"
	"github.com/Carmen-Shannon/oxy-motion/engine/physics"
	"github.com/go-gl/mathgl/mgl32"
)

type phaseLog struct {
	mu      sync.Mutex
	entries []Phase
}

func (l *phaseLog) behavior(p Phase) Behavior {
	return BehaviorFunc(func(float32) {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.entries = append(l.entries, p)
	})
}

type forwardAxes struct{}

func (forwardAxes) Axis(negative, positive string) float32 {
	if positive == input.ActionMoveForward {
		return 1
	}
	return 0
}

func TestPhasesRunInOrder(t *testing.T) {
	pl := &phaseLog{}
	s := NewScene("test", nil, WithUpdateWorkers(4))

	// Registered out of order on purpose.
	for i := 0; i < 3; i++ {
		s.AddBehavior(PhaseCameras, pl.behavior(PhaseCameras))
		s.AddBehavior(PhaseCharacters, pl.behavior(PhaseCharacters))
		s.AddBehavior(PhasePhysics, pl.behavior(PhasePhysics))
	}

	s.Update(1.0 / 60.0)

	if len(pl.entries) != 9 {
		t.Fatalf("ran %d behaviors, want 9", len(pl.entries))
	}
	for i := 1; i < len(pl.entries); i++ {
		if pl.entries[i] < pl.entries[i-1] {
			t.Fatalf("phase %d ran after phase %d: %v", pl.entries[i], pl.entries[i-1], pl.entries)
		}
	}
}

func TestInactiveSceneSkipsUpdate(t *testing.T) {
	ran := false
	s := NewScene("test", nil,
		WithActive(false),
		WithBehavior(PhaseCharacters, BehaviorFunc(func(float32) { ran = true })),
	)
	s.Update(1)
	if ran {
		t.Fatalf("inactive scene ran a behavior")
	}
}

func TestInvalidPhaseIsIgnored(t *testing.T) {
	s := NewScene("test", nil)
	s.AddBehavior(Phase(-1), BehaviorFunc(func(float32) {}))
	s.AddBehavior(phaseCount, BehaviorFunc(func(float32) {}))
	s.AddBehavior(PhaseCameras, nil)
	for p := PhaseCharacters; p < phaseCount; p++ {
		if n := s.BehaviorCount(p); n != 0 {
			t.Fatalf("phase %d has %d behaviors, want 0", p, n)
		}
	}
}

func TestRegistryAssignsIDs(t *testing.T) {
	a := game_object.NewGameObject()
	b := game_object.NewGameObject(game_object.WithID(42))
	s := NewScene("test", nil, WithObjects(a))

	if a.ID() != 1 {
		t.Fatalf("first ID = %d, want 1", a.ID())
	}
	if id := s.Add(b); id != 42 {
		t.Fatalf("explicit ID = %d, want 42", id)
	}
	c := game_object.NewGameObject()
	if id := s.Add(c); id != 2 {
		t.Fatalf("next ID = %d, want 2", id)
	}
	if s.Get(42) != b || s.Count() != 3 {
		t.Fatalf("registry lookup failed, count %d", s.Count())
	}
	s.Remove(42)
	if s.Get(42) != nil {
		t.Fatalf("object 42 still registered")
	}
	s.Clear()
	if s.Count() != 0 {
		t.Fatalf("Count after Clear = %d", s.Count())
	}
}

func TestCameraFollowsMovedCharacter(t *testing.T) {
	body := game_object.NewGameObject()
	world := physics.NewWorld()
	world.AddBody(body, 0.5)

	ctrl := character.NewController(body,
		character.WithMaxSpeed(10),
		character.WithMovementSmoothing(1),
		character.WithAxisReader(forwardAxes{}),
		character.WithResolver(world),
	)
	rig := camera.NewFollowController(body,
		camera.WithAnchorSmoothness(1, 1),
		camera.WithVerticalSmoothness(1),
	)
	cam := camera.NewCamera(camera.WithController(rig))

	s := NewScene("test", cam,
		WithObjects(body),
		WithBehavior(PhaseCameras, rig),
		WithBehavior(PhasePhysics, BehaviorFunc(world.Step)),
		WithBehavior(PhaseCharacters, ctrl),
	)

	s.Update(0.5)

	// velocity 10 * 0.5, integrated over 0.5 seconds along local +Z.
	if got := body.Position(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, 2.5}, 1e-3) {
		t.Fatalf("body = %v, want (0, 0, 2.5)", got)
	}
	// The rig saw the post-move transform in the same tick.
	if got := rig.Anchor(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 4, 2.5}, 1e-3) {
		t.Fatalf("anchor = %v, want (0, 4, 2.5)", got)
	}
	if got := cam.Position(); !got.ApproxEqualThreshold(rig.Position(), 1e-5) {
		t.Fatalf("camera position = %v, rig position = %v", got, rig.Position())
	}
}
