package game_object

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewGameObjectDefaults(t *testing.T) {
	obj := NewGameObject(WithID(7), WithPosition(1, 2, 3))

	if obj.ID() != 7 {
		t.Fatalf("ID = %d, want 7", obj.ID())
	}
	if !obj.Enabled() {
		t.Fatalf("new objects should start enabled")
	}
	if obj.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Fatalf("Position = %v", obj.Position())
	}
	if obj.Heading() != 0 {
		t.Fatalf("Heading = %v, want 0", obj.Heading())
	}
}

func TestRotateLocalYAccumulatesHeading(t *testing.T) {
	obj := NewGameObject(WithRotation(0, 0.5, 0))
	obj.RotateLocal(obj.Basis().Col(1), 0.25)
	obj.RotateLocal(mgl32.Vec3{0, 1, 0}, 0.25)

	if got := obj.Heading(); math.Abs(float64(got-1.0)) > 1e-4 {
		t.Fatalf("Heading = %v, want 1.0", got)
	}
}

func TestRotateLocalZeroIsNoop(t *testing.T) {
	obj := NewGameObject(WithRotation(0.1, 0.2, 0.3))
	before := obj.Orientation()
	obj.RotateLocal(mgl32.Vec3{0, 1, 0}, 0)
	obj.RotateLocal(mgl32.Vec3{}, 1)
	if obj.Orientation() != before {
		t.Fatalf("orientation changed on a zero rotation")
	}
}

func TestTranslate(t *testing.T) {
	obj := NewGameObject(WithPosition(1, 0, 0))
	obj.Translate(mgl32.Vec3{0, 2, -1})
	if obj.Position() != (mgl32.Vec3{1, 2, -1}) {
		t.Fatalf("Position = %v", obj.Position())
	}
}
