package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestEulerRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		rx, ry, rz float32
	}{
		{"identity", 0, 0, 0},
		{"yaw_only", 0, 1.2, 0},
		{"negative_yaw", 0, -2.8, 0},
		{"pitch_yaw_roll", 0.3, -0.9, 0.4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rx, ry, rz := EulerFromOrientation(OrientationFromEuler(c.rx, c.ry, c.rz))
			if !approx(rx, c.rx, 1e-4) || !approx(ry, c.ry, 1e-4) || !approx(rz, c.rz, 1e-4) {
				t.Fatalf("round trip = (%v, %v, %v), want (%v, %v, %v)", rx, ry, rz, c.rx, c.ry, c.rz)
			}
		})
	}
}

func TestBasisYawRotatesLocalAxes(t *testing.T) {
	b := Basis(OrientationFromEuler(0, math.Pi/2, 0))

	// A quarter turn around +Y maps local +Z onto world +X and local +X onto world -Z.
	if got := b.Col(2); !got.ApproxEqualThreshold(mgl32.Vec3{1, 0, 0}, 1e-5) {
		t.Fatalf("local Z = %v", got)
	}
	if got := b.Col(0); !got.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Fatalf("local X = %v", got)
	}
	if got := b.Col(1); !got.ApproxEqualThreshold(Up, 1e-5) {
		t.Fatalf("local Y = %v", got)
	}
}

func TestHeadingIgnoresPitch(t *testing.T) {
	if got := Heading(OrientationFromEuler(0.5, 2.0, 0)); !approx(got, 2.0, 1e-4) {
		t.Fatalf("Heading = %v, want 2.0", got)
	}
}
