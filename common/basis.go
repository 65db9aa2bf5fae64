package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// World axis constants. The engine is right-handed and Y-up, with -Z as forward.
var (
	Up      = mgl32.Vec3{0, 1, 0}
	Down    = mgl32.Vec3{0, -1, 0}
	Forward = mgl32.Vec3{0, 0, -1}
	Back    = mgl32.Vec3{0, 0, 1}
	Left    = mgl32.Vec3{-1, 0, 0}
	Right   = mgl32.Vec3{1, 0, 0}
)

// OrientationFromEuler builds a rotation from Euler angles applied in Y * X * Z order
// (yaw, then pitch, then roll), matching the order used for model matrices.
//
// Parameters:
//   - rx, ry, rz: rotation angles in radians around each axis
//
// Returns:
//   - mgl32.Quat: the combined rotation
func OrientationFromEuler(rx, ry, rz float32) mgl32.Quat {
	return mgl32.AnglesToQuat(ry, rx, rz, mgl32.YXZ).Normalize()
}

// Basis returns the 3x3 rotation matrix whose columns are the local X, Y and Z axes of q
// expressed in world space.
func Basis(q mgl32.Quat) mgl32.Mat3 {
	return q.Mat4().Mat3()
}

// EulerFromOrientation decomposes q back into Y * X * Z Euler angles.
// Pitch is clamped to ±π/2, so a rotation that pitches fully up or down loses its roll.
//
// Parameters:
//   - q: the rotation to decompose
//
// Returns:
//   - rx, ry, rz: pitch, yaw and roll in radians
func EulerFromOrientation(q mgl32.Quat) (rx, ry, rz float32) {
	m := Basis(q)
	// R = Ry * Rx * Rz: m12 = -sin(rx), m02 = sin(ry)cos(rx), m22 = cos(ry)cos(rx),
	// m10 = cos(rx)sin(rz), m11 = cos(rx)cos(rz).
	sx := -m.At(1, 2)
	if sx > 1 {
		sx = 1
	} else if sx < -1 {
		sx = -1
	}
	rx = float32(math.Asin(float64(sx)))
	if math.Abs(float64(sx)) < 0.9999 {
		ry = float32(math.Atan2(float64(m.At(0, 2)), float64(m.At(2, 2))))
		rz = float32(math.Atan2(float64(m.At(1, 0)), float64(m.At(1, 1))))
		return
	}
	ry = float32(math.Atan2(float64(-m.At(2, 0)), float64(m.At(0, 0))))
	rz = 0
	return
}

// Heading returns the yaw of q, the rotation around the world up axis in (-π, π].
func Heading(q mgl32.Quat) float32 {
	_, ry, _ := EulerFromOrientation(q)
	return ry
}
