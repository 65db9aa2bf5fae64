package game_object

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-motion/common"
	"github.com/go-gl/mathgl/mgl32"
)

type gameObject struct {
	id          uint64
	enabled     atomic.Bool
	position    mgl32.Vec3
	orientation mgl32.Quat
}

// GameObject defines the interface for a scene entity that owns a world transform.
// Motion policies read a GameObject as their tracked target or write it as the body they move;
// the object itself has no behavior of its own.
type GameObject interface {
	// ID returns the object's unique identifier.
	//
	// Returns:
	//   - uint64: the object ID
	ID() uint64

	// Enabled returns whether this object takes part in updates.
	//
	// Returns:
	//   - bool: true if enabled
	Enabled() bool

	// Position returns the object's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: the position
	Position() mgl32.Vec3

	// Orientation returns the object's world-space rotation.
	//
	// Returns:
	//   - mgl32.Quat: the rotation
	Orientation() mgl32.Quat

	// Rotation returns the orientation decomposed into Y * X * Z Euler angles.
	//
	// Returns:
	//   - rx, ry, rz: rotation angles in radians
	Rotation() (rx, ry, rz float32)

	// Heading returns the yaw of the object around the world up axis.
	//
	// Returns:
	//   - float32: yaw in radians, in (-π, π]
	Heading() float32

	// Basis returns the object's local axes in world space as matrix columns
	// (X = right, Y = up, Z = back).
	//
	// Returns:
	//   - mgl32.Mat3: the rotation basis
	Basis() mgl32.Mat3

	// SetID sets the object's unique identifier.
	//
	// Parameters:
	//   - id: the ID to assign
	SetID(id uint64)

	// SetEnabled sets whether the object takes part in updates.
	//
	// Parameters:
	//   - enabled: true to enable
	SetEnabled(enabled bool)

	// SetPosition sets the object's world-space position.
	//
	// Parameters:
	//   - p: the new position
	SetPosition(p mgl32.Vec3)

	// SetOrientation sets the object's world-space rotation. The quaternion is normalized.
	//
	// Parameters:
	//   - q: the new rotation
	SetOrientation(q mgl32.Quat)

	// SetRotation sets the orientation from Y * X * Z Euler angles.
	//
	// Parameters:
	//   - rx, ry, rz: rotation angles in radians
	SetRotation(rx, ry, rz float32)

	// Translate moves the object by a world-space offset.
	//
	// Parameters:
	//   - offset: the displacement to apply
	Translate(offset mgl32.Vec3)

	// RotateLocal rotates the object around one of its own axes, expressed in local space.
	// Rotating around local Y turns an upright object in place.
	//
	// Parameters:
	//   - axis: the local rotation axis (need not be normalized)
	//   - angle: rotation angle in radians
	RotateLocal(axis mgl32.Vec3, angle float32)
}

var _ GameObject = &gameObject{}

// NewGameObject creates a new GameObject configured with the given options.
// Objects start enabled, at the origin, with the identity orientation.
//
// Parameters:
//   - options: functional options to configure the object
//
// Returns:
//   - GameObject: the newly created object
func NewGameObject(options ...GameObjectBuilderOption) GameObject {
	obj := &gameObject{
		orientation: mgl32.QuatIdent(),
	}
	obj.enabled.Store(true)
	for _, option := range options {
		option(obj)
	}
	return obj
}

func (g *gameObject) ID() uint64 {
	return g.id
}

func (g *gameObject) Enabled() bool {
	return g.enabled.Load()
}

func (g *gameObject) Position() mgl32.Vec3 {
	return g.position
}

func (g *gameObject) Orientation() mgl32.Quat {
	return g.orientation
}

func (g *gameObject) Rotation() (rx, ry, rz float32) {
	return common.EulerFromOrientation(g.orientation)
}

func (g *gameObject) Heading() float32 {
	return common.Heading(g.orientation)
}

func (g *gameObject) Basis() mgl32.Mat3 {
	return common.Basis(g.orientation)
}

func (g *gameObject) SetID(id uint64) {
	g.id = id
}

func (g *gameObject) SetEnabled(enabled bool) {
	g.enabled.Store(enabled)
}

func (g *gameObject) SetPosition(p mgl32.Vec3) {
	g.position = p
}

func (g *gameObject) SetOrientation(q mgl32.Quat) {
	g.orientation = q.Normalize()
}

func (g *gameObject) SetRotation(rx, ry, rz float32) {
	g.orientation = common.OrientationFromEuler(rx, ry, rz)
}

func (g *gameObject) Translate(offset mgl32.Vec3) {
	g.position = g.position.Add(offset)
}

func (g *gameObject) RotateLocal(axis mgl32.Vec3, angle float32) {
	if angle == 0 || axis.Len() == 0 {
		return
	}
	g.orientation = g.orientation.Mul(mgl32.QuatRotate(angle, axis.Normalize())).Normalize()
}
