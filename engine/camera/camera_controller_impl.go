package camera

import (
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-motion/common"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// In halo track mode the anchor follows the tracked object with separate horizontal and vertical
// damping, the heading chases the object's heading along the shortest arc, and the camera sits on
// the circle around the anchor at that heading. In offset mode the camera blends toward a point
// fixed in the object's local frame. Both modes look at the object plus a local look-at offset,
// with the look-at height damped on its own.
type cameraControllerImpl struct {
	mu *sync.Mutex

	tracked game_object.GameObject
	mode    FollowMode

	// Halo track
	radius             float32
	minRadius          float32
	maxRadius          float32
	zoomSpeed          float32
	anchorHeight       float32
	anchorXZSmoothness float32
	anchorYSmoothness  float32
	rotationSmoothness float32

	// Offset follow
	cameraOffset       mgl32.Vec3
	positionSmoothness float32

	// Look-at
	lookAtOffset       mgl32.Vec3
	verticalSmoothness float32

	// Smoothed state
	seeded    bool
	anchor    mgl32.Vec3
	heading   float32
	verticalY float32
	position  mgl32.Vec3
	target    mgl32.Vec3
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a follow rig with the halo track defaults.
// Without a tracked object the rig is inert until SetTracked is called.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:   &sync.Mutex{},
		mode: FollowModeHaloTrack,

		radius:             6.0,
		minRadius:          2.0,
		maxRadius:          20.0,
		zoomSpeed:          0.5,
		anchorHeight:       4.0,
		anchorXZSmoothness: 0.995,
		anchorYSmoothness:  0.9,
		rotationSmoothness: 0.995,

		positionSmoothness: 0.995,

		verticalSmoothness: 0.9,
	}

	for _, option := range options {
		option(cc)
	}
	return cc
}

// NewFollowController creates a follow rig already tracking obj.
//
// Parameters:
//   - obj: the object to follow
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewFollowController(obj game_object.GameObject, options ...CameraControllerOption) CameraController {
	return NewCameraController(append([]CameraControllerOption{WithTracked(obj)}, options...)...)
}

func (cc *cameraControllerImpl) Update(dt float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.tracked == nil {
		return
	}
	if !cc.seeded {
		cc.seed()
	}

	switch cc.mode {
	case FollowModeOffset:
		cc.updateOffset(dt)
	default:
		cc.updateAnchor(dt)
		cc.updateOrbit(dt)
	}
	cc.updateLookAt(dt)
}

// --- internal helpers ---

// seed initializes the smoothed state from the tracked object so the first tick does not sweep
// in from the origin. Caller must hold the mutex.
func (cc *cameraControllerImpl) seed() {
	pos := cc.tracked.Position()
	basis := cc.tracked.Basis()

	cc.anchor = pos.Add(basis.Col(1).Mul(cc.anchorHeight))
	cc.heading = cc.tracked.Heading()
	cc.verticalY = pos.Y()

	switch cc.mode {
	case FollowModeOffset:
		cc.position = pos.Add(basis.Mul3x1(cc.cameraOffset))
	default:
		cc.position = cc.orbitPoint()
	}
	cc.target = cc.lookAtPoint()
	cc.seeded = true
}

// updateAnchor blends the anchor toward the point above the tracked object, damping the
// horizontal plane and the vertical axis separately. Caller must hold the mutex.
func (cc *cameraControllerImpl) updateAnchor(dt float32) {
	desired := cc.tracked.Position().Add(common.Up.Mul(cc.anchorHeight))

	xz := common.DampFactor(cc.anchorXZSmoothness, dt)
	y := common.DampFactor(cc.anchorYSmoothness, dt)

	cc.anchor = mgl32.Vec3{
		common.Lerp(cc.anchor.X(), desired.X(), xz),
		common.Lerp(cc.anchor.Y(), desired.Y(), y),
		common.Lerp(cc.anchor.Z(), desired.Z(), xz),
	}
}

// updateOrbit chases the tracked heading and slides the camera along the halo track.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updateOrbit(dt float32) {
	cc.heading = common.LerpAngle(
		cc.heading,
		cc.tracked.Heading(),
		common.DampFactor(cc.rotationSmoothness, dt),
	)
	cc.position = cc.orbitPoint()
}

// orbitPoint returns the point on the halo track at the current heading.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) orbitPoint() mgl32.Vec3 {
	cos := float32(math.Cos(float64(cc.heading)))
	sin := float32(math.Sin(float64(cc.heading)))
	offset := common.Forward.Mul(cos).Add(common.Left.Mul(sin)).Mul(cc.radius)
	return cc.anchor.Add(offset)
}

// updateOffset blends the camera toward the offset point in the tracked object's frame.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updateOffset(dt float32) {
	desired := cc.tracked.Position().Add(cc.tracked.Basis().Mul3x1(cc.cameraOffset))
	cc.position = common.LerpVec3(cc.position, desired, common.DampFactor(cc.positionSmoothness, dt))
}

// updateLookAt damps the look-at height and recomputes the look-at target.
// Caller must hold the mutex.
func (cc *cameraControllerImpl) updateLookAt(dt float32) {
	cc.verticalY = common.Lerp(
		cc.verticalY,
		cc.tracked.Position().Y(),
		common.DampFactor(cc.verticalSmoothness, dt),
	)
	cc.target = cc.lookAtPoint()
}

// lookAtPoint returns the tracked position at the damped height plus the look-at offset rotated
// into the tracked object's frame. Caller must hold the mutex.
func (cc *cameraControllerImpl) lookAtPoint() mgl32.Vec3 {
	pos := cc.tracked.Position()
	base := mgl32.Vec3{pos.X(), cc.verticalY, pos.Z()}
	return base.Add(cc.tracked.Basis().Mul3x1(cc.lookAtOffset))
}

// --- CameraController accessors ---

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

func (cc *cameraControllerImpl) Target() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.target
}

func (cc *cameraControllerImpl) Tracked() game_object.GameObject {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.tracked
}

func (cc *cameraControllerImpl) SetTracked(obj game_object.GameObject) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.tracked = obj
	cc.seeded = false
}

func (cc *cameraControllerImpl) Mode() FollowMode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

func (cc *cameraControllerImpl) Anchor() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.anchor
}

func (cc *cameraControllerImpl) Heading() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.heading
}

func (cc *cameraControllerImpl) Radius() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.radius
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.radius -= delta * cc.zoomSpeed
	if cc.radius < cc.minRadius {
		cc.radius = cc.minRadius
	}
	if cc.radius > cc.maxRadius {
		cc.radius = cc.maxRadius
	}
}
