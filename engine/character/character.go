package character

import (
	"image/color"
	"sync"

	"github.com/Carmen-Shannon/oxy-motion/common"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
	"github.com/Carmen-Shannon/oxy-motion/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// MotionSource supplies the relative pointer motion buffered since the previous tick.
// Consume must reset the buffer so each delta is applied at most once.
type MotionSource interface {
	Consume() mgl32.Vec2
}

// AxisReader combines two opposing input actions into a value in [-1, 1].
type AxisReader interface {
	Axis(negative, positive string) float32
}

// MotionResolver integrates a requested velocity for a body against the environment.
type MotionResolver interface {
	// Resolve moves body according to velocity over dt seconds, resolving collisions as it sees fit.
	//
	// Parameters:
	//   - body: the body to move
	//   - velocity: the requested velocity
	//   - dt: seconds elapsed since the previous tick
	Resolve(body game_object.GameObject, velocity mgl32.Vec3, dt float32)
}

// Indicator is an optional debug mesh whose color reflects controller state.
type Indicator interface {
	SetColor(c color.Color)
}

// Controller drives a body from two movement axes and horizontal pointer motion.
// Each tick it turns the body by the consumed pointer delta, damps per-axis speeds toward
// the input targets, caps the planar velocity at the max speed and hands the result to the
// motion resolver.
type Controller interface {
	// Update advances the controller by one tick.
	//
	// Parameters:
	//   - dt: seconds elapsed since the previous tick
	Update(dt float32)

	// Body returns the controlled object.
	//
	// Returns:
	//   - game_object.GameObject: the body
	Body() game_object.GameObject

	// Velocity returns the velocity requested from the resolver on the last tick.
	//
	// Returns:
	//   - mgl32.Vec3: the requested velocity, already scaled by dt
	Velocity() mgl32.Vec3

	// Speeds returns the current smoothed per-axis speeds.
	//
	// Returns:
	//   - forwardBackward: speed along the body's local Z axis
	//   - leftRight: speed along the body's local X axis
	Speeds() (forwardBackward, leftRight float32)

	// MaxSpeed returns the planar speed cap.
	//
	// Returns:
	//   - float32: the maximum speed
	MaxSpeed() float32

	// MovementSmoothing returns the smoothness used to damp per-axis speeds.
	//
	// Returns:
	//   - float32: smoothness in [0, 1]
	MovementSmoothing() float32

	// RotationSpeed returns the multiplier applied to horizontal pointer motion.
	//
	// Returns:
	//   - float32: radians per pixel per second
	RotationSpeed() float32

	// SetDebugIndicatorColor recolors the debug indicator. Does nothing without an indicator.
	//
	// Parameters:
	//   - c: the new color
	SetDebugIndicatorColor(c color.Color)
}

type controllerImpl struct {
	mu *sync.Mutex

	body      game_object.GameObject
	motion    MotionSource
	axes      AxisReader
	resolver  MotionResolver
	indicator Indicator

	maxSpeed          float32
	movementSmoothing float32
	rotationSpeed     float32

	forwardBackwardSpeed float32
	leftRightSpeed       float32
	velocity             mgl32.Vec3
}

var _ Controller = &controllerImpl{}

// NewController creates a character controller for the given body.
// Every collaborator is optional: without a motion source the body never turns, without an
// axis reader it never accelerates, and without a resolver the requested velocity is computed
// but not applied.
//
// Parameters:
//   - body: the object to move (nil makes the controller inert)
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(body game_object.GameObject, options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		mu:                &sync.Mutex{},
		body:              body,
		maxSpeed:          1000.0,
		movementSmoothing: 0.995,
		rotationSpeed:     0.5,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *controllerImpl) Update(dt float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.body == nil || !c.body.Enabled() {
		return
	}
	c.rotate(dt)
	c.move(dt)
}

// rotate turns the body around its local up axis by the pointer delta buffered since the last tick.
// Caller must hold the mutex.
func (c *controllerImpl) rotate(dt float32) {
	if c.motion == nil {
		return
	}
	delta := c.motion.Consume()
	if delta.X() == 0 {
		return
	}
	c.body.RotateLocal(common.Up, -delta.X()*c.rotationSpeed*dt)
}

// move damps the per-axis speeds toward the input targets and requests the capped planar velocity.
// Caller must hold the mutex.
func (c *controllerImpl) move(dt float32) {
	var forwardBackward, leftRight float32
	if c.axes != nil {
		forwardBackward = c.axes.Axis(input.ActionMoveBackward, input.ActionMoveForward)
		leftRight = c.axes.Axis(input.ActionMoveRight, input.ActionMoveLeft)
	}

	weight := common.DampFactor(c.movementSmoothing, dt)
	c.forwardBackwardSpeed = common.Lerp(c.forwardBackwardSpeed, c.axisTarget(forwardBackward), weight)
	c.leftRightSpeed = common.Lerp(c.leftRightSpeed, c.axisTarget(leftRight), weight)

	basis := c.body.Basis()
	combined := basis.Col(2).Mul(c.forwardBackwardSpeed).Add(basis.Col(0).Mul(c.leftRightSpeed))

	// Cap the combined length so diagonal input is no faster than a single axis.
	if combined.Len() > c.maxSpeed {
		combined = combined.Normalize().Mul(c.maxSpeed)
	}

	c.velocity = combined.Mul(dt)
	if c.resolver != nil {
		c.resolver.Resolve(c.body, c.velocity, dt)
	}
}

// axisTarget maps an axis value to a target speed. A released axis targets exactly zero.
func (c *controllerImpl) axisTarget(axis float32) float32 {
	if axis == 0 {
		return 0
	}
	return axis * c.maxSpeed
}

func (c *controllerImpl) Body() game_object.GameObject {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.body
}

func (c *controllerImpl) Velocity() mgl32.Vec3 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.velocity
}

func (c *controllerImpl) Speeds() (forwardBackward, leftRight float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.forwardBackwardSpeed, c.leftRightSpeed
}

func (c *controllerImpl) MaxSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.maxSpeed
}

func (c *controllerImpl) MovementSmoothing() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.movementSmoothing
}

func (c *controllerImpl) RotationSpeed() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rotationSpeed
}

func (c *controllerImpl) SetDebugIndicatorColor(col color.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.indicator == nil {
		return
	}
	c.indicator.SetColor(col)
}

// DirectResolver integrates velocity straight into the body's position with no collision.
type DirectResolver struct{}

var _ MotionResolver = DirectResolver{}

// Resolve translates body by velocity * dt.
func (DirectResolver) Resolve(body game_object.GameObject, velocity mgl32.Vec3, dt float32) {
	if body == nil {
		return
	}
	body.Translate(velocity.Mul(dt))
}
