package character

import "github.com/Carmen-Shannon/oxy-motion/common"

// ControllerBuilderOption is a functional option for configuring a character Controller.
type ControllerBuilderOption func(*controllerImpl)

// WithMaxSpeed sets the planar speed cap.
//
// Parameters:
//   - speed: maximum speed along any planar direction
//
// Returns:
//   - ControllerBuilderOption: functional option to set the max speed
func WithMaxSpeed(speed float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.maxSpeed = speed
	}
}

// WithMovementSmoothing sets the smoothness used to damp per-axis speeds. Values outside [0, 1]
// are clamped.
//
// Parameters:
//   - smoothness: fraction of the remaining speed difference closed per second (1 = instant)
//
// Returns:
//   - ControllerBuilderOption: functional option to set the movement smoothing
func WithMovementSmoothing(smoothness float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.movementSmoothing = common.ClampSmoothness("movement", smoothness)
	}
}

// WithRotationSpeed sets the multiplier applied to horizontal pointer motion.
//
// Parameters:
//   - speed: radians per pixel per second
//
// Returns:
//   - ControllerBuilderOption: functional option to set the rotation speed
func WithRotationSpeed(speed float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.rotationSpeed = speed
	}
}

// WithMotionSource attaches the pointer motion buffer that turns the body.
//
// Parameters:
//   - source: the motion source, typically an input.MotionTracker
//
// Returns:
//   - ControllerBuilderOption: functional option to set the motion source
func WithMotionSource(source MotionSource) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.motion = source
	}
}

// WithAxisReader attaches the input axes that accelerate the body.
//
// Parameters:
//   - axes: the axis reader, typically an input.ActionMap
//
// Returns:
//   - ControllerBuilderOption: functional option to set the axis reader
func WithAxisReader(axes AxisReader) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.axes = axes
	}
}

// WithResolver attaches the resolver that integrates the requested velocity.
//
// Parameters:
//   - resolver: the motion resolver
//
// Returns:
//   - ControllerBuilderOption: functional option to set the resolver
func WithResolver(resolver MotionResolver) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.resolver = resolver
	}
}

// WithDebugIndicator attaches an optional debug indicator.
//
// Parameters:
//   - indicator: the indicator to recolor
//
// Returns:
//   - ControllerBuilderOption: functional option to set the debug indicator
func WithDebugIndicator(indicator Indicator) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.indicator = indicator
	}
}
