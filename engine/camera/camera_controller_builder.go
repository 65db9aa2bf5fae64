package camera

import (
	"github.com/Carmen-Shannon/oxy-motion/common"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraControllerOption is a functional option for configuring a CameraController.
// Smoothness options clamp their value into [0, 1].
type CameraControllerOption func(*cameraControllerImpl)

// WithTracked sets the object the rig follows.
//
// Parameters:
//   - obj: the object to follow
//
// Returns:
//   - CameraControllerOption: functional option to set the tracked object
func WithTracked(obj game_object.GameObject) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.tracked = obj
	}
}

// WithMode sets the follow mode.
//
// Parameters:
//   - mode: halo track or offset follow
//
// Returns:
//   - CameraControllerOption: functional option to set the mode
func WithMode(mode FollowMode) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mode = mode
	}
}

// WithRadius sets the halo track radius (distance from the anchor).
//
// Parameters:
//   - radius: distance from the anchor
//
// Returns:
//   - CameraControllerOption: functional option to set the radius
func WithRadius(radius float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.radius = radius
	}
}

// WithZoomSpeed sets the zoom speed multiplier.
//
// Parameters:
//   - speed: radius change per unit of scroll
//
// Returns:
//   - CameraControllerOption: functional option to set the zoom speed
func WithZoomSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.zoomSpeed = speed
	}
}

// WithRadiusLimits sets the range Zoom keeps the halo track radius in.
//
// Parameters:
//   - min: smallest radius
//   - max: largest radius
//
// Returns:
//   - CameraControllerOption: functional option to set the radius limits
func WithRadiusLimits(min, max float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.minRadius = min
		cc.maxRadius = max
	}
}

// WithAnchorHeight sets how far above the tracked object the anchor sits.
//
// Parameters:
//   - height: vertical offset from the tracked object
//
// Returns:
//   - CameraControllerOption: functional option to set the anchor height
func WithAnchorHeight(height float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.anchorHeight = height
	}
}

// WithAnchorSmoothness sets the anchor damping for the horizontal plane and the vertical axis.
// A lower vertical value lets the anchor settle vertically slower than it slides horizontally.
//
// Parameters:
//   - xz: smoothness for the X and Z axes
//   - y: smoothness for the Y axis
//
// Returns:
//   - CameraControllerOption: functional option to set anchor smoothness
func WithAnchorSmoothness(xz, y float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.anchorXZSmoothness = common.ClampSmoothness("anchor xz", xz)
		cc.anchorYSmoothness = common.ClampSmoothness("anchor y", y)
	}
}

// WithRotationSmoothness sets how quickly the camera chases the tracked heading along the halo track.
//
// Parameters:
//   - smoothness: heading smoothness
//
// Returns:
//   - CameraControllerOption: functional option to set rotation smoothness
func WithRotationSmoothness(smoothness float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rotationSmoothness = common.ClampSmoothness("rotation", smoothness)
	}
}

// WithCameraOffset sets the camera position in the tracked object's local frame for offset mode.
//
// Parameters:
//   - x, y, z: local offset components
//
// Returns:
//   - CameraControllerOption: functional option to set the camera offset
func WithCameraOffset(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.cameraOffset = mgl32.Vec3{x, y, z}
	}
}

// WithPositionSmoothness sets how quickly the camera reaches its offset point in offset mode.
//
// Parameters:
//   - smoothness: position smoothness
//
// Returns:
//   - CameraControllerOption: functional option to set position smoothness
func WithPositionSmoothness(smoothness float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.positionSmoothness = common.ClampSmoothness("position", smoothness)
	}
}

// WithLookAtOffset sets the look-at point in the tracked object's local frame.
//
// Parameters:
//   - x, y, z: local offset components
//
// Returns:
//   - CameraControllerOption: functional option to set the look-at offset
func WithLookAtOffset(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.lookAtOffset = mgl32.Vec3{x, y, z}
	}
}

// WithVerticalSmoothness sets how quickly the look-at height follows the tracked object.
// 1 follows exactly; lower values soften abrupt elevation changes.
//
// Parameters:
//   - smoothness: look-at height smoothness
//
// Returns:
//   - CameraControllerOption: functional option to set vertical smoothness
func WithVerticalSmoothness(smoothness float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.verticalSmoothness = common.ClampSmoothness("vertical", smoothness)
	}
}
