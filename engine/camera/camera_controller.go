package camera

import (
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
)

// FollowMode selects how a CameraController places the camera relative to its tracked object.
type FollowMode int

const (
	// FollowModeHaloTrack slides the camera along a circle of fixed radius around a smoothed
	// anchor above the tracked object, chasing the object's heading.
	FollowModeHaloTrack FollowMode = iota
	// FollowModeOffset blends the camera toward a fixed offset expressed in the tracked
	// object's local frame.
	FollowModeOffset
)

// String returns the mode name as used in tuning files.
func (m FollowMode) String() string {
	switch m {
	case FollowModeHaloTrack:
		return "halo_track"
	case FollowModeOffset:
		return "offset"
	}
	return "unknown"
}

// ParseFollowMode converts a tuning file mode name into a FollowMode.
//
// Parameters:
//   - name: "halo_track" or "offset"; an empty name selects the halo track
//
// Returns:
//   - FollowMode: the parsed mode
//   - bool: false if the name is not recognized
func ParseFollowMode(name string) (FollowMode, bool) {
	switch name {
	case "", "halo_track":
		return FollowModeHaloTrack, true
	case "offset":
		return FollowModeOffset, true
	}
	return FollowModeHaloTrack, false
}

// CameraController defines a camera rig that follows a tracked object.
// Controllers own positional state (position, look-at target) and advance it once per tick.
// Camera reads from the controller and computes view/projection matrices.
type CameraController interface {
	// Update advances the rig by one tick. Does nothing while no object is tracked.
	//
	// Parameters:
	//   - dt: seconds elapsed since the previous tick
	Update(dt float32)

	// Position returns the camera's world-space position.
	//
	// Returns:
	//   - mgl32.Vec3: world-space camera position
	Position() mgl32.Vec3

	// Target returns the look-at point.
	//
	// Returns:
	//   - mgl32.Vec3: world-space target position
	Target() mgl32.Vec3

	// Tracked returns the followed object, or nil.
	//
	// Returns:
	//   - game_object.GameObject: the tracked object
	Tracked() game_object.GameObject

	// SetTracked changes the followed object. The rig's smoothed state is re-seeded from the
	// new object on the next Update. Pass nil to make the rig inert.
	//
	// Parameters:
	//   - obj: the object to follow
	SetTracked(obj game_object.GameObject)

	// Mode returns the follow mode.
	//
	// Returns:
	//   - FollowMode: the active mode
	Mode() FollowMode

	// Anchor returns the smoothed point the halo track is centered on.
	//
	// Returns:
	//   - mgl32.Vec3: the anchor position
	Anchor() mgl32.Vec3

	// Heading returns the smoothed angle of the camera along the halo track.
	//
	// Returns:
	//   - float32: heading in radians
	Heading() float32

	// Radius returns the halo track radius.
	//
	// Returns:
	//   - float32: distance from the anchor
	Radius() float32

	// Zoom adjusts the halo track radius, clamped to the configured limits.
	// Positive delta zooms in (closer to the anchor). Safe to call from the window thread.
	//
	// Parameters:
	//   - delta: zoom amount scaled by the zoom speed
	Zoom(delta float32)
}
