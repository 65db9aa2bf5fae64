package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// DampFactor converts a smoothness value and the time elapsed since the previous tick into a
// frame-rate independent lerp weight: 1 - (1 - smoothness)^dt.
// Blending toward a fixed target at dt1 and then dt2 lands on the same value as a single blend at
// dt1+dt2, so smoothed motion looks the same at any tick rate.
// Reference: https://www.rorydriscoll.com/2016/03/07/frame-rate-independent-damping-using-lerp/
//
// The smoothness is the fraction of the remaining distance covered over one second, so larger values
// converge faster: 1 snaps to the target on any tick with dt > 0 and 0 never moves. It is not validated;
// callers clamp it into [0, 1] when it is configured.
//
// Parameters:
//   - smoothness: fraction of the distance covered per second, in [0, 1]
//   - dt: seconds elapsed since the previous tick (>= 0)
//
// Returns:
//   - float32: the blend weight in [0, 1]
func DampFactor(smoothness, dt float32) float32 {
	return float32(1.0 - math.Pow(1.0-float64(smoothness), float64(dt)))
}

// Lerp returns start moved toward to by the given weight.
//
// Parameters:
//   - start: current value
//   - to: target value
//   - weight: fraction of the remaining distance to cover, typically in [0, 1]
//
// Returns:
//   - float32: the blended value
func Lerp(start, to, weight float32) float32 {
	return start + (to-start)*weight
}

// LerpVec2 blends each component of start toward to by weight.
func LerpVec2(start, to mgl32.Vec2, weight float32) mgl32.Vec2 {
	return mgl32.Vec2{
		Lerp(start[0], to[0], weight),
		Lerp(start[1], to[1], weight),
	}
}

// LerpVec3 blends each component of start toward to by weight.
func LerpVec3(start, to mgl32.Vec3, weight float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Lerp(start[0], to[0], weight),
		Lerp(start[1], to[1], weight),
		Lerp(start[2], to[2], weight),
	}
}

// LerpAngle blends an angle toward another along the shortest arc, so blending across the ±π
// seam never takes the long way around. The result is normalized into (-π, π].
//
// Parameters:
//   - start: current angle in radians
//   - to: target angle in radians
//   - weight: fraction of the remaining arc to cover, typically in [0, 1]
//
// Returns:
//   - float32: the blended angle in radians
func LerpAngle(start, to, weight float32) float32 {
	return NormalizeAngle(start + AngleDifference(start, to)*weight)
}

// AngleDifference returns the signed shortest arc from start to to, in (-π, π].
func AngleDifference(start, to float32) float32 {
	return NormalizeAngle(to - start)
}

// NormalizeAngle wraps an angle into (-π, π].
//
// Parameters:
//   - angle: angle in radians
//
// Returns:
//   - float32: the equivalent angle in (-π, π]
func NormalizeAngle(angle float32) float32 {
	a := math.Mod(float64(angle), 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return float32(a)
}

// Clamp01 restricts v to [0, 1].
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
