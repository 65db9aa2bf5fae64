package physics

import "github.com/go-gl/mathgl/mgl32"

// WorldBuilderOption is a functional option for configuring a World.
type WorldBuilderOption func(*worldImpl)

// WithBounds encloses the rectangle between min and max (as (x, z)) with four walls.
//
// Parameters:
//   - min: lower corner
//   - max: upper corner
//
// Returns:
//   - WorldBuilderOption: functional option to add boundary walls
func WithBounds(min, max mgl32.Vec2) WorldBuilderOption {
	return func(w *worldImpl) {
		corners := []mgl32.Vec2{
			{min.X(), min.Y()},
			{max.X(), min.Y()},
			{max.X(), max.Y()},
			{min.X(), max.Y()},
		}
		for i := range corners {
			w.AddWall(corners[i], corners[(i+1)%len(corners)], 0.1)
		}
	}
}
