package scene

import (
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
)

// SceneBuilderOption is a functional option for configuring a Scene.
// Use the With* functions to create options.
type SceneBuilderOption func(s *scene)

// WithActive sets whether the scene is active.
//
// Parameters:
//   - active: whether the scene is active
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithActive(active bool) SceneBuilderOption {
	return func(s *scene) {
		s.active = active
	}
}

// WithObjects adds initial objects to the scene.
// Objects without IDs will be assigned new IDs.
//
// Parameters:
//   - objects: the objects to add
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithObjects(objects ...game_object.GameObject) SceneBuilderOption {
	return func(s *scene) {
		for _, obj := range objects {
			s.register(obj)
		}
	}
}

// WithBehavior schedules a behavior in the given phase.
//
// Parameters:
//   - phase: the phase to run in
//   - b: the behavior to run
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithBehavior(phase Phase, b Behavior) SceneBuilderOption {
	return func(s *scene) {
		if b == nil || phase < 0 || phase >= phaseCount {
			return
		}
		s.behaviors[phase] = append(s.behaviors[phase], b)
	}
}

// WithUpdateWorkers sets the number of worker goroutines used to run a phase's behaviors in parallel.
// Defaults to runtime.NumCPU()-1. Lower values reduce scheduling overhead for small scenes.
//
// Parameters:
//   - n: the number of update workers (minimum 1)
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithUpdateWorkers(n int) SceneBuilderOption {
	return func(s *scene) {
		if n < 1 {
			n = 1
		}
		s.updateWorkers = n
	}
}
