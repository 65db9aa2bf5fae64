package physics

import (
	"log"
	"math"
	"sync"

	"github.com/Carmen-Shannon/oxy-motion/engine/character"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jakecoffman/cp"
)

// World is a planar collision world for character bodies. Bodies move on the world XZ plane,
// which maps onto the physics space's XY plane; height is carried through unchanged.
// World implements character.MotionResolver: Resolve records the requested velocity, and Step
// integrates every recorded velocity at once, resolving contacts against walls and other bodies.
type World interface {
	character.MotionResolver

	// AddBody registers obj as a circular body at its current position.
	//
	// Parameters:
	//   - obj: the object to simulate
	//   - radius: collision radius on the XZ plane
	AddBody(obj game_object.GameObject, radius float32)

	// RemoveBody unregisters obj. Does nothing if obj was never added.
	//
	// Parameters:
	//   - obj: the object to remove
	RemoveBody(obj game_object.GameObject)

	// AddWall adds a static segment on the XZ plane.
	//
	// Parameters:
	//   - a: first endpoint as (x, z)
	//   - b: second endpoint as (x, z)
	//   - thickness: segment radius
	AddWall(a, b mgl32.Vec2, thickness float32)

	// Step advances the simulation and writes the resolved positions back to the registered objects.
	// Recorded velocities are cleared afterwards, so a body only moves on ticks it was resolved.
	//
	// Parameters:
	//   - dt: seconds elapsed since the previous tick
	Step(dt float32)

	// BodyCount returns the number of registered bodies.
	BodyCount() int
}

type worldBody struct {
	body    *cp.Body
	shape   *cp.Shape
	heightV float32
}

type worldImpl struct {
	mu     *sync.Mutex
	space  *cp.Space
	bodies map[game_object.GameObject]*worldBody
}

var _ World = &worldImpl{}

// NewWorld creates an empty world with no gravity.
//
// Parameters:
//   - options: functional options to configure the world
//
// Returns:
//   - World: the newly created world
func NewWorld(options ...WorldBuilderOption) World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	w := &worldImpl{
		mu:     &sync.Mutex{},
		space:  space,
		bodies: make(map[game_object.GameObject]*worldBody),
	}
	for _, option := range options {
		option(w)
	}
	return w
}

func (w *worldImpl) AddBody(obj game_object.GameObject, radius float32) {
	if obj == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.bodies[obj]; ok {
		return
	}

	// Infinite moment keeps contacts from spinning the body; heading belongs to the controller.
	body := cp.NewBody(1, math.Inf(1))
	pos := obj.Position()
	body.SetPosition(cp.Vector{X: float64(pos.X()), Y: float64(pos.Z())})

	shape := cp.NewCircle(body, float64(radius), cp.Vector{})
	shape.SetFriction(0)

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.bodies[obj] = &worldBody{body: body, shape: shape}
}

func (w *worldImpl) RemoveBody(obj game_object.GameObject) {
	w.mu.Lock()
	defer w.mu.Unlock()
	wb, ok := w.bodies[obj]
	if !ok {
		return
	}
	w.space.RemoveShape(wb.shape)
	w.space.RemoveBody(wb.body)
	delete(w.bodies, obj)
}

func (w *worldImpl) AddWall(a, b mgl32.Vec2, thickness float32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	shape := cp.NewSegment(
		w.space.StaticBody,
		cp.Vector{X: float64(a.X()), Y: float64(a.Y())},
		cp.Vector{X: float64(b.X()), Y: float64(b.Y())},
		float64(thickness),
	)
	shape.SetFriction(0)
	w.space.AddShape(shape)
}

// Resolve records velocity for obj's body. Objects without a body are translated directly.
func (w *worldImpl) Resolve(obj game_object.GameObject, velocity mgl32.Vec3, dt float32) {
	if obj == nil {
		return
	}
	w.mu.Lock()
	wb, ok := w.bodies[obj]
	if ok {
		wb.body.SetVelocity(float64(velocity.X()), float64(velocity.Z()))
		wb.heightV = velocity.Y()
	}
	w.mu.Unlock()

	if !ok {
		character.DirectResolver{}.Resolve(obj, velocity, dt)
	}
}

func (w *worldImpl) Step(dt float32) {
	if dt <= 0 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()

	w.space.Step(float64(dt))

	for obj, wb := range w.bodies {
		p := wb.body.Position()
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			log.Printf("[Physics] body %d produced a NaN position, resetting", obj.ID())
			cur := obj.Position()
			wb.body.SetPosition(cp.Vector{X: float64(cur.X()), Y: float64(cur.Z())})
			wb.body.SetVelocity(0, 0)
			continue
		}
		y := obj.Position().Y() + wb.heightV*dt
		obj.SetPosition(mgl32.Vec3{float32(p.X), y, float32(p.Y)})
		wb.body.SetVelocity(0, 0)
		wb.heightV = 0
	}
}

func (w *worldImpl) BodyCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bodies)
}
