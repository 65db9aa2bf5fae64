package scene

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-motion/engine/camera"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
)

// Phase orders behaviors within a tick. Every behavior of a phase finishes before the next phase starts.
type Phase int

const (
	// PhaseCharacters turns and accelerates characters and hands their velocity to a resolver.
	PhaseCharacters Phase = iota
	// PhasePhysics integrates resolved velocities and writes positions back.
	PhasePhysics
	// PhaseCameras moves camera rigs after their tracked objects have settled.
	PhaseCameras

	phaseCount
)

// Behavior is anything advanced once per tick.
type Behavior interface {
	Update(dt float32)
}

// BehaviorFunc adapts a plain function to a Behavior.
type BehaviorFunc func(dt float32)

// Update calls f(dt).
func (f BehaviorFunc) Update(dt float32) {
	f(dt)
}

// Scene manages a registry of GameObjects, the behaviors that move them, and the Camera that views them.
// Update runs the behaviors phase by phase; behaviors sharing a phase run concurrently on the
// scene's worker pool, so they must not share mutable state.
// Scenes can be hot-swapped via the Active flag to switch between different views or levels.
// Thread-safe for concurrent access.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Active returns whether this scene is currently active.
	Active() bool

	// SetActive sets whether this scene is active. Inactive scenes ignore Update.
	SetActive(active bool)

	// Camera returns the scene's camera.
	Camera() camera.Camera

	// SetCamera replaces the scene's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Count returns the number of GameObjects in the registry.
	//
	// Returns:
	//   - int: count of registered GameObjects
	Count() int

	// Add registers a GameObject. Objects without an ID are assigned the next free one.
	//
	// Parameters:
	//   - obj: the GameObject to add
	//
	// Returns:
	//   - uint64: the object's ID
	Add(obj game_object.GameObject) uint64

	// Get retrieves a GameObject by its ID.
	// Returns nil if not found.
	//
	// Parameters:
	//   - id: the object's unique ID
	//
	// Returns:
	//   - game_object.GameObject: the object or nil
	Get(id uint64) game_object.GameObject

	// Remove removes a GameObject from the registry by ID.
	//
	// Parameters:
	//   - id: the object's unique ID
	Remove(id uint64)

	// AddBehavior schedules b to run in the given phase every tick.
	//
	// Parameters:
	//   - phase: the phase to run in
	//   - b: the behavior to run
	AddBehavior(phase Phase, b Behavior)

	// BehaviorCount returns the number of behaviors scheduled in a phase.
	//
	// Parameters:
	//   - phase: the phase to inspect
	//
	// Returns:
	//   - int: number of behaviors in the phase
	BehaviorCount(phase Phase) int

	// ClearBehaviors removes every scheduled behavior, keeping the registry.
	ClearBehaviors()

	// Clear removes all objects and behaviors from the scene.
	Clear()

	// Update advances every phase in order and then recomputes the camera matrices.
	//
	// Parameters:
	//   - dt: seconds elapsed since the previous tick
	Update(dt float32)
}

type scene struct {
	mu *sync.RWMutex

	name   string
	active bool

	registry map[uint64]game_object.GameObject
	nextID   uint64

	behaviors [phaseCount][]Behavior

	cam camera.Camera

	// updatePool runs the behaviors of one phase in parallel. Workers persist across ticks.
	updatePool    worker.DynamicWorkerPool
	updateWorkers int
}

// Ensure scene implements Scene interface.
var _ Scene = &scene{}

// NewScene creates a new Scene.
//
// Parameters:
//   - name: the name of the scene
//   - cam: the camera to attach, may be nil
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, cam camera.Camera, options ...SceneBuilderOption) Scene {
	s := &scene{
		mu:            &sync.RWMutex{},
		name:          name,
		active:        true,
		cam:           cam,
		registry:      make(map[uint64]game_object.GameObject),
		nextID:        1,
		updateWorkers: max(runtime.NumCPU()-1, 1),
	}

	for _, option := range options {
		option(s)
	}

	// Initialize the pool after options so WithUpdateWorkers can override the default.
	s.updatePool = worker.NewDynamicWorkerPool(s.updateWorkers, 256, 1*time.Second)
	return s
}

func (s *scene) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

func (s *scene) SetName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.name = name
}

func (s *scene) Active() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

func (s *scene) SetActive(active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = active
}

func (s *scene) Camera() camera.Camera {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cam
}

func (s *scene) SetCamera(cam camera.Camera) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cam = cam
}

func (s *scene) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.registry)
}

func (s *scene) Add(obj game_object.GameObject) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.register(obj)
}

func (s *scene) Get(id uint64) game_object.GameObject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry[id]
}

func (s *scene) Remove(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.registry, id)
}

func (s *scene) AddBehavior(phase Phase, b Behavior) {
	if b == nil || phase < 0 || phase >= phaseCount {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.behaviors[phase] = append(s.behaviors[phase], b)
}

func (s *scene) BehaviorCount(phase Phase) int {
	if phase < 0 || phase >= phaseCount {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.behaviors[phase])
}

func (s *scene) ClearBehaviors() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.behaviors {
		s.behaviors[i] = nil
	}
}

func (s *scene) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.registry = make(map[uint64]game_object.GameObject)
	for i := range s.behaviors {
		s.behaviors[i] = nil
	}
}

func (s *scene) Update(dt float32) {
	s.mu.RLock()
	if !s.active {
		s.mu.RUnlock()
		return
	}
	var phases [phaseCount][]Behavior
	for i := range s.behaviors {
		phases[i] = append([]Behavior(nil), s.behaviors[i]...)
	}
	cam := s.cam
	s.mu.RUnlock()

	for _, behaviors := range phases {
		s.runPhase(behaviors, dt)
	}

	if cam != nil {
		cam.Update()
	}
}

// runPhase runs one phase's behaviors and blocks until all of them return.
// A single behavior runs inline. Larger phases go to the update pool with a WaitGroup as the
// per-tick barrier, since pool.Wait() blocks until workers idle-exit.
func (s *scene) runPhase(behaviors []Behavior, dt float32) {
	switch len(behaviors) {
	case 0:
		return
	case 1:
		behaviors[0].Update(dt)
		return
	}

	var wg sync.WaitGroup
	for i, b := range behaviors {
		wg.Add(1)
		bCap := b // capture for closure
		s.updatePool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				bCap.Update(dt)
				return nil, nil
			},
		})
	}
	wg.Wait()
}

// register assigns an ID if needed and stores obj. Caller must hold the write lock.
func (s *scene) register(obj game_object.GameObject) uint64 {
	if obj == nil {
		return 0
	}
	if obj.ID() == 0 {
		obj.SetID(atomic.AddUint64(&s.nextID, 1) - 1)
	}
	s.registry[obj.ID()] = obj
	return obj.ID()
}
