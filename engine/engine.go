package engine

import (
	"log"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/oxy-motion/engine/profiler"
	"github.com/Carmen-Shannon/oxy-motion/engine/scene"
	"github.com/Carmen-Shannon/oxy-motion/engine/window"
)

// engine implements the Engine interface.
// Coordinates the tick goroutine and the window thread.
type engine struct {
	tickRateChannel chan time.Duration // Channel for dynamic tick rate updates

	running atomic.Bool
	wg      sync.WaitGroup

	quitChannel chan struct{}
	quitOnce    sync.Once // Ensures quitChannel is only closed once

	window window.Window

	profiler         *profiler.Profiler
	profilingEnabled atomic.Bool

	mu             *sync.Mutex
	engineTickRate time.Duration
	tickCallback   func(deltaTime float32)
	scenes         map[int]scene.Scene
}

// Engine is the main entry point for the engine.
// It orchestrates the tick loop and window management.
type Engine interface {
	// Window returns the underlying window, or nil when running headless.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// SetTickRate sets the engine tick rate in ticks per second.
	//
	// Parameters:
	//   - fps: target ticks per second (defaults to 60 if <= 0)
	SetTickRate(fps float64)

	// TickRate returns the interval between ticks.
	//
	// Returns:
	//   - time.Duration: the tick interval
	TickRate() time.Duration

	// SetTickCallback registers the function called each engine tick, before the scenes update.
	// Use this for work that must see the tick before any behavior runs, such as swapping in
	// reloaded controllers.
	//
	// Parameters:
	//   - callback: function to call at the configured tick rate, receiving the delta time in seconds
	SetTickCallback(callback func(deltaTime float32))

	// AddScene registers a scene at the given key.
	// Scenes are updated in ascending key order each tick.
	//
	// Parameters:
	//   - key: the ordering key (lower updates first)
	//   - s: the Scene to register
	AddScene(key int, s scene.Scene)

	// RemoveScene removes the scene at the given key.
	//
	// Parameters:
	//   - key: the key of the scene to remove
	RemoveScene(key int)

	// Scene retrieves the scene registered at the given key.
	// Returns nil if no scene exists at that key.
	//
	// Parameters:
	//   - key: the key of the scene to retrieve
	//
	// Returns:
	//   - scene.Scene: the scene at the key, or nil if not found
	Scene(key int) scene.Scene

	// Scenes returns a copy of all registered scenes.
	//
	// Returns:
	//   - map[int]scene.Scene: a copy of the scenes map
	Scenes() map[int]scene.Scene

	// Run starts the engine and blocks until it quits. With a window, the calling goroutine runs
	// the window message loop and closing the window quits the engine. Headless engines block
	// until Quit is called.
	Run()

	// Quit signals all engine goroutines to stop and asks the window to close.
	// Safe to call multiple times and from any goroutine; subsequent calls are no-ops.
	Quit()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (profiling, tick rate, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		tickRateChannel: make(chan time.Duration, 1),
		quitChannel:     make(chan struct{}),
		scenes:          make(map[int]scene.Scene),
		wg:              sync.WaitGroup{},
		profiler:        profiler.NewProfiler(),
		mu:              &sync.Mutex{},
		engineTickRate:  time.Second / 60,
	}

	for _, opt := range options {
		opt(e)
	}

	if e.window != nil {
		e.window.SetResizeCallback(func(width, height int) {
			if height <= 0 {
				return
			}
			for _, s := range e.Scenes() {
				if c := s.Camera(); c != nil {
					c.SetAspect(float32(width) / float32(height))
				}
			}
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Run() {
	e.running.Store(true)
	e.handle()
	if e.window != nil {
		e.window.ProcessMessages()
		e.signalQuit()
	} else {
		<-e.quitChannel
	}
	e.wg.Wait()
}

func (e *engine) Quit() {
	e.signalQuit()
	if e.window != nil {
		e.window.RequestClose()
	}
}

// signalQuit closes the quit channel to signal all goroutines to exit.
// Uses sync.Once to ensure the channel is only closed once.
func (e *engine) signalQuit() {
	e.quitOnce.Do(func() {
		e.running.Store(false)
		close(e.quitChannel)
	})
}

// handle launches the tick goroutine, tracked by the engine's WaitGroup.
func (e *engine) handle() {
	e.wg.Add(1)
	go e.handleEngine()
}

// handleEngine runs the fixed-rate tick loop in its own goroutine.
// Fires the tick callback and updates every active scene at the configured tick rate, and listens
// for dynamic rate changes via tickRateChannel. Exits when the quit channel is closed.
// Recovers from panics to avoid crashing the process and signals quit on recovery.
func (e *engine) handleEngine() {
	defer e.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[Engine] tick goroutine recovered from panic: %v", r)
			e.Quit()
		}
	}()

	ticker := time.NewTicker(e.TickRate())
	defer ticker.Stop()

	lastTick := time.Now()

	for {
		select {
		case <-e.quitChannel:
			return
		case <-ticker.C:
			now := time.Now()
			dt := float32(now.Sub(lastTick).Seconds())
			lastTick = now
			e.tick(dt)
		case newRate := <-e.tickRateChannel:
			ticker.Reset(newRate)
		}
	}
}

// tick runs one engine tick: callback, then active scenes in ascending key order, then the profiler.
func (e *engine) tick(dt float32) {
	e.mu.Lock()
	callback := e.tickCallback
	keys := make([]int, 0, len(e.scenes))
	for k := range e.scenes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	active := make([]scene.Scene, 0, len(keys))
	for _, k := range keys {
		if s := e.scenes[k]; s.Active() {
			active = append(active, s)
		}
	}
	e.mu.Unlock()

	if callback != nil {
		callback(dt)
	}
	for _, s := range active {
		s.Update(dt)
	}

	if e.profilingEnabled.Load() && e.profiler != nil {
		e.profiler.Tick(dt)
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled.Store(true)
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled.Store(false)
}

// SetTickRate sets the engine tick rate in ticks per second.
// If the engine is running, the change takes effect immediately.
func (e *engine) SetTickRate(fps float64) {
	if fps <= 0 {
		fps = 60
	}
	newRate := time.Duration(float64(time.Second) / fps)

	e.mu.Lock()
	e.engineTickRate = newRate
	e.mu.Unlock()

	if e.running.Load() {
		// Non-blocking send - if channel is full, replace the pending value
		select {
		case e.tickRateChannel <- newRate:
		default:
			select {
			case <-e.tickRateChannel:
			default:
			}
			e.tickRateChannel <- newRate
		}
	}
}

func (e *engine) TickRate() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.engineTickRate
}

// SetTickCallback registers the function called each engine tick.
func (e *engine) SetTickCallback(callback func(deltaTime float32)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tickCallback = callback
}

func (e *engine) AddScene(key int, s scene.Scene) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scenes[key] = s
}

func (e *engine) RemoveScene(key int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.scenes, key)
}

func (e *engine) Scene(key int) scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scenes[key]
}

func (e *engine) Scenes() map[int]scene.Scene {
	e.mu.Lock()
	defer e.mu.Unlock()
	cp := make(map[int]scene.Scene, len(e.scenes))
	for k, v := range e.scenes {
		cp[k] = v
	}
	return cp
}
