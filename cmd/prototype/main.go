package main

import (
	"image/color"
	"log"
	"math"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/oxy-motion/config"
	"github.com/Carmen-Shannon/oxy-motion/engine"
	"github.com/Carmen-Shannon/oxy-motion/engine/camera"
	"github.com/Carmen-Shannon/oxy-motion/engine/character"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
	"github.com/Carmen-Shannon/oxy-motion/engine/input"
	"github.com/Carmen-Shannon/oxy-motion/engine/physics"
	"github.com/Carmen-Shannon/oxy-motion/engine/scene"
	"github.com/Carmen-Shannon/oxy-motion/engine/window"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	idleColor   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	movingColor = color.RGBA{R: 255, G: 140, A: 255}
)

// logIndicator stands in for a debug mesh: it logs color changes.
type logIndicator struct {
	mu   sync.Mutex
	last color.Color
}

func (l *logIndicator) SetColor(c color.Color) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.last == c {
		return
	}
	l.last = c
	log.Printf("[Debug] indicator color %v", c)
}

// rig groups the per-tuning behaviors so a reload can swap them as a unit.
type rig struct {
	character character.Controller
	follow    camera.CameraController
}

func main() {
	// ── Configuration ───────────────────────────────────────────────────
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	tuning, err := config.LoadOrCreate(env.TuningPath)
	if err != nil {
		log.Fatalf("[Config] %v", err)
	}
	tuning.ApplyEnv(env)

	// ── Window + Input ──────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(tuning.Window.Title),
		window.WithWidth(tuning.Window.Width),
		window.WithHeight(tuning.Window.Height),
		window.WithCursorCaptured(tuning.Window.CaptureCursor),
	)

	actions := input.NewDefaultActionMap()
	tracker := input.NewMotionTracker(input.WithAccumulate(tuning.Character.AccumulateMotion))

	win.SetKeyDownCallback(actions.KeyDown)
	win.SetKeyUpCallback(actions.KeyUp)
	win.SetMouseMotionCallback(tracker.Record)

	// ── World ───────────────────────────────────────────────────────────
	player := game_object.NewGameObject(game_object.WithPosition(0, 0, 0))
	world := physics.NewWorld(physics.WithBounds(mgl32.Vec2{-50, -50}, mgl32.Vec2{50, 50}))
	world.AddBody(player, tuning.Character.BodyRadius)
	world.AddWall(mgl32.Vec2{-10, 10}, mgl32.Vec2{10, 10}, 0.25)

	indicator := &logIndicator{}

	// ── Camera + Scene ──────────────────────────────────────────────────
	cam := camera.NewCamera(
		camera.WithFov(tuning.Camera.FovDegrees*(math.Pi/180.0)),
		camera.WithAspect(float32(win.Width())/float32(max(win.Height(), 1))),
	)
	sc := scene.NewScene("prototype", cam, scene.WithObjects(player))

	build := func(t config.Tuning) *rig {
		r := &rig{
			character: character.NewController(player, append(t.CharacterOptions(),
				character.WithMotionSource(tracker),
				character.WithAxisReader(actions),
				character.WithResolver(world),
				character.WithDebugIndicator(indicator),
			)...),
			follow: camera.NewFollowController(player, t.CameraOptions()...),
		}
		sc.ClearBehaviors()
		sc.AddBehavior(scene.PhaseCharacters, r.character)
		sc.AddBehavior(scene.PhasePhysics, scene.BehaviorFunc(world.Step))
		sc.AddBehavior(scene.PhaseCameras, r.follow)
		cam.SetController(r.follow)
		return r
	}
	// current is swapped on the tick goroutine and read by the scroll callback on the window thread.
	var current atomic.Pointer[rig]
	current.Store(build(tuning))
	win.SetScrollCallback(func(delta float32) {
		current.Load().follow.Zoom(delta)
	})

	// ── Engine ──────────────────────────────────────────────────────────
	eng := engine.NewEngine(
		engine.WithWindow(win),
		engine.WithTickRate(tuning.Engine.TickRate),
		engine.WithProfiling(tuning.Engine.Profiling),
		engine.WithScene(0, sc),
	)
	actions.OnPressed(input.ActionQuit, eng.Quit)

	// ── Hot Reload ──────────────────────────────────────────────────────
	// Reloaded tuning is applied on the tick goroutine before the scene updates, so live
	// controllers are replaced between ticks and never mutated.
	var pending atomic.Pointer[config.Tuning]
	if env.WatchTuning && env.TuningPath != "" {
		watcher, err := config.NewWatcher(env.TuningPath)
		if err != nil {
			log.Printf("[Config] tuning watch disabled: %v", err)
		} else {
			defer watcher.Close()
			go func() {
				for {
					select {
					case path, ok := <-watcher.Events:
						if !ok {
							return
						}
						t, err := config.Load(path)
						if err != nil {
							log.Printf("[Config] reload failed: %v", err)
							continue
						}
						t.ApplyEnv(env)
						pending.Store(&t)
						log.Printf("[Config] reloaded %s", path)
					case err, ok := <-watcher.Errors:
						if !ok {
							return
						}
						log.Printf("[Config] watch error: %v", err)
					}
				}
			}()
		}
	}

	eng.SetTickCallback(func(_ float32) {
		if t := pending.Swap(nil); t != nil {
			current.Store(build(*t))
			eng.SetTickRate(t.Engine.TickRate)
		}
		r := current.Load()
		if r.character.Velocity().Len() > 1e-3 {
			r.character.SetDebugIndicatorColor(movingColor)
		} else {
			r.character.SetDebugIndicatorColor(idleColor)
		}
	})

	log.Printf("[Prototype] WASD/arrows move, mouse turns, scroll zooms, Esc quits (tuning: %q)", env.TuningPath)
	eng.Run()

	if err := win.Close(); err != nil {
		log.Printf("[Prototype] close window: %v", err)
	}
}
