package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/Carmen-Shannon/oxy-motion/common"
	"github.com/Carmen-Shannon/oxy-motion/engine/camera"
	"github.com/Carmen-Shannon/oxy-motion/engine/character"
	"gopkg.in/yaml.v3"
)

// Vec3 is a YAML-friendly vector.
type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Tuning is the prototype's tuning file. Keys missing from the file keep their defaults.
type Tuning struct {
	Camera    CameraTuning    `yaml:"camera"`
	Character CharacterTuning `yaml:"character"`
	Engine    EngineTuning    `yaml:"engine"`
	Window    WindowTuning    `yaml:"window"`
}

// CameraTuning configures the follow rig.
type CameraTuning struct {
	Mode               string  `yaml:"mode"`
	Radius             float32 `yaml:"radius"`
	ZoomSpeed          float32 `yaml:"zoom_speed"`
	AnchorHeight       float32 `yaml:"anchor_height"`
	AnchorXZSmoothness float32 `yaml:"anchor_xz_smoothness"`
	AnchorYSmoothness  float32 `yaml:"anchor_y_smoothness"`
	RotationSmoothness float32 `yaml:"rotation_smoothness"`
	CameraOffset       Vec3    `yaml:"camera_offset"`
	PositionSmoothness float32 `yaml:"position_smoothness"`
	LookAtOffset       Vec3    `yaml:"look_at_offset"`
	VerticalSmoothness float32 `yaml:"vertical_smoothness"`
	FovDegrees         float32 `yaml:"fov_degrees"`
}

// CharacterTuning configures the character controller and its collision body.
type CharacterTuning struct {
	MaxSpeed          float32 `yaml:"max_speed"`
	MovementSmoothing float32 `yaml:"movement_smoothing"`
	RotationSpeed     float32 `yaml:"rotation_speed"`
	BodyRadius        float32 `yaml:"body_radius"`
	AccumulateMotion  bool    `yaml:"accumulate_motion"`
}

// EngineTuning configures the tick loop.
type EngineTuning struct {
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`
}

// WindowTuning configures the window.
type WindowTuning struct {
	Title         string `yaml:"title"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	CaptureCursor bool   `yaml:"capture_cursor"`
}

// Default returns the built-in tuning.
func Default() Tuning {
	return Tuning{
		Camera: CameraTuning{
			Mode:               camera.FollowModeHaloTrack.String(),
			Radius:             6,
			ZoomSpeed:          0.5,
			AnchorHeight:       4,
			AnchorXZSmoothness: 0.995,
			AnchorYSmoothness:  0.9,
			RotationSmoothness: 0.995,
			CameraOffset:       Vec3{Y: 4, Z: -6},
			PositionSmoothness: 0.995,
			LookAtOffset:       Vec3{Y: 1},
			VerticalSmoothness: 0.9,
			FovDegrees:         75,
		},
		Character: CharacterTuning{
			MaxSpeed:          1000,
			MovementSmoothing: 0.995,
			RotationSpeed:     0.5,
			BodyRadius:        0.5,
		},
		Engine: EngineTuning{
			TickRate: 60,
		},
		Window: WindowTuning{
			Title:         "oxy-motion",
			Width:         1280,
			Height:        720,
			CaptureCursor: true,
		},
	}
}

// Load reads a tuning file over the defaults and normalizes it. An empty path returns the defaults.
//
// Parameters:
//   - path: the YAML file to read
//
// Returns:
//   - Tuning: the loaded tuning
//   - error: error if the file cannot be read or parsed
func Load(path string) (Tuning, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	t.Normalize()
	return t, nil
}

// LoadOrCreate loads path, writing the defaults there first if the file does not exist.
func LoadOrCreate(path string) (Tuning, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := Write(path, Default()); err != nil {
			return Tuning{}, err
		}
		log.Printf("[Config] wrote default tuning to %s", path)
	}
	return Load(path)
}

// Write stores t as YAML at path.
func Write(path string, t Tuning) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("config: marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// Normalize clamps smoothness values into [0, 1] and replaces unusable values with defaults,
// logging each correction.
func (t *Tuning) Normalize() {
	d := Default()

	if mode, ok := camera.ParseFollowMode(t.Camera.Mode); !ok {
		log.Printf("[Config] unknown camera mode %q, using %s", t.Camera.Mode, d.Camera.Mode)
		t.Camera.Mode = d.Camera.Mode
	} else {
		t.Camera.Mode = mode.String()
	}
	t.Camera.Radius = positive("camera radius", t.Camera.Radius, d.Camera.Radius)
	t.Camera.ZoomSpeed = positive("zoom speed", t.Camera.ZoomSpeed, d.Camera.ZoomSpeed)
	t.Camera.FovDegrees = positive("camera fov", t.Camera.FovDegrees, d.Camera.FovDegrees)
	t.Camera.AnchorXZSmoothness = common.ClampSmoothness("anchor xz", t.Camera.AnchorXZSmoothness)
	t.Camera.AnchorYSmoothness = common.ClampSmoothness("anchor y", t.Camera.AnchorYSmoothness)
	t.Camera.RotationSmoothness = common.ClampSmoothness("rotation", t.Camera.RotationSmoothness)
	t.Camera.PositionSmoothness = common.ClampSmoothness("position", t.Camera.PositionSmoothness)
	t.Camera.VerticalSmoothness = common.ClampSmoothness("vertical", t.Camera.VerticalSmoothness)

	t.Character.MaxSpeed = positive("max speed", t.Character.MaxSpeed, d.Character.MaxSpeed)
	t.Character.BodyRadius = positive("body radius", t.Character.BodyRadius, d.Character.BodyRadius)
	t.Character.MovementSmoothing = common.ClampSmoothness("movement", t.Character.MovementSmoothing)

	if t.Engine.TickRate <= 0 {
		t.Engine.TickRate = d.Engine.TickRate
	}
	t.Window.Title = common.Coalesce(t.Window.Title, d.Window.Title)
	if t.Window.Width <= 0 || t.Window.Height <= 0 {
		t.Window.Width, t.Window.Height = d.Window.Width, d.Window.Height
	}
}

// ApplyEnv layers environment overrides on top of the file.
func (t *Tuning) ApplyEnv(e Env) {
	if e.TickRate > 0 {
		t.Engine.TickRate = e.TickRate
	}
	if e.Profiling {
		t.Engine.Profiling = true
	}
}

// CameraOptions converts the camera section into follow rig options.
func (t Tuning) CameraOptions() []camera.CameraControllerOption {
	c := t.Camera
	mode, _ := camera.ParseFollowMode(c.Mode)
	return []camera.CameraControllerOption{
		camera.WithMode(mode),
		camera.WithRadius(c.Radius),
		camera.WithZoomSpeed(c.ZoomSpeed),
		camera.WithAnchorHeight(c.AnchorHeight),
		camera.WithAnchorSmoothness(c.AnchorXZSmoothness, c.AnchorYSmoothness),
		camera.WithRotationSmoothness(c.RotationSmoothness),
		camera.WithCameraOffset(c.CameraOffset.X, c.CameraOffset.Y, c.CameraOffset.Z),
		camera.WithPositionSmoothness(c.PositionSmoothness),
		camera.WithLookAtOffset(c.LookAtOffset.X, c.LookAtOffset.Y, c.LookAtOffset.Z),
		camera.WithVerticalSmoothness(c.VerticalSmoothness),
	}
}

// CharacterOptions converts the character section into controller options.
func (t Tuning) CharacterOptions() []character.ControllerBuilderOption {
	c := t.Character
	return []character.ControllerBuilderOption{
		character.WithMaxSpeed(c.MaxSpeed),
		character.WithMovementSmoothing(c.MovementSmoothing),
		character.WithRotationSpeed(c.RotationSpeed),
	}
}

func positive(name string, v, fallback float32) float32 {
	if v > 0 {
		return v
	}
	log.Printf("[Config] %s %v must be positive, using %v", name, v, fallback)
	return fallback
}
