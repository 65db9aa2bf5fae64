package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-motion/engine/camera"
	"github.com/Carmen-Shannon/oxy-motion/engine/character"
	"github.com/Carmen-Shannon/oxy-motion/engine/game_object"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	got, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", got)
	}
}

func TestDefaultsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := Write(path, Default()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != Default() {
		t.Fatalf("round trip = %+v, want %+v", got, Default())
	}
}

func TestLoadOverlaysDefaultsAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeFile(t, path, `
camera:
  mode: offset
  anchor_y_smoothness: 1.5
  rotation_smoothness: -0.2
  vertical_smoothness: 0
  radius: -3
character:
  max_speed: 12
engine:
  tick_rate: 0
`)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := Default()

	tests := []struct {
		name      string
		got, want any
	}{
		{"mode", got.Camera.Mode, "offset"},
		{"anchor y clamped high", got.Camera.AnchorYSmoothness, float32(1)},
		{"rotation clamped low", got.Camera.RotationSmoothness, float32(0)},
		{"explicit zero kept", got.Camera.VerticalSmoothness, float32(0)},
		{"bad radius replaced", got.Camera.Radius, d.Camera.Radius},
		{"untouched key keeps default", got.Camera.AnchorXZSmoothness, d.Camera.AnchorXZSmoothness},
		{"max speed", got.Character.MaxSpeed, float32(12)},
		{"tick rate defaulted", got.Engine.TickRate, d.Engine.TickRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestNormalizeCameraMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want string
	}{
		{"empty selects halo track", "", "halo_track"},
		{"offset kept", "offset", "offset"},
		{"halo track kept", "halo_track", "halo_track"},
		{"unknown falls back", "orbit", "halo_track"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tn := Default()
			tn.Camera.Mode = tt.mode
			tn.Normalize()
			if tn.Camera.Mode != tt.want {
				t.Fatalf("mode = %q, want %q", tn.Camera.Mode, tt.want)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil || !strings.Contains(err.Error(), "config: load") {
		t.Fatalf("missing file error = %v", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "camera: [not, a, map]\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "config: unmarshal") {
		t.Fatalf("bad file error = %v", err)
	}
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	got, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("LoadOrCreate: %v", err)
	}
	if got != Default() {
		t.Fatalf("LoadOrCreate = %+v, want defaults", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("tuning file not created: %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	tn := Default()
	tn.ApplyEnv(Env{})
	if tn != Default() {
		t.Fatalf("empty env changed tuning")
	}
	tn.ApplyEnv(Env{TickRate: 144, Profiling: true})
	if tn.Engine.TickRate != 144 || !tn.Engine.Profiling {
		t.Fatalf("engine = %+v, want tick 144 with profiling", tn.Engine)
	}
}

func TestParseEnv(t *testing.T) {
	t.Setenv("OXY_TUNING_PATH", "/tmp/tuning.yaml")
	t.Setenv("OXY_TICK_RATE", "120")
	t.Setenv("OXY_WATCH_TUNING", "true")

	e, err := LoadEnv()
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if e.TuningPath != "/tmp/tuning.yaml" || e.TickRate != 120 || !e.WatchTuning || e.Profiling {
		t.Fatalf("env = %+v", e)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("OXY_TICK_RATE", "fast")
	_, err := LoadEnv()
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestOptionsApplyTuning(t *testing.T) {
	tn := Default()
	tn.Camera.Mode = "offset"
	tn.Camera.Radius = 9
	tn.Character.MaxSpeed = 7
	tn.Character.MovementSmoothing = 0.5

	rig := camera.NewCameraController(tn.CameraOptions()...)
	if rig.Mode() != camera.FollowModeOffset || rig.Radius() != 9 {
		t.Fatalf("rig mode %v radius %v", rig.Mode(), rig.Radius())
	}

	ctrl := character.NewController(game_object.NewGameObject(), tn.CharacterOptions()...)
	if ctrl.MaxSpeed() != 7 || ctrl.MovementSmoothing() != 0.5 {
		t.Fatalf("controller max speed %v smoothing %v", ctrl.MaxSpeed(), ctrl.MovementSmoothing())
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	writeFile(t, path, "camera: {}\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1\n")
	writeFile(t, path, "camera:\n  radius: 3\n")

	select {
	case got := <-w.Events:
		if filepath.Base(got) != "tuning.yaml" {
			t.Fatalf("event for %s, want tuning.yaml", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event for tuning file")
	}
}

func TestWatcherReportsLastWriteOfBurst(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	writeFile(t, path, "camera: {}\n")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	writeFile(t, path, "camera:\n  radius: 3\n")
	time.Sleep(20 * time.Millisecond)
	writeFile(t, path, "camera:\n  radius: 9\n")

	select {
	case got := <-w.Events:
		tn, err := Load(got)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if tn.Camera.Radius != 9 {
			t.Fatalf("reloaded radius = %v, want 9", tn.Camera.Radius)
		}
	case err := <-w.Errors:
		t.Fatalf("watch error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("no event after the second write")
	}

	select {
	case got := <-w.Events:
		t.Fatalf("burst reported twice, extra event for %s", got)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	writeFile(t, path, "")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	_ = w.Close()
	if _, ok := <-w.Events; ok {
		t.Fatalf("Events still open after Close")
	}
}
