package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the process environment overrides.
type Env struct {
	// TuningPath is the YAML tuning file. Empty runs on built-in defaults.
	TuningPath string `env:"OXY_TUNING_PATH"`
	// TickRate overrides the tuning file's engine tick rate when positive.
	TickRate float64 `env:"OXY_TICK_RATE" envDefault:"0"`
	// Profiling forces the profiler on.
	Profiling bool `env:"OXY_PROFILING" envDefault:"false"`
	// WatchTuning reloads the tuning file when it changes on disk.
	WatchTuning bool `env:"OXY_WATCH_TUNING" envDefault:"false"`
}

// ParseEnv populates target from environment variables using env struct tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses the OXY_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
