package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config carries the engine tunables. Every field has a working default so
// an empty environment yields a usable engine.
type Config struct {
	// DefaultDuration is the countdown applied to notifications with a
	// negative duration.
	DefaultDuration time.Duration `env:"TOAST_DEFAULT_DURATION" envDefault:"5s"`

	// ExitDuration is the exit transition window.
	ExitDuration time.Duration `env:"TOAST_EXIT_DURATION" envDefault:"300ms"`

	// StaggerStep is the per-index entrance delay for stacked toasts.
	StaggerStep time.Duration `env:"TOAST_STAGGER_STEP" envDefault:"50ms"`

	// ProgressInterval is how often countdown progress is re-sampled.
	ProgressInterval time.Duration `env:"TOAST_PROGRESS_INTERVAL" envDefault:"100ms"`

	// MaxVisible caps simultaneously visible toasts per position bucket.
	MaxVisible int `env:"TOAST_MAX_VISIBLE" envDefault:"5"`

	// EventBuffer is the per-subscriber event channel buffer.
	EventBuffer int `env:"TOAST_EVENT_BUFFER" envDefault:"64"`

	// ThemeFile optionally points at a YAML palette override file.
	ThemeFile string `env:"TOAST_THEME_FILE"`
}

var defaultEnvLoaded sync.Once

// Load parses environment variables into the provided struct based on its
// field tags. A .env file in the working directory is loaded once per
// process before the first parse; a missing file is not an error.
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure. Useful for settings the
// application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
