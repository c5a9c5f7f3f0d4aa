package stack

import (
	"log/slog"
	"time"
)

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger shared with the lifecycle controllers.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithDefaultDuration overrides the countdown applied to notifications
// enqueued with a negative duration.
func WithDefaultDuration(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.defaultDuration = d
		}
	}
}

// WithMaxVisible caps how many toasts a position bucket shows at once.
// Enqueues beyond the cap are parked in a FIFO pending queue. Default is 5.
func WithMaxVisible(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.maxVisible = n
		}
	}
}

// WithExitDuration overrides the exit transition window applied to every
// controller.
func WithExitDuration(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.exitDuration = d
		}
	}
}

// WithProgressInterval overrides the progress sampling interval applied to
// every controller.
func WithProgressInterval(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.progressInterval = d
		}
	}
}

// WithStaggerStep overrides the per-index entrance stagger step.
func WithStaggerStep(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.staggerStep = d
		}
	}
}

// WithEventBuffer sets the per-subscriber event channel buffer. Default is
// 64.
func WithEventBuffer(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.eventBuffer = n
		}
	}
}

// WithIDGenerator replaces the default UUID generator, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// WithProgressEvents toggles publishing of EventProgress samples to
// subscribers. Enabled by default.
func WithProgressEvents(enabled bool) Option {
	return func(m *Manager) {
		m.progressEvents = enabled
	}
}
