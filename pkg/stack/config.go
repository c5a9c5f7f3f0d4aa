package stack

import "github.com/pazarplus/toastkit/pkg/config"

// NewFromConfig creates a Manager from environment-driven settings. Only
// positive values from the config are applied; extra options take
// precedence.
func NewFromConfig(cfg config.Config, opts ...Option) *Manager {
	configOpts := make([]Option, 0, 6)

	if cfg.DefaultDuration > 0 {
		configOpts = append(configOpts, WithDefaultDuration(cfg.DefaultDuration))
	}
	if cfg.ExitDuration > 0 {
		configOpts = append(configOpts, WithExitDuration(cfg.ExitDuration))
	}
	if cfg.StaggerStep > 0 {
		configOpts = append(configOpts, WithStaggerStep(cfg.StaggerStep))
	}
	if cfg.ProgressInterval > 0 {
		configOpts = append(configOpts, WithProgressInterval(cfg.ProgressInterval))
	}
	if cfg.MaxVisible > 0 {
		configOpts = append(configOpts, WithMaxVisible(cfg.MaxVisible))
	}
	if cfg.EventBuffer > 0 {
		configOpts = append(configOpts, WithEventBuffer(cfg.EventBuffer))
	}

	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}
