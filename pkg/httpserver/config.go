package httpserver

import "time"

// Config carries the server tunables parsed from the environment.
type Config struct {
	Addr            string        `env:"TOAST_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"TOAST_HTTP_READ_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"TOAST_HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"TOAST_HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// NewFromConfig creates a Server from environment-driven settings. Extra
// options take precedence.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	configOpts := []Option{
		WithAddr(cfg.Addr),
		WithReadTimeout(cfg.ReadTimeout),
		WithIdleTimeout(cfg.IdleTimeout),
		WithShutdownTimeout(cfg.ShutdownTimeout),
	}
	configOpts = append(configOpts, opts...)
	return New(configOpts...)
}
