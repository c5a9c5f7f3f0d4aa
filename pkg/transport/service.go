package transport

import (
	"log/slog"

	"github.com/pazarplus/toastkit/pkg/stack"
	"github.com/pazarplus/toastkit/pkg/theme"
)

// Service wires the stack manager and theme to the HTTP surface.
type Service struct {
	manager *stack.Manager
	theme   *theme.Theme
	logger  *slog.Logger
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithTheme overrides the built-in theme.
func WithTheme(t *theme.Theme) ServiceOption {
	return func(s *Service) {
		if t != nil {
			s.theme = t
		}
	}
}

// WithLogger sets the logger for request handling failures.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates the HTTP surface for a stack manager.
func NewService(manager *stack.Manager, opts ...ServiceOption) *Service {
	s := &Service{
		manager: manager,
		theme:   theme.New(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
