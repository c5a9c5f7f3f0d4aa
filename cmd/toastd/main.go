// Command toastd runs the toast delivery server: a JSON API for enqueuing
// and dismissing notifications, and an SSE stream that pushes the rendered
// toast regions to connected pages.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pazarplus/toastkit/pkg/config"
	"github.com/pazarplus/toastkit/pkg/httpserver"
	"github.com/pazarplus/toastkit/pkg/logger"
	"github.com/pazarplus/toastkit/pkg/stack"
	"github.com/pazarplus/toastkit/pkg/theme"
	"github.com/pazarplus/toastkit/pkg/transport"
)

func main() {
	log := logger.New(logger.WithAttr(slog.String("service", "toastd")))
	logger.SetAsDefault(log)

	var cfg struct {
		Toast config.Config
		HTTP  httpserver.Config
	}
	config.MustLoad(&cfg)

	th := theme.New()
	if cfg.Toast.ThemeFile != "" {
		var err error
		th, err = theme.LoadFile(cfg.Toast.ThemeFile)
		if err != nil {
			log.Error("failed to load theme overrides", logger.Error(err))
			os.Exit(1)
		}
	}

	manager := stack.NewFromConfig(cfg.Toast, stack.WithLogger(log))
	defer manager.Close()

	svc := transport.NewService(manager,
		transport.WithTheme(th),
		transport.WithLogger(log),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler())
	r.Mount("/", svc.Router())

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
