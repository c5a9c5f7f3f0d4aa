// Package httpserver wraps net/http with graceful shutdown for the toast
// delivery server.
//
// The server deliberately sets no write timeout: the SSE stream endpoint
// keeps its response open for the lifetime of the client connection, and a
// server-wide write deadline would cut every stream off mid-session. Slow
// clients are bounded by the read and idle timeouts instead.
//
// # Usage
//
//	srv := httpserver.New(
//		httpserver.WithAddr(":8080"),
//		httpserver.WithShutdownTimeout(10*time.Second),
//	)
//	if err := srv.Run(ctx, router); err != nil {
//		slog.Error("server stopped", "err", err)
//	}
//
// Run blocks until ctx is cancelled or an interrupt/TERM signal arrives,
// then drains in-flight requests. Listen failures are wrapped with ErrStart,
// shutdown failures with ErrShutdown; inspect them with errors.Is.
package httpserver
