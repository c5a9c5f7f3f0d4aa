// Package logger builds configured slog loggers for the toolkit and
// provides typed attribute helpers so log call sites stay consistent
// across packages.
package logger
