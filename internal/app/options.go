package app

import (
	"io"
	"log/slog"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	closer io.Closer
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithCloser registers a resource (usually the *sql.DB) closed by App.Close
func WithCloser(c io.Closer) Option {
	return func(cfg *appConfig) {
		cfg.closer = c
	}
}
