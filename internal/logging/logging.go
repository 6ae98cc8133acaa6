// Package logging provides context-aware structured logging helpers built on
// zerolog. Components retrieve their logger from the request context so that
// fields attached at the CLI boundary (command name, run id) flow through the
// whole calculation pipeline.
package logging

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// defaultLogger is the fallback used when a context carries no logger.
//
//nolint:gochecknoglobals // Fallback logger for contexts created outside the CLI.
var defaultLogger = zerolog.New(zerolog.ConsoleWriter{
	Out:        os.Stderr,
	TimeFormat: time.RFC3339,
}).Level(zerolog.InfoLevel).With().Timestamp().Logger()

// FromContext returns the logger stored in ctx, or a console fallback logger
// when ctx carries none. The returned logger is always usable.
func FromContext(ctx context.Context) zerolog.Logger {
	if ctx == nil {
		return defaultLogger
	}
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return defaultLogger
	}
	return *l
}

// WithContext stores logger in ctx so downstream components can retrieve it
// with FromContext.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// ComponentLogger returns a child logger tagged with a component field.
// Every package logs through a component logger so events can be filtered
// by origin.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
