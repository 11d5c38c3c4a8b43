// Package logging provides zerolog construction and context plumbing for the
// greengauge CLI and HTTP server.
package logging

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format selects the log output encoding.
type Format string

const (
	// FormatConsole is the human-readable console encoder.
	FormatConsole Format = "console"
	// FormatJSON is line-delimited JSON.
	FormatJSON Format = "json"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level string ("debug", "info", ...). Unparseable
	// values fall back to info.
	Level string
	// Format selects console or json output. Defaults to console.
	Format Format
	// Output receives the log stream. Defaults to os.Stderr.
	Output io.Writer
}

// New builds a zerolog.Logger from cfg.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// ComponentLogger returns logger with a "component" field attached.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger when
// none was attached. Engines use this so library callers that don't care
// about logging pay nothing.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a child context carrying logger.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}
