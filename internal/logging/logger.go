// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

// Package logging provides the zerolog-based logging layer shared by
// every Pavilion package.
//
// A single global logger is configured once at startup:
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	logging.Info().Str("dir", dataDir).Msg("Loading dataset")
//	logging.Error().Err(err).Int64("game_id", id).Msg("Query failed")
//
// Log chains must end with .Msg() or .Send(), otherwise nothing is
// emitted. The package also bridges into log/slog (see slog_adapter.go)
// for the suture supervisor, and carries request/correlation IDs through
// request contexts (see context.go).
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config controls the global logger.
type Config struct {
	Level  string // trace, debug, info, warn, error, fatal; default info
	Format string // "json" or "console"; default json
	Caller bool   // annotate entries with file:line

	// Output overrides the destination; nil means os.Stderr. Tests use
	// this to capture entries.
	Output io.Writer
}

var (
	mu  sync.RWMutex
	log zerolog.Logger
)

// The package must be usable before main calls Init; database and
// config errors during early startup still need somewhere to go.
func init() {
	mu.Lock()
	defer mu.Unlock()
	configure(Config{})
}

// Init reconfigures the global logger. Safe to call more than once.
func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	configure(cfg)
}

var levelNames = map[string]zerolog.Level{
	"trace":    zerolog.TraceLevel,
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"warning":  zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"panic":    zerolog.PanicLevel,
	"disabled": zerolog.Disabled,
}

func configure(cfg Config) {
	level, ok := levelNames[strings.ToLower(cfg.Level)]
	if !ok {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	builder := zerolog.New(out).Level(level).With().Timestamp()
	if cfg.Caller {
		builder = builder.Caller()
	}
	log = builder.Logger()
}

// Logger returns the current global logger.
func Logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

// With opens a child-logger context on the global logger:
//
//	ingestLog := logging.With().Str("component", "ingest").Logger()
func With() zerolog.Context {
	return Logger().With()
}

// The event starters bind the logger to a local first: zerolog's
// Debug/Info/... have pointer receivers, which cannot be called on the
// unaddressable value Logger() returns.

// Debug starts a debug-level entry.
func Debug() *zerolog.Event { l := Logger(); return l.Debug() }

// Info starts an info-level entry.
func Info() *zerolog.Event { l := Logger(); return l.Info() }

// Warn starts a warn-level entry.
func Warn() *zerolog.Event { l := Logger(); return l.Warn() }

// Error starts an error-level entry.
func Error() *zerolog.Event { l := Logger(); return l.Error() }

// Fatal starts a fatal-level entry; os.Exit(1) follows the emit.
func Fatal() *zerolog.Event { l := Logger(); return l.Fatal() }

// Err starts an error-level entry with err attached, or an info-level
// entry when err is nil (zerolog's Err semantics).
func Err(err error) *zerolog.Event { l := Logger(); return l.Err(err) }

// NewTestLogger returns an isolated logger writing to w, for asserting
// on log output without touching the global configuration.
func NewTestLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
