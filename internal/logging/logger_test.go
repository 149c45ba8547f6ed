// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitEmitsJSON(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "debug", Format: "json", Output: &buf})

	Info().Str("venue", "mcg").Msg("dataset loaded")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"venue":"mcg"`, "dataset loaded", `"time"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestInitLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	Init(Config{Level: "warn", Output: &buf})

	Debug().Msg("too quiet")
	Info().Msg("still too quiet")
	Warn().Msg("loud enough")

	out := buf.String()
	if strings.Contains(out, "too quiet") {
		t.Errorf("entries below warn were emitted: %s", out)
	}
	if !strings.Contains(out, "loud enough") {
		t.Errorf("warn entry missing: %s", out)
	}
}

func TestLevelNameLookup(t *testing.T) {
	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"disabled", zerolog.Disabled},
	}
	for _, tt := range tests {
		if got := levelNames[tt.name]; got != tt.want {
			t.Errorf("levelNames[%q] = %v, want %v", tt.name, got, tt.want)
		}
	}

	// Unknown and empty names fall back to info via configure
	var buf bytes.Buffer
	Init(Config{Level: "nonsense", Output: &buf})
	Debug().Msg("filtered")
	Info().Msg("passed")
	if strings.Contains(buf.String(), "filtered") || !strings.Contains(buf.String(), "passed") {
		t.Errorf("unknown level did not default to info: %s", buf.String())
	}
}

func TestEventLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "trace", Output: &buf})

	tests := []struct {
		emit  func()
		level string
	}{
		{func() { Debug().Msg("m") }, `"level":"debug"`},
		{func() { Info().Msg("m") }, `"level":"info"`},
		{func() { Warn().Msg("m") }, `"level":"warn"`},
		{func() { Error().Msg("m") }, `"level":"error"`},
	}
	for _, tt := range tests {
		buf.Reset()
		tt.emit()
		if !strings.Contains(buf.String(), tt.level) {
			t.Errorf("expected %s in output: %s", tt.level, buf.String())
		}
	}
}

func TestWithChildLogger(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Output: &buf})

	child := With().Str("component", "ingest").Logger()
	child.Info().Msg("load started")

	if !strings.Contains(buf.String(), `"component":"ingest"`) {
		t.Errorf("child logger lost its field: %s", buf.String())
	}
}

func TestErrAttachesError(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Output: &buf})

	Err(errors.New("duckdb: table missing")).Msg("query failed")

	if !strings.Contains(buf.String(), "duckdb: table missing") {
		t.Errorf("error field missing: %s", buf.String())
	}
}

func TestConsoleFormatIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Format: "console", Output: &buf})

	Info().Msg("console test")

	if strings.Contains(buf.String(), `"level"`) {
		t.Errorf("console output looks like JSON: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "console test") {
		t.Errorf("message missing from console output: %s", buf.String())
	}
}

func TestNewTestLoggerIsIsolated(t *testing.T) {
	var global, local bytes.Buffer
	Init(Config{Output: &global})

	logger := NewTestLogger(&local)
	logger.Info().Str("k", "v").Msg("isolated")

	if global.Len() != 0 {
		t.Errorf("test logger wrote to the global output: %s", global.String())
	}
	if !strings.Contains(local.String(), "isolated") {
		t.Errorf("test logger output missing: %s", local.String())
	}
}
