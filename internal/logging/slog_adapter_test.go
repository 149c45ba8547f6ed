// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// slogBuffer points the global logger at a buffer and returns an
// slog.Logger routed through the adapter.
func slogBuffer(t *testing.T, level string) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	Init(Config{Level: level, Output: &buf})
	return NewSlogLogger(), &buf
}

func TestSlogHandlerLevels(t *testing.T) {
	slogger, buf := slogBuffer(t, "debug")

	tests := []struct {
		emit  func()
		level string
	}{
		{func() { slogger.Debug("m") }, `"level":"debug"`},
		{func() { slogger.Info("m") }, `"level":"info"`},
		{func() { slogger.Warn("m") }, `"level":"warn"`},
		{func() { slogger.Error("m") }, `"level":"error"`},
	}
	for _, tt := range tests {
		buf.Reset()
		tt.emit()
		if !strings.Contains(buf.String(), tt.level) {
			t.Errorf("expected %s in output: %s", tt.level, buf.String())
		}
	}
}

func TestSlogHandlerAttributes(t *testing.T) {
	slogger, buf := slogBuffer(t, "info")

	slogger.Info("attrs",
		slog.String("service", "http-server"),
		slog.Int("restarts", 2),
		slog.Bool("supervised", true),
		slog.Duration("backoff", 15*time.Second),
	)

	out := buf.String()
	for _, want := range []string{`"service":"http-server"`, `"restarts":2`, `"supervised":true`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSlogHandlerWithAttrs(t *testing.T) {
	_, buf := slogBuffer(t, "info")

	slogger := slog.New(NewSlogHandler().WithAttrs([]slog.Attr{
		slog.String("supervisor", "pavilion"),
	}))
	slogger.Info("pre-configured")

	if !strings.Contains(buf.String(), `"supervisor":"pavilion"`) {
		t.Errorf("pre-configured attr missing: %s", buf.String())
	}
}

func TestSlogHandlerWithGroup(t *testing.T) {
	_, buf := slogBuffer(t, "info")

	slogger := slog.New(NewSlogHandler().WithGroup("suture"))
	slogger.Info("grouped", slog.String("state", "running"))

	if !strings.Contains(buf.String(), `"suture.state":"running"`) {
		t.Errorf("grouped key missing: %s", buf.String())
	}
}

func TestSlogHandlerEnabled(t *testing.T) {
	_, _ = slogBuffer(t, "warn")
	handler := NewSlogHandler()

	if handler.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug should be disabled at warn level")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

func TestNewSlogLoggerRoutesToGlobal(t *testing.T) {
	slogger, buf := slogBuffer(t, "info")

	slogger.Info("via global")

	if !strings.Contains(buf.String(), "via global") {
		t.Errorf("message missing from global output: %s", buf.String())
	}
}
