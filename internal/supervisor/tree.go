// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package supervisor

import (
	"context"
	"log/slog"
	"time"

	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"
)

// TreeConfig tunes suture's restart policy for every supervisor in the
// tree. Zero values fall back to suture's own defaults: threshold 5,
// decay 30s, backoff 15s, shutdown timeout 10s.
type TreeConfig struct {
	FailureThreshold float64       // failures tolerated before backoff kicks in
	FailureDecay     float64       // seconds for the failure count to halve
	FailureBackoff   time.Duration // pause once the threshold is exceeded
	ShutdownTimeout  time.Duration // grace period for services to stop
}

func (c *TreeConfig) applyDefaults() {
	if c.FailureThreshold == 0 {
		c.FailureThreshold = 5.0
	}
	if c.FailureDecay == 0 {
		c.FailureDecay = 30.0
	}
	if c.FailureBackoff == 0 {
		c.FailureBackoff = 15 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
}

// SupervisorTree is Pavilion's two-layer supervision hierarchy:
//
//	pavilion
//	├── storage-layer   database maintenance (WAL checkpointing)
//	└── api-layer       the HTTP server
//
// The split isolates failures: a crashing maintenance loop is restarted
// within the storage layer without touching the API, and vice versa.
type SupervisorTree struct {
	root    *suture.Supervisor
	storage *suture.Supervisor
	api     *suture.Supervisor
	config  TreeConfig
}

// NewSupervisorTree builds the tree. Supervisor lifecycle events are
// emitted through logger via sutureslog, so they land in the same
// stream as application logs.
func NewSupervisorTree(logger *slog.Logger, config TreeConfig) *SupervisorTree {
	config.applyDefaults()

	spec := suture.Spec{
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	// Only the root gets the event hook; children inherit it when added.
	rootSpec := spec
	rootSpec.EventHook = (&sutureslog.Handler{Logger: logger}).MustHook()

	t := &SupervisorTree{
		root:    suture.New("pavilion", rootSpec),
		storage: suture.New("storage-layer", spec),
		api:     suture.New("api-layer", spec),
		config:  config,
	}
	t.root.Add(t.storage)
	t.root.Add(t.api)
	return t
}

// Root exposes the root supervisor for callers that need suture's full
// surface.
func (t *SupervisorTree) Root() *suture.Supervisor {
	return t.root
}

// AddStorageService supervises svc under the storage layer.
func (t *SupervisorTree) AddStorageService(svc suture.Service) suture.ServiceToken {
	return t.storage.Add(svc)
}

// AddAPIService supervises svc under the API layer.
func (t *SupervisorTree) AddAPIService(svc suture.Service) suture.ServiceToken {
	return t.api.Add(svc)
}

// Serve runs the tree and blocks until ctx is canceled.
func (t *SupervisorTree) Serve(ctx context.Context) error {
	return t.root.Serve(ctx)
}

// ServeBackground runs the tree in its own goroutine; the returned
// channel yields the terminal error once the tree stops.
func (t *SupervisorTree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that ignored the shutdown
// timeout, for logging during shutdown diagnostics.
func (t *SupervisorTree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}
