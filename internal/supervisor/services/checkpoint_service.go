// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package services

import (
	"context"
	"time"

	"github.com/tomtom215/pavilion/internal/logging"
)

// Checkpointer matches the database method the checkpoint loop calls,
// satisfied by *database.DB.
type Checkpointer interface {
	Checkpoint(ctx context.Context) error
}

// CheckpointService periodically forces a DuckDB checkpoint so a
// file-backed database stays durable between restarts. Pointless for
// in-memory databases; the caller only adds this service when a file
// path is configured.
//
// A failed checkpoint is logged and retried on the next tick rather
// than crashing the service: the database keeps serving reads either
// way, and transient I/O pressure should not trigger supervisor
// backoff.
type CheckpointService struct {
	db       Checkpointer
	interval time.Duration
	name     string
}

// NewCheckpointService creates a checkpoint loop with the given
// interval. Intervals below one second fall back to five minutes.
func NewCheckpointService(db Checkpointer, interval time.Duration) *CheckpointService {
	if interval < time.Second {
		interval = 5 * time.Minute
	}
	return &CheckpointService{
		db:       db,
		interval: interval,
		name:     "db-checkpoint",
	}
}

// Serve implements suture.Service. Runs until the context is canceled.
func (c *CheckpointService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// One final checkpoint on the way out, best effort
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := c.db.Checkpoint(shutdownCtx); err != nil {
				logging.Warn().Err(err).Msg("Final checkpoint on shutdown failed")
			}
			cancel()
			return ctx.Err()

		case <-ticker.C:
			if err := c.db.Checkpoint(ctx); err != nil {
				logging.Warn().Err(err).Msg("Periodic checkpoint failed")
				continue
			}
			logging.Debug().Msg("Database checkpoint completed")
		}
	}
}

// String implements fmt.Stringer for logging.
func (c *CheckpointService) String() string {
	return c.name
}
