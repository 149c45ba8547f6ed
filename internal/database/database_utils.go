// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package database

import (
	"context"
	"fmt"
	"os"
	"time"
)

// defaultQueryTimeout bounds queries whose caller passed a context with
// no deadline of its own.
const defaultQueryTimeout = 30 * time.Second

// ensureContext guarantees every query runs under a deadline. Callers
// always get a cancel func back; when the incoming context already has
// a deadline it is a no-op.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaultQueryTimeout)
}

// Checkpoint flushes DuckDB's WAL into the database file so the on-disk
// state is consistent. The checkpoint service calls this periodically
// for file-backed databases.
func (db *DB) Checkpoint(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		return fmt.Errorf("checkpoint failed: %w", err)
	}
	return nil
}

// GetDatabasePath returns the configured database location, which is
// ":memory:" for ephemeral databases.
func (db *DB) GetDatabasePath() string {
	return db.cfg.Path
}

// DatabaseSize returns the on-disk size in bytes, or 0 for in-memory
// databases and unreadable paths.
func (db *DB) DatabaseSize() int64 {
	if db.cfg.Path == ":memory:" {
		return 0
	}
	info, err := os.Stat(db.cfg.Path)
	if err != nil {
		return 0
	}
	return info.Size()
}
