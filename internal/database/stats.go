// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/pavilion/internal/models"
)

// GetStats retrieves system-wide record counts for the dashboard.
//
// This method executes 4 count queries to gather:
//  1. Total venues
//  2. Total teams (registry plus teams synthesized from games.csv)
//  3. Total games (raw row count, before listing dedup)
//  4. Total simulation rows (after per-game fan-out)
//
// plus the last dataset load time and the database file size.
//
// Performance: ~1-5ms; counts on tables of this size are trivial for DuckDB.
// Results are cached with a configurable TTL in the API layer.
func (db *DB) GetStats(ctx context.Context) (*models.Stats, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	stats := &models.Stats{}

	counts := []struct {
		table string
		dest  *int
	}{
		{"venues", &stats.Venues},
		{"teams", &stats.Teams},
		{"games", &stats.Games},
		{"simulations", &stats.SimulationRuns},
	}

	for _, c := range counts {
		if err := db.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}

	stats.LastLoadTime = db.LastLoadTime()
	stats.DatabaseSizeBytes = db.DatabaseSize()

	return stats, nil
}
