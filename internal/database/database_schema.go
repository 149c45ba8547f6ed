// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
database_schema.go - Database Schema Management

This file manages the DuckDB database schema including table creation
and index management.

Tables:
  - venues: Cricket grounds referenced by games via venue_id
  - teams: Team registry mapping team ids to names. Ids originate from
    simulations.csv; teams that only appear in games.csv get fresh ids
    above the registry maximum (assigned during ingest).
  - games: One row per games.csv line, ids sequential in file order.
    venue_id may reference a venue that does not exist (dangling ref);
    queries LEFT JOIN venues and surface a NULL venue name.
  - simulations: Simulated innings totals, one row per (game, team, run).
    Rows are materialized during ingest by fanning each simulations.csv
    line out to every game its team participates in.

Schema Strategy:
All columns are defined in the initial CREATE TABLE statements and the
loader repopulates every table inside one transaction at startup. The
data is read-only afterwards, so there is no migration machinery.

Index Strategy:
  - games(date) and games(venue_id) for the filter endpoint
  - simulations(game_id) for the per-game detail and clustering queries
  - UNIQUE simulations(game_id, team_id, run_index): at most one result
    per run for a team in a game, which is what makes the aligned
    home/away score arrays in game details well defined
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE TABLE IF NOT EXISTS venues (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL
		);`,

		`CREATE TABLE IF NOT EXISTS teams (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL
		);`,

		// No FOREIGN KEY on venue_id: games.csv may reference venues that
		// are missing from venues.csv and those rows are kept (the venue
		// renders as null).
		`CREATE TABLE IF NOT EXISTS games (
			id BIGINT PRIMARY KEY,
			home_team_id BIGINT NOT NULL,
			away_team_id BIGINT NOT NULL,
			date DATE NOT NULL,
			venue_id BIGINT NOT NULL
		);`,

		// team_name is denormalized from the team registry so raw
		// simulation rows are self-describing.
		`CREATE TABLE IF NOT EXISTS simulations (
			id BIGINT PRIMARY KEY,
			game_id BIGINT NOT NULL,
			team_id BIGINT NOT NULL,
			team_name TEXT NOT NULL,
			run_index INTEGER NOT NULL,
			results INTEGER NOT NULL
		);`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// createIndexes creates database indexes for query optimization
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_games_date ON games(date);`,
		`CREATE INDEX IF NOT EXISTS idx_games_venue_id ON games(venue_id);`,

		`CREATE INDEX IF NOT EXISTS idx_simulations_game_id ON simulations(game_id);`,

		// One result per (game, team, run). The ingest layer deduplicates
		// before inserting; this index enforces the contract.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_simulations_game_team_run ON simulations(game_id, team_id, run_index);`,
	}

	for _, query := range indexes {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute index query: %s: %w", query, err)
		}
	}

	return nil
}
