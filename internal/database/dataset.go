// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tomtom215/pavilion/internal/logging"
	"github.com/tomtom215/pavilion/internal/models"
)

// GameRecord is the storage form of one games.csv row: team names are
// already resolved to registry ids and the date is parsed.
type GameRecord struct {
	ID         int64
	HomeTeamID int64
	AwayTeamID int64
	Date       time.Time
	VenueID    int64
}

// Dataset is a fully parsed and resolved data load, produced by the
// ingest package. Runs carry a GameID because each simulations.csv row
// was fanned out to every game its team participates in; they are
// already deduplicated to one row per (game, team, run).
type Dataset struct {
	Venues []models.Venue
	Teams  []models.Team
	Games  []GameRecord
	Runs   []models.SimulationRun
}

// LoadDataset replaces the database contents with the given dataset
// inside a single transaction. Either the whole dataset becomes visible
// or, on error, nothing changes. On success the load timestamp used by
// the stats and health endpoints is updated.
func (db *DB) LoadDataset(ctx context.Context, ds *Dataset) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin load transaction: %w", err)
	}
	// Rollback is a no-op after a successful commit
	defer func() { _ = tx.Rollback() }()

	// The loader owns the whole dataset, so a load always starts fresh.
	// This is what makes startup idempotent across restarts of a file DB.
	for _, table := range []string{"simulations", "games", "teams", "venues"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertVenues(ctx, tx, ds.Venues); err != nil {
		return err
	}
	if err := insertTeams(ctx, tx, ds.Teams); err != nil {
		return err
	}
	if err := insertGames(ctx, tx, ds.Games); err != nil {
		return err
	}
	if err := insertRuns(ctx, tx, ds.Runs); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dataset load: %w", err)
	}

	db.markLoaded(time.Now())

	logging.Info().
		Int("venues", len(ds.Venues)).
		Int("teams", len(ds.Teams)).
		Int("games", len(ds.Games)).
		Int("simulation_runs", len(ds.Runs)).
		Msg("Dataset loaded")

	return nil
}

func insertVenues(ctx context.Context, tx *sql.Tx, venues []models.Venue) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO venues (id, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare venue insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, v := range venues {
		if _, err := stmt.ExecContext(ctx, v.ID, v.Name); err != nil {
			return fmt.Errorf("failed to insert venue %d (%s): %w", v.ID, v.Name, err)
		}
	}
	return nil
}

func insertTeams(ctx context.Context, tx *sql.Tx, teams []models.Team) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO teams (id, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare team insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, t := range teams {
		if _, err := stmt.ExecContext(ctx, t.ID, t.Name); err != nil {
			return fmt.Errorf("failed to insert team %d (%s): %w", t.ID, t.Name, err)
		}
	}
	return nil
}

func insertGames(ctx context.Context, tx *sql.Tx, games []GameRecord) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO games (id, home_team_id, away_team_id, date, venue_id) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare game insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, g := range games {
		if _, err := stmt.ExecContext(ctx, g.ID, g.HomeTeamID, g.AwayTeamID, g.Date, g.VenueID); err != nil {
			return fmt.Errorf("failed to insert game %d: %w", g.ID, err)
		}
	}
	return nil
}

func insertRuns(ctx context.Context, tx *sql.Tx, runs []models.SimulationRun) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO simulations (id, game_id, team_id, team_name, run_index, results) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare simulation insert: %w", err)
	}
	defer closeQuietly(stmt)

	for _, r := range runs {
		if _, err := stmt.ExecContext(ctx, r.ID, r.GameID, r.TeamID, r.TeamName, r.RunIndex, r.Results); err != nil {
			return fmt.Errorf("failed to insert simulation run %d for game %d: %w", r.RunIndex, r.GameID, err)
		}
	}
	return nil
}
