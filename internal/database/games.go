// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/pavilion/internal/models"
)

// gameSelect is the shared projection for game list and detail queries.
// Venue names come from a LEFT JOIN so dangling venue refs surface as NULL.
const gameSelect = `
	SELECT g.id, th.name, ta.name, g.date, v.name
	FROM games g
	JOIN teams th ON g.home_team_id = th.id
	JOIN teams ta ON g.away_team_id = ta.id
	LEFT JOIN venues v ON g.venue_id = v.id`

// ListGames retrieves all games with duplicate fixtures collapsed.
//
// Two rows in games.csv describing the same fixture (same home team, away
// team, venue name and date) appear once in the listing, keeping the
// lowest game id. Deduplication happens on the venue NAME, not the venue
// id, so two ids resolving to the same (or no) venue collapse too. Games
// with dangling venue refs are retained and carry a nil venue.
//
// Results are ordered by game id ascending (file order).
//
// Performance: single windowed query, ~1-5ms for the dataset sizes the
// dashboard works with (hundreds of games).
func (db *DB) ListGames(ctx context.Context) ([]models.Game, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	// QUALIFY filters on the window result; NULL venue names compare
	// equal within a partition, which is exactly what the dedup key needs.
	query := gameSelect + `
	QUALIFY ROW_NUMBER() OVER (PARTITION BY th.name, ta.name, v.name, g.date ORDER BY g.id) = 1
	ORDER BY g.id`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// FilterGames retrieves games matching the given filter, ordered by game
// id ascending. Unlike ListGames, no deduplication is applied: the filter
// view exposes every stored row (original behavior).
func (db *DB) FilterGames(ctx context.Context, filter GameFilter) ([]models.Game, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	conditions, args := filter.buildConditions()
	query := gameSelect + `
	WHERE ` + conditions + `
	ORDER BY g.id`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to filter games: %w", err)
	}
	defer rows.Close()

	return scanGames(rows)
}

// GetGame retrieves a single game row by id.
// Returns ErrNotFound if the game does not exist.
func (db *DB) GetGame(ctx context.Context, id int64) (*models.Game, error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	row := db.conn.QueryRowContext(ctx, gameSelect+` WHERE g.id = ?`, id)

	var (
		game  models.Game
		date  time.Time
		venue sql.NullString
	)
	if err := row.Scan(&game.ID, &game.HomeTeam, &game.AwayTeam, &date, &venue); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}

	game.Date = date.Format("2006-01-02")
	game.Venue = nullableString(venue)
	return &game, nil
}

// GetGameRunScores retrieves the simulated innings totals for one game,
// keyed by run index, split into the home and the away side.
//
// The maps may be empty (game exists but a side has no simulation rows);
// that is data, not an error. Intersecting the two key sets is the
// analytics layer's job. Returns ErrNotFound if the game does not exist.
func (db *DB) GetGameRunScores(ctx context.Context, id int64) (home, away map[int]int, err error) {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	var homeTeamID, awayTeamID int64
	err = db.conn.QueryRowContext(ctx,
		`SELECT home_team_id, away_team_id FROM games WHERE id = ?`, id,
	).Scan(&homeTeamID, &awayTeamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, fmt.Errorf("game %d: %w", id, ErrNotFound)
		}
		return nil, nil, fmt.Errorf("failed to get game %d: %w", id, err)
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT team_id, run_index, results FROM simulations WHERE game_id = ?`, id)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query simulations for game %d: %w", id, err)
	}
	defer rows.Close()

	home = make(map[int]int)
	away = make(map[int]int)
	for rows.Next() {
		var (
			teamID   int64
			runIndex int
			results  int
		)
		if err := rows.Scan(&teamID, &runIndex, &results); err != nil {
			return nil, nil, fmt.Errorf("failed to scan simulation row: %w", err)
		}
		// Two independent checks so a team playing itself fills both sides,
		// same as matching by name would.
		if teamID == homeTeamID {
			home[runIndex] = results
		}
		if teamID == awayTeamID {
			away[runIndex] = results
		}
	}

	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating simulation rows: %w", err)
	}

	return home, away, nil
}

// scanGames scans game list rows into models.
// Initializes with an empty slice so an empty result serializes as [].
func scanGames(rows *sql.Rows) ([]models.Game, error) {
	games := []models.Game{}
	for rows.Next() {
		var (
			game  models.Game
			date  time.Time
			venue sql.NullString
		)
		if err := rows.Scan(&game.ID, &game.HomeTeam, &game.AwayTeam, &date, &venue); err != nil {
			return nil, fmt.Errorf("failed to scan game row: %w", err)
		}
		game.Date = date.Format("2006-01-02")
		game.Venue = nullableString(venue)
		games = append(games, game)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating game rows: %w", err)
	}

	return games, nil
}

// nullableString converts a sql.NullString to a *string for JSON models
func nullableString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
