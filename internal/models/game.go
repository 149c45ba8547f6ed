// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

// Package models defines data structures used throughout the Pavilion application.
// These models represent venues, teams, games, simulation runs, analytics results,
// and API responses.

package models

// Venue represents a cricket ground loaded from venues.csv.
// Venue ids come from the CSV and are referenced by games; a game may
// reference a venue id that was never loaded (dangling ref), in which
// case the game's venue renders as null.
type Venue struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Team represents an entry in the team registry.
//
// The registry is built during ingestion: simulations.csv supplies explicit
// (team_id, team) pairs, and game team names not present there are assigned
// fresh ids above the registry's maximum. Every game resolves its home and
// away sides to registry ids, so simulation lookups are keyed by id rather
// than by raw name strings.
type Team struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Game represents a single match as returned by the games list and filter
// endpoints.
//
// Fields:
//   - ID: Sequential id assigned in games.csv file order
//   - HomeTeam/AwayTeam: Team names as they appear in the CSV
//   - Date: Match date in YYYY-MM-DD format
//   - Venue: Venue name, null when the game references an unknown venue id
//
// The list endpoint de-duplicates games sharing the same
// (home_team, away_team, venue, date) tuple, keeping the lowest id.
type Game struct {
	ID       int64   `json:"id"`
	HomeTeam string  `json:"home_team"`
	AwayTeam string  `json:"away_team"`
	Date     string  `json:"date"`
	Venue    *string `json:"venue"`
}

// GameDetails represents the detail view of a game including its aligned
// per-run simulation scores.
//
// Run pairing contract: SimulationRuns holds the sorted run indices present
// for BOTH teams of this game (the comparable runs); HomeScores[i] and
// AwayScores[i] are the two innings totals simulated for run
// SimulationRuns[i]. Runs simulated for only one side are excluded
// everywhere: scores, win percentage, and clustering.
//
// HomeWinPercentage is the share of comparable runs the home side won,
// expressed 0-100; it is 0 when there are no comparable runs. Ties count
// as non-wins.
type GameDetails struct {
	ID                int64   `json:"id"`
	HomeTeam          string  `json:"home_team"`
	AwayTeam          string  `json:"away_team"`
	Date              string  `json:"date"`
	Venue             *string `json:"venue"`
	SimulationRuns    []int   `json:"simulation_runs"`
	HomeScores        []int   `json:"home_scores"`
	AwayScores        []int   `json:"away_scores"`
	HomeWinPercentage float64 `json:"home_win_percentage"`
}

// SimulationRun represents one simulated innings total for one team in one
// game. A single simulations.csv row fans out to a SimulationRun per game
// the team participates in.
//
// RunIndex identifies the simulation draw; two rows with the same GameID
// and RunIndex but different TeamIDs form the home/away pairing for that
// draw (see GameDetails).
type SimulationRun struct {
	ID       int64  `json:"id"`
	GameID   int64  `json:"game_id"`
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
	RunIndex int    `json:"simulation_run"`
	Results  int    `json:"results"`
}
