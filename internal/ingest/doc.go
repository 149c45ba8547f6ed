// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

/*
Package ingest loads the CSV dataset that feeds the dashboard.

A dataset is three files in one directory:

	venues.csv       venue_id,venue_name
	games.csv        home_team,away_team,date,venue_id
	simulations.csv  team_id,team,simulation_run,results

Loading is a pure parse-and-resolve step: Load produces a
database.Dataset which database.LoadDataset then writes in one
transaction. No partially loaded state is ever visible.

# Team registry

simulations.csv supplies explicit (team_id, team) pairs; those form the
team registry. Team names that appear only in games.csv are assigned
fresh ids above the registry's maximum. Every game row resolves its home
and away names through the registry, so all downstream simulation
lookups are keyed by team id rather than by raw name strings.

# Run fan-out and pairing

A simulations.csv row belongs to a team, not a game. Each row fans out
to every game in which its team participates (home or away). A row whose
team id matches no game logs a warning and is skipped; a duplicate
(game, team, simulation_run) combination keeps the first row and skips
the rest.

After fan-out, the run-pairing contract holds: for a given game, two
rows sharing a simulation_run index but belonging to the two different
teams form one simulated match. Run indices present for only one side
are excluded from scores, win percentage, and clustering by the
analytics layer.

# Errors

Malformed input (wrong header, wrong column count, bad integer, bad
date) aborts the load with an error naming the file and line. Dates are
strict YYYY-MM-DD.

When no data directory is configured, SampleDataset supplies a small
deterministic dataset so the dashboard works out of the box.
*/
package ingest
