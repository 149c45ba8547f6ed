// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/pavilion/internal/database"
	"github.com/tomtom215/pavilion/internal/logging"
	"github.com/tomtom215/pavilion/internal/metrics"
	"github.com/tomtom215/pavilion/internal/models"
)

const (
	venuesFile      = "venues.csv"
	gamesFile       = "games.csv"
	simulationsFile = "simulations.csv"

	dateLayout = "2006-01-02"
)

// gameRow is a parsed games.csv row before team-name resolution.
type gameRow struct {
	homeTeam string
	awayTeam string
	date     time.Time
	venueID  int64
}

// simRow is a parsed simulations.csv row before fan-out.
type simRow struct {
	teamID   int64
	teamName string
	runIndex int
	results  int
	line     int
}

// Load reads and resolves the three CSV files in dir into a Dataset
// ready for database.LoadDataset. See the package documentation for the
// registry and fan-out rules.
func Load(dir string) (*database.Dataset, error) {
	start := time.Now()

	venues, err := loadVenues(filepath.Join(dir, venuesFile))
	if err != nil {
		return nil, err
	}
	gameRows, err := loadGames(filepath.Join(dir, gamesFile))
	if err != nil {
		return nil, err
	}
	simRows, err := loadSimulations(filepath.Join(dir, simulationsFile))
	if err != nil {
		return nil, err
	}

	teams, byName := buildRegistry(simRows, gameRows)
	games := resolveGames(gameRows, byName)
	runs := fanOut(simRows, games)

	metrics.RecordIngest(time.Since(start), len(venues), len(teams), len(games), len(runs))

	logging.Info().
		Str("dir", dir).
		Int("venues", len(venues)).
		Int("teams", len(teams)).
		Int("games", len(games)).
		Int("simulation_runs", len(runs)).
		Dur("elapsed", time.Since(start)).
		Msg("Dataset parsed")

	return &database.Dataset{
		Venues: venues,
		Teams:  teams,
		Games:  games,
		Runs:   runs,
	}, nil
}

func loadVenues(path string) ([]models.Venue, error) {
	rows, err := readCSV(path, []string{"venue_id", "venue_name"})
	if err != nil {
		return nil, err
	}

	venues := make([]models.Venue, 0, len(rows))
	for i, rec := range rows {
		line := i + 2 // header is line 1
		id, err := parseInt64(path, line, "venue_id", rec[0])
		if err != nil {
			return nil, err
		}
		venues = append(venues, models.Venue{ID: id, Name: strings.TrimSpace(rec[1])})
	}
	return venues, nil
}

func loadGames(path string) ([]gameRow, error) {
	rows, err := readCSV(path, []string{"home_team", "away_team", "date", "venue_id"})
	if err != nil {
		return nil, err
	}

	games := make([]gameRow, 0, len(rows))
	for i, rec := range rows {
		line := i + 2
		date, err := parseDate(path, line, rec[2])
		if err != nil {
			return nil, err
		}
		venueID, err := parseInt64(path, line, "venue_id", rec[3])
		if err != nil {
			return nil, err
		}
		games = append(games, gameRow{
			homeTeam: strings.TrimSpace(rec[0]),
			awayTeam: strings.TrimSpace(rec[1]),
			date:     date,
			venueID:  venueID,
		})
	}
	return games, nil
}

func loadSimulations(path string) ([]simRow, error) {
	rows, err := readCSV(path, []string{"team_id", "team", "simulation_run", "results"})
	if err != nil {
		return nil, err
	}

	sims := make([]simRow, 0, len(rows))
	for i, rec := range rows {
		line := i + 2
		teamID, err := parseInt64(path, line, "team_id", rec[0])
		if err != nil {
			return nil, err
		}
		runIndex, err := parseInt(path, line, "simulation_run", rec[2])
		if err != nil {
			return nil, err
		}
		results, err := parseInt(path, line, "results", rec[3])
		if err != nil {
			return nil, err
		}
		sims = append(sims, simRow{
			teamID:   teamID,
			teamName: strings.TrimSpace(rec[1]),
			runIndex: runIndex,
			results:  results,
			line:     line,
		})
	}
	return sims, nil
}

// buildRegistry assembles the team registry: simulations.csv pairs
// first (in file order, first occurrence of an id wins), then fresh ids
// above the maximum for team names seen only in games.csv.
func buildRegistry(sims []simRow, games []gameRow) ([]models.Team, map[string]int64) {
	var teams []models.Team
	byID := make(map[int64]string)
	byName := make(map[string]int64)
	var maxID int64

	for _, s := range sims {
		if _, ok := byID[s.teamID]; ok {
			continue
		}
		byID[s.teamID] = s.teamName
		if _, ok := byName[s.teamName]; !ok {
			byName[s.teamName] = s.teamID
		}
		if s.teamID > maxID {
			maxID = s.teamID
		}
		teams = append(teams, models.Team{ID: s.teamID, Name: s.teamName})
	}

	for _, g := range games {
		for _, name := range []string{g.homeTeam, g.awayTeam} {
			if _, ok := byName[name]; ok {
				continue
			}
			maxID++
			byName[name] = maxID
			teams = append(teams, models.Team{ID: maxID, Name: name})
			logging.Debug().Str("team", name).Int64("team_id", maxID).Msg("Registered game-only team")
		}
	}

	return teams, byName
}

// resolveGames assigns sequential ids in file order and resolves both
// sides through the registry. The registry is total over game teams by
// construction, so resolution cannot fail.
func resolveGames(rows []gameRow, byName map[string]int64) []database.GameRecord {
	games := make([]database.GameRecord, 0, len(rows))
	for i, g := range rows {
		games = append(games, database.GameRecord{
			ID:         int64(i + 1),
			HomeTeamID: byName[g.homeTeam],
			AwayTeamID: byName[g.awayTeam],
			Date:       g.date,
			VenueID:    g.venueID,
		})
	}
	return games
}

// fanOut expands each simulation row to every game its team plays in.
// Rows whose team matches no game, and duplicate (game, team, run)
// combinations, are skipped with a warning.
func fanOut(sims []simRow, games []database.GameRecord) []models.SimulationRun {
	gamesByTeam := make(map[int64][]int64)
	for _, g := range games {
		gamesByTeam[g.HomeTeamID] = append(gamesByTeam[g.HomeTeamID], g.ID)
		if g.AwayTeamID != g.HomeTeamID {
			gamesByTeam[g.AwayTeamID] = append(gamesByTeam[g.AwayTeamID], g.ID)
		}
	}

	type runKey struct {
		gameID   int64
		teamID   int64
		runIndex int
	}
	seen := make(map[runKey]bool)

	var runs []models.SimulationRun
	var nextID int64
	for _, s := range sims {
		gameIDs, ok := gamesByTeam[s.teamID]
		if !ok {
			logging.Warn().
				Int64("team_id", s.teamID).
				Str("team", s.teamName).
				Int("line", s.line).
				Msg("Simulation row matches no game, skipping")
			metrics.RecordIngestSkip("unmatched_team")
			continue
		}
		for _, gameID := range gameIDs {
			key := runKey{gameID: gameID, teamID: s.teamID, runIndex: s.runIndex}
			if seen[key] {
				logging.Warn().
					Int64("game_id", gameID).
					Int64("team_id", s.teamID).
					Int("simulation_run", s.runIndex).
					Int("line", s.line).
					Msg("Duplicate simulation run, keeping first")
				metrics.RecordIngestSkip("duplicate_run")
				continue
			}
			seen[key] = true
			nextID++
			runs = append(runs, models.SimulationRun{
				ID:       nextID,
				GameID:   gameID,
				TeamID:   s.teamID,
				TeamName: s.teamName,
				RunIndex: s.runIndex,
				Results:  s.results,
			})
		}
	}
	return runs
}

// readCSV reads all data rows of a CSV file after validating its header.
// Column-count mismatches surface as csv.ParseError with the offending
// line number.
func readCSV(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filepath.Base(path), err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(header)

	got, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s header: %w", filepath.Base(path), err)
	}
	for i, want := range header {
		if strings.TrimSpace(got[i]) != want {
			return nil, fmt.Errorf("failed to parse %s: header column %d is %q, want %q",
				filepath.Base(path), i+1, got[i], want)
		}
	}

	var rows [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func parseInt64(path string, line int, column, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s line %d: %s %q is not an integer",
			filepath.Base(path), line, column, value)
	}
	return n, nil
}

func parseInt(path string, line int, column, value string) (int, error) {
	n, err := parseInt64(path, line, column, value)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// parseDate accepts strict YYYY-MM-DD only. time.Parse tolerates
// unpadded components, so the round-trip check rejects them.
func parseDate(path string, line int, value string) (time.Time, error) {
	s := strings.TrimSpace(value)
	t, err := time.Parse(dateLayout, s)
	if err != nil || t.Format(dateLayout) != s {
		return time.Time{}, fmt.Errorf("failed to parse %s line %d: date %q is not YYYY-MM-DD",
			filepath.Base(path), line, value)
	}
	return t, nil
}
