// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package database

import (
	"context"
	"strings"
	"testing"
	"time"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestFilterGamesNoFilter(t *testing.T) {
	db := setupTestDB(t)
	loadTestDataset(t, db)

	// The filter view exposes every stored row, duplicates included
	games, err := db.FilterGames(context.Background(), GameFilter{})
	checkNoError(t, err)
	checkGameIDs(t, games, []int64{1, 2, 3, 4})
}

func TestFilterGamesByDateRange(t *testing.T) {
	db := setupTestDB(t)
	loadTestDataset(t, db)

	tests := []struct {
		name   string
		filter GameFilter
		want   []int64
	}{
		{
			name:   "start date bound",
			filter: GameFilter{StartDate: datePtr(2026, time.August, 1)},
			want:   []int64{3, 4},
		},
		{
			name:   "end date bound",
			filter: GameFilter{EndDate: datePtr(2026, time.July, 31)},
			want:   []int64{1, 2},
		},
		{
			name: "inclusive range",
			filter: GameFilter{
				StartDate: datePtr(2026, time.July, 12),
				EndDate:   datePtr(2026, time.August, 1),
			},
			want: []int64{1, 2, 4},
		},
		{
			name: "empty range",
			filter: GameFilter{
				StartDate: datePtr(2027, time.January, 1),
			},
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games, err := db.FilterGames(context.Background(), tt.filter)
			checkNoError(t, err)
			checkGameIDs(t, games, tt.want)
		})
	}
}

func TestFilterGamesByVenue(t *testing.T) {
	db := setupTestDB(t)
	loadTestDataset(t, db)

	// Substring, case-insensitive
	games, err := db.FilterGames(context.Background(), GameFilter{Venue: "lord"})
	checkNoError(t, err)
	checkGameIDs(t, games, []int64{1, 2})

	// A venue filter can never match a game whose venue ref is dangling
	games, err = db.FilterGames(context.Background(), GameFilter{Venue: "r"})
	checkNoError(t, err)
	for _, g := range games {
		if g.ID == 4 {
			t.Error("game 4 has a dangling venue ref and must not match a venue filter")
		}
	}
}

func TestFilterGamesByTeam(t *testing.T) {
	db := setupTestDB(t)
	loadTestDataset(t, db)

	// Matches the home OR the away side
	games, err := db.FilterGames(context.Background(), GameFilter{Team: "india"})
	checkNoError(t, err)
	checkGameIDs(t, games, []int64{1, 2, 4})

	games, err = db.FilterGames(context.Background(), GameFilter{Team: "AUS"})
	checkNoError(t, err)
	checkGameIDs(t, games, []int64{1, 2, 3})
}

func TestFilterGamesCombined(t *testing.T) {
	db := setupTestDB(t)
	loadTestDataset(t, db)

	games, err := db.FilterGames(context.Background(), GameFilter{
		Team:      "india",
		StartDate: datePtr(2026, time.August, 1),
	})
	checkNoError(t, err)
	checkGameIDs(t, games, []int64{4})
}

func TestGameFilterIsEmpty(t *testing.T) {
	if !(GameFilter{}).IsEmpty() {
		t.Error("zero GameFilter should be empty")
	}
	if (GameFilter{Team: "x"}).IsEmpty() {
		t.Error("GameFilter with a team should not be empty")
	}
	if (GameFilter{StartDate: datePtr(2026, time.January, 1)}).IsEmpty() {
		t.Error("GameFilter with a start date should not be empty")
	}
}

func TestGameFilterBuildConditions(t *testing.T) {
	t.Run("empty filter", func(t *testing.T) {
		clause, args := GameFilter{}.buildConditions()
		checkStringEqual(t, "clause", clause, "1=1")
		checkIntEqual(t, "len(args)", len(args), 0)
	})

	t.Run("all dimensions", func(t *testing.T) {
		filter := GameFilter{
			StartDate: datePtr(2026, time.January, 1),
			EndDate:   datePtr(2026, time.December, 31),
			Venue:     "lord",
			Team:      "india",
		}
		clause, args := filter.buildConditions()

		for _, want := range []string{"g.date >= ?", "g.date <= ?", "v.name ILIKE", "th.name ILIKE", "ta.name ILIKE"} {
			if !strings.Contains(clause, want) {
				t.Errorf("clause missing %q: %s", want, clause)
			}
		}
		// start, end, venue, team twice (home OR away)
		checkIntEqual(t, "len(args)", len(args), 5)
	})
}
