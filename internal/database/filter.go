// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package database

import (
	"strings"
	"time"
)

// GameFilter contains filter parameters for game list queries.
// All fields are optional and combine using AND logic.
//
// Filter Dimensions:
//
//  1. Temporal Filtering:
//     - StartDate: Games played on or after this date (nil = no lower bound)
//     - EndDate: Games played on or before this date (nil = no upper bound)
//
//  2. Venue Filtering:
//     - Venue: Case-insensitive substring match on the venue name. Games
//     whose venue reference is dangling have no venue name and therefore
//     never match a venue filter.
//
//  3. Team Filtering:
//     - Team: Case-insensitive substring match against the home OR the
//     away team name.
//
// Date strings arrive at the API as strict YYYY-MM-DD; the handler parses
// them before building a GameFilter, so this struct only carries parsed
// values.
//
// SQL Generation:
// buildConditions() produces parameterized WHERE clauses:
//
//	WHERE 1=1
//	  AND g.date >= ?
//	  AND g.date <= ?
//	  AND v.name ILIKE '%' || ? || '%'
//	  AND (th.name ILIKE '%' || ? || '%' OR ta.name ILIKE '%' || ? || '%')
//
// Thread Safety:
// GameFilter is immutable after creation and safe for concurrent read access.
type GameFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Venue     string
	Team      string
}

// IsEmpty reports whether no filter dimension is set
func (f GameFilter) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil && f.Venue == "" && f.Team == ""
}

// buildConditions builds WHERE clause conditions and args for a game query.
// Returns a clause string starting with "1=1" for safe AND concatenation.
func (f GameFilter) buildConditions() (string, []interface{}) {
	clauses := []string{"1=1"}
	args := []interface{}{}

	if f.StartDate != nil {
		clauses = append(clauses, "g.date >= ?")
		args = append(args, *f.StartDate)
	}

	if f.EndDate != nil {
		clauses = append(clauses, "g.date <= ?")
		args = append(args, *f.EndDate)
	}

	// ILIKE is never true for NULL names, so a venue filter drops games
	// with dangling venue refs, matching the original behavior.
	if f.Venue != "" {
		clauses = append(clauses, "v.name ILIKE '%' || ? || '%'")
		args = append(args, f.Venue)
	}

	if f.Team != "" {
		clauses = append(clauses, "(th.name ILIKE '%' || ? || '%' OR ta.name ILIKE '%' || ? || '%')")
		args = append(args, f.Team, f.Team)
	}

	return strings.Join(clauses, " AND "), args
}
