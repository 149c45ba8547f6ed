// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package database

import (
	"testing"

	"github.com/tomtom215/pavilion/internal/models"
)

// Test assertion helpers with "check" prefix.
// Using t.Helper() ensures error messages point to the calling line.

// checkNoError fails the test if err is not nil
func checkNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// checkError fails the test if err is nil
func checkError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// checkStringEqual checks that got equals want
func checkStringEqual(t *testing.T, fieldName, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %q, got %q", fieldName, want, got)
	}
}

// checkIntEqual checks that got equals want
func checkIntEqual(t *testing.T, fieldName string, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %d, got %d", fieldName, want, got)
	}
}

// checkGameIDs checks that the games have exactly the wanted ids in order
func checkGameIDs(t *testing.T, games []models.Game, want []int64) {
	t.Helper()
	if len(games) != len(want) {
		t.Fatalf("expected %d games, got %d (want ids %v)", len(want), len(games), want)
	}
	for i, g := range games {
		if g.ID != want[i] {
			t.Errorf("game[%d].ID: expected %d, got %d", i, want[i], g.ID)
		}
	}
}
