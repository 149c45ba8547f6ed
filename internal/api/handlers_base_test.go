// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pavilion/internal/auth"
	"github.com/tomtom215/pavilion/internal/config"
	"github.com/tomtom215/pavilion/internal/database"
	"github.com/tomtom215/pavilion/internal/models"
)

// testConfig returns a config suitable for handler tests: known admin
// credentials, a JWT secret long enough to validate, rate limiting
// disabled, and the conventional clustering defaults.
func testConfig() *config.Config {
	return &config.Config{
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret-key-that-is-at-least-32-characters-long",
			SessionTimeout:    time.Hour,
			AdminUsername:     "admin",
			AdminPassword:     "pavilion-test",
			RateLimitDisabled: true,
		},
		Cache: config.CacheConfig{
			TTL: time.Minute,
		},
		Clustering: config.ClusteringConfig{
			DefaultK:      3,
			MaxK:          10,
			MaxIterations: 300,
			Seed:          42,
		},
	}
}

// testDataset mirrors the database package fixture:
//
//   - Games 1 and 2 are the same fixture (dedup case)
//   - Game 1 has three comparable runs (home wins one of three)
//   - Game 3 has one comparable run (home wins it)
//   - Game 4 has home-side runs only, so no comparable runs
func testDataset() *database.Dataset {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return &database.Dataset{
		Venues: []models.Venue{
			{ID: 1, Name: "Lord's"},
			{ID: 2, Name: "Melbourne Cricket Ground"},
		},
		Teams: []models.Team{
			{ID: 1, Name: "India"},
			{ID: 2, Name: "Australia"},
			{ID: 3, Name: "England"},
		},
		Games: []database.GameRecord{
			{ID: 1, HomeTeamID: 1, AwayTeamID: 2, Date: date(2026, time.July, 12), VenueID: 1},
			{ID: 2, HomeTeamID: 1, AwayTeamID: 2, Date: date(2026, time.July, 12), VenueID: 1},
			{ID: 3, HomeTeamID: 2, AwayTeamID: 3, Date: date(2026, time.December, 26), VenueID: 2},
			{ID: 4, HomeTeamID: 3, AwayTeamID: 1, Date: date(2026, time.August, 1), VenueID: 99},
		},
		Runs: []models.SimulationRun{
			{ID: 1, GameID: 1, TeamID: 1, TeamName: "India", RunIndex: 1, Results: 150},
			{ID: 2, GameID: 1, TeamID: 1, TeamName: "India", RunIndex: 2, Results: 180},
			{ID: 3, GameID: 1, TeamID: 1, TeamName: "India", RunIndex: 3, Results: 90},
			{ID: 4, GameID: 1, TeamID: 2, TeamName: "Australia", RunIndex: 1, Results: 140},
			{ID: 5, GameID: 1, TeamID: 2, TeamName: "Australia", RunIndex: 2, Results: 190},
			{ID: 6, GameID: 1, TeamID: 2, TeamName: "Australia", RunIndex: 3, Results: 95},
			{ID: 7, GameID: 3, TeamID: 2, TeamName: "Australia", RunIndex: 1, Results: 200},
			{ID: 8, GameID: 3, TeamID: 2, TeamName: "Australia", RunIndex: 2, Results: 210},
			{ID: 9, GameID: 3, TeamID: 3, TeamName: "England", RunIndex: 2, Results: 190},
			{ID: 10, GameID: 4, TeamID: 3, TeamName: "England", RunIndex: 1, Results: 120},
		},
	}
}

// setupTestHandler creates a handler backed by an in-memory DuckDB
// loaded with the standard fixture.
func setupTestHandler(t *testing.T) *Handler {
	t.Helper()

	db, err := database.New(&config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "1GB",
	})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	if err := db.LoadDataset(context.Background(), testDataset()); err != nil {
		t.Fatalf("Failed to load test dataset: %v", err)
	}

	cfg := testConfig()
	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		t.Fatalf("Failed to create JWT manager: %v", err)
	}

	return NewHandler(db, cfg, jwtManager)
}

// decodeResponse decodes an API envelope from a recorder, failing the
// test on malformed JSON.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) *models.APIResponse {
	t.Helper()

	var resp models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return &resp
}

// checkErrorCode asserts the response is an error envelope with the
// given status and error code.
func checkErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	if rec.Code != status {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, status, rec.Body.String())
	}
	resp := decodeResponse(t, rec)
	if resp.Status != "error" {
		t.Errorf("response status = %q, want %q", resp.Status, "error")
	}
	if resp.Error == nil {
		t.Fatal("error envelope missing")
	}
	if resp.Error.Code != code {
		t.Errorf("error code = %q, want %q", resp.Error.Code, code)
	}
}

// dataAs re-marshals the envelope's data field into a typed struct.
// The envelope decodes Data as map[string]interface{}, so tests use
// this to get back the concrete shape.
func dataAs(t *testing.T, resp *models.APIResponse, out interface{}) {
	t.Helper()

	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("Failed to re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		t.Fatalf("Failed to decode data: %v", err)
	}
}

// getWithPathID builds a GET request with the {id} path parameter set,
// matching what the chiPathValue bridge produces.
func getWithPathID(path, id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.SetPathValue("id", id)
	return req
}
