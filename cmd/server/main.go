// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

// Package main is the entry point for the Pavilion server application.
//
// Pavilion is a self-hosted analytics dashboard backend for cricket match
// simulations. It ingests venue, game, and per-simulation score data from
// CSV files into DuckDB and serves a REST API for browsing games, filtering
// by date/venue/team, and clustering simulation outcomes with k-means.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Database: Initialize DuckDB (file-backed or in-memory)
//  3. Dataset: Load CSV data from DATA_DIR, or seed the built-in sample dataset
//  4. Authentication: Configure JWT signing and the auth middleware
//  5. HTTP Server: Chi-routed REST API under /api/v1
//  6. Supervisor: suture v4 tree supervising the HTTP server and checkpoint loop
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml)
//   - Built-in defaults
//
// Key settings:
//   - DATA_DIR: directory containing venues.csv, games.csv, simulations.csv
//     (when unset, a deterministic sample dataset is seeded instead)
//   - DATABASE_PATH: DuckDB file path, or ":memory:" (default)
//   - JWT_SECRET: 32+ character secret for token signing
//   - ADMIN_USERNAME / ADMIN_PASSWORD: credentials for /api/v1/auth/login
//   - PORT: HTTP listen port (default: 1877)
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: the supervisor
// tree stops its services in reverse order, draining in-flight HTTP requests
// and writing a final database checkpoint before exit.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/pavilion/internal/api"
	"github.com/tomtom215/pavilion/internal/auth"
	"github.com/tomtom215/pavilion/internal/config"
	"github.com/tomtom215/pavilion/internal/database"
	"github.com/tomtom215/pavilion/internal/ingest"
	"github.com/tomtom215/pavilion/internal/logging"
	"github.com/tomtom215/pavilion/internal/supervisor"
	"github.com/tomtom215/pavilion/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Msg("Starting Pavilion with supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if err := loadDataset(ctx, db, cfg); err != nil {
		logging.Fatal().Err(err).Msg("Failed to load dataset")
	}

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}
	middleware := auth.NewMiddleware(jwtManager, cfg.Security.TrustedProxies)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED - not recommended for production")
	}

	handler := api.NewHandler(db, cfg, jwtManager)
	router := api.NewRouter(handler, middleware)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	})

	// Checkpointing only matters for file-backed databases; an in-memory
	// database has nothing to persist.
	if db.GetDatabasePath() != ":memory:" {
		tree.AddStorageService(services.NewCheckpointService(db, 5*time.Minute))
		logging.Info().Str("path", db.GetDatabasePath()).Msg("Database checkpoint service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor has fully stopped
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// loadDataset populates the database either from CSV files under
// cfg.Data.Dir or from the built-in sample dataset. The sample dataset is
// used when no data directory is configured, or when seeding is forced.
func loadDataset(ctx context.Context, db *database.DB, cfg *config.Config) error {
	var (
		ds  *database.Dataset
		err error
	)

	if cfg.Data.Dir == "" || cfg.Data.Seed {
		logging.Info().Msg("Seeding built-in sample dataset")
		ds = ingest.SampleDataset()
	} else {
		logging.Info().Str("dir", cfg.Data.Dir).Msg("Loading dataset from CSV files")
		ds, err = ingest.Load(cfg.Data.Dir)
		if err != nil {
			return fmt.Errorf("loading CSV data from %s: %w", cfg.Data.Dir, err)
		}
	}

	if err := db.LoadDataset(ctx, ds); err != nil {
		return fmt.Errorf("loading dataset into database: %w", err)
	}

	logging.Info().
		Int("venues", len(ds.Venues)).
		Int("teams", len(ds.Teams)).
		Int("games", len(ds.Games)).
		Int("runs", len(ds.Runs)).
		Msg("Dataset loaded")
	return nil
}
