// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

// Package database provides the data access layer for Pavilion.
//
// # Overview
//
// This package sits between the application and DuckDB, owning the schema
// for the four domain tables (venues, teams, games, simulations), the
// single-transaction dataset load, and the read queries behind the games,
// filter, detail, clustering and stats endpoints.
//
// # Architecture
//
// The package is organized into domain-specific files:
//
//   - database.go: Connection lifecycle (open, pool, close) and load tracking
//   - database_schema.go: Table and index creation
//   - database_utils.go: Context management, checkpoint, file size
//   - dataset.go: Transactional dataset load (the ingest package's sink)
//   - games.go: Game list, filter, detail and per-game run score queries
//   - filter.go: GameFilter and WHERE clause construction
//   - stats.go: Record counts for the stats endpoint
//   - errors.go: ErrNotFound sentinel and close helpers
//
// # Database Technology
//
// The package uses DuckDB as its analytics database:
//   - OLAP-optimized, well suited to the scan-and-aggregate query shape here
//   - Window functions (the games listing dedups with QUALIFY ROW_NUMBER())
//   - CGO-based driver (github.com/duckdb/duckdb-go/v2)
//
// No DuckDB extensions are used.
//
// # Data Lifecycle
//
// Data is loaded once at startup by the ingest package via LoadDataset,
// inside one transaction, and is read-only afterwards. Every load clears
// the tables first, so restarting a file-backed database is idempotent.
//
// # Concurrency
//
// All exported methods are safe for concurrent use. Queries run through
// the database/sql pool; every operation gets a 30-second timeout when the
// caller's context has no deadline.
//
// # Error Handling
//
//   - Errors are wrapped with context using fmt.Errorf with %w
//   - Missing records return ErrNotFound, checkable with errors.Is
//   - Query timeouts are enforced via context deadlines
package database
