// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

// Package services adapts Pavilion's long-running components to the
// suture.Service interface so the supervisor tree can run them.
//
// HTTPServerService wraps *http.Server, turning its blocking
// ListenAndServe into a context-driven Serve with a graceful drain on
// shutdown. CheckpointService periodically flushes DuckDB's WAL for
// file-backed databases, logging checkpoint failures rather than
// crashing out of the loop. Both identify themselves to suture via
// fmt.Stringer, which is how they appear in supervisor log events.
package services
