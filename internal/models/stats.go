// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package models

import (
	"time"
)

// Stats represents overall dataset statistics as served by /api/v1/stats
type Stats struct {
	Venues            int        `json:"venues"`
	Teams             int        `json:"teams"`
	Games             int        `json:"games"`
	SimulationRuns    int        `json:"simulation_runs"`
	LastLoadTime      *time.Time `json:"last_load_time,omitempty"`
	DatabaseSizeBytes int64      `json:"database_size_bytes"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status            string     `json:"status"`
	Version           string     `json:"version"`
	DatabaseConnected bool       `json:"database_connected"`
	DataLoaded        bool       `json:"data_loaded"`
	LastLoadTime      *time.Time `json:"last_load_time,omitempty"`
	Uptime            float64    `json:"uptime_seconds"`
}
