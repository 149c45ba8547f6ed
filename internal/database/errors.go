// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package database

import (
	"errors"
	"io"
)

// ErrNotFound is returned when a requested record does not exist.
// Callers distinguish it from query failures with errors.Is; the API
// layer maps it to 404 GAME_NOT_FOUND while other errors become 500.
var ErrNotFound = errors.New("record not found")

// closeQuietly is for cleanup paths where a Close error carries no
// actionable information (prepared statements, rows, a connection we
// are abandoning after a failed init).
func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
