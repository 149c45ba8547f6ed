// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

// This file holds HTTP request validation structs with go-playground/validator tags.
// These structs are used to validate incoming API request parameters before processing.
//
// The validation tags follow the go-playground/validator v10 syntax:
//   - required: field must be present and non-zero
//   - min,max: numeric or string length bounds
//   - datetime: value must match the specified time format
//   - omitempty: skip validation if field is empty/zero
//
// Example usage:
//
//	req := FilterGamesRequest{
//	    StartDate: r.URL.Query().Get("start_date"),
//	    Venue:     r.URL.Query().Get("venue"),
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}

package api

// LoginRequestValidation represents the validated request body for the /auth/login endpoint.
// Note: This is named differently from models.LoginRequest to avoid conflicts.
//
// Fields:
//   - Username: Required user login name
//   - Password: Required user password
type LoginRequestValidation struct {
	Username string `validate:"required,min=1,max=100"`
	Password string `validate:"required,min=1,max=200"`
}

// FilterGamesRequest represents the validated query parameters for /games/filter.
//
// Dates are validated for strict YYYY-MM-DD separately (see
// parseDateParam); the datetime tag here rejects grossly malformed
// values early with a field-level message. Venue and team are free-text
// substring filters bounded only in length.
type FilterGamesRequest struct {
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
	Venue     string `validate:"omitempty,max=200"`
	Team      string `validate:"omitempty,max=200"`
}
