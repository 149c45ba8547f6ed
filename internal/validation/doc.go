// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

// Package validation wraps go-playground/validator v10 behind a
// thread-safe singleton and translates its field errors into the
// API's error format.
//
// Request structs in the api package declare their constraints with
// `validate` tags; the handlers call ValidateStruct before touching
// the database:
//
//	type FilterGamesRequest struct {
//	    StartDate string `validate:"omitempty,datetime=2006-01-02"`
//	    EndDate   string `validate:"omitempty,datetime=2006-01-02"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// The tags in use are validator built-ins: required, datetime for the
// YYYY-MM-DD filter dates, gte/lte for the clustering k bounds, min/max
// for credential lengths, and oneof for enumerated fields. messageFor
// renders each failure in the same register as the API's other error
// messages ("start_date must be a valid date"), and ToAPIError packs
// one or many failures under the VALIDATION_ERROR code:
//
//	{
//	    "code": "VALIDATION_ERROR",
//	    "message": "Username is required",
//	    "details": {"field": "Username", "tag": "required", "value": ""}
//	}
//
// The singleton validator caches struct reflection metadata, so the
// first validation of each request type pays the reflection cost and
// later ones reuse it. All entry points are safe for concurrent use.
package validation
