// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/pavilion/internal/models"
)

// Login handles user authentication requests.
//
// Method: POST
// Path: /api/v1/auth/login
//
// Credentials are checked against the configured admin account. On
// success a JWT is returned both in the response body and as an
// HTTP-only cookie, so browser dashboards and API clients can each
// use their preferred transport.
//
// Response:
//   - 200: Authentication successful (token + expiry)
//   - 400: Invalid request body or missing fields
//   - 401: Invalid credentials
//   - 500: JWT manager not configured or token generation failure
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	req, err := h.parseAndValidateLoginRequest(w, r)
	if err != nil {
		return
	}

	if !h.validateAuthConfiguration(w) {
		return
	}

	if !h.authenticateCredentials(w, req) {
		return
	}

	h.generateAndSendToken(w, r, req)
}

// parseAndValidateLoginRequest parses and validates login request body
func (h *Handler) parseAndValidateLoginRequest(w http.ResponseWriter, r *http.Request) (*models.LoginRequest, error) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid request body", err)
		return nil, err
	}

	validationReq := LoginRequestValidation{
		Username: req.Username,
		Password: req.Password,
	}
	if apiErr := validateRequest(&validationReq); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return nil, fmt.Errorf("%s: %s", apiErr.Code, apiErr.Message)
	}

	return &req, nil
}

// validateAuthConfiguration checks if JWT authentication is properly configured
func (h *Handler) validateAuthConfiguration(w http.ResponseWriter) bool {
	if h.config == nil || h.jwtManager == nil {
		respondError(w, http.StatusInternalServerError, "AUTH_NOT_CONFIGURED", "JWT manager not initialized", nil)
		return false
	}
	return true
}

// authenticateCredentials verifies username and password
func (h *Handler) authenticateCredentials(w http.ResponseWriter, req *models.LoginRequest) bool {
	if req.Username != h.config.Security.AdminUsername || req.Password != h.config.Security.AdminPassword {
		respondError(w, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Invalid username or password", nil)
		return false
	}
	return true
}

// generateAndSendToken generates a JWT token and sends the response
func (h *Handler) generateAndSendToken(w http.ResponseWriter, r *http.Request, req *models.LoginRequest) {
	token, err := h.jwtManager.GenerateToken(req.Username, "admin")
	if err != nil {
		respondError(w, http.StatusInternalServerError, "TOKEN_GENERATION_FAILED", "Failed to generate authentication token", err)
		return
	}

	expiresAt := time.Now().Add(h.config.Security.SessionTimeout)

	h.setAuthCookie(w, r, token, expiresAt)
	h.sendLoginResponse(w, token, expiresAt)
}

// setAuthCookie sets the authentication cookie
func (h *Handler) setAuthCookie(w http.ResponseWriter, r *http.Request, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteStrictMode,
	})
}

// sendLoginResponse sends a successful login response
func (h *Handler) sendLoginResponse(w http.ResponseWriter, token string, expiresAt time.Time) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.LoginResponse{
			Token:     token,
			Message:   "Login successful",
			ExpiresAt: expiresAt,
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
