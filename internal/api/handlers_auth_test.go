// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomtom215/pavilion/internal/models"
)

func loginRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestLoginSuccess(t *testing.T) {
	h := setupTestHandler(t)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(`{"username":"admin","password":"pavilion-test"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200\nbody: %s", rec.Code, rec.Body.String())
	}

	var data models.LoginResponse
	dataAs(t, decodeResponse(t, rec), &data)

	if data.Token == "" {
		t.Error("token missing from login response")
	}
	if data.Message != "Login successful" {
		t.Errorf("message = %q, want %q", data.Message, "Login successful")
	}
	if data.ExpiresAt.IsZero() {
		t.Error("expires_at not set")
	}

	// The token must also arrive as an HttpOnly strict cookie
	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatal("token cookie not set")
	}
	if !cookie.HttpOnly {
		t.Error("token cookie should be HttpOnly")
	}
	if cookie.SameSite != http.SameSiteStrictMode {
		t.Errorf("token cookie SameSite = %v, want Strict", cookie.SameSite)
	}
	if cookie.Value != data.Token {
		t.Error("cookie token differs from response token")
	}

	// The issued token must round-trip through the JWT manager
	claims, err := h.jwtManager.ValidateToken(data.Token)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Username != "admin" {
		t.Errorf("claims.Username = %q, want %q", claims.Username, "admin")
	}
	if claims.Role != "admin" {
		t.Errorf("claims.Role = %q, want %q", claims.Role, "admin")
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username":"admin","password":"wrong"}`},
		{"wrong username", `{"username":"intruder","password":"pavilion-test"}`},
	}

	h := setupTestHandler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, loginRequest(tt.body))

			checkErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
		})
	}
}

func TestLoginInvalidBody(t *testing.T) {
	h := setupTestHandler(t)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(`{not json`))

	checkErrorCode(t, rec, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestLoginMissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty username", `{"username":"","password":"pavilion-test"}`},
		{"empty password", `{"username":"admin","password":""}`},
		{"empty body", `{}`},
	}

	h := setupTestHandler(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Login(rec, loginRequest(tt.body))

			checkErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_ERROR")
		})
	}
}

func TestLoginMethodNotAllowed(t *testing.T) {
	h := setupTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	checkErrorCode(t, rec, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED")
}

func TestLoginWithoutJWTManager(t *testing.T) {
	h := NewHandler(nil, testConfig(), nil)

	rec := httptest.NewRecorder()
	h.Login(rec, loginRequest(`{"username":"admin","password":"pavilion-test"}`))

	checkErrorCode(t, rec, http.StatusInternalServerError, "AUTH_NOT_CONFIGURED")
}
