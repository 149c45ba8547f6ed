// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tomtom215/pavilion/internal/config"
)

func newTestMiddleware(t *testing.T, trustedProxies []string) (*Middleware, *JWTManager) {
	t.Helper()
	mgr, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret:      "test-secret-key-that-is-at-least-32-characters-long",
		SessionTimeout: time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager failed: %v", err)
	}
	return NewMiddleware(mgr, trustedProxies), mgr
}

func okHandler(called *bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	}
}

func TestAuthenticateWithBearerToken(t *testing.T) {
	mw, mgr := newTestMiddleware(t, nil)

	token, err := mgr.GenerateToken("analyst", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	var called bool
	handler := mw.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("expected claims in request context")
		} else if claims.Username != "analyst" {
			t.Errorf("Username = %q, want analyst", claims.Username)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if !called {
		t.Error("handler was not called")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAuthenticateWithCookie(t *testing.T) {
	mw, mgr := newTestMiddleware(t, nil)

	token, err := mgr.GenerateToken("analyst", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	var called bool
	handler := mw.Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec := httptest.NewRecorder()

	handler(rec, req)

	if !called {
		t.Error("handler was not called")
	}
}

func TestAuthenticateMissingToken(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	var called bool
	handler := mw.Authenticate(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if called {
		t.Error("handler should not be called without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	var called bool
	handler := mw.Authenticate(okHandler(&called))

	tests := []struct {
		name   string
		header string
	}{
		{"garbage token", "Bearer not.a.token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty bearer", "Bearer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = false
			req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			handler(rec, req)

			if called {
				t.Error("handler should not be called with an invalid token")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", rec.Code)
			}
		})
	}
}

func TestAnnotateAttachesClaims(t *testing.T) {
	mw, mgr := newTestMiddleware(t, nil)

	token, err := mgr.GenerateToken("analyst", "admin")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	handler := mw.Annotate(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("expected claims in request context")
		} else if claims.Username != "analyst" {
			t.Errorf("Username = %q, want analyst", claims.Username)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestAnnotateNeverRejects(t *testing.T) {
	mw, _ := newTestMiddleware(t, nil)

	tests := []struct {
		name   string
		header string
	}{
		{"no token", ""},
		{"garbage token", "Bearer not.a.token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			handler := mw.Annotate(func(w http.ResponseWriter, r *http.Request) {
				called = true
				if _, ok := ClaimsFromContext(r.Context()); ok {
					t.Error("claims attached without a valid token")
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/games", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			if !called {
				t.Error("handler was not called")
			}
			if rec.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	mw, mgr := newTestMiddleware(t, nil)

	tests := []struct {
		name       string
		tokenRole  string
		required   string
		wantStatus int
	}{
		{"exact role", "viewer", "viewer", http.StatusOK},
		{"admin passes any check", "admin", "viewer", http.StatusOK},
		{"insufficient role", "viewer", "admin", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := mgr.GenerateToken("analyst", tt.tokenRole)
			if err != nil {
				t.Fatalf("GenerateToken failed: %v", err)
			}

			var called bool
			handler := mw.RequireRole(tt.required, okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			rec := httptest.NewRecorder()

			handler(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if (tt.wantStatus == http.StatusOK) != called {
				t.Errorf("handler called = %v, want %v", called, tt.wantStatus == http.StatusOK)
			}
		})
	}
}

func TestClientIPTrustedProxy(t *testing.T) {
	tests := []struct {
		name       string
		trusted    []string
		remoteAddr string
		xff        string
		want       string
	}{
		{"no proxies ignores XFF", nil, "10.0.0.5:1234", "203.0.113.9", "10.0.0.5"},
		{"untrusted peer ignores XFF", []string{"10.0.0.1"}, "10.0.0.5:1234", "203.0.113.9", "10.0.0.5"},
		{"trusted proxy honors XFF", []string{"10.0.0.5"}, "10.0.0.5:1234", "203.0.113.9", "203.0.113.9"},
		{"XFF first hop wins", []string{"10.0.0.5"}, "10.0.0.5:1234", "203.0.113.9, 10.0.0.5", "203.0.113.9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw, _ := newTestMiddleware(t, tt.trusted)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.xff != "" {
				req.Header.Set("X-Forwarded-For", tt.xff)
			}

			if got := mw.clientIP(req); got != tt.want {
				t.Errorf("clientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
