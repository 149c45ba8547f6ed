// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/tomtom215/pavilion/internal/logging"
)

type contextKey string

// ClaimsContextKey is the request-context key under which Authenticate
// stores the validated token claims.
const ClaimsContextKey contextKey = "claims"

// Middleware provides JWT token handling for the route tree.
//
// The dashboard's data routes are open: login issues a token but no
// endpoint demands one, matching the original surface. The router
// therefore mounts Annotate, which attaches claims when a valid token
// accompanies the request and passes everything through otherwise.
// Authenticate and RequireRole are the enforcing variants for
// deployments that front the API privately.
//
// Rate limiting and CORS are handled by the Chi middleware stack
// (go-chi/httprate, go-chi/cors); this type only covers token checks.
type Middleware struct {
	jwtManager     *JWTManager
	trustedProxies map[string]bool
}

// NewMiddleware creates authentication middleware.
//
// trustedProxies lists proxy IPs whose X-Forwarded-For / X-Real-IP
// headers are believed when logging the client address of rejected
// requests; headers from any other peer are ignored so clients cannot
// spoof their logged IP.
func NewMiddleware(jwtManager *JWTManager, trustedProxies []string) *Middleware {
	trustedMap := make(map[string]bool)
	for _, proxy := range trustedProxies {
		trustedMap[proxy] = true
	}

	return &Middleware{
		jwtManager:     jwtManager,
		trustedProxies: trustedMap,
	}
}

// Authenticate is middleware that enforces a valid JWT on the request.
// The token is read from the Authorization header (Bearer scheme) or,
// absent that, from the "token" cookie set at login. Validated claims
// are stored in the request context under ClaimsContextKey.
func (m *Middleware) Authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := m.extractToken(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Warn().
				Err(err).
				Str("client_ip", m.clientIP(r)).
				Str("path", r.URL.Path).
				Msg("Token validation failed")
			http.Error(w, "Unauthorized: invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// Annotate is pass-through middleware: when the request carries a valid
// JWT (Bearer header or "token" cookie), the claims land in the request
// context under ClaimsContextKey; when it carries none, or an invalid
// one, the request proceeds without claims. No request is rejected.
func (m *Middleware) Annotate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := m.extractToken(r)
		if err != nil {
			next(w, r)
			return
		}

		claims, err := m.jwtManager.ValidateToken(token)
		if err != nil {
			logging.Debug().
				Err(err).
				Str("client_ip", m.clientIP(r)).
				Str("path", r.URL.Path).
				Msg("Ignoring invalid token on open route")
			next(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// extractToken extracts the JWT from the Authorization header or cookie
func (m *Middleware) extractToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		cookie, err := r.Cookie("token")
		if err != nil {
			return "", fmt.Errorf("unauthorized: missing token")
		}
		return cookie.Value, nil
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("unauthorized: invalid authorization header")
	}

	return parts[1], nil
}

// RequireRole is middleware that enforces a specific role on top of
// Authenticate. Admins pass every role check.
func (m *Middleware) RequireRole(role string, next http.HandlerFunc) http.HandlerFunc {
	return m.Authenticate(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			http.Error(w, "Forbidden: invalid claims", http.StatusForbidden)
			return
		}

		if claims.Role != role && claims.Role != "admin" {
			http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
			return
		}

		next(w, r)
	})
}

// ClaimsFromContext retrieves the claims stored by Authenticate
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}

// clientIP extracts the client IP for logging, honoring forwarding
// headers only when the direct peer is a trusted proxy.
func (m *Middleware) clientIP(r *http.Request) string {
	remoteIP := r.RemoteAddr
	if idx := strings.LastIndex(remoteIP, ":"); idx != -1 {
		remoteIP = remoteIP[:idx]
	}
	remoteIP = strings.Trim(remoteIP, "[]")

	if len(m.trustedProxies) == 0 || !m.trustedProxies[remoteIP] {
		return remoteIP
	}

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.Split(xff, ",")[0])
		if first != "" {
			return first
		}
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return remoteIP
}
