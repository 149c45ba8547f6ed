// Pavilion - Cricket Match Simulation Analytics Dashboard
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pavilion

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/pavilion/internal/auth"
	"github.com/tomtom215/pavilion/internal/middleware"
)

// Router sets up HTTP routes using the Chi router.
type Router struct {
	handler       *Handler
	middleware    *auth.Middleware
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a new router with all routes configured.
// The Chi middleware factories are built from the security section of
// the handler's config (CORS origins, rate limits).
func NewRouter(handler *Handler, authMiddleware *auth.Middleware) *Router {
	var chiMw *ChiMiddleware
	if handler != nil && handler.config != nil {
		chiMw = NewChiMiddlewareFromSecurity(&handler.config.Security)
	} else {
		chiMw = NewChiMiddleware(nil)
	}

	return &Router{
		handler:       handler,
		middleware:    authMiddleware,
		chiMiddleware: chiMw,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's func(http.Handler) http.Handler.
// This allows handler-func middleware (Authenticate, PrometheusMetrics,
// Compression) to work with Chi's r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// chiPathValue middleware injects Chi URL params into the request so
// handlers using r.PathValue() continue to work. This bridges Chi's
// chi.URLParam() with Go 1.22+'s r.PathValue().
func chiPathValue(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rctx := chi.RouteContext(r.Context())
		if rctx != nil {
			for i, key := range rctx.URLParams.Keys {
				if i < len(rctx.URLParams.Values) {
					r.SetPathValue(key, rctx.URLParams.Values[i])
				}
			}
		}
		next.ServeHTTP(w, r)
	})
}

// SetupChi configures all HTTP routes using the Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(RequestIDWithLogging())      // Add X-Request-ID header with logging context
	r.Use(RequestLogging())            // Per-request debug logging
	r.Use(chimiddleware.RealIP)        // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)     // Recover from panics
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	// ========================
	// Health Endpoints
	// ========================
	// Permissive rate limiting so monitoring tools can poll frequently.
	// No authentication: probes must work before credentials exist.
	r.Route("/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Authentication Endpoints
	// ========================
	// Login has the strictest rate limiting (5 attempts per 5 minutes)
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(APISecurityHeaders())
		r.With(router.chiMiddleware.RateLimitLogin()).Post("/login", router.handler.Login)
	})

	// ========================
	// Core API Endpoints
	// ========================
	// Data endpoints are open: login issues a token, but no route
	// demands one. Annotate attaches claims when a token is present
	// and never rejects.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))
		r.Use(router.handler.perfMon.Middleware)
		r.Use(chiMiddleware(router.middleware.Annotate))

		r.Get("/stats", router.handler.Stats)
		r.Get("/games", router.handler.Games)
		r.Get("/games/filter", router.handler.FilterGames)

		// Per-game endpoints need the {id} param bridged to PathValue.
		// Analytics routes get the permissive cached-read rate limit.
		r.Group(func(r chi.Router) {
			r.Use(chiPathValue)
			r.Get("/games/{id}", router.handler.GameDetails)

			r.Group(func(r chi.Router) {
				r.Use(router.chiMiddleware.RateLimitAnalytics())
				r.Get("/games/{id}/clusters", router.handler.GameClusters)
				r.Get("/games/{id}/features", router.handler.GameFeatures)
			})
		})
	})

	// ========================
	// Prometheus Metrics
	// ========================
	// Scrape endpoint; rate limited but unauthenticated, matching the
	// usual in-cluster Prometheus deployment.
	r.With(router.chiMiddleware.RateLimitHealth()).Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
