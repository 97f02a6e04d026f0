// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// suggestpress server. The composer routes carry CSRF protection; the JSON
// API is open to programmatic callers.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"suggestpress/internal/handlers"
	"suggestpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(composer *handlers.Composer, api *handlers.API, limiter *middleware.RateLimiter, maxBody int64, secureCookies bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler)

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(middleware.MaxBody(maxBody))

		// Composer UI.
		r.Group(func(r chi.Router) {
			r.Use(middleware.NewCSRF(secureCookies))

			r.Get("/", composer.Form)
			r.Get("/example", composer.Example)
			r.Get("/blocks/new", composer.NewBlock)
			r.Post("/preview", composer.Preview)
		})

		r.Route("/api", func(r chi.Router) {
			r.Post("/convert", api.Convert)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
