// Package router sets up the HTTP routes for the API server.
package router

import (
	"github.com/go-chi/chi/v5"

	"github.com/atolldata/islandatlas/internal/store"
)

// SetupRoutes configures all API routes.
func SetupRoutes(r chi.Router, st *store.Store) {
	h := NewHandlers(st)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.Status)
		r.Get("/atolls", h.ListAtolls)
		r.Get("/atolls/{atollID}/islands", h.ListIslands)
		r.Get("/islands/{islandID}", h.GetIsland)
		r.Get("/search", h.Search)
	})
}
