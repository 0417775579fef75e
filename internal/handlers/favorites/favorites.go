package favorites

import "github.com/Jeomhps/projet-IAC/restaurant-api/internal/metrics"

// Package favorites provides the per-user favorite restaurants endpoint.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are implemented in dedicated files:
// - list.go:   Handler.List   (GET /api/favorites)
// - update.go: Handler.Update (POST /api/favorites)

// Store is the subset of the in-memory store the handler needs.
type Store interface {
	Favorites(userID string) []string
	AddFavorite(userID, restaurant string) ([]string, bool)
	RemoveFavorite(userID, restaurant string) ([]string, bool)
	TouchFavorites(userID string) []string
}

// Handler wires favorites endpoints to the store.
type Handler struct {
	store         Store
	defaultUserID string
	metrics       *metrics.Metrics
}

// NewHandler returns a favorites handler. m may be nil.
func NewHandler(s Store, defaultUserID string, m *metrics.Metrics) *Handler {
	return &Handler{store: s, defaultUserID: defaultUserID, metrics: m}
}
