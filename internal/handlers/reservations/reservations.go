package reservations

import (
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/metrics"
	"github.com/Jeomhps/projet-IAC/restaurant-api/internal/store"
)

// Package reservations provides the per-user table reservations endpoint.
// KISS: keep types small, behavior explicit, and files focused.
//
// This file defines the handler type and constructor only.
// The HTTP methods are implemented in dedicated files:
// - list.go:   Handler.List   (GET /api/reservations)
// - update.go: Handler.Update (POST /api/reservations)

// Store is the subset of the in-memory store the handler needs.
type Store interface {
	Reservations(userID string) []store.Reservation
	AddReservation(userID string, rec store.Reservation) []store.Reservation
	RemoveReservation(userID string, id any) ([]store.Reservation, int)
	TouchReservations(userID string) []store.Reservation
}

// Handler wires reservation endpoints to the store.
type Handler struct {
	store         Store
	defaultUserID string
	metrics       *metrics.Metrics
}

// NewHandler returns a reservations handler. m may be nil.
func NewHandler(s Store, defaultUserID string, m *metrics.Metrics) *Handler {
	return &Handler{store: s, defaultUserID: defaultUserID, metrics: m}
}
