// Package store holds the per-user favorites and reservations collections.
//
// Everything lives in process memory and is lost on exit. A single Memory
// value is created at startup and handed to the HTTP handlers.
//
// Locking: one RWMutex guards both maps. Each mutation (lazy creation of the
// user entry, the add/remove itself, and the snapshot returned to the caller)
// runs under a single write lock, so concurrent requests for the same user are
// serialized and never lose updates.
package store

import (
	"sync"
)

// Memory is the in-memory backing for both collections.
type Memory struct {
	mu           sync.RWMutex
	favorites    map[string][]string
	reservations map[string][]Reservation
}

func NewMemory() *Memory {
	return &Memory{
		favorites:    map[string][]string{},
		reservations: map[string][]Reservation{},
	}
}

// FavoriteUsers is the number of users with a favorites entry.
func (m *Memory) FavoriteUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.favorites)
}

// ReservationUsers is the number of users with a reservations entry.
func (m *Memory) ReservationUsers() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.reservations)
}
