package store

import (
	"encoding/json"
	"maps"
	"reflect"
)

// IDField is the reservation key used for removal.
const IDField = "id"

// Reservation is a client-supplied record. Only the id field is interpreted;
// every other field is stored and returned verbatim.
type Reservation map[string]any

// ID returns the record's id and whether the field is present.
func (r Reservation) ID() (any, bool) {
	v, ok := r[IDField]
	return v, ok
}

// Reservations returns the user's reservations, or an empty slice for an
// unknown user. It never creates an entry.
func (m *Memory) Reservations(userID string) []Reservation {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneReservations(m.reservations[userID])
}

// AddReservation appends a shallow copy of rec. Duplicates are allowed.
func (m *Memory) AddReservation(userID string, rec Reservation) []Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := append(m.reservationsEntry(userID), maps.Clone(rec))
	m.reservations[userID] = list
	return cloneReservations(list)
}

// RemoveReservation drops every record whose id equals id and reports how
// many were removed. A user without an entry gets an empty one.
func (m *Memory) RemoveReservation(userID string, id any) ([]Reservation, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.reservationsEntry(userID)
	kept := make([]Reservation, 0, len(list))
	for _, r := range list {
		if v, ok := r.ID(); ok && SameID(v, id) {
			continue
		}
		kept = append(kept, r)
	}
	m.reservations[userID] = kept
	return cloneReservations(kept), len(list) - len(kept)
}

// TouchReservations ensures the user has an entry and returns it unchanged.
func (m *Memory) TouchReservations(userID string) []Reservation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneReservations(m.reservationsEntry(userID))
}

func (m *Memory) reservationsEntry(userID string) []Reservation {
	list, ok := m.reservations[userID]
	if !ok {
		list = []Reservation{}
		m.reservations[userID] = list
	}
	return list
}

// Records are never mutated after insertion, so the copy only covers the slice.
func cloneReservations(list []Reservation) []Reservation {
	out := make([]Reservation, len(list))
	copy(out, list)
	return out
}

// SameID compares two decoded JSON values. Numbers compare by value whatever
// their Go type; strings and booleans never equal a number.
func SameID(a, b any) bool {
	if fa, ok := number(a); ok {
		fb, ok := number(b)
		return ok && fa == fb
	}
	if _, ok := number(b); ok {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
