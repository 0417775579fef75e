package store

import "slices"

// Favorites returns a copy of the user's favorites, or an empty slice for an
// unknown user. It never creates an entry.
func (m *Memory) Favorites(userID string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return cloneFavorites(m.favorites[userID])
}

// AddFavorite appends restaurant unless it is already present.
// The returned bool reports whether the collection changed.
func (m *Memory) AddFavorite(userID, restaurant string) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.favoritesEntry(userID)
	if slices.Contains(list, restaurant) {
		return cloneFavorites(list), false
	}
	list = append(list, restaurant)
	m.favorites[userID] = list
	return cloneFavorites(list), true
}

// RemoveFavorite drops restaurant if present; otherwise it is a no-op.
func (m *Memory) RemoveFavorite(userID, restaurant string) ([]string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.favoritesEntry(userID)
	i := slices.Index(list, restaurant)
	if i < 0 {
		return cloneFavorites(list), false
	}
	list = slices.Delete(list, i, i+1)
	m.favorites[userID] = list
	return cloneFavorites(list), true
}

// TouchFavorites ensures the user has an entry and returns it unchanged.
// Used for POSTs whose action is neither add nor remove.
func (m *Memory) TouchFavorites(userID string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneFavorites(m.favoritesEntry(userID))
}

// favoritesEntry lazily creates the user's entry. Caller holds the write lock.
func (m *Memory) favoritesEntry(userID string) []string {
	list, ok := m.favorites[userID]
	if !ok {
		list = []string{}
		m.favorites[userID] = list
	}
	return list
}

func cloneFavorites(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
