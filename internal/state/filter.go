// Package state holds the per-session client state containers: genre and
// search filter, login gate, keyword suggestions, plus the persisted
// favorites list shared by all sessions.
package state

import (
	"sync"

	"github.com/amaumene/cinefinder/internal/models"
)

// FilterState holds the selected genre and the active search result set.
// The two fields are set independently; non-empty search results take
// precedence when the displayed list is derived.
type FilterState struct {
	mu     sync.RWMutex
	genre  *models.Genre
	search []models.MovieSummary
}

func NewFilterState() *FilterState {
	return &FilterState{}
}

// SetGenre replaces the selected genre. nil selects all genres.
func (f *FilterState) SetGenre(genre *models.Genre) {
	var g *models.Genre
	if genre != nil {
		copied := *genre
		g = &copied
	}

	f.mu.Lock()
	f.genre = g
	f.mu.Unlock()
}

// SetSearchResults replaces the search results wholesale. An empty slice
// clears the search override.
func (f *FilterState) SetSearchResults(results []models.MovieSummary) {
	copied := append([]models.MovieSummary{}, results...)

	f.mu.Lock()
	f.search = copied
	f.mu.Unlock()
}

// Snapshot returns a copy of both fields taken under one lock.
func (f *FilterState) Snapshot() models.FilterSnapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()

	snap := models.FilterSnapshot{
		SearchResults: append([]models.MovieSummary{}, f.search...),
	}
	if f.genre != nil {
		g := *f.genre
		snap.SelectedGenre = &g
	}
	return snap
}
