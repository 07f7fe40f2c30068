package state

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/amaumene/cinefinder/internal/constants"
	"github.com/amaumene/cinefinder/internal/database"
	apperrors "github.com/amaumene/cinefinder/internal/errors"
	"github.com/amaumene/cinefinder/internal/models"
	"github.com/amaumene/cinefinder/pkg/logger"
)

// Favorites is the persisted list of movies the user has marked, unique by
// id, in insertion order. Every mutation writes the whole list through to
// the blob store under one fixed key.
type Favorites struct {
	mu      sync.Mutex
	store   database.BlobStore
	key     string
	entries []models.MovieSummary
	logger  logger.Logger
}

// NewFavorites hydrates from store if a record exists, else starts empty.
// An unreadable record is logged and replaced on the next write.
func NewFavorites(ctx context.Context, store database.BlobStore, log logger.Logger) (*Favorites, error) {
	f := &Favorites{
		store:  store,
		key:    constants.FavoritesStorageKey,
		logger: log,
	}

	data, found, err := store.Load(ctx, f.key)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to hydrate favorites", err)
	}
	if !found {
		return f, nil
	}

	var record models.FavoritesRecord
	if err := json.Unmarshal(data, &record); err != nil {
		log.Warnf("[Favorites] ignoring unreadable record under %s: %v", f.key, err)
		return f, nil
	}

	f.entries = dedupe(record.Favorites)
	log.Infof("[Favorites] hydrated %d entries", len(f.entries))
	return f, nil
}

// Toggle removes the entry with movie's id if present, otherwise appends
// movie. It reports whether the movie is a favorite afterwards. If the write
// fails the in-memory list is left as it was.
func (f *Favorites) Toggle(ctx context.Context, movie models.MovieSummary) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	next := make([]models.MovieSummary, 0, len(f.entries)+1)
	removed := false
	for _, e := range f.entries {
		if e.ID == movie.ID {
			removed = true
			continue
		}
		next = append(next, e)
	}
	if !removed {
		next = append(next, movie)
	}

	if err := f.persist(ctx, next); err != nil {
		return f.indexOf(movie.ID) >= 0, err
	}
	f.entries = next
	return !removed, nil
}

func (f *Favorites) IsFavorite(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.indexOf(id) >= 0
}

// List returns a copy of the entries in insertion order.
func (f *Favorites) List() []models.MovieSummary {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.MovieSummary{}, f.entries...)
}

func (f *Favorites) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

func (f *Favorites) indexOf(id int) int {
	for i, e := range f.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (f *Favorites) persist(ctx context.Context, entries []models.MovieSummary) error {
	data, err := json.Marshal(models.FavoritesRecord{Favorites: entries})
	if err != nil {
		return apperrors.NewStorageError("failed to encode favorites", err)
	}
	if err := f.store.Save(ctx, f.key, data); err != nil {
		f.logger.Errorf("[Favorites] failed to persist: %v", err)
		return apperrors.NewStorageError("failed to persist favorites", err)
	}
	return nil
}

// dedupe keeps the first occurrence of each id.
func dedupe(entries []models.MovieSummary) []models.MovieSummary {
	seen := make(map[int]bool, len(entries))
	out := make([]models.MovieSummary, 0, len(entries))
	for _, e := range entries {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
