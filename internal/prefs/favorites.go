package prefs

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/store"
)

// Favorites is the persisted favorites set, kept in insertion order.
type Favorites struct {
	kv     domain.KeyValueStore
	logger *slog.Logger
	mu     sync.Mutex
}

// NewFavorites creates a favorites store.
func NewFavorites(kv domain.KeyValueStore, logger *slog.Logger) *Favorites {
	if logger == nil {
		logger = slog.Default()
	}
	return &Favorites{kv: kv, logger: logger}
}

// FromRecord copies the display fields a favorite needs.
func FromRecord(r domain.MediaRecord) domain.FavoriteEntry {
	return domain.FavoriteEntry{
		ID:          r.ID,
		Title:       r.Title,
		Overview:    r.Overview,
		ReleaseDate: r.ReleaseDate,
		Rating:      r.Rating,
		ImageURL:    r.ImageURL,
		Quality:     r.Quality,
	}
}

func (f *Favorites) load() []domain.FavoriteEntry {
	var entries []domain.FavoriteEntry
	if !store.GetJSON(f.kv, domain.KeyFavorites, &entries) {
		return []domain.FavoriteEntry{}
	}
	return entries
}

// List returns the favorites in the order they were added.
func (f *Favorites) List() []domain.FavoriteEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Contains reports whether id is a favorite.
func (f *Favorites) Contains(id int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.ContainsFunc(f.load(), func(e domain.FavoriteEntry) bool { return e.ID == id })
}

// Toggle removes the entry if present, otherwise appends it. Returns true
// when the entry is a favorite afterwards.
func (f *Favorites) Toggle(entry domain.FavoriteEntry) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries := f.load()
	idx := slices.IndexFunc(entries, func(e domain.FavoriteEntry) bool { return e.ID == entry.ID })

	added := idx < 0
	if added {
		entries = append(entries, entry)
	} else {
		entries = slices.Delete(entries, idx, idx+1)
	}

	if err := store.SetJSON(f.kv, domain.KeyFavorites, entries); err != nil {
		f.logger.Error("failed to save favorites", "error", err)
		return !added, err
	}
	f.logger.Debug("toggled favorite", "id", entry.ID, "favorite", added)
	return added, nil
}
