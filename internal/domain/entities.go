package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ReleaseDateLayout is the calendar date format used by the catalog source.
const ReleaseDateLayout = "2006-01-02"

// MediaKind distinguishes movies from TV shows in watch-state entries
type MediaKind string

const (
	MediaKindMovie MediaKind = "movie"
	MediaKindShow  MediaKind = "tv"
)

// Genre is a genre tag attached to a record
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MediaRecord is one catalog entry. Records are replaced wholesale on
// re-fetch and never patched in place.
type MediaRecord struct {
	ID          int     `json:"id"`           // Unique key
	Title       string  `json:"title"`        // Display title
	Overview    string  `json:"overview"`     // Plot synopsis
	ReleaseDate string  `json:"release_date"` // YYYY-MM-DD
	Runtime     *int    `json:"runtime"`      // Minutes, nil when unknown
	Rating      float64 `json:"vote_average"` // 0-10, 0 = unrated
	Genres      []Genre `json:"genres"`
	ImageURL    string  `json:"backdrop_with_title"` // Card image
	Quality     string  `json:"quality"`

	// Display-only extras
	PosterPath   string `json:"poster_path,omitempty"`
	BackdropPath string `json:"backdrop_path,omitempty"`
	Tagline      string `json:"tagline,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Released parses the release date. The zero time is returned when the
// date is missing or malformed.
func (r MediaRecord) Released() time.Time {
	t, err := time.Parse(ReleaseDateLayout, r.ReleaseDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Year returns the release year (0 if unknown)
func (r MediaRecord) Year() int {
	t := r.Released()
	if t.IsZero() {
		return 0
	}
	return t.Year()
}

// RuntimeMinutes returns the runtime, treating nil as 0
func (r MediaRecord) RuntimeMinutes() int {
	if r.Runtime == nil {
		return 0
	}
	return *r.Runtime
}

// FormattedRuntime returns the runtime in a human-readable format
func (r MediaRecord) FormattedRuntime() string {
	mins := r.RuntimeMinutes()
	if mins <= 0 {
		return ""
	}
	if h := mins / 60; h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins%60)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormattedRating returns "7.8" style ratings, or "NR" when unrated
func (r MediaRecord) FormattedRating() string {
	if r.Rating <= 0 {
		return "NR"
	}
	return fmt.Sprintf("%.1f", r.Rating)
}

// HasGenre reports whether the record carries the genre id
func (r MediaRecord) HasGenre(id int) bool {
	for _, g := range r.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}

// GenreNames returns the genre names in record order
func (r MediaRecord) GenreNames() []string {
	names := make([]string, len(r.Genres))
	for i, g := range r.Genres {
		names[i] = g.Name
	}
	return names
}

// CatalogSnapshot is the full catalog as last fetched, plus the metadata
// needed for the freshness test.
type CatalogSnapshot struct {
	Records       []MediaRecord `json:"records"`
	FetchedAt     time.Time     `json:"fetchedAt"`
	ExpectedTotal int           `json:"expectedTotal"`
}

// IsComplete reports whether every record the source announced is present.
// An incomplete snapshot is never fresh.
func (s CatalogSnapshot) IsComplete() bool {
	return len(s.Records) == s.ExpectedTotal
}

// IsEmpty returns true when the snapshot holds no records
func (s CatalogSnapshot) IsEmpty() bool {
	return len(s.Records) == 0
}

// FavoriteEntry is a denormalized copy of a record's display fields.
// It stays renderable after the catalog cache is cleared and is not
// updated when the catalog record later changes.
type FavoriteEntry struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Rating      float64 `json:"vote_average"`
	ImageURL    string  `json:"backdrop_with_title"`
	Quality     string  `json:"quality"`
}

// WatchStateEntry tracks a title's progress. Entries in state none are
// never stored.
type WatchStateEntry struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	PosterPath string     `json:"poster_path"`
	Kind       MediaKind  `json:"media_type"`
	State      WatchState `json:"watchState"`
	UpdatedAt  int64      `json:"timestamp"` // Unix milliseconds
}

// Updated returns the last-updated time
func (e WatchStateEntry) Updated() time.Time {
	return time.UnixMilli(e.UpdatedAt)
}

// NumericID returns the id as a catalog record id, or false for ids the
// catalog cannot hold
func (e WatchStateEntry) NumericID() (int, bool) {
	id, err := strconv.Atoi(e.ID)
	return id, err == nil
}

// Record rebuilds a displayable record from the stored copy
func (f FavoriteEntry) Record() MediaRecord {
	return MediaRecord{
		ID:          f.ID,
		Title:       f.Title,
		Overview:    f.Overview,
		ReleaseDate: f.ReleaseDate,
		Rating:      f.Rating,
		ImageURL:    f.ImageURL,
		Quality:     f.Quality,
	}
}
