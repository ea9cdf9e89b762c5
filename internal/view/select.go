package view

import (
	"cmp"
	"slices"
	"strings"

	"github.com/mmcdole/cinedex/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query is the user-selected view state
type Query struct {
	SearchText     string  // case-insensitive substring of title or overview
	RequiredGenres []int   // record must carry every id
	SortKey        SortKey // unknown keys leave the filtered order untouched
}

// IsZero reports whether the query neither filters nor sorts
func (q Query) IsZero() bool {
	return q.SearchText == "" && len(q.RequiredGenres) == 0 && q.SortKey == ""
}

// Selector runs the filter/sort pipeline with a fixed collation language.
// It holds no mutable state and is safe for concurrent use.
type Selector struct {
	lang language.Tag
}

// NewSelector creates a selector collating titles for lang.
func NewSelector(lang language.Tag) *Selector {
	return &Selector{lang: lang}
}

// ParseLocale parses a BCP 47 tag, falling back to English.
func ParseLocale(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}

var defaultSelector = NewSelector(language.English)

// SelectView filters and sorts records using English collation.
func SelectView(records []domain.MediaRecord, q Query) []domain.MediaRecord {
	return defaultSelector.Select(records, q)
}

// Select keeps the records matching both the search text and the genre
// set, then stable-sorts them by q.SortKey. The input is never modified
// and the result is always a new slice.
func (s *Selector) Select(records []domain.MediaRecord, q Query) []domain.MediaRecord {
	out := make([]domain.MediaRecord, 0, len(records))
	if q.IsZero() {
		return append(out, records...)
	}

	needle := strings.ToLower(q.SearchText)
	for _, r := range records {
		if matchesText(r, needle) && matchesGenres(r, q.RequiredGenres) {
			out = append(out, r)
		}
	}

	if cmpFn := s.comparator(q.SortKey); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func matchesText(r domain.MediaRecord, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), needle) ||
		strings.Contains(strings.ToLower(r.Overview), needle)
}

func matchesGenres(r domain.MediaRecord, required []int) bool {
	for _, id := range required {
		if !r.HasGenre(id) {
			return false
		}
	}
	return true
}

func (s *Selector) comparator(key SortKey) func(a, b domain.MediaRecord) int {
	switch key {
	case SortNewest:
		return func(a, b domain.MediaRecord) int { return compareDates(b, a) }
	case SortOldest:
		return compareDates
	case SortRatingHigh:
		return func(a, b domain.MediaRecord) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortRatingLow:
		return func(a, b domain.MediaRecord) int { return cmp.Compare(a.Rating, b.Rating) }
	case SortTitleAZ:
		c := collate.New(s.lang)
		return func(a, b domain.MediaRecord) int { return c.CompareString(a.Title, b.Title) }
	case SortTitleZA:
		c := collate.New(s.lang)
		return func(a, b domain.MediaRecord) int { return c.CompareString(b.Title, a.Title) }
	case SortRuntimeLong:
		return func(a, b domain.MediaRecord) int { return cmp.Compare(b.RuntimeMinutes(), a.RuntimeMinutes()) }
	case SortRuntimeShort:
		return func(a, b domain.MediaRecord) int { return cmp.Compare(a.RuntimeMinutes(), b.RuntimeMinutes()) }
	default:
		return nil
	}
}

// compareDates orders by release date ascending. Missing or malformed
// dates compare as the zero time.
func compareDates(a, b domain.MediaRecord) int {
	return a.Released().Compare(b.Released())
}
