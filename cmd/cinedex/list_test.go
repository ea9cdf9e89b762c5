package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mmcdole/cinedex/internal/catalog"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/store"
	"github.com/mmcdole/cinedex/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGenres(t *testing.T) {
	ids, err := parseGenres("Action, crime,878")
	require.NoError(t, err)
	assert.Equal(t, []int{28, 80, 878}, ids)

	ids, err = parseGenres("")
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, err = parseGenres("Polka")
	assert.Error(t, err)
}

func TestBuildQuery(t *testing.T) {
	q, err := buildQuery(options{search: "dark", genres: "Drama", sort: "rating-high"})
	require.NoError(t, err)
	assert.Equal(t, "dark", q.SearchText)
	assert.Equal(t, []int{18}, q.RequiredGenres)
	assert.Equal(t, view.SortRatingHigh, q.SortKey)

	_, err = buildQuery(options{sort: "loudest"})
	assert.Error(t, err)
}

func TestPrintList(t *testing.T) {
	runtime := 152
	records := []domain.MediaRecord{
		{ID: 155, Title: "The Dark Knight", ReleaseDate: "2008-07-16", Rating: 8.5, Runtime: &runtime,
			Genres: []domain.Genre{{ID: 28, Name: "Action"}, {ID: 80, Name: "Crime"}}},
		{ID: 7, Title: "Untitled"},
	}

	var buf bytes.Buffer
	require.NoError(t, printList(&buf, records))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.Contains(t, lines[1], "The Dark Knight")
	assert.Contains(t, lines[1], "2h 32m")
	assert.Contains(t, lines[1], "Action, Crime")
	assert.Contains(t, lines[2], "NR")
}

func savedQueries(t *testing.T, records ...domain.MediaRecord) (*catalog.Queries, domain.KeyValueStore) {
	t.Helper()
	kv := store.NewMemoryStore()
	require.NoError(t, store.SetJSON(kv, domain.KeyCatalog, domain.CatalogSnapshot{
		Records:       records,
		ExpectedTotal: len(records),
	}))
	return catalog.NewQueries(kv), kv
}

func TestShowMovie_FromSavedCatalog(t *testing.T) {
	q, _ := savedQueries(t, domain.MediaRecord{ID: 329865, Title: "Arrival", ReleaseDate: "2016-11-10", Rating: 7.6, Overview: "Linguist meets aliens."})
	load := func() []domain.MediaRecord {
		t.Fatal("saved id should not hit the source")
		return nil
	}

	var buf bytes.Buffer
	require.NoError(t, showMovie(&buf, q, load, 329865, ""))

	out := buf.String()
	assert.Contains(t, out, "Arrival")
	assert.Contains(t, out, "2016 · rating 7.6")
	assert.Contains(t, out, "Linguist meets aliens.")
	assert.Contains(t, out, "https://player.videasy.net/movie/329865")
}

func TestShowMovie_LoadsWhenNotSaved(t *testing.T) {
	q, _ := savedQueries(t)
	loads := 0
	load := func() []domain.MediaRecord {
		loads++
		return []domain.MediaRecord{{ID: 155, Title: "The Dark Knight"}}
	}

	var buf bytes.Buffer
	require.NoError(t, showMovie(&buf, q, load, 155, "https://example.test/{id}"))
	assert.Equal(t, 1, loads)
	assert.Contains(t, buf.String(), "https://example.test/155")
}

func TestShowMovie_NotFound(t *testing.T) {
	q, _ := savedQueries(t, domain.MediaRecord{ID: 1, Title: "Heat"})
	load := func() []domain.MediaRecord { return nil }

	var buf bytes.Buffer
	err := showMovie(&buf, q, load, 42, "")

	assert.True(t, errors.Is(err, domain.ErrRecordNotFound))
	assert.Equal(t, "Movie not found\nNo movie with id 42 in the catalog.\n", buf.String())
}

func TestPrintStorage(t *testing.T) {
	_, kv := savedQueries(t)
	require.NoError(t, kv.Set(domain.KeyFavorites, []byte("[]")))

	var buf bytes.Buffer
	printStorage(&buf, kv)
	assert.Equal(t, "Saved data: 4k-movies, favorites-storage\n", buf.String())

	require.NoError(t, kv.Delete(domain.KeyCatalog))
	require.NoError(t, kv.Delete(domain.KeyFavorites))
	buf.Reset()
	printStorage(&buf, kv)
	assert.Equal(t, "Saved data: none\n", buf.String())
}
