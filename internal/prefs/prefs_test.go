package prefs

import (
	"errors"
	"testing"
	"time"

	"github.com/mmcdole/cinedex/internal/adapter"
	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var darkKnight = domain.MediaRecord{
	ID:          155,
	Title:       "The Dark Knight",
	Overview:    "Batman raises the stakes.",
	ReleaseDate: "2008-07-16",
	Rating:      8.5,
	ImageURL:    "https://img/dk.jpg",
	Quality:     "4K",
	PosterPath:  "/dk.jpg",
}

func TestFavorites_Toggle(t *testing.T) {
	kv := store.NewMemoryStore()
	favs := NewFavorites(kv, adapter.NullLogger())

	assert.Empty(t, favs.List())
	assert.False(t, favs.Contains(155))

	added, err := favs.Toggle(FromRecord(darkKnight))
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, favs.Contains(155))

	added, err = favs.Toggle(FromRecord(domain.MediaRecord{ID: 7, Title: "Arrival"}))
	require.NoError(t, err)
	assert.True(t, added)

	list := favs.List()
	require.Len(t, list, 2)
	assert.Equal(t, 155, list[0].ID, "insertion order")
	assert.Equal(t, "Batman raises the stakes.", list[0].Overview)
	assert.Equal(t, "4K", list[0].Quality)

	added, err = favs.Toggle(domain.FavoriteEntry{ID: 155})
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, favs.Contains(155))
	assert.Len(t, favs.List(), 1)
}

func TestFavorites_SurviveReopen(t *testing.T) {
	kv := store.NewMemoryStore()
	_, err := NewFavorites(kv, nil).Toggle(FromRecord(darkKnight))
	require.NoError(t, err)

	assert.True(t, NewFavorites(kv, nil).Contains(155))
}

func TestFavorites_CorruptReadsAsEmpty(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(domain.KeyFavorites, []byte(`{"oops"`)))
	favs := NewFavorites(kv, adapter.NullLogger())

	assert.Empty(t, favs.List())

	added, err := favs.Toggle(FromRecord(darkKnight))
	require.NoError(t, err)
	assert.True(t, added, "corrupt data is replaced on next write")
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func TestWatchStates_FullCycle(t *testing.T) {
	kv := store.NewMemoryStore()
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	ws := NewWatchStates(kv, c.now, adapter.NullLogger())
	item := WatchTarget(darkKnight)

	assert.Equal(t, domain.WatchNone, ws.Get("155"))

	want := []domain.WatchState{domain.WatchWatching, domain.WatchCompleted, domain.WatchNone}
	for _, w := range want {
		got, err := ws.Toggle(item)
		require.NoError(t, err)
		assert.Equal(t, w, got)
		assert.Equal(t, w, ws.Get("155"))
	}

	assert.Empty(t, ws.List(), "back to none means absent from the store")
	data, ok := kv.Get(domain.KeyWatch)
	require.True(t, ok)
	assert.JSONEq(t, `{}`, string(data))
}

func TestWatchStates_PersistedShape(t *testing.T) {
	kv := store.NewMemoryStore()
	at := time.UnixMilli(1700000000000)
	ws := NewWatchStates(kv, func() time.Time { return at }, nil)

	_, err := ws.Toggle(WatchTarget(darkKnight))
	require.NoError(t, err)

	data, _ := kv.Get(domain.KeyWatch)
	assert.JSONEq(t, `{"155": {
		"id": "155",
		"title": "The Dark Knight",
		"poster_path": "/dk.jpg",
		"media_type": "movie",
		"watchState": "watching",
		"timestamp": 1700000000000
	}}`, string(data))
}

func TestWatchStates_ListAndRemove(t *testing.T) {
	kv := store.NewMemoryStore()
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	ws := NewWatchStates(kv, c.now, nil)

	a := domain.WatchStateEntry{ID: "1", Title: "A", Kind: domain.MediaKindMovie}
	b := domain.WatchStateEntry{ID: "2", Title: "B", Kind: domain.MediaKindShow}

	_, _ = ws.Toggle(a)
	_, _ = ws.Toggle(b)
	_, _ = ws.Toggle(a) // a -> completed, most recent

	list := ws.List()
	require.Len(t, list, 2)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, domain.WatchCompleted, list[0].State)

	watching := ws.ByState(domain.WatchWatching)
	require.Len(t, watching, 1)
	assert.Equal(t, "2", watching[0].ID)

	require.NoError(t, ws.Remove("1"))
	require.NoError(t, ws.Remove("missing"))
	assert.Equal(t, domain.WatchNone, ws.Get("1"))
	assert.Len(t, ws.List(), 1)
}

func TestWatchStates_CorruptReadsAsEmpty(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(domain.KeyWatch, []byte(`{"1": {"watchState": `)))
	ws := NewWatchStates(kv, nil, adapter.NullLogger())

	assert.Empty(t, ws.List())
	assert.Equal(t, domain.WatchNone, ws.Get("1"))
}

func TestWatchStates_UnknownStateOnlySkipsThatEntry(t *testing.T) {
	kv := store.NewMemoryStore()
	require.NoError(t, kv.Set(domain.KeyWatch, []byte(`{
		"1": {"id": "1", "title": "Paused Movie", "watchState": "paused", "timestamp": 1},
		"2": {"id": "2", "title": "Heat", "watchState": "completed", "timestamp": 2}
	}`)))
	ws := NewWatchStates(kv, nil, adapter.NullLogger())

	assert.Equal(t, domain.WatchNone, ws.Get("1"))
	assert.Equal(t, domain.WatchCompleted, ws.Get("2"))
	require.Len(t, ws.List(), 1)

	// A write keeps both the other tracked title and the unreadable entry
	_, err := ws.Toggle(WatchTarget(darkKnight))
	require.NoError(t, err)
	assert.Equal(t, domain.WatchCompleted, ws.Get("2"))
	assert.Equal(t, domain.WatchWatching, ws.Get("155"))

	var raw map[string]map[string]any
	require.True(t, store.GetJSON(kv, domain.KeyWatch, &raw))
	assert.Len(t, raw, 3)
	assert.Equal(t, "paused", raw["1"]["watchState"])

	require.NoError(t, ws.Remove("1"))
	raw = nil
	require.True(t, store.GetJSON(kv, domain.KeyWatch, &raw))
	assert.NotContains(t, raw, "1")
}

type failingStore struct{ domain.KeyValueStore }

func (failingStore) Set(string, []byte) error { return errors.New("disk full") }

func TestWatchStates_SaveFailureIsReported(t *testing.T) {
	ws := NewWatchStates(failingStore{store.NewMemoryStore()}, nil, adapter.NullLogger())
	state, err := ws.Toggle(WatchTarget(darkKnight))
	assert.Error(t, err)
	assert.Equal(t, domain.WatchWatching, state)
}

func TestSettings_Theme(t *testing.T) {
	kv := store.NewMemoryStore()
	s := NewSettings(kv, true, adapter.NullLogger())

	assert.True(t, s.IsDark(), "default until chosen")

	dark, err := s.ToggleTheme()
	require.NoError(t, err)
	assert.False(t, dark)
	assert.False(t, NewSettings(kv, true, nil).IsDark(), "persisted choice wins over default")

	require.NoError(t, kv.Set(domain.KeyTheme, []byte("garbage")))
	assert.True(t, s.IsDark(), "corrupt value falls back to default")
}

func TestSettings_Guide(t *testing.T) {
	kv := store.NewMemoryStore()
	s := NewSettings(kv, false, nil)

	assert.False(t, s.HasSeenGuide())
	require.NoError(t, s.MarkGuideSeen())
	assert.True(t, s.HasSeenGuide())

	data, _ := kv.Get(domain.KeyOnboarding)
	assert.Equal(t, "true", string(data))

	require.NoError(t, s.ResetGuide())
	assert.False(t, s.HasSeenGuide())
}
