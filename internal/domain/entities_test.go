package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchState_Advance(t *testing.T) {
	s := WatchNone
	s = s.Advance()
	assert.Equal(t, WatchWatching, s)
	s = s.Advance()
	assert.Equal(t, WatchCompleted, s)
	s = s.Advance()
	assert.Equal(t, WatchNone, s)
}

func TestWatchState_UnmarshalText(t *testing.T) {
	var s WatchState
	require.NoError(t, s.UnmarshalText([]byte("completed")))
	assert.Equal(t, WatchCompleted, s)

	assert.Error(t, s.UnmarshalText([]byte("paused")))
}

func TestMediaRecord_Formatting(t *testing.T) {
	tests := []struct {
		name    string
		record  MediaRecord
		year    int
		runtime string
		rating  string
	}{
		{"complete", MediaRecord{ReleaseDate: "2016-11-10", Runtime: ptr(116), Rating: 7.63}, 2016, "1h 56m", "7.6"},
		{"short", MediaRecord{ReleaseDate: "1895-12-28", Runtime: ptr(45)}, 1895, "45m", "NR"},
		{"unknown", MediaRecord{ReleaseDate: "soon"}, 0, "", "NR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.year, tt.record.Year())
			assert.Equal(t, tt.runtime, tt.record.FormattedRuntime())
			assert.Equal(t, tt.rating, tt.record.FormattedRating())
		})
	}

	assert.True(t, MediaRecord{ReleaseDate: "13/01/2020"}.Released().IsZero())
}

func TestCatalogSnapshot_IsComplete(t *testing.T) {
	snap := CatalogSnapshot{Records: make([]MediaRecord, 3), ExpectedTotal: 3}
	assert.True(t, snap.IsComplete())

	snap.ExpectedTotal = 4
	assert.False(t, snap.IsComplete())

	snap.ExpectedTotal = 2
	assert.False(t, snap.IsComplete(), "overshoot is not complete")
}

func TestWatchStateEntry(t *testing.T) {
	e := WatchStateEntry{ID: "329865", UpdatedAt: 1700000000000}
	id, ok := e.NumericID()
	assert.True(t, ok)
	assert.Equal(t, 329865, id)
	assert.Equal(t, time.UnixMilli(1700000000000), e.Updated())

	_, ok = WatchStateEntry{ID: "tt0468569"}.NumericID()
	assert.False(t, ok)
}

func TestFavoriteEntry_Record(t *testing.T) {
	f := FavoriteEntry{ID: 155, Title: "The Dark Knight", ReleaseDate: "2008-07-16", Rating: 8.5}
	r := f.Record()
	assert.Equal(t, 155, r.ID)
	assert.Equal(t, 2008, r.Year())
	assert.Nil(t, r.Runtime)
}

func TestGenreName(t *testing.T) {
	name, ok := GenreName(878)
	assert.True(t, ok)
	assert.Equal(t, "Science Fiction", name)

	_, ok = GenreName(1)
	assert.False(t, ok)
}

func ptr(n int) *int { return &n }
