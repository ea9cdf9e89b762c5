package view

import (
	"testing"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func intp(n int) *int { return &n }

var (
	action = domain.Genre{ID: 28, Name: "Action"}
	drama  = domain.Genre{ID: 18, Name: "Drama"}
	scifi  = domain.Genre{ID: 878, Name: "Science Fiction"}
)

func fixture() []domain.MediaRecord {
	return []domain.MediaRecord{
		{ID: 1, Title: "The Dark Knight", Overview: "Batman faces the Joker.", ReleaseDate: "2008-07-16", Runtime: intp(152), Rating: 8.5, Genres: []domain.Genre{drama, action}},
		{ID: 2, Title: "Arrival", Overview: "Linguist meets visitors in the dark.", ReleaseDate: "2016-11-10", Runtime: intp(116), Rating: 7.6, Genres: []domain.Genre{drama, scifi}},
		{ID: 3, Title: "Dark Waters", Overview: "A lawyer uncovers a secret.", ReleaseDate: "2019-11-22", Runtime: intp(126), Rating: 7.5, Genres: []domain.Genre{drama}},
		{ID: 4, Title: "Edge of Tomorrow", Overview: "Live. Die. Repeat.", ReleaseDate: "2014-05-27", Rating: 7.6, Genres: []domain.Genre{action, scifi}},
		{ID: 5, Title: "Unreleased", Overview: "", ReleaseDate: "", Runtime: nil, Rating: 0},
	}
}

func ids(records []domain.MediaRecord) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func titles(records []domain.MediaRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Title
	}
	return out
}

func TestSelectView_SearchTitleAZ(t *testing.T) {
	catalog := []domain.MediaRecord{
		{ID: 1, Title: "The Dark Knight"},
		{ID: 2, Title: "Arrival"},
		{ID: 3, Title: "Dark Waters"},
	}

	got := SelectView(catalog, Query{SearchText: "dark", SortKey: SortTitleAZ})
	assert.Equal(t, []string{"Dark Waters", "The Dark Knight"}, titles(got))
}

func TestSelectView_SearchMatchesOverview(t *testing.T) {
	got := SelectView(fixture(), Query{SearchText: "DARK"})
	assert.Equal(t, []int{1, 2, 3}, ids(got), "case-insensitive, title or overview, input order kept")
}

func TestSelectView_EmptyQueryMatchesEverything(t *testing.T) {
	got := SelectView(fixture(), Query{})
	assert.Equal(t, []int{1, 2, 3, 4, 5}, ids(got))

	in := fixture()
	got = SelectView(in, Query{})
	got[0].Title = "changed"
	assert.NotEqual(t, "changed", in[0].Title, "output is a copy")

	assert.NotNil(t, SelectView(nil, Query{}))
}

func TestQuery_IsZero(t *testing.T) {
	assert.True(t, Query{}.IsZero())
	assert.False(t, Query{SearchText: "x"}.IsZero())
	assert.False(t, Query{RequiredGenres: []int{28}}.IsZero())
	assert.False(t, Query{SortKey: SortNewest}.IsZero())
}

func TestSelectView_GenresIntersectAll(t *testing.T) {
	tests := []struct {
		name   string
		genres []int
		want   []int
	}{
		{"single", []int{28}, []int{1, 4}},
		{"pair", []int{18, 878}, []int{2}},
		{"no record has all", []int{28, 18, 878}, []int{}},
		{"unknown id", []int{99}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectView(fixture(), Query{RequiredGenres: tt.genres})
			assert.Equal(t, tt.want, ids(got))
			for _, r := range got {
				for _, id := range tt.genres {
					assert.True(t, r.HasGenre(id))
				}
			}
		})
	}
}

func TestSelectView_SearchAndGenresCombine(t *testing.T) {
	got := SelectView(fixture(), Query{SearchText: "dark", RequiredGenres: []int{878}})
	assert.Equal(t, []int{2}, ids(got))
}

func TestSelectView_SortKeys(t *testing.T) {
	tests := []struct {
		key  SortKey
		want []int
	}{
		{SortNewest, []int{3, 2, 4, 1, 5}},
		{SortOldest, []int{5, 1, 4, 2, 3}},
		{SortRatingHigh, []int{1, 2, 4, 3, 5}},
		{SortRatingLow, []int{5, 3, 2, 4, 1}},
		{SortTitleAZ, []int{2, 3, 4, 1, 5}},
		{SortTitleZA, []int{5, 1, 4, 3, 2}},
		{SortRuntimeLong, []int{1, 3, 2, 4, 5}},
		{SortRuntimeShort, []int{4, 5, 2, 3, 1}},
		{SortKey("bogus"), []int{1, 2, 3, 4, 5}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			got := SelectView(fixture(), Query{SortKey: tt.key})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestSelectView_RatingDirectionsAreStable(t *testing.T) {
	records := []domain.MediaRecord{
		{ID: 1, Rating: 6},
		{ID: 2, Rating: 9},
		{ID: 3, Rating: 6},
		{ID: 4, Rating: 3},
	}

	high := SelectView(records, Query{SortKey: SortRatingHigh})
	low := SelectView(high, Query{SortKey: SortRatingLow})

	assert.Equal(t, []int{2, 1, 3, 4}, ids(high))
	assert.Equal(t, []int{4, 1, 3, 2}, ids(low), "ties keep relative order in both directions")
}

func TestSelectView_Idempotent(t *testing.T) {
	for _, key := range SortKeys() {
		q := Query{SearchText: "a", RequiredGenres: []int{18}, SortKey: key}
		once := SelectView(fixture(), q)
		twice := SelectView(once, q)
		assert.Equal(t, ids(once), ids(twice), string(key))
	}
}

func TestSelectView_DoesNotMutateInput(t *testing.T) {
	records := fixture()
	before := ids(records)

	got := SelectView(records, Query{SortKey: SortTitleZA})
	assert.Equal(t, before, ids(records))

	require.NotEmpty(t, got)
	got[0].Title = "changed"
	assert.NotEqual(t, "changed", records[4].Title)
}

func TestSelectView_ReturnsNewSlice(t *testing.T) {
	records := fixture()
	got := SelectView(records, Query{})
	require.Len(t, got, len(records))
	assert.NotSame(t, &records[0], &got[0])

	empty := SelectView(nil, Query{})
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestSelector_LocaleAwareTitles(t *testing.T) {
	records := []domain.MediaRecord{
		{ID: 1, Title: "zebra"},
		{ID: 2, Title: "Élan"},
		{ID: 3, Title: "apple"},
		{ID: 4, Title: "Eclipse"},
	}

	got := NewSelector(language.English).Select(records, Query{SortKey: SortTitleAZ})
	assert.Equal(t, []int{3, 4, 2, 1}, ids(got), "accents and case do not push titles past z")
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, "de", ParseLocale("de").String())
	assert.Equal(t, "en", ParseLocale("not a tag!").String())
}

func TestSortKey_Helpers(t *testing.T) {
	k, ok := ParseSortKey("title-az")
	require.True(t, ok)
	assert.Equal(t, SortTitleAZ, k)
	assert.Equal(t, "Title A-Z", k.Label())

	_, ok = ParseSortKey("alphabetical")
	assert.False(t, ok)

	assert.Equal(t, SortOldest, SortNewest.Next())
	assert.Equal(t, SortNewest, SortRuntimeShort.Next())
	assert.Len(t, SortKeys(), 8)
}
