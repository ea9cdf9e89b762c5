package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByID(t *testing.T) {
	records := makeRecords(1, 3)

	r, err := FindByID(records, 2)
	require.NoError(t, err)
	assert.Equal(t, "Movie 2", r.Title)

	_, err = FindByID(records, 99)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestQueries_Lookup(t *testing.T) {
	kv := store.NewMemoryStore()
	q := NewQueries(kv)

	_, err := q.Lookup(1000)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	seed(t, kv, 2, 2, 0)
	r, err := q.Lookup(1001)
	require.NoError(t, err)
	assert.Equal(t, 1001, r.ID)
}

func TestRandom(t *testing.T) {
	_, err := Random(nil, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)

	records := makeRecords(1, 10)
	rng := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		r, err := Random(records, rng)
		require.NoError(t, err)
		assert.True(t, r.ID >= 1 && r.ID <= 10)
	}
}
