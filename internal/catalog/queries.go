package catalog

import (
	"math/rand/v2"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/store"
)

// Queries provides synchronous, cache-only reads. Never touches the network.
type Queries struct {
	kv domain.KeyValueStore
}

// NewQueries creates a new Queries instance.
func NewQueries(kv domain.KeyValueStore) *Queries {
	return &Queries{kv: kv}
}

// Cached returns the persisted snapshot, fresh or not.
func (q *Queries) Cached() (domain.CatalogSnapshot, bool) {
	var snap domain.CatalogSnapshot
	if !store.GetJSON(q.kv, domain.KeyCatalog, &snap) || snap.Records == nil {
		return domain.CatalogSnapshot{}, false
	}
	return snap, true
}

// Lookup finds a record in the persisted snapshot.
func (q *Queries) Lookup(id int) (domain.MediaRecord, error) {
	snap, _ := q.Cached()
	return FindByID(snap.Records, id)
}

// FindByID returns the record with the given id, or ErrRecordNotFound.
func FindByID(records []domain.MediaRecord, id int) (domain.MediaRecord, error) {
	for _, r := range records {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.MediaRecord{}, domain.ErrRecordNotFound
}

// Random picks a record uniformly. A nil rng uses the global source.
func Random(records []domain.MediaRecord, rng *rand.Rand) (domain.MediaRecord, error) {
	if len(records) == 0 {
		return domain.MediaRecord{}, domain.ErrEmptyCatalog
	}
	var i int
	if rng != nil {
		i = rng.IntN(len(records))
	} else {
		i = rand.IntN(len(records))
	}
	return records[i], nil
}
