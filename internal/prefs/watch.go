package prefs

import (
	"cmp"
	"encoding/json"
	"log/slog"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/mmcdole/cinedex/internal/store"
)

// WatchStates is the persisted per-title watch progress map.
type WatchStates struct {
	kv     domain.KeyValueStore
	logger *slog.Logger
	now    func() time.Time
	mu     sync.Mutex
}

// NewWatchStates creates a watch-state store. A nil now uses time.Now.
func NewWatchStates(kv domain.KeyValueStore, now func() time.Time, logger *slog.Logger) *WatchStates {
	if logger == nil {
		logger = slog.Default()
	}
	if now == nil {
		now = time.Now
	}
	return &WatchStates{kv: kv, now: now, logger: logger}
}

// WatchTarget builds the denormalized entry for a catalog movie.
func WatchTarget(r domain.MediaRecord) domain.WatchStateEntry {
	return domain.WatchStateEntry{
		ID:         strconv.Itoa(r.ID),
		Title:      r.Title,
		PosterPath: r.PosterPath,
		Kind:       domain.MediaKindMovie,
	}
}

// watchDoc is the decoded watchStates map. Entries that fail to decode are
// carried through writes untouched.
type watchDoc struct {
	entries map[string]domain.WatchStateEntry
	opaque  map[string]json.RawMessage
}

func (d watchDoc) remove(id string) {
	delete(d.entries, id)
	delete(d.opaque, id)
}

func (w *WatchStates) load() watchDoc {
	doc := watchDoc{
		entries: make(map[string]domain.WatchStateEntry),
		opaque:  make(map[string]json.RawMessage),
	}
	var raw map[string]json.RawMessage
	if !store.GetJSON(w.kv, domain.KeyWatch, &raw) {
		return doc
	}
	for id, data := range raw {
		var e domain.WatchStateEntry
		if err := json.Unmarshal(data, &e); err != nil || e.State == domain.WatchNone {
			w.logger.Warn("skipping unreadable watch entry", "id", id, "error", err)
			doc.opaque[id] = data
			continue
		}
		doc.entries[id] = e
	}
	return doc
}

func (w *WatchStates) save(doc watchDoc) error {
	out := make(map[string]any, len(doc.entries)+len(doc.opaque))
	for id, data := range doc.opaque {
		out[id] = data
	}
	for id, e := range doc.entries {
		out[id] = e
	}
	if err := store.SetJSON(w.kv, domain.KeyWatch, out); err != nil {
		w.logger.Error("failed to save watch states", "error", err)
		return err
	}
	return nil
}

// Get returns the state for id; ids never toggled are WatchNone.
func (w *WatchStates) Get(id string) domain.WatchState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.load().entries[id].State
}

// Toggle advances the title one step around the cycle and persists the
// result. The item's State and UpdatedAt are ignored; its display fields
// replace any stored copy. Reaching WatchNone deletes the entry.
func (w *WatchStates) Toggle(item domain.WatchStateEntry) (domain.WatchState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.load()
	next := doc.entries[item.ID].State.Advance()

	doc.remove(item.ID)
	if next != domain.WatchNone {
		item.State = next
		item.UpdatedAt = w.now().UnixMilli()
		doc.entries[item.ID] = item
	}

	if err := w.save(doc); err != nil {
		return next, err
	}
	w.logger.Debug("toggled watch state", "id", item.ID, "state", next)
	return next, nil
}

// Remove forgets a title regardless of its state.
func (w *WatchStates) Remove(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	doc := w.load()
	_, known := doc.entries[id]
	_, unreadable := doc.opaque[id]
	if !known && !unreadable {
		return nil
	}
	doc.remove(id)
	return w.save(doc)
}

// List returns every tracked title, most recently updated first.
func (w *WatchStates) List() []domain.WatchStateEntry {
	w.mu.Lock()
	defer w.mu.Unlock()

	entries := w.load().entries
	out := make([]domain.WatchStateEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b domain.WatchStateEntry) int {
		if c := cmp.Compare(b.UpdatedAt, a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// ByState returns the tracked titles in state, most recent first.
func (w *WatchStates) ByState(state domain.WatchState) []domain.WatchStateEntry {
	var out []domain.WatchStateEntry
	for _, e := range w.List() {
		if e.State == state {
			out = append(out, e)
		}
	}
	return out
}
