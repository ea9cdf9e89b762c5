package domain

// KeyValueStore is the durable local store behind the catalog cache and
// the preference stores. Each key holds an independent JSON document;
// writes replace the whole value.
type KeyValueStore interface {
	// Get returns a copy of the stored value, or false if absent
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
	Keys() []string
	Close() error
}

// Persisted keys. Names match the browser build so exported data stays
// interchangeable.
const (
	KeyCatalog    = "4k-movies"
	KeyFavorites  = "favorites-storage"
	KeyWatch      = "watchStates"
	KeyTheme      = "theme-storage"
	KeyOnboarding = "has-seen-guide"
)
