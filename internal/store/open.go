package store

import (
	"fmt"

	"github.com/mmcdole/cinedex/internal/domain"
	"github.com/spf13/afero"
)

// Open creates the configured backend rooted at dir.
func Open(backend, dir string) (domain.KeyValueStore, error) {
	switch backend {
	case BackendBolt, "":
		return NewBoltStore(dir)
	case BackendFile:
		return NewFileStore(afero.NewOsFs(), dir)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}
}
