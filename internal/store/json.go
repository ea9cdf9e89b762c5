package store

import (
	"encoding/json"
	"fmt"

	"github.com/mmcdole/cinedex/internal/domain"
)

// GetJSON decodes the value at key into dest. A missing key and an
// undecodable value both report false; callers treat them as absent.
func GetJSON(kv domain.KeyValueStore, key string, dest any) bool {
	data, ok := kv.Get(key)
	if !ok {
		return false
	}
	return json.Unmarshal(data, dest) == nil
}

// SetJSON encodes value and writes it under key in one operation.
func SetJSON(kv domain.KeyValueStore, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Set(key, data)
}

// Backend names accepted by Open
const (
	BackendBolt   = "bolt"
	BackendFile   = "file"
	BackendMemory = "memory"
)
