package repository

import (
	"context"
	"sort"
	"sync"

	appErrors "github.com/noah-isme/syntaxscout-api/pkg/errors"
)

// MemoryKVRepository keeps entries in process memory. It backs the
// session-scoped token store and the "memory" storage driver.
type MemoryKVRepository struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryKVRepository constructs an empty store.
func NewMemoryKVRepository() *MemoryKVRepository {
	return &MemoryKVRepository{entries: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (r *MemoryKVRepository) Get(_ context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.entries[key]
	if !ok {
		return nil, appErrors.ErrKeyNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set stores a copy of value under key.
func (r *MemoryKVRepository) Set(_ context.Context, key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. Missing keys are ignored.
func (r *MemoryKVRepository) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, key)
	return nil
}

// Keys lists stored keys in lexical order.
func (r *MemoryKVRepository) Keys(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
