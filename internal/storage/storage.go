// Package storage provides the key/value stores that back persisted layout
// state.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"

	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

// Store is a string key/value store. Get reports ok=false for absent keys.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendSQLite Backend = "sqlite"
)

// Open creates the store for backend. path is ignored by the memory backend.
// The returned close func is always non-nil.
func Open(backend Backend, path string) (Store, func() error, error) {
	noop := func() error { return nil }
	switch backend {
	case "", BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendFile:
		s, err := NewFileStore(path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case BackendSQLite:
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	default:
		return nil, noop, iddlerrors.NewValidationError("storage.backend", fmt.Sprintf("unknown backend %q", backend), nil)
	}
}

// MemoryStore keeps values in process memory.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Keys lists stored keys, sorted.
func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.values))
	for k := range m.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
