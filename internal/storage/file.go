package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	json "github.com/json-iterator/go"

	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

const fileVersion = "1.0"

// document is the on-disk shape of a FileStore.
type document struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// FileStore persists every key in one JSON document, rewritten atomically on
// each Set.
type FileStore struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

// NewFileStore opens the document at path, creating its directory. A missing
// file starts empty; an unparsable one is an error.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, iddlerrors.NewValidationError("storage.path", "file store requires a path", nil)
	}
	s := &FileStore{path: path, values: make(map[string]string)}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, iddlerrors.NewStorageError(path, "mkdir", err)
	}
	if err := s.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return iddlerrors.NewParseError(s.path, 0, err)
	}
	if doc.Values != nil {
		s.values = doc.Values
	}
	return nil
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

// Set stores value and rewrites the document. On a write failure the
// in-memory value is rolled back.
func (s *FileStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.values[key]
	s.values[key] = value
	if err := s.save(); err != nil {
		if had {
			s.values[key] = prev
		} else {
			delete(s.values, key)
		}
		return iddlerrors.NewStorageError(key, "set", err)
	}
	return nil
}

func (s *FileStore) save() error {
	data, err := json.MarshalIndent(document{Version: fileVersion, Values: s.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Path returns the document path.
func (s *FileStore) Path() string {
	return s.path
}
