package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alexisbeaulieu97/iddl/internal/layout/grid"
	"github.com/alexisbeaulieu97/iddl/internal/role"
)

func TestWatcherReappliesChangedDefinitions(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeFile(t, dir, "roles.yaml", "version: \"1.0\"\nroles:\n  - {domain: text, name: Lead, kind: simple, tag: p}\n")

	reg := role.NewRegistry(nil, nil)
	engine := grid.NewEngine(nil, nil)
	docs, err := Load(context.Background(), filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	for _, doc := range docs {
		require.NoError(t, Apply(doc, reg, engine))
	}

	var mu sync.Mutex
	applied := 0
	w, err := NewWatcher([]string{filepath.Join(dir, "*.yaml")}, func(doc *Document) error {
		mu.Lock()
		applied++
		mu.Unlock()
		return Apply(doc, reg, engine)
	}, nil, 20*time.Millisecond)
	require.NoError(t, err)
	assert.Contains(t, w.Watched(), filepath.Clean(dir))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// invalid edits are skipped and keep the previous definition
	require.NoError(t, os.WriteFile(path, []byte("version: nope\n"), 0o644))
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, "p", reg.Lookup(role.DomainText, "Lead").Tag)

	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\nroles:\n  - {domain: text, name: Lead, kind: simple, tag: strong}\n"), 0o644))
	require.Eventually(t, func() bool {
		return reg.Lookup(role.DomainText, "Lead").Tag == "strong"
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.GreaterOrEqual(t, applied, 1)
}

func TestWatcherIgnoresUnmatchedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{filepath.Join(dir, "*.yaml")}, func(*Document) error { return nil }, nil, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.fsw.Close() })

	assert.True(t, w.matches(filepath.Join(dir, "a.yaml")))
	assert.False(t, w.matches(filepath.Join(dir, "a.txt")))
	assert.False(t, w.matches(filepath.Join(dir, "sub", "a.yaml")))
}
