package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iddlerrors "github.com/alexisbeaulieu97/iddl/pkg/errors"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "layout", `{"left":"240px"}`))
	v, ok, err := s.Get(ctx, "layout")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"left":"240px"}`, v)

	require.NoError(t, s.Set(ctx, "layout", `{"left":"300px"}`))
	v, _, err = s.Get(ctx, "layout")
	require.NoError(t, err)
	assert.Equal(t, `{"left":"300px"}`, v)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	exerciseStore(t, s)
	assert.Equal(t, []string{"layout"}, s.Keys())
}

func TestFileStoreRoundTripAcrossInstances(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(context.Background(), "layout")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"left":"300px"}`, v)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStoreRejectsCorruptDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileStore(path)
	require.Error(t, err)
	var parseErr *iddlerrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestFileStoreWriteFailureRollsBack(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)

	// a directory squatting on the temp path makes the write fail
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err = s.Set(context.Background(), "k", "v")
	require.Error(t, err)
	var storageErr *iddlerrors.StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "k", storageErr.Key)

	_, ok, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	v, ok, err := reopened.Get(context.Background(), "layout")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"left":"300px"}`, v)
}

func TestOpenBackends(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, tc := range []struct {
		backend Backend
		path    string
	}{
		{BackendMemory, ""},
		{BackendFile, filepath.Join(dir, "state.json")},
		{BackendSQLite, filepath.Join(dir, "state.db")},
	} {
		s, closeFn, err := Open(tc.backend, tc.path)
		require.NoError(t, err, tc.backend)
		exerciseStore(t, s)
		require.NoError(t, closeFn())
	}

	_, closeFn, err := Open("redis", "")
	require.Error(t, err)
	require.NotNil(t, closeFn)
}
