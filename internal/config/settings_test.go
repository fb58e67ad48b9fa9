package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings(NewViper(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", s.Log.Level)
	assert.Equal(t, "memory", s.Storage.Backend)
	assert.Empty(t, s.Definitions)

	opts := s.LoggerOptions()
	assert.Equal(t, "info", opts.Level)
	assert.True(t, opts.HumanReadable)
}

func TestLoadSettingsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "iddl.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
log:
  level: debug
storage:
  backend: sqlite
  path: /tmp/iddl/state.db
definitions:
  - defs/**/*.yaml
`), 0o644))

	t.Setenv("IDDL_LOG_LEVEL", "warn")

	s, err := LoadSettings(NewViper(), file)
	require.NoError(t, err)
	assert.Equal(t, "warn", s.Log.Level)
	assert.Equal(t, "sqlite", s.Storage.Backend)
	assert.Equal(t, "/tmp/iddl/state.db", s.Storage.Path)
	assert.Equal(t, []string{"defs/**/*.yaml"}, s.Definitions)
}

func TestLoadSettingsRejectsInvalid(t *testing.T) {
	v := NewViper()
	v.Set("storage.backend", "file")
	_, err := LoadSettings(v, "")
	require.Error(t, err)

	v = NewViper()
	v.Set("log.level", "loud")
	_, err = LoadSettings(v, "")
	require.Error(t, err)
}
