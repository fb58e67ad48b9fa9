package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"domain": "text", "role": "Title"})
	log.Info("role registered")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "role registered", entry["message"])
	require.Equal(t, "text", entry["domain"])
	require.Equal(t, "Title", entry["role"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.False(t, log.Enabled(zerolog.DebugLevel))
	require.True(t, log.Enabled(zerolog.WarnLevel))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"storage_key": "layout-x"})
	log.Error(errors.New("quota exceeded"), "persist layout state")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "persist layout state", entry["message"])
	require.Equal(t, "layout-x", entry["storage_key"])
	require.Equal(t, "quota exceeded", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerMirrorsToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "iddl.log")
	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, File: path})
	require.NoError(t, err)

	log.Warn("stylesheet flushed")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "stylesheet flushed")
	require.Contains(t, buf.String(), "stylesheet flushed")
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	nilLog.Info("ignored")
	nilLog.Error(errors.New("x"), "ignored")
	require.Nil(t, nilLog.WithFields(map[string]any{"a": 1}))

	Nop().Warn("ignored")
}
