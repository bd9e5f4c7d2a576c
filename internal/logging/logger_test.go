package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/dtm/internal/config"
)

func TestNew_JSONCarriesRunID(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	require.NotEmpty(t, log.RunID)

	log.WithField("package", "requests").Info("starting bisection")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, log.RunID, entry[RunIDField])
	assert.Equal(t, "requests", entry["package"])
	assert.Equal(t, "starting bisection", entry["msg"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	log, err := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), RunIDField+"=")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := NewWithWriter(config.LoggingConfig{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dtm.log")

	log, err := New(config.LoggingConfig{Level: "debug", Format: "text", File: path})
	require.NoError(t, err)

	log.Debug("to file")
	require.NoError(t, log.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "to file")
}

func TestRunIDsDiffer(t *testing.T) {
	a, err := NewWithWriter(config.LoggingConfig{Level: "info"}, &bytes.Buffer{})
	require.NoError(t, err)

	b, err := NewWithWriter(config.LoggingConfig{Level: "info"}, &bytes.Buffer{})
	require.NoError(t, err)

	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("nothing happens")
	assert.NoError(t, log.Close())
}
