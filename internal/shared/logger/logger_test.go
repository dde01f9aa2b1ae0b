package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log level "loud"`)
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(Options{Environment: "production", Level: "info", Console: &buf})
	require.NoError(t, err)

	log.Named("arrays").Info("demo finished", zap.String("demo", "array-defaults"))
	log.Debug("below level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "demo finished", entry["msg"])
	assert.Equal(t, "arrays", entry["logger"])
	assert.Equal(t, "array-defaults", entry["demo"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer

	log, err := New(Options{Environment: "development", Level: "warn", Console: &buf})
	require.NoError(t, err)

	log.Info("quiet")
	assert.Empty(t, buf.String())

	log.Warn("loud")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_FileSinks(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	log, err := New(Options{Level: "info", Dir: dir, Console: &bytes.Buffer{}})
	require.NoError(t, err)

	log.With(zap.String("run_id", "abc")).Info("to file")
	log.Error("failure")
	_ = log.Sync()

	info, err := os.ReadFile(filepath.Join(dir, "info.log"))
	require.NoError(t, err)
	assert.Contains(t, string(info), `"run_id":"abc"`)
	assert.Contains(t, string(info), "failure")

	errs, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(errs), "failure")
	assert.NotContains(t, string(errs), "to file")
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop().Named("x").Sugar().Infow("ignored", "k", 1)
	})
}
