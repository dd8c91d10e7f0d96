package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/eventdesk/internal/storage/codec"
)

var keys = []string{
	"EVENTDESK_DATA_DIR", "EVENTDESK_FORMAT", "EVENTDESK_BACKEND",
	"EVENTDESK_DB_PATH", "EVENTDESK_METRICS_FILE", "LOG_LEVEL",
}

// clearEnv unsets every variable Load reads for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, filepath.Join("./data", "eventdesk.db"), cfg.Storage.DBPath)
	assert.Equal(t, codec.JSONL, cfg.Storage.Format)
	assert.Equal(t, slog.LevelWarn, cfg.Log.Level)
	assert.Empty(t, cfg.Metrics.TextfilePath)
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENTDESK_BACKEND", "SQLite")
	t.Setenv("EVENTDESK_FORMAT", "bson")
	t.Setenv("EVENTDESK_DATA_DIR", "/var/lib/eventdesk")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, codec.BSON, cfg.Storage.Format)
	assert.Equal(t, "/var/lib/eventdesk/eventdesk.db", cfg.Storage.DBPath)
	assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("EVENTDESK_METRICS_FILE=/tmp/eventdesk.prom\nEVENTDESK_DATA_DIR=from-file\n"), 0o644))
	t.Setenv("EVENTDESK_DATA_DIR", "from-env")

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/eventdesk.prom", cfg.Metrics.TextfilePath)
	assert.Equal(t, "from-env", cfg.Storage.DataDir)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"backend", "EVENTDESK_BACKEND", "postgres"},
		{"format", "EVENTDESK_FORMAT", "pickle"},
		{"log level", "LOG_LEVEL", "loud"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
