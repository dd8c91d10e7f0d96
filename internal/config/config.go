// Package config loads eventdesk settings from the environment, with an
// optional .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mmynk/eventdesk/internal/storage/codec"
)

// Backend names.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Storage StorageConfig
	Log     LogConfig
	Metrics MetricsConfig
}

// StorageConfig selects where and how collections are persisted.
type StorageConfig struct {
	Backend string       // "file" or "sqlite"
	DataDir string       // directory for flat files
	DBPath  string       // SQLite database path
	Format  codec.Format // serialisation format
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level slog.Level
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	TextfilePath string // empty disables the export
}

// Load reads configuration from environment. The given env files (or .env
// when none are given) are read first if present; variables already set in
// the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
	}

	dataDir := getEnv("EVENTDESK_DATA_DIR", "./data")

	format, err := codec.ParseFormat(getEnv("EVENTDESK_FORMAT", string(codec.JSONL)))
	if err != nil {
		return nil, fmt.Errorf("EVENTDESK_FORMAT: %w", err)
	}

	backend := strings.ToLower(getEnv("EVENTDESK_BACKEND", BackendFile))
	if backend != BackendFile && backend != BackendSQLite {
		return nil, fmt.Errorf("EVENTDESK_BACKEND: unknown backend %q (want file or sqlite)", backend)
	}

	level, err := parseLevel(getEnv("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	return &Config{
		Storage: StorageConfig{
			Backend: backend,
			DataDir: dataDir,
			DBPath:  getEnv("EVENTDESK_DB_PATH", filepath.Join(dataDir, "eventdesk.db")),
			Format:  format,
		},
		Log: LogConfig{Level: level},
		Metrics: MetricsConfig{
			TextfilePath: getEnv("EVENTDESK_METRICS_FILE", ""),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown level %q", s)
	}
}
