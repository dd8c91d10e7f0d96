package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/eventdesk/internal/config"
	"github.com/mmynk/eventdesk/internal/console"
	"github.com/mmynk/eventdesk/internal/metrics"
	"github.com/mmynk/eventdesk/internal/service"
	"github.com/mmynk/eventdesk/internal/storage"
	"github.com/mmynk/eventdesk/internal/storage/file"
	"github.com/mmynk/eventdesk/internal/storage/sqlite"
	"github.com/mmynk/eventdesk/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "eventdesk: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Setup structured logging
	logging.Setup(cfg.Log.Level)

	ctx := context.Background()

	backend, err := openBackend(cfg.Storage)
	if err != nil {
		return err
	}
	persister := storage.NewPersister(backend, cfg.Storage.Format)
	defer persister.Close()
	slog.Info("Storage initialized", "backend", backend.Describe(), "format", cfg.Storage.Format)

	rec := metrics.New()
	session, err := service.Open(ctx, persister, rec)
	if err != nil {
		return err
	}

	runErr := console.New(session, os.Stdin, os.Stdout).Run(ctx)

	if path := cfg.Metrics.TextfilePath; path != "" {
		if err := rec.WriteTextfile(path); err != nil {
			slog.Error("Failed to write metrics", "path", path, "error", err)
		}
	}
	return runErr
}

func openBackend(cfg config.StorageConfig) (storage.Backend, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return sqlite.New(cfg.DBPath)
	default:
		return file.New(cfg.DataDir)
	}
}
