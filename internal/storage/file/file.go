// Package file provides a flat-file implementation of storage.Backend:
// one file per collection under a data directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mmynk/eventdesk/internal/storage"
)

// Ensure Backend implements storage.Backend
var _ storage.Backend = (*Backend)(nil)

// Backend stores each collection as a file under root.
// It is not safe for use by more than one process at a time.
type Backend struct {
	root string
}

// New creates a Backend rooted at dir, creating the directory if needed.
func New(dir string) (*Backend, error) {
	if dir == "" {
		dir = "./data"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Backend{root: dir}, nil
}

// Root returns the data directory.
func (b *Backend) Root() string { return b.root }

func (b *Backend) Describe() string { return "file:" + b.root }

func (b *Backend) Close() error { return nil }

func (b *Backend) pathFor(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("empty location name")
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid location name %q", name)
	}
	return filepath.Join(b.root, name), nil
}

// Load reads the file for name. A missing file yields storage.ErrNoData;
// permission and other read errors are returned as they are.
func (b *Backend) Load(ctx context.Context, name string) ([]byte, error) {
	path, err := b.pathFor(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, storage.ErrNoData)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// Save writes data to a temp file next to the target, syncs it and renames
// it into place, so the previous contents stay intact on failure.
func (b *Backend) Save(ctx context.Context, name string, data []byte) (retErr error) {
	path, err := b.pathFor(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(b.root, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
