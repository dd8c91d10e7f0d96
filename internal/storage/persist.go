package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mmynk/eventdesk/internal/storage/codec"
)

// Persister saves and loads whole collections through a Backend using one
// serialisation format.
type Persister struct {
	backend Backend
	format  codec.Format
}

// NewPersister binds a backend to a serialisation format.
func NewPersister(backend Backend, format codec.Format) *Persister {
	return &Persister{backend: backend, format: format}
}

// Backend returns the underlying backend.
func (p *Persister) Backend() Backend { return p.backend }

// Format returns the serialisation format.
func (p *Persister) Format() codec.Format { return p.format }

// Close closes the underlying backend.
func (p *Persister) Close() error { return p.backend.Close() }

// location is the backend name for a collection kind.
func (p *Persister) location(kind string) string {
	return kind + "." + p.format.Ext()
}

// Load reads the collection of the given kind. A collection that was never
// saved loads as empty; any other failure is returned.
func Load[R Record](ctx context.Context, p *Persister, kind string) (*Collection[R], error) {
	coll := NewCollection[R](kind)

	data, err := p.backend.Load(ctx, p.location(kind))
	if errors.Is(err, ErrNoData) {
		slog.Debug("No saved data, starting empty", "kind", kind, "backend", p.backend.Describe())
		return coll, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", kind, err)
	}

	records, h, err := codec.Decode[R](p.format, kind, data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", kind, err)
	}
	slog.Debug("Loaded saved data", "kind", kind, "snapshot", h.Snapshot, "count", h.Count, "backend", p.backend.Describe())
	for _, r := range records {
		if err := coll.Insert(r); err != nil {
			return nil, fmt.Errorf("corrupt %s data: %w", kind, err)
		}
	}
	return coll, nil
}

// Save writes the full contents of coll, replacing what was stored before.
func Save[R Record](ctx context.Context, p *Persister, coll *Collection[R]) error {
	data, err := codec.Encode(p.format, coll.Kind(), coll.All())
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", coll.Kind(), err)
	}
	if err := p.backend.Save(ctx, p.location(coll.Kind()), data); err != nil {
		return fmt.Errorf("failed to save %s: %w", coll.Kind(), err)
	}
	return nil
}
