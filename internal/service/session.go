// Package service owns the record collections for a running process and
// exposes the per-kind add, display and delete operations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/eventdesk/internal/metrics"
	"github.com/mmynk/eventdesk/internal/models"
	"github.com/mmynk/eventdesk/internal/schema"
	"github.com/mmynk/eventdesk/internal/storage"
)

// Session is the process-wide owner of the seven collections. It loads them
// once in Open and saves all of them after every successful mutation.
// A Session is not safe for concurrent use.
type Session struct {
	// ID identifies this process run in logs.
	ID string

	persister *storage.Persister
	metrics   *metrics.Recorder

	Employees *Desk[models.Employee]
	Events    *Desk[models.Event]
	Clients   *Desk[models.Client]
	Guests    *Desk[models.Guest]
	Suppliers *Desk[models.Supplier]
	Venues    *Desk[models.Venue]
	Caterers  *Desk[models.Caterer]

	handlers []Handler
	savers   []func(context.Context) error
}

// Open loads every collection through p. rec may be nil.
func Open(ctx context.Context, p *storage.Persister, rec *metrics.Recorder) (*Session, error) {
	s := &Session{
		ID:        uuid.NewString(),
		persister: p,
		metrics:   rec,
	}

	var err error
	if s.Employees, err = openDesk(ctx, s, schema.Employees); err != nil {
		return nil, err
	}
	if s.Events, err = openDesk(ctx, s, schema.Events); err != nil {
		return nil, err
	}
	if s.Clients, err = openDesk(ctx, s, schema.Clients); err != nil {
		return nil, err
	}
	if s.Guests, err = openDesk(ctx, s, schema.Guests); err != nil {
		return nil, err
	}
	if s.Suppliers, err = openDesk(ctx, s, schema.Suppliers); err != nil {
		return nil, err
	}
	if s.Venues, err = openDesk(ctx, s, schema.Venues); err != nil {
		return nil, err
	}
	if s.Caterers, err = openDesk(ctx, s, schema.Caterers); err != nil {
		return nil, err
	}

	attrs := []any{"session", s.ID, "backend", p.Backend().Describe(), "format", p.Format()}
	for _, h := range s.handlers {
		attrs = append(attrs, h.Kind(), h.Len())
	}
	slog.Info("Session opened", attrs...)

	return s, nil
}

func openDesk[R Record](ctx context.Context, s *Session, sch schema.Schema[R]) (*Desk[R], error) {
	coll, err := storage.Load[R](ctx, s.persister, sch.Kind)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	d := &Desk[R]{session: s, schema: sch, coll: coll}
	s.handlers = append(s.handlers, d)
	s.savers = append(s.savers, d.save)
	s.metrics.Records(sch.Kind, coll.Len())
	return d, nil
}

// Handlers returns the desks in menu order.
func (s *Session) Handlers() []Handler {
	return s.handlers
}

// Handler returns the desk for a collection name such as "venues".
func (s *Session) Handler(kind string) (Handler, bool) {
	for _, h := range s.handlers {
		if h.Kind() == kind {
			return h, true
		}
	}
	return nil, false
}

// persist rewrites all seven collections, not just the one that changed.
// Every collection is attempted even if an earlier one fails.
func (s *Session) persist(ctx context.Context) error {
	start := time.Now()
	var errs []error
	for _, save := range s.savers {
		if err := save(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.metrics.ObserveSave(time.Since(start))
	return errors.Join(errs...)
}
