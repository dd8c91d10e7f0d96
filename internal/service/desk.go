package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/eventdesk/internal/metrics"
	"github.com/mmynk/eventdesk/internal/models"
	"github.com/mmynk/eventdesk/internal/schema"
	"github.com/mmynk/eventdesk/internal/storage"
)

const (
	opAdd     = "add"
	opDisplay = "display"
	opDelete  = "delete"
)

// Record is a storable value that can render itself for display.
type Record interface {
	storage.Record
	Details() string
}

// Handler is the kind-independent view of a Desk used by front ends.
type Handler interface {
	// Kind returns the collection name, e.g. "employees".
	Kind() string
	// Title returns the singular display name, e.g. "Employee".
	Title() string
	// Fields lists the add form inputs; the first is the key.
	Fields() []schema.Field
	// Len returns the number of records held.
	Len() int

	Add(ctx context.Context, form schema.Form) (string, error)
	Display(ctx context.Context, idText string) (string, error)
	Delete(ctx context.Context, idText string) (string, error)
}

// Desk handles add, display and delete for one record kind.
type Desk[R Record] struct {
	session *Session
	schema  schema.Schema[R]
	coll    *storage.Collection[R]
}

// Ensure Desk implements Handler
var _ Handler = (*Desk[models.Employee])(nil)

func (d *Desk[R]) Kind() string           { return d.schema.Kind }
func (d *Desk[R]) Title() string          { return d.schema.Title }
func (d *Desk[R]) Fields() []schema.Field { return d.schema.Fields }
func (d *Desk[R]) Len() int               { return d.coll.Len() }

// Get returns the record stored under id.
func (d *Desk[R]) Get(id int) (R, error) {
	return d.coll.Lookup(id)
}

// Add parses the form and inserts the record, then saves all collections.
// On success it returns the confirmation message.
func (d *Desk[R]) Add(ctx context.Context, form schema.Form) (string, error) {
	rec, err := d.schema.Build(form)
	if err != nil {
		return "", d.fail(opAdd, -1, err)
	}
	if err := d.coll.Insert(rec); err != nil {
		return "", d.fail(opAdd, rec.Key(), err)
	}
	if err := d.session.persist(ctx); err != nil {
		return "", d.fail(opAdd, rec.Key(), &PersistError{Kind: d.Kind(), Op: opAdd, ID: rec.Key(), Err: err})
	}

	d.succeed(opAdd, rec.Key())
	return fmt.Sprintf("%s added successfully.", d.Title()), nil
}

// Display looks up the record keyed by idText and returns its details.
func (d *Desk[R]) Display(ctx context.Context, idText string) (string, error) {
	id, err := d.schema.ParseKey(idText)
	if err != nil {
		return "", d.fail(opDisplay, -1, fmt.Errorf("%w: %w", ErrBadKey, err))
	}
	rec, err := d.coll.Lookup(id)
	if err != nil {
		return "", d.fail(opDisplay, id, err)
	}

	d.succeed(opDisplay, id)
	return rec.Details(), nil
}

// Delete removes the record keyed by idText, then saves all collections.
func (d *Desk[R]) Delete(ctx context.Context, idText string) (string, error) {
	id, err := d.schema.ParseKey(idText)
	if err != nil {
		return "", d.fail(opDelete, -1, fmt.Errorf("%w: %w", ErrBadKey, err))
	}
	if err := d.coll.Delete(id); err != nil {
		return "", d.fail(opDelete, id, err)
	}
	if err := d.session.persist(ctx); err != nil {
		return "", d.fail(opDelete, id, &PersistError{Kind: d.Kind(), Op: opDelete, ID: id, Err: err})
	}

	d.succeed(opDelete, id)
	return fmt.Sprintf("%s deleted successfully.", d.Title()), nil
}

func (d *Desk[R]) succeed(op string, id int) {
	d.session.metrics.Operation(d.Kind(), op, resultOf(nil))
	d.session.metrics.Records(d.Kind(), d.coll.Len())
	slog.Info("Record "+pastTense(op),
		"kind", d.Kind(),
		"id", id,
		"session", d.session.ID,
	)
}

func (d *Desk[R]) fail(op string, id int, err error) error {
	result := resultOf(err)
	d.session.metrics.Operation(d.Kind(), op, result)

	attrs := []any{"kind", d.Kind(), "op", op, "result", result, "session", d.session.ID, "error", err}
	if id >= 0 {
		attrs = append(attrs, "id", id)
	}
	if result == metrics.ResultPersistFailed {
		d.session.metrics.Records(d.Kind(), d.coll.Len())
		slog.Error("Save failed after mutation", attrs...)
	} else {
		slog.Warn("Operation rejected", attrs...)
	}
	return err
}

// save writes the full collection through the session's persister.
func (d *Desk[R]) save(ctx context.Context) error {
	return storage.Save(ctx, d.session.persister, d.coll)
}
