// Package storage provides the in-memory record collections and the
// abstractions for persisting them.
package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrDuplicateKey is returned when inserting a key that is already present.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound is returned when looking up or deleting an absent key.
	ErrNotFound = errors.New("not found")

	// ErrNoData is returned by Backend.Load when nothing was ever saved
	// under the requested name.
	ErrNoData = errors.New("no saved data")
)

// KeyError records a failed collection operation on a specific key.
type KeyError struct {
	Kind string
	Op   string
	ID   int
	Err  error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %s %d: %v", e.Kind, e.Op, e.ID, e.Err)
}

func (e *KeyError) Unwrap() error { return e.Err }

// Record is a value stored in a Collection.
type Record interface {
	Key() int
}

// Collection is a keyed set of records of one kind. It is not safe for
// concurrent use.
type Collection[R Record] struct {
	kind    string
	records map[int]R
}

// NewCollection creates an empty collection for the named kind.
func NewCollection[R Record](kind string) *Collection[R] {
	return &Collection[R]{kind: kind, records: make(map[int]R)}
}

// Kind returns the collection name.
func (c *Collection[R]) Kind() string { return c.kind }

// Insert adds r under r.Key(). If the key is already present the
// collection is left unchanged and ErrDuplicateKey is returned.
func (c *Collection[R]) Insert(r R) error {
	id := r.Key()
	if _, ok := c.records[id]; ok {
		return &KeyError{Kind: c.kind, Op: "insert", ID: id, Err: ErrDuplicateKey}
	}
	c.records[id] = r
	return nil
}

// Lookup returns the record stored under id.
func (c *Collection[R]) Lookup(id int) (R, error) {
	r, ok := c.records[id]
	if !ok {
		var zero R
		return zero, &KeyError{Kind: c.kind, Op: "lookup", ID: id, Err: ErrNotFound}
	}
	return r, nil
}

// Delete removes the record stored under id.
func (c *Collection[R]) Delete(id int) error {
	if _, ok := c.records[id]; !ok {
		return &KeyError{Kind: c.kind, Op: "delete", ID: id, Err: ErrNotFound}
	}
	delete(c.records, id)
	return nil
}

// Has reports whether id is present.
func (c *Collection[R]) Has(id int) bool {
	_, ok := c.records[id]
	return ok
}

// Len returns the number of records.
func (c *Collection[R]) Len() int { return len(c.records) }

// All returns a snapshot of the records ordered by key.
func (c *Collection[R]) All() []R {
	ids := make([]int, 0, len(c.records))
	for id := range c.records {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	out := make([]R, len(ids))
	for i, id := range ids {
		out[i] = c.records[id]
	}
	return out
}

// Backend defines the durable locations collections are saved to.
// This abstraction allows swapping storage backends (flat files, SQLite)
// without changing the service layer.
type Backend interface {
	// Load returns the bytes last saved under name.
	// Returns an error wrapping ErrNoData if nothing was saved yet.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save replaces the contents stored under name.
	// Readers never observe a partially written payload.
	Save(ctx context.Context, name string, data []byte) error

	// Describe returns a short human-readable location for logs.
	Describe() string

	// Close releases any resources held by the backend.
	Close() error
}
