package service

import (
	"errors"
	"fmt"

	"github.com/mmynk/eventdesk/internal/metrics"
	"github.com/mmynk/eventdesk/internal/schema"
	"github.com/mmynk/eventdesk/internal/storage"
)

// ErrBadKey marks a record key that could not be parsed on display or delete.
var ErrBadKey = errors.New("bad key")

// PersistError reports that a mutation was applied in memory but saving the
// collections afterwards failed. The mutation is not rolled back.
type PersistError struct {
	Kind string
	Op   string
	ID   int
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("%s %s %d applied but not saved: %v", e.Kind, e.Op, e.ID, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// UserMessage turns an error returned by a desk into the text shown to the
// user. title is the record kind's display name, e.g. "Employee".
func UserMessage(title string, err error) string {
	var (
		pe  *PersistError
		inv *schema.InvalidInputError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &pe):
		return fmt.Sprintf("%s was %s but could not be saved: %v", title, pastTense(pe.Op), pe.Err)
	case errors.Is(err, ErrBadKey) && errors.As(err, &inv):
		return fmt.Sprintf("%s must be an integer", inv.Field)
	case errors.As(err, &inv):
		return fmt.Sprintf("Invalid input: %v", inv)
	case errors.Is(err, storage.ErrDuplicateKey):
		return fmt.Sprintf("%s with ID already exists.", title)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Sprintf("%s not found.", title)
	default:
		return fmt.Sprintf("Unexpected error: %v", err)
	}
}

func pastTense(op string) string {
	switch op {
	case opAdd:
		return "added"
	case opDelete:
		return "deleted"
	default:
		return op
	}
}

// resultOf classifies an operation outcome for metrics.
func resultOf(err error) string {
	var pe *PersistError
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.As(err, &pe):
		return metrics.ResultPersistFailed
	case errors.Is(err, schema.ErrInvalidInput):
		return metrics.ResultInvalidInput
	case errors.Is(err, storage.ErrDuplicateKey):
		return metrics.ResultDuplicateKey
	case errors.Is(err, storage.ErrNotFound):
		return metrics.ResultNotFound
	default:
		return "error"
	}
}
