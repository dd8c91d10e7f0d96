// Package schema describes the input fields of each record kind and the
// rules that turn raw text into typed record values.
package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/mmynk/eventdesk/internal/models"
)

// ErrInvalidInput is wrapped by every parse failure.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a field whose raw text could not be parsed.
type InvalidInputError struct {
	Field string // field label as shown to the user
	Raw   string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: %q is not %s", e.Field, e.Raw, e.Err)
}

func (e *InvalidInputError) Unwrap() []error { return []error{ErrInvalidInput, e.Err} }

// FieldKind selects the parsing rule for a field.
type FieldKind int

const (
	Text FieldKind = iota
	Int
	ID
	Decimal
	Date
	IDList
)

func (k FieldKind) String() string {
	switch k {
	case Text:
		return "text"
	case Int:
		return "integer"
	case ID:
		return "id"
	case Decimal:
		return "decimal"
	case Date:
		return "date"
	case IDList:
		return "id list"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// Field is one input of a record form.
type Field struct {
	// Name is the stable key used in a Form.
	Name string
	// Label is the prompt shown to the user, e.g. "Basic Salary".
	Label string
	Kind  FieldKind
}

var (
	errNotInteger = errors.New("an integer")
	errNegativeID = errors.New("a non-negative integer")
	errNotDecimal = errors.New("a number")
	errNotDate    = errors.New("a date in YYYY-MM-DD format")
)

// ParseInt parses a whole number, ignoring surrounding whitespace.
func ParseInt(label, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &InvalidInputError{Field: label, Raw: raw, Err: errNotInteger}
	}
	return n, nil
}

// ParseID parses a record key or reference, which must be non-negative.
func ParseID(label, raw string) (int, error) {
	n, err := ParseInt(label, raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, &InvalidInputError{Field: label, Raw: raw, Err: errNegativeID}
	}
	return n, nil
}

// ParseDecimal parses a finite floating point number. NaN and infinities
// are rejected since they cannot be persisted.
func ParseDecimal(label, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &InvalidInputError{Field: label, Raw: raw, Err: errNotDecimal}
	}
	return f, nil
}

// ParseDate parses a YYYY-MM-DD calendar date as midnight UTC.
func ParseDate(label, raw string) (time.Time, error) {
	d, err := time.Parse(models.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, &InvalidInputError{Field: label, Raw: raw, Err: errNotDate}
	}
	return d, nil
}

// ParseIDList parses a comma-separated list of IDs. Blank entries are
// skipped, so "" and "1,,2," are valid. An empty list is returned as nil.
func ParseIDList(label, raw string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := ParseID(label, part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
