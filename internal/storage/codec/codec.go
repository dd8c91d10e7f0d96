// Package codec serialises whole record collections in an explicitly
// versioned format.
//
// Two formats are supported:
//
//	jsonl  a header line followed by one JSON record per line
//	bson   a single BSON document holding the header and a records array
//
// Both carry the same header, which Decode checks before trusting the
// payload.
package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// Magic identifies eventdesk collection payloads.
	Magic = "eventdesk"

	// Version is the current payload version.
	Version = 1
)

var (
	// ErrCorrupt is wrapped by every decoding failure.
	ErrCorrupt = errors.New("corrupt collection data")

	// ErrUnsupportedVersion is returned for payloads written by a newer
	// (or unknown) version.
	ErrUnsupportedVersion = errors.New("unsupported collection version")
)

// Format names a serialisation format.
type Format string

const (
	JSONL Format = "jsonl"
	BSON  Format = "bson"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case JSONL, BSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want jsonl or bson)", s)
	}
}

// Ext returns the file extension used for the format.
func (f Format) Ext() string { return string(f) }

// Header describes a serialised collection.
type Header struct {
	Format   string `json:"format" bson:"format"`
	Version  int    `json:"version" bson:"version"`
	Kind     string `json:"kind" bson:"kind"`
	Snapshot string `json:"snapshot" bson:"snapshot"`
	Count    int    `json:"count" bson:"count"`
}

func newHeader(kind string, count int) Header {
	return Header{
		Format:   Magic,
		Version:  Version,
		Kind:     kind,
		Snapshot: uuid.NewString(),
		Count:    count,
	}
}

func (h Header) check(kind string) error {
	if h.Format != Magic {
		return fmt.Errorf("%w: format tag %q", ErrCorrupt, h.Format)
	}
	if h.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.Kind != kind {
		return fmt.Errorf("%w: holds %q, expected %q", ErrCorrupt, h.Kind, kind)
	}
	if _, err := uuid.Parse(h.Snapshot); err != nil {
		return fmt.Errorf("%w: snapshot id: %v", ErrCorrupt, err)
	}
	return nil
}

// Encode serialises records of the given kind.
func Encode[R any](f Format, kind string, records []R) ([]byte, error) {
	h := newHeader(kind, len(records))
	switch f {
	case JSONL:
		return encodeJSONL(h, records)
	case BSON:
		return encodeBSON(h, records)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
}

// Decode parses data written by Encode for the same kind and format.
func Decode[R any](f Format, kind string, data []byte) ([]R, Header, error) {
	var (
		records []R
		h       Header
		err     error
	)
	switch f {
	case JSONL:
		records, h, err = decodeJSONL[R](data)
	case BSON:
		records, h, err = decodeBSON[R](data)
	default:
		return nil, Header{}, fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, Header{}, err
	}
	if err := h.check(kind); err != nil {
		return nil, Header{}, err
	}
	if len(records) != h.Count {
		return nil, Header{}, fmt.Errorf("%w: header says %d records, found %d", ErrCorrupt, h.Count, len(records))
	}
	return records, h, nil
}
