package codec

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
)

func encodeJSONL[R any](h Header, records []R) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if err := enc.Encode(h); err != nil {
		return nil, fmt.Errorf("encode header: %w", err)
	}
	for i := range records {
		if err := enc.Encode(records[i]); err != nil {
			return nil, fmt.Errorf("encode record %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

func decodeJSONL[R any](data []byte) ([]R, Header, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var (
		h       Header
		records []R
		line    int
		header  bool
	)
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		if !header {
			if err := json.Unmarshal(raw, &h); err != nil {
				return nil, Header{}, fmt.Errorf("%w: header: %v", ErrCorrupt, err)
			}
			header = true
			continue
		}
		var r R
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, Header{}, fmt.Errorf("%w: line %d: %v", ErrCorrupt, line, err)
		}
		records = append(records, r)
	}
	if err := sc.Err(); err != nil {
		return nil, Header{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if !header {
		return nil, Header{}, fmt.Errorf("%w: empty payload", ErrCorrupt)
	}
	return records, h, nil
}
