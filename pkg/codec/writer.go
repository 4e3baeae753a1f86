package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FieldWriter accumulates the members of one JSON object in insertion
// order. The first marshal failure is kept and reported by Err.
type FieldWriter struct {
	keys   []string
	values map[string]json.RawMessage
	err    error
}

// NewFieldWriter returns an empty writer.
func NewFieldWriter() *FieldWriter {
	return &FieldWriter{values: map[string]json.RawMessage{}}
}

// Value sets key to the JSON encoding of v. Setting a key twice keeps its
// original position.
func (w *FieldWriter) Value(key string, v any) {
	if w.err != nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("write %q: %w", key, err)
		return
	}
	if _, exists := w.values[key]; !exists {
		w.keys = append(w.keys, key)
	}
	w.values[key] = raw
}

func (w *FieldWriter) String(key, v string) { w.Value(key, v) }

func (w *FieldWriter) Int(key string, v int) { w.Value(key, v) }

// StringIfSet writes v only when it is non-empty.
func (w *FieldWriter) StringIfSet(key, v string) {
	if v != "" {
		w.Value(key, v)
	}
}

// IntIfSet writes v only when it is non-zero.
func (w *FieldWriter) IntIfSet(key string, v int) {
	if v != 0 {
		w.Value(key, v)
	}
}

// Err returns the first error encountered while writing.
func (w *FieldWriter) Err() error {
	return w.err
}

// MarshalJSON encodes the accumulated members in insertion order.
func (w *FieldWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range w.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(w.values[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
