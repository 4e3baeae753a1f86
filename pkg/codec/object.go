package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bft-labs/redmine/pkg/apierr"
)

// Object is a decoded JSON object whose member values are left raw until a
// parser asks for them with a concrete type.
type Object map[string]json.RawMessage

// ParseObject decodes raw as a JSON object. null is rejected.
func ParseObject(raw []byte) (Object, error) {
	if isNull(raw) {
		return nil, apierr.Format(nil, "codec: expected JSON object, got null")
	}
	var obj Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, apierr.Format(err, "codec: expected JSON object")
	}
	return obj, nil
}

func isNull(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Has reports whether key is present with a non-null value.
func (o Object) Has(key string) bool {
	raw, ok := o[key]
	return ok && !isNull(raw)
}

func (o Object) required(key string) (json.RawMessage, error) {
	if !o.Has(key) {
		return nil, apierr.Format(nil, fmt.Sprintf("codec: missing required field %q", key))
	}
	return o[key], nil
}

func decodeField(key string, raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return apierr.Format(err, fmt.Sprintf("codec: field %q has unexpected type", key))
	}
	return nil
}

// Int returns the required integer at key.
func (o Object) Int(key string) (int, error) {
	raw, err := o.required(key)
	if err != nil {
		return 0, err
	}
	var v int
	if err := decodeField(key, raw, &v); err != nil {
		return 0, err
	}
	return v, nil
}

// IntOrZero returns the integer at key, or 0 if it is absent or null.
func (o Object) IntOrZero(key string) (int, error) {
	if !o.Has(key) {
		return 0, nil
	}
	return o.Int(key)
}

// String returns the required string at key.
func (o Object) String(key string) (string, error) {
	raw, err := o.required(key)
	if err != nil {
		return "", err
	}
	var v string
	if err := decodeField(key, raw, &v); err != nil {
		return "", err
	}
	return v, nil
}

// StringOrEmpty returns the string at key, or "" if it is absent or null.
func (o Object) StringOrEmpty(key string) (string, error) {
	if !o.Has(key) {
		return "", nil
	}
	return o.String(key)
}

// TimeOrZero parses an RFC 3339 timestamp at key. Absent or null yields the
// zero time.
func (o Object) TimeOrZero(key string) (time.Time, error) {
	s, err := o.StringOrEmpty(key)
	if err != nil || s == "" {
		return time.Time{}, err
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, apierr.Format(err, fmt.Sprintf("codec: field %q is not a timestamp", key))
	}
	return ts, nil
}

// Object returns the required nested object at key.
func (o Object) Object(key string) (Object, error) {
	raw, err := o.required(key)
	if err != nil {
		return nil, err
	}
	nested, err := ParseObject(raw)
	if err != nil {
		return nil, apierr.Format(err, fmt.Sprintf("codec: field %q is not an object", key))
	}
	return nested, nil
}

// ObjectOrNil returns the nested object at key, or nil if it is absent or null.
func (o Object) ObjectOrNil(key string) (Object, error) {
	if !o.Has(key) {
		return nil, nil
	}
	return o.Object(key)
}

// RefID reads the id of a related record. Responses nest it as
// {"<key>": {"id": N}}; request bodies use the flat "<key>_id": N form, which
// is accepted as a fallback. Absent references yield 0.
func (o Object) RefID(key string) (int, error) {
	ref, err := o.ObjectOrNil(key)
	if err != nil {
		return 0, err
	}
	if ref == nil {
		return o.IntOrZero(key + "_id")
	}
	return ref.Int("id")
}
