package codec

import (
	"encoding/json"
	"fmt"

	"github.com/bft-labs/redmine/pkg/apierr"
)

// KeyTotalCount is the listing envelope member holding the server-side total.
const KeyTotalCount = "total_count"

// Writer serializes v's fields into w.
type Writer[T any] func(w *FieldWriter, v T) error

// Parser builds a T from a decoded object.
type Parser[T any] func(obj Object) (T, error)

// EncodeSingle serializes v and wraps it under tag: {"<tag>": {...}}.
func EncodeSingle[T any](tag string, v T, write Writer[T]) ([]byte, error) {
	fields := NewFieldWriter()
	if err := write(fields, v); err != nil {
		return nil, apierr.Wrap(err, apierr.KindInternal, fmt.Sprintf("codec: write %s", tag), nil)
	}
	if err := fields.Err(); err != nil {
		return nil, apierr.Wrap(err, apierr.KindInternal, fmt.Sprintf("codec: write %s", tag), nil)
	}

	envelope := NewFieldWriter()
	envelope.Value(tag, fields)
	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, apierr.Wrap(err, apierr.KindInternal, fmt.Sprintf("codec: encode %s", tag), nil)
	}
	return body, nil
}

// DecodeSingle extracts the object stored under tag and parses it.
func DecodeSingle[T any](body []byte, tag string, parse Parser[T]) (T, error) {
	var zero T

	envelope, err := ParseObject(body)
	if err != nil {
		return zero, apierr.Format(err, "codec: response is not a JSON object")
	}
	obj, err := envelope.Object(tag)
	if err != nil {
		return zero, apierr.Format(err, fmt.Sprintf("codec: response has no %q object", tag))
	}
	return runParser(parse, obj, tag)
}

// DecodeList extracts the array stored under tag and the total_count member.
// A missing or null array yields no items; a missing total_count is a format
// error.
func DecodeList[T any](body []byte, tag string, parse Parser[T]) ([]T, int, error) {
	envelope, err := ParseObject(body)
	if err != nil {
		return nil, 0, apierr.Format(err, "codec: response is not a JSON object")
	}
	total, err := envelope.Int(KeyTotalCount)
	if err != nil {
		return nil, 0, err
	}
	if !envelope.Has(tag) {
		return []T{}, total, nil
	}

	var raws []json.RawMessage
	if err := json.Unmarshal(envelope[tag], &raws); err != nil {
		return nil, 0, apierr.Format(err, fmt.Sprintf("codec: field %q is not an array", tag))
	}
	items := make([]T, 0, len(raws))
	for i, raw := range raws {
		obj, err := ParseObject(raw)
		if err != nil {
			return nil, 0, apierr.Format(err, fmt.Sprintf("codec: %s[%d] is not an object", tag, i))
		}
		item, err := runParser(parse, obj, tag)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, nil
}

// runParser normalizes parser failures into format errors.
func runParser[T any](parse Parser[T], obj Object, tag string) (T, error) {
	v, err := parse(obj)
	if err != nil {
		if apierr.IsFormat(err) {
			return v, err
		}
		return v, apierr.Format(err, fmt.Sprintf("codec: parse %s", tag))
	}
	return v, nil
}

// ErrorMessages extracts Redmine's {"errors": [...]} validation messages
// from body. It returns nil when body does not carry them.
func ErrorMessages(body []byte) []string {
	var payload struct {
		Errors []string `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return payload.Errors
}
