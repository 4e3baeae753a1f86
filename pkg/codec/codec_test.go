package codec

import (
	"errors"
	"testing"

	"github.com/bft-labs/redmine/pkg/apierr"
	"github.com/google/go-cmp/cmp"
)

type item struct {
	ID   int
	Name string
}

func writeItem(w *FieldWriter, v item) error {
	w.IntIfSet("id", v.ID)
	w.String("name", v.Name)
	return nil
}

func parseItem(obj Object) (item, error) {
	id, err := obj.Int("id")
	if err != nil {
		return item{}, err
	}
	name, err := obj.StringOrEmpty("name")
	if err != nil {
		return item{}, err
	}
	return item{ID: id, Name: name}, nil
}

func TestEncodeSingle(t *testing.T) {
	body, err := EncodeSingle("item", item{ID: 3, Name: "a \"quoted\" name"}, writeItem)
	if err != nil {
		t.Fatalf("EncodeSingle() error: %v", err)
	}
	want := `{"item":{"id":3,"name":"a \"quoted\" name"}}`
	if string(body) != want {
		t.Errorf("EncodeSingle() = %s, want %s", body, want)
	}
}

func TestEncodeSingle_WriterError(t *testing.T) {
	failing := func(w *FieldWriter, v item) error { return errors.New("nope") }
	_, err := EncodeSingle("item", item{}, failing)
	if !apierr.IsInternal(err) {
		t.Fatalf("expected internal error, got %v (%q)", err, apierr.KindOf(err))
	}
}

func TestDecodeSingle(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    item
		wantErr bool
	}{
		{name: "valid", body: `{"item":{"id":7,"name":"seven"}}`, want: item{ID: 7, Name: "seven"}},
		{name: "extra members ignored", body: `{"other":1,"item":{"id":7,"extra":true}}`, want: item{ID: 7}},
		{name: "missing envelope key", body: `{"thing":{"id":7}}`, wantErr: true},
		{name: "null envelope", body: `{"item":null}`, wantErr: true},
		{name: "malformed json", body: `{"item":`, wantErr: true},
		{name: "empty body", body: ``, wantErr: true},
		{name: "array body", body: `[1,2]`, wantErr: true},
		{name: "missing required field", body: `{"item":{"name":"x"}}`, wantErr: true},
		{name: "mistyped field", body: `{"item":{"id":"seven"}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSingle([]byte(tt.body), "item", parseItem)
			if tt.wantErr {
				if !apierr.IsFormat(err) {
					t.Fatalf("expected format error, got %v (%q)", err, apierr.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeSingle() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeSingle() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeSingle_ParserErrorNormalized(t *testing.T) {
	parse := func(obj Object) (item, error) { return item{}, errors.New("raw parser failure") }
	_, err := DecodeSingle([]byte(`{"item":{}}`), "item", parse)
	if !apierr.IsFormat(err) {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestDecodeList(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		want      []item
		wantTotal int
		wantErr   bool
	}{
		{
			name:      "items and total",
			body:      `{"items":[{"id":1},{"id":2,"name":"b"}],"total_count":10,"offset":0,"limit":2}`,
			want:      []item{{ID: 1}, {ID: 2, Name: "b"}},
			wantTotal: 10,
		},
		{name: "missing list key is empty", body: `{"total_count":4}`, want: []item{}, wantTotal: 4},
		{name: "null list is empty", body: `{"items":null,"total_count":0}`, want: []item{}},
		{name: "missing total_count", body: `{"items":[{"id":1}]}`, wantErr: true},
		{name: "mistyped total_count", body: `{"items":[],"total_count":"many"}`, wantErr: true},
		{name: "list is not an array", body: `{"items":{"id":1},"total_count":1}`, wantErr: true},
		{name: "element not an object", body: `{"items":[1],"total_count":1}`, wantErr: true},
		{name: "element missing id", body: `{"items":[{"name":"x"}],"total_count":1}`, wantErr: true},
		{name: "malformed", body: `not json`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := DecodeList([]byte(tt.body), "items", parseItem)
			if tt.wantErr {
				if !apierr.IsFormat(err) {
					t.Fatalf("expected format error, got %v (%q)", err, apierr.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeList() error: %v", err)
			}
			if total != tt.wantTotal {
				t.Errorf("total = %d, want %d", total, tt.wantTotal)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("DecodeList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	in := item{ID: 42, Name: "answer"}
	body, err := EncodeSingle("item", in, writeItem)
	if err != nil {
		t.Fatalf("EncodeSingle() error: %v", err)
	}
	out, err := DecodeSingle(body, "item", parseItem)
	if err != nil {
		t.Fatalf("DecodeSingle() error: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorMessages(t *testing.T) {
	got := ErrorMessages([]byte(`{"errors":["Name can't be blank","Identifier is too short"]}`))
	want := []string{"Name can't be blank", "Identifier is too short"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ErrorMessages() mismatch (-want +got):\n%s", diff)
	}
	if got := ErrorMessages([]byte(`<html>`)); got != nil {
		t.Errorf("ErrorMessages(html) = %v, want nil", got)
	}
}
