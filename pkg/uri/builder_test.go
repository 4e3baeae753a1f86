package uri

import (
	"testing"

	"github.com/bft-labs/redmine/pkg/apierr"
)

func TestNew_InvalidBase(t *testing.T) {
	tests := []string{
		"",
		"redmine.example.com",
		"ftp://redmine.example.com",
		"http://",
		"http://[::1",
		"https://redmine.example.com/?x=1",
	}
	for _, base := range tests {
		t.Run(base, func(t *testing.T) {
			if _, err := New(base, ""); !apierr.IsInternal(err) {
				t.Errorf("New(%q) = %v, want internal error", base, err)
			}
		})
	}
}

func TestBuilder_URIs(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		apiKey string
		build  func(b *Builder) string
		want   string
	}{
		{
			name:  "collection",
			base:  "https://redmine.example.com",
			build: func(b *Builder) string { return b.CollectionURI("projects", nil).String() },
			want:  "https://redmine.example.com/projects.json",
		},
		{
			name:  "collection with base path and trailing slash",
			base:  "https://example.com/redmine/",
			build: func(b *Builder) string { return b.CollectionURI("issues", Params{P("project_id", "3")}).String() },
			want:  "https://example.com/redmine/issues.json?project_id=3",
		},
		{
			name:  "item",
			base:  "http://localhost:3000",
			build: func(b *Builder) string { return b.ItemURI("projects", "demo", nil).String() },
			want:  "http://localhost:3000/projects/demo.json",
		},
		{
			name:  "item key escaped",
			base:  "http://localhost:3000",
			build: func(b *Builder) string { return b.ItemURI("projects", "a b/c", nil).String() },
			want:  "http://localhost:3000/projects/a%20b%2Fc.json",
		},
		{
			name:   "api key appended after caller params",
			base:   "http://localhost:3000",
			apiKey: "s3cr&t",
			build: func(b *Builder) string {
				return b.ItemURI("issues", "12", Params{P("include", "journals")}).String()
			},
			want: "http://localhost:3000/issues/12.json?include=journals&key=s3cr%26t",
		},
		{
			name: "insertion order kept",
			base: "http://localhost:3000",
			build: func(b *Builder) string {
				return b.CreateURI("projects.json", Params{P("z", "1"), P("a", "x y"), P("m", "é")}).String()
			},
			want: "http://localhost:3000/projects.json?z=1&a=x+y&m=%C3%A9",
		},
		{
			name:  "create uri nested path",
			base:  "http://localhost:3000",
			build: func(b *Builder) string { return b.CreateURI("/projects/demo/versions.json", nil).String() },
			want:  "http://localhost:3000/projects/demo/versions.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.base, tt.apiKey)
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			if got := tt.build(b); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParams_WithDoesNotAlias(t *testing.T) {
	base := make(Params, 0, 4)
	base = append(base, P("a", "1"))

	first := base.With("offset", "0")
	second := base.With("offset", "25")

	if first.Encode() != "a=1&offset=0" {
		t.Errorf("first = %s", first.Encode())
	}
	if second.Encode() != "a=1&offset=25" {
		t.Errorf("second = %s", second.Encode())
	}
	if len(base) != 1 {
		t.Errorf("base modified: %v", base)
	}
}

func TestParseParam(t *testing.T) {
	tests := []struct {
		in      string
		want    Param
		wantErr bool
	}{
		{in: "status_id=open", want: P("status_id", "open")},
		{in: "q=a=b", want: P("q", "a=b")},
		{in: "flag", want: P("flag", "")},
		{in: "=x", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseParam(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseParam() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseParam() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
