// Package uri composes Redmine request URIs.
package uri

import (
	"net/url"
	"strings"

	"github.com/bft-labs/redmine/pkg/apierr"
)

const (
	// FormatSuffix selects the JSON representation of a resource.
	FormatSuffix = ".json"

	// KeyParam carries the API access key.
	KeyParam = "key"
)

// Builder creates URIs relative to a fixed base address. It is immutable
// and safe for concurrent use.
type Builder struct {
	base   *url.URL
	apiKey string
}

// New parses base and returns a Builder. A base that is not an absolute
// http(s) URL is a configuration error. apiKey, when non-empty, is added to
// every URI as the "key" query parameter.
func New(base, apiKey string) (*Builder, error) {
	u, err := url.Parse(strings.TrimSpace(base))
	if err != nil {
		return nil, apierr.Wrap(err, apierr.KindInternal, "uri: invalid base url", map[string]any{"url": base})
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, apierr.Internal("uri: base url %q must use http or https", base)
	}
	if u.Host == "" {
		return nil, apierr.Internal("uri: base url %q has no host", base)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, apierr.Internal("uri: base url %q must not carry a query or fragment", base)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	return &Builder{base: u, apiKey: apiKey}, nil
}

// Base returns the normalized base address.
func (b *Builder) Base() string {
	return b.base.String()
}

// CreateURI resolves resourcePath, a slash-separated path such as
// "projects.json", against the base and attaches params.
func (b *Builder) CreateURI(resourcePath string, params Params) *url.URL {
	segments := strings.Split(strings.Trim(resourcePath, "/"), "/")
	return b.build(segments, params)
}

// CollectionURI addresses <base>/<plural>.json.
func (b *Builder) CollectionURI(plural string, params Params) *url.URL {
	return b.build([]string{plural + FormatSuffix}, params)
}

// ItemURI addresses <base>/<plural>/<key>.json. key is escaped as a single
// path segment.
func (b *Builder) ItemURI(plural, key string, params Params) *url.URL {
	return b.build([]string{plural, key + FormatSuffix}, params)
}

func (b *Builder) build(segments []string, params Params) *url.URL {
	u := *b.base

	var plain, escaped strings.Builder
	plain.WriteString(b.base.Path)
	escaped.WriteString(b.base.EscapedPath())
	for _, s := range segments {
		plain.WriteByte('/')
		plain.WriteString(s)
		escaped.WriteByte('/')
		escaped.WriteString(url.PathEscape(s))
	}
	u.Path = plain.String()
	u.RawPath = escaped.String()

	if b.apiKey != "" {
		params = params.With(KeyParam, b.apiKey)
	}
	u.RawQuery = params.Encode()
	return &u
}
