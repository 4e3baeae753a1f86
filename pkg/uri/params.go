package uri

import (
	"fmt"
	"net/url"
	"strings"
)

// Param is one query parameter.
type Param struct {
	Name  string
	Value string
}

// P is shorthand for Param{Name: name, Value: value}.
func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

// Params is an ordered list of query parameters. Unlike url.Values it keeps
// insertion order when encoded.
type Params []Param

// With returns a copy of p with name=value appended. p is not modified.
func (p Params) With(name, value string) Params {
	out := make(Params, len(p), len(p)+1)
	copy(out, p)
	return append(out, Param{Name: name, Value: value})
}

// WithInt is like With for integer values.
func (p Params) WithInt(name string, value int) Params {
	return p.With(name, fmt.Sprint(value))
}

// Encode percent-encodes p in insertion order.
func (p Params) Encode() string {
	var sb strings.Builder
	for i, param := range p {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(param.Name))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(param.Value))
	}
	return sb.String()
}

// ParseParam parses "name=value". A missing "=" yields an empty value.
func ParseParam(s string) (Param, error) {
	name, value, _ := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return Param{}, fmt.Errorf("parameter %q has no name", s)
	}
	return Param{Name: name, Value: value}, nil
}
