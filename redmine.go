// Package redmine is a client for the Redmine REST API.
//
// Example usage:
//
//	t, err := redmine.New("https://redmine.example.com", os.Getenv("REDMINE_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	projects, err := transport.GetObjectsList[redmine.Project](ctx, t)
//
// The entity operations live in package transport; this package wires the
// built-in entities and re-exports the common types.
package redmine

import (
	"github.com/bft-labs/redmine/pkg/beans"
	"github.com/bft-labs/redmine/pkg/transport"
	"github.com/bft-labs/redmine/pkg/uri"
)

// Project is a Redmine project.
type Project = beans.Project

// Issue is a Redmine issue.
type Issue = beans.Issue

// Transport issues entity requests against one server.
type Transport = transport.Transport

// Option configures a Transport.
type Option = transport.Option

var (
	WithHTTPClient     = transport.WithHTTPClient
	WithLogger         = transport.WithLogger
	WithCredentials    = transport.WithCredentials
	WithObjectsPerPage = transport.WithObjectsPerPage
)

// New returns a Transport for the server at baseURL with every built-in
// entity registered. apiKey may be empty when credentials are used instead.
func New(baseURL, apiKey string, opts ...Option) (*Transport, error) {
	b, err := uri.New(baseURL, apiKey)
	if err != nil {
		return nil, err
	}
	return transport.New(b, beans.DefaultRegistry(), opts...)
}
