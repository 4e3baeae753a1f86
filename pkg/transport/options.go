package transport

import (
	"net/http"

	"github.com/bft-labs/redmine/pkg/communicator"
	"github.com/bft-labs/redmine/pkg/log"
)

// Option configures optional behavior of a Transport.
type Option func(*options)

type options struct {
	httpClient     communicator.HTTPClient
	logger         log.Logger
	creds          *communicator.Credentials
	objectsPerPage int
}

func defaultOptions() options {
	return options{
		httpClient:     http.DefaultClient,
		logger:         log.NewNoopLogger(),
		objectsPerPage: DefaultObjectsPerPage,
	}
}

// WithHTTPClient sets the client used for every request. It is shared by
// all requests of the Transport, so its connection pool is reused.
func WithHTTPClient(client communicator.HTTPClient) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger sets the logger. If not provided, nothing is logged.
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCredentials enables HTTP basic authentication.
func WithCredentials(login, password string) Option {
	return func(o *options) {
		o.creds = &communicator.Credentials{Login: login, Password: password}
	}
}

// WithObjectsPerPage sets the listing page size. New rejects values <= 0.
func WithObjectsPerPage(n int) Option {
	return func(o *options) {
		o.objectsPerPage = n
	}
}
