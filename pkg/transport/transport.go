// Package transport maps registered entity types onto Redmine's REST
// endpoints.
//
// Operations are generic functions over the entity type; the type selects
// the [entity.Config] that names the endpoint and supplies the codec:
//
//	t, err := transport.New(builder, beans.DefaultRegistry())
//	p, err := transport.GetObject[beans.Project](ctx, t, "redmine")
//	all, err := transport.GetObjectsList[beans.Issue](ctx, t, uri.P("project_id", "1"))
//
// Every operation blocks until it has completed, including all pages of a
// listing. A Transport holds mutable credentials and page size; do not
// change them while requests from the same instance are in flight.
package transport

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bft-labs/redmine/pkg/apierr"
	"github.com/bft-labs/redmine/pkg/codec"
	"github.com/bft-labs/redmine/pkg/communicator"
	"github.com/bft-labs/redmine/pkg/entity"
	"github.com/bft-labs/redmine/pkg/log"
	"github.com/bft-labs/redmine/pkg/uri"
)

// DefaultObjectsPerPage is the listing page size used unless configured.
const DefaultObjectsPerPage = 25

// Transport issues entity requests against one Redmine server.
type Transport struct {
	uris     *uri.Builder
	registry *entity.Registry
	client   communicator.HTTPClient
	logger   log.Logger

	creds          *communicator.Credentials
	objectsPerPage int
}

// New returns a Transport resolving URIs with uris and entity configs with
// registry.
func New(uris *uri.Builder, registry *entity.Registry, opts ...Option) (*Transport, error) {
	if uris == nil {
		return nil, apierr.Internal("transport: uri builder is required")
	}
	if registry == nil {
		return nil, apierr.Internal("transport: entity registry is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := &Transport{
		uris:     uris,
		registry: registry,
		client:   o.httpClient,
		logger:   o.logger,
		creds:    o.creds,
	}
	if err := t.SetObjectsPerPage(o.objectsPerPage); err != nil {
		return nil, err
	}
	return t, nil
}

// SetCredentials enables HTTP basic authentication for subsequent requests.
func (t *Transport) SetCredentials(login, password string) {
	t.creds = &communicator.Credentials{Login: login, Password: password}
}

// ObjectsPerPage returns the number of objects requested per listing page.
func (t *Transport) ObjectsPerPage() int {
	return t.objectsPerPage
}

// SetObjectsPerPage changes the listing page size for subsequent
// GetObjectsList calls. n must be positive.
func (t *Transport) SetObjectsPerPage(n int) error {
	if n <= 0 {
		return apierr.Validation("transport: page size must be > 0, got %d", n)
	}
	t.objectsPerPage = n
	return nil
}

// communicator binds the current credentials to a fresh Communicator. The
// HTTP client, and with it the connection pool, is shared.
func (t *Transport) communicator() *communicator.Communicator {
	return communicator.New(t.client, t.logger, t.creds)
}

// AddObject creates obj and returns the server's representation of it,
// including any server-assigned fields such as the id.
func AddObject[T any](ctx context.Context, t *Transport, obj T, params ...uri.Param) (T, error) {
	var zero T
	cfg, err := entity.Lookup[T](t.registry)
	if err != nil {
		return zero, err
	}

	body, err := codec.EncodeSingle(cfg.SingleName, obj, cfg.Writer)
	if err != nil {
		return zero, err
	}
	resp, err := t.communicator().Send(ctx, communicator.Request{
		Method: http.MethodPost,
		URI:    t.uris.CollectionURI(cfg.PluralName, params),
		Body:   body,
	})
	if err != nil {
		return zero, err
	}
	return codec.DecodeSingle(resp, cfg.SingleName, cfg.Parser)
}

// UpdateObject sends obj to its item endpoint. Redmine answers an update
// without a representation, so the response body is ignored and the
// caller's obj remains the only local copy; server-side derived fields are
// not reflected in it.
func UpdateObject[T entity.Identifiable](ctx context.Context, t *Transport, obj T, params ...uri.Param) error {
	cfg, err := entity.Lookup[T](t.registry)
	if err != nil {
		return err
	}

	body, err := codec.EncodeSingle(cfg.SingleName, obj, cfg.Writer)
	if err != nil {
		return err
	}
	_, err = t.communicator().Send(ctx, communicator.Request{
		Method: http.MethodPut,
		URI:    t.uris.ItemURI(cfg.PluralName, strconv.Itoa(obj.GetID()), params),
		Body:   body,
	})
	return err
}

// DeleteObject deletes the T identified by id.
func DeleteObject[T entity.Identifiable](ctx context.Context, t *Transport, id string) error {
	cfg, err := entity.Lookup[T](t.registry)
	if err != nil {
		return err
	}
	_, err = t.communicator().Send(ctx, communicator.Request{
		Method: http.MethodDelete,
		URI:    t.uris.ItemURI(cfg.PluralName, id, nil),
	})
	return err
}

// GetObject fetches the T identified by key, which may be a numeric id or,
// for projects, the identifier. params are added to the query, e.g.
// uri.P("include", "journals").
func GetObject[T any](ctx context.Context, t *Transport, key string, params ...uri.Param) (T, error) {
	var zero T
	cfg, err := entity.Lookup[T](t.registry)
	if err != nil {
		return zero, err
	}

	resp, err := t.communicator().Send(ctx, communicator.Request{
		Method: http.MethodGet,
		URI:    t.uris.ItemURI(cfg.PluralName, key, params),
	})
	if err != nil {
		return zero, err
	}
	return codec.DecodeSingle(resp, cfg.SingleName, cfg.Parser)
}
