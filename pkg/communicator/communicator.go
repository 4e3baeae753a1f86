package communicator

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"github.com/bft-labs/redmine/pkg/apierr"
	"github.com/bft-labs/redmine/pkg/codec"
	"github.com/bft-labs/redmine/pkg/log"
	"github.com/bft-labs/redmine/pkg/uri"
)

// ContentType is set on requests that carry an entity.
const ContentType = "application/json; charset=utf-8"

// Credentials are sent with HTTP basic authentication.
type Credentials struct {
	Login    string
	Password string
}

// Request describes one call. A nil Body sends no entity.
type Request struct {
	Method string
	URI    *url.URL
	Body   []byte
}

// Communicator sends requests through an HTTPClient.
type Communicator struct {
	client HTTPClient
	logger log.Logger
	creds  *Credentials
}

// New returns a Communicator. creds may be nil for anonymous or API-key
// access; it is copied so later changes by the caller have no effect.
func New(client HTTPClient, logger log.Logger, creds *Credentials) *Communicator {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	c := &Communicator{client: client, logger: logger}
	if creds != nil {
		bound := *creds
		c.creds = &bound
	}
	return c
}

// Send executes req and returns the response body of a 2xx response.
func (c *Communicator) Send(ctx context.Context, req Request) ([]byte, error) {
	if req.URI == nil {
		return nil, apierr.Internal("communicator: request uri is required")
	}
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	target := redact(req.URI)

	var body io.Reader
	if req.Body != nil {
		if !utf8.Valid(req.Body) {
			return nil, apierr.Internal("communicator: request body for %s %s is not valid UTF-8", method, target)
		}
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, req.URI.String(), body)
	if err != nil {
		return nil, apierr.Wrap(err, apierr.KindInternal, "communicator: create request",
			map[string]any{"method": method, "uri": target})
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", UserAgent)
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", ContentType)
	}
	if c.creds != nil {
		httpReq.SetBasicAuth(c.creds.Login, c.creds.Password)
	}

	c.logger.Debug("sending request", log.String("method", method), log.String("uri", target))

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, apierr.Transport(err, "communicator: send request",
			map[string]any{"method": method, "uri": target})
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierr.Transport(err, "communicator: read response",
			map[string]any{"method": method, "uri": target, "status_code": resp.StatusCode})
	}

	if resp.StatusCode/100 != 2 {
		c.logger.Warn("request failed",
			log.String("method", method),
			log.String("uri", target),
			log.Int("status", resp.StatusCode))
		var messages []string
		if resp.StatusCode == http.StatusUnprocessableEntity {
			messages = codec.ErrorMessages(respBody)
		}
		return nil, apierr.Response(resp.StatusCode, string(respBody), messages)
	}

	c.logger.Debug("received response",
		log.String("method", method),
		log.Int("status", resp.StatusCode),
		log.Int("bytes", len(respBody)))
	return respBody, nil
}

// redact hides the API key so URIs can be logged.
func redact(u *url.URL) string {
	q := u.Query()
	if !q.Has(uri.KeyParam) {
		return u.Redacted()
	}
	q.Set(uri.KeyParam, "*****")
	clean := *u
	clean.RawQuery = q.Encode()
	return clean.Redacted()
}
