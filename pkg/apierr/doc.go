// Package apierr defines the failure kinds reported by the Redmine transport.
//
// Every error returned by the transport packages is a go-errors envelope
// whose TextCode names one of the kinds below. Use [KindOf] or the Is*
// predicates to branch on them:
//
//	_, err := transport.GetObject[beans.Project](ctx, t, "demo")
//	switch {
//	case apierr.IsNotFound(err):
//	    // project does not exist
//	case apierr.IsAuth(err):
//	    // reissue with valid credentials
//	}
//
// # Kinds
//
//   - [KindInternal]: unregistered entity type, malformed base URL, encoding defects
//   - [KindValidation]: arguments rejected locally, such as a non-positive page size
//   - [KindAuth]: HTTP 401 or 403
//   - [KindNotFound]: HTTP 404
//   - [KindFormat]: the response body is not the expected JSON envelope
//   - [KindTransport]: the request failed before an HTTP status was received
//   - [KindAPI]: any other non-2xx status; see [StatusCode], [Body] and [Messages]
package apierr
