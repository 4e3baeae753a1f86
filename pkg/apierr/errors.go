package apierr

import (
	"fmt"
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

// Kind names a class of failure. It is stored as the TextCode of the
// underlying go-errors envelope so callers can branch on it.
type Kind string

const (
	KindUnknown    Kind = ""
	KindInternal   Kind = "INTERNAL_ERROR"
	KindValidation Kind = "VALIDATION_ERROR"
	KindAuth       Kind = "AUTHENTICATION_ERROR"
	KindNotFound   Kind = "NOT_FOUND"
	KindFormat     Kind = "FORMAT_ERROR"
	KindTransport  Kind = "TRANSPORT_ERROR"
	KindAPI        Kind = "API_ERROR"
)

const (
	metaBody   = "body"
	metaErrors = "errors"
)

func (k Kind) category() goerrors.Category {
	switch k {
	case KindValidation:
		return goerrors.CategoryValidation
	case KindAuth:
		return goerrors.CategoryAuth
	case KindNotFound:
		return goerrors.CategoryNotFound
	case KindFormat:
		return goerrors.CategoryOperation
	case KindTransport, KindAPI:
		return goerrors.CategoryExternal
	default:
		return goerrors.CategoryInternal
	}
}

// defaultCode is used when the failure did not come with an HTTP status.
func (k Kind) defaultCode() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindFormat:
		return http.StatusBadGateway
	case KindTransport:
		return http.StatusServiceUnavailable
	case KindAPI:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// New returns an error of the given kind.
func New(kind Kind, message string, metadata map[string]any) error {
	err := goerrors.New(message, kind.category()).
		WithCode(kind.defaultCode()).
		WithTextCode(string(kind))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// Wrap returns an error of the given kind carrying source as its cause.
// A nil source behaves like New.
func Wrap(source error, kind Kind, message string, metadata map[string]any) error {
	if source == nil {
		return New(kind, message, metadata)
	}
	err := goerrors.Wrap(source, kind.category(), message).
		WithCode(kind.defaultCode()).
		WithTextCode(string(kind))
	if len(metadata) > 0 {
		err.WithMetadata(metadata)
	}
	return err
}

// Internal reports a programming or configuration defect.
func Internal(format string, args ...any) error {
	return New(KindInternal, fmt.Sprintf(format, args...), nil)
}

// Validation reports an invalid argument rejected before any request is made.
func Validation(format string, args ...any) error {
	return New(KindValidation, fmt.Sprintf(format, args...), nil)
}

// Format wraps a failure to interpret a response body.
func Format(source error, message string) error {
	return Wrap(source, KindFormat, message, nil)
}

// Transport wraps a failure that happened before an HTTP status was received.
func Transport(source error, message string, metadata map[string]any) error {
	return Wrap(source, KindTransport, message, metadata)
}

// Response builds the error for a non-2xx HTTP status. 401 and 403 map to
// KindAuth, 404 to KindNotFound, anything else to KindAPI. The status and
// raw body are kept on the error; messages holds server-reported
// validation errors, if any.
func Response(status int, body string, messages []string) error {
	var kind Kind
	var message string
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
		message = fmt.Sprintf("redmine: authentication failed (%d)", status)
	case http.StatusNotFound:
		kind = KindNotFound
		message = "redmine: object not found"
	default:
		kind = KindAPI
		message = fmt.Sprintf("redmine: server returned %d", status)
		if len(messages) > 0 {
			message = fmt.Sprintf("redmine: server returned %d: %v", status, messages)
		}
	}

	metadata := map[string]any{
		"status_code": status,
		metaBody:      body,
	}
	if len(messages) > 0 {
		metadata[metaErrors] = messages
	}
	return goerrors.New(message, kind.category()).
		WithCode(status).
		WithTextCode(string(kind)).
		WithMetadata(metadata)
}

func rich(err error) (*goerrors.Error, bool) {
	if err == nil {
		return nil, false
	}
	var r *goerrors.Error
	if !goerrors.As(err, &r) {
		return nil, false
	}
	return r, true
}

// KindOf classifies err. Errors not produced by this module yield KindUnknown.
func KindOf(err error) Kind {
	r, ok := rich(err)
	if !ok {
		return KindUnknown
	}
	switch k := Kind(r.TextCode); k {
	case KindInternal, KindValidation, KindAuth, KindNotFound, KindFormat, KindTransport, KindAPI:
		return k
	}
	return KindUnknown
}

func IsInternal(err error) bool   { return KindOf(err) == KindInternal }
func IsValidation(err error) bool { return KindOf(err) == KindValidation }
func IsAuth(err error) bool       { return KindOf(err) == KindAuth }
func IsNotFound(err error) bool   { return KindOf(err) == KindNotFound }
func IsFormat(err error) bool     { return KindOf(err) == KindFormat }
func IsTransport(err error) bool  { return KindOf(err) == KindTransport }
func IsAPI(err error) bool        { return KindOf(err) == KindAPI }

// StatusCode returns the HTTP status carried by a response error, or 0.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindAuth, KindNotFound, KindAPI:
	default:
		return 0
	}
	r, _ := rich(err)
	if _, ok := r.Metadata[metaBody]; !ok {
		return 0
	}
	return r.Code
}

// Body returns the raw response body carried by a response error.
func Body(err error) string {
	r, ok := rich(err)
	if !ok {
		return ""
	}
	body, _ := r.Metadata[metaBody].(string)
	return body
}

// Messages returns the server-reported error messages, typically sent
// with a 422 response.
func Messages(err error) []string {
	r, ok := rich(err)
	if !ok {
		return nil
	}
	msgs, _ := r.Metadata[metaErrors].([]string)
	return msgs
}
