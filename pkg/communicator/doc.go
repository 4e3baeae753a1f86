// Package communicator issues single HTTP requests against a Redmine server
// and classifies the outcome.
//
// A [Communicator] is cheap to create and binds one set of credentials for
// its lifetime. The [HTTPClient] it wraps may be shared, so connection
// pooling stays with the caller's *http.Client.
//
//	c := communicator.New(http.DefaultClient, logger, &communicator.Credentials{
//	    Login:    "admin",
//	    Password: "secret",
//	})
//	body, err := c.Send(ctx, communicator.Request{Method: http.MethodGet, URI: u})
//
// Status handling: 2xx returns the body unchanged, 401/403 yield an
// authentication error, 404 a not-found error and any other status an API
// error carrying the status and body. Failures before a status is received
// are reported as transport errors.
package communicator
