package sonicos

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated is returned when a call that needs a session is made
// before a successful Login. The client returns it without issuing any
// HTTP request.
var ErrNotAuthenticated = errors.New("not authenticated: call Login first")

// AuthenticationError reports a login or logout the appliance rejected
// with a non-2xx status.
type AuthenticationError struct {
	StatusCode int
	Body       []byte
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: status %d", e.StatusCode)
}

// RequestError reports a non-2xx response to a resource or system call.
// Body holds the raw response so callers can inspect the appliance's
// status envelope.
type RequestError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.StatusCode)
}

// TransportError reports a network, TLS, or response-read failure below
// the HTTP layer.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
