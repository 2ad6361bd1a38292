package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions.
var (
	// ErrCircuitBreakerOpen is returned when the circuit breaker rejects a call.
	ErrCircuitBreakerOpen = errors.New("circuit breaker is open")
	// ErrSessionClosed is returned when a feed session has been torn down.
	ErrSessionClosed = errors.New("session is closed")
	// ErrNoCredentials is returned when no credential triple is available.
	ErrNoCredentials = errors.New("no credentials configured")
)

// CredentialError reports an incomplete credential triple. It is returned
// before any network I/O is attempted.
type CredentialError struct {
	// Missing names the absent field: "id", "key" or "secret".
	Missing string
}

// Error implements the error interface for CredentialError.
func (e *CredentialError) Error() string {
	return "webapi: missing credential " + e.Missing
}

// ConfigurationError reports an invalid client configuration detected at
// construction time.
type ConfigurationError struct {
	// Field is the configuration field that failed validation.
	Field string
	// Reason describes why the field is invalid.
	Reason string
}

// Error implements the error interface for ConfigurationError.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("webapi: invalid configuration: %s: %s", e.Field, e.Reason)
}

// HTTPError is a non-2xx response from the venue. The body is surfaced
// verbatim; the client performs no interpretation of venue error payloads.
type HTTPError struct {
	// Status is the HTTP status code returned by the server.
	Status int
	// Body is the raw response body.
	Body []byte
	// Method and URL identify the request that failed.
	Method string
	URL    string
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("webapi: %s %s: status %d: %s", e.Method, e.URL, e.Status, string(e.Body))
}

// TransportError wraps a connection, DNS or timeout failure from the
// underlying HTTP layer.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface for TransportError.
func (e *TransportError) Error() string {
	return fmt.Sprintf("webapi: %s %s: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport failure.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsCredentialError returns true if the error is an incomplete credential triple.
func IsCredentialError(err error) bool {
	var ce *CredentialError
	return errors.As(err, &ce)
}

// IsConfigurationError returns true if the error is an invalid configuration.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// IsHTTPError returns true if the error is a non-2xx response.
func IsHTTPError(err error) bool {
	var he *HTTPError
	return errors.As(err, &he)
}

// IsTransportError returns true if the error is a network-level failure.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// HTTPStatus extracts the status code from an HTTPError in the chain.
// The second return value is false when the error is not an HTTPError.
func HTTPStatus(err error) (int, bool) {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.Status, true
	}
	return 0, false
}
