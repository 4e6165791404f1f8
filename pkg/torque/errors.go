package torque

import "fmt"

// ConfigurationError represents a missing or unusable client configuration
// value. It is always returned before any network I/O is attempted.
type ConfigurationError struct {
	// Message is the human-readable error description
	Message string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return e.Message
}

// TransportError represents a network-level failure: DNS resolution, TLS
// handshake, connection reset, or the request timeout expiring.
type TransportError struct {
	// Cause is the underlying error from the HTTP client
	Cause error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	return fmt.Sprintf("Error making API call: %v", e.Cause)
}

// Unwrap returns the underlying transport error.
func (e *TransportError) Unwrap() error {
	return e.Cause
}

// APIError represents a non-success HTTP status from the Torque API.
// Message is the remote-supplied "message" field when the error body
// contained one, otherwise the generic status text.
type APIError struct {
	// StatusCode is the HTTP status code returned by the API
	StatusCode int

	// Message is the best available error description
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Message
}
