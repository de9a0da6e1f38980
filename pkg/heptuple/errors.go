package heptuple

import (
	"errors"
	"fmt"
)

// Error types for common failure scenarios.
var (
	// ErrNotAuthenticated indicates an authenticated operation was attempted
	// without a logged-in session. No network call is made in this case.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrSessionExpired indicates the backend rejected the session token
	// (HTTP 401). The local session has already been cleared when this is
	// returned.
	ErrSessionExpired = errors.New("session expired")
)

// AuthError is an authentication failure: a rejected login or registration,
// a missing session, or an expired session.
type AuthError struct {
	// Op is the operation that failed ("login", "register", ...).
	Op string

	// Message is the backend-supplied failure message, or a generic one.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op + ": authentication failed"
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx response from a domain API call. Message carries the
// backend's "detail" field when the error body could be parsed.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.Status)
}

// IsAuthError reports whether the error is an authentication failure of any
// kind. Callers typically map these to a re-authentication prompt.
func IsAuthError(err error) bool {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return true
	}
	return errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrSessionExpired)
}

// IsSessionExpired reports whether the error came from the backend rejecting
// the current token (HTTP 401 on an authenticated call).
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrSessionExpired)
}

// IsNotFound reports whether the error is an HTTP 404 from the API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
