// Package apperror defines the client's error taxonomy. Every gateway or
// store failure is translated into one of these before it reaches a screen;
// screens render them as user-visible messages and nothing propagates past
// the CLI boundary.
package apperror

import "fmt"

// Fallback user-facing messages when the backend supplies none.
const (
	LoginFallbackMessage    = "Error al iniciar sesión"
	RegisterFallbackMessage = "Error al registrarse"
)

// AuthError reports a rejected login or registration. Message is the
// backend-provided message when one was present, else a generic fallback.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Unwrap() error { return e.Err }

// NewAuthError builds an AuthError, substituting fallback when the backend
// supplied no message.
func NewAuthError(message, fallback string, err error) *AuthError {
	if message == "" {
		message = fallback
	}
	return &AuthError{Message: message, Err: err}
}

// RequestError reports any other failed gateway call. It preserves the
// underlying transport/HTTP failure for logging; callers present their own
// domain-specific message instead of the raw error.
type RequestError struct {
	Op         string // e.g. "list movies"
	StatusCode int    // 0 when the request never reached the backend
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// ValidationError reports a local form-field check failure. It never reaches
// the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
