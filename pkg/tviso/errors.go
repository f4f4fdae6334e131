package tviso

import (
	"fmt"
)

// Error represents an error code reported by the Tviso API.
type Error struct {
	Code     int    // Tviso error code
	Endpoint string // Endpoint that reported it
}

// Error returns the error message.
func (e *Error) Error() string {
	return fmt.Sprintf("tviso: %s: error %d", e.Endpoint, e.Code)
}

// Is checks if the target error is a Tviso error with the same code.
//
// This allows errors.Is() to work with *Error types.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// AuthTokenError is returned when the API refuses to issue an
// application auth token.
type AuthTokenError struct {
	Code int // Tviso error code
}

// Error returns the error message.
func (e *AuthTokenError) Error() string {
	return fmt.Sprintf("tviso: failed getting auth_token: error %d", e.Code)
}

// Is reports whether target is an *AuthTokenError with the same code.
func (e *AuthTokenError) Is(target error) bool {
	t, ok := target.(*AuthTokenError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// ErrCodeInvalidUserToken is the error code the API reports when the
// supplied user_token is invalid or expired.
const ErrCodeInvalidUserToken = 7

// Predefined errors for common cases.
var (
	// ErrMissingConfiguration is returned by NewClient when the app id
	// or secret is empty.
	ErrMissingConfiguration = fmt.Errorf("tviso: missing required configuration")

	// ErrMissingUserToken is returned when an operation requires a user
	// but no user token is set, or the API rejected the current one.
	// Callers recover by logging in again with GetUserToken.
	ErrMissingUserToken = fmt.Errorf("tviso: missing user_token")

	// ErrMissingURL is returned when a request is made without an endpoint.
	ErrMissingURL = fmt.Errorf("tviso: missing url")

	// ErrMalformedResponse is returned when the response body is not JSON.
	ErrMalformedResponse = fmt.Errorf("tviso: malformed response")

	// ErrEmptyUserToken is returned when a login succeeds but the API
	// sends back no user_token.
	ErrEmptyUserToken = fmt.Errorf("tviso: received empty user_token")
)
