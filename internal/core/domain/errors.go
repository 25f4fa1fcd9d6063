package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrLoginFailed is matched by every AuthenticationError.
	ErrLoginFailed = errors.New("login failed")
	// ErrUnexpectedShape is returned when a response body is valid JSON but
	// none of the accepted shapes.
	ErrUnexpectedShape = errors.New("unexpected response shape")
)

// NetworkError means the request never completed (DNS, refused connection,
// cancelled context, broken body).
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a completed request answered with a non-2xx status.
type HTTPError struct {
	StatusCode int
	URL        string
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("http %d from %s", e.StatusCode, e.URL)
}

// ParseError means the body could not be decoded into the expected form.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse error: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// AuthenticationError is returned when the backend rejects a login. The
// status code is kept for logging only; callers get no finer distinction.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string { return ErrLoginFailed.Error() }

func (e *AuthenticationError) Is(target error) bool { return target == ErrLoginFailed }
