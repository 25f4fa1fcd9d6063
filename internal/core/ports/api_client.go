package ports

import (
	"context"
	"io"
	"net/http"
)

// RequestOptions carries the caller-supplied parts of a request. A nil
// *RequestOptions means a plain GET with no headers and no body.
type RequestOptions struct {
	Method string
	Header http.Header
	Body   io.Reader
}

// APIClient is the single entry point to the content backend.
type APIClient interface {
	// BuildURL joins endpoint to the configured base with exactly one slash.
	BuildURL(endpoint string) string
	// Call performs the request and returns the raw response. Non-2xx
	// statuses are not errors; transport failures are *domain.NetworkError.
	Call(ctx context.Context, endpoint string, opts *RequestOptions) (*http.Response, error)
	// CallWithAuth is Call with an Authorization: Bearer header that
	// overrides any caller-supplied one.
	CallWithAuth(ctx context.Context, endpoint, token string, opts *RequestOptions) (*http.Response, error)
}
