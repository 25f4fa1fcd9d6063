package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
)

// errorResponse is the canonical error envelope for all portal errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that maps the client
// error taxonomy to status codes and renders {"error": "<message>"}.
// Unexpected errors are logged and reported as 500 without details.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, validation).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var (
		netErr   *domain.NetworkError
		httpErr  *domain.HTTPError
		parseErr *domain.ParseError
	)
	switch {
	case errors.Is(err, domain.ErrLoginFailed):
		return http.StatusUnauthorized, "invalid email or password"
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "request cancelled"
	case errors.As(err, &netErr):
		log.Warn().Err(err).Str("path", c.Path()).Msg("content service unreachable")
		return http.StatusBadGateway, "content service unreachable"
	case errors.As(err, &httpErr):
		log.Warn().Err(err).Str("path", c.Path()).Msg("content service error")
		return http.StatusBadGateway, fmt.Sprintf("content service answered %d", httpErr.StatusCode)
	case errors.As(err, &parseErr):
		log.Warn().Err(err).Str("path", c.Path()).Msg("content service returned malformed data")
		return http.StatusBadGateway, "content service returned an unexpected response"
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
