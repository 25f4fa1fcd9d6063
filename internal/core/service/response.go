package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/culturahub/portal/internal/core/domain"
)

// maxErrorBody bounds how much of a non-2xx body is read for the message.
const maxErrorBody = 4 << 10

// errorEnvelope covers the error bodies the backend produces.
type errorEnvelope struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// checkStatus returns nil for 2xx responses. Otherwise it drains and closes
// the body and returns a *domain.HTTPError.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(raw))
	var env errorEnvelope
	if json.Unmarshal(raw, &env) == nil {
		switch {
		case env.Error != "":
			msg = env.Error
		case env.Message != "":
			msg = env.Message
		}
	}

	return &domain.HTTPError{StatusCode: resp.StatusCode, URL: requestURL(resp), Message: msg}
}

// decodeJSON decodes the body into v and closes it.
func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &domain.ParseError{Err: err}
	}
	return nil
}

// readJSON is checkStatus followed by decodeJSON.
func readJSON(resp *http.Response, v any) error {
	if err := checkStatus(resp); err != nil {
		return err
	}
	return decodeJSON(resp, v)
}

// decodeCollectionResponse normalises the two accepted collection shapes, a bare
// JSON array or an object carrying the array under field, into one slice.
// Any other shape yields a *domain.ParseError wrapping domain.ErrUnexpectedShape.
func decodeCollectionResponse[T any](resp *http.Response, field string) ([]T, error) {
	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.NetworkError{Method: requestMethod(resp), URL: requestURL(resp), Err: err}
	}
	return decodeCollection[T](raw, field)
}

func decodeCollection[T any](raw []byte, field string) ([]T, error) {
	body := bytes.TrimSpace(raw)
	if len(body) == 0 {
		return nil, &domain.ParseError{Err: fmt.Errorf("%w: empty body", domain.ErrUnexpectedShape)}
	}

	items := []T{}
	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, &domain.ParseError{Err: err}
		}
	case '{':
		var env map[string]json.RawMessage
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, &domain.ParseError{Err: err}
		}
		inner, ok := env[field]
		if !ok {
			return nil, &domain.ParseError{Err: fmt.Errorf("%w: object without %q field", domain.ErrUnexpectedShape, field)}
		}
		if err := json.Unmarshal(inner, &items); err != nil {
			return nil, &domain.ParseError{Err: err}
		}
		if items == nil {
			items = []T{}
		}
	default:
		return nil, &domain.ParseError{Err: domain.ErrUnexpectedShape}
	}
	return items, nil
}

func requestMethod(resp *http.Response) string {
	if resp.Request == nil {
		return ""
	}
	return resp.Request.Method
}

func requestURL(resp *http.Response) string {
	if resp.Request == nil || resp.Request.URL == nil {
		return ""
	}
	return resp.Request.URL.String()
}
