package service

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/culturahub/portal/internal/core/domain"
)

func newResponse(status int, body string) *http.Response {
	req, _ := http.NewRequest(http.MethodGet, "http://api.test/api/artists", nil)
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

func TestDecodeCollection_AcceptsBothShapes(t *testing.T) {
	item := `{"id":"1","name":"X","area":"painting","description":"d","email":"e","phone":"p"}`

	wrapped, err := decodeCollectionResponse[domain.Artist](newResponse(http.StatusOK, `{"artists":[`+item+`]}`), "artists")
	if err != nil {
		t.Fatalf("wrapped shape: unexpected error: %v", err)
	}
	bare, err := decodeCollectionResponse[domain.Artist](newResponse(http.StatusOK, `[`+item+`]`), "artists")
	if err != nil {
		t.Fatalf("bare shape: unexpected error: %v", err)
	}

	if len(wrapped) != 1 || len(bare) != 1 {
		t.Fatalf("expected one artist from each shape, got %d and %d", len(wrapped), len(bare))
	}
	if wrapped[0].ID != bare[0].ID || wrapped[0].Area != "painting" || bare[0].Phone != "p" {
		t.Fatalf("shapes decoded differently: %+v vs %+v", wrapped[0], bare[0])
	}
}

func TestDecodeCollection_NullFieldIsEmpty(t *testing.T) {
	items, err := decodeCollectionResponse[domain.Product](newResponse(http.StatusOK, `{"products":null}`), "products")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestDecodeCollection_RejectsOtherShapes(t *testing.T) {
	bodies := []string{
		`{"items":[]}`,
		`"artists"`,
		`42`,
		``,
		`{"artists":{"id":"1"}}`,
	}
	for _, body := range bodies {
		_, err := decodeCollectionResponse[domain.Artist](newResponse(http.StatusOK, body), "artists")
		var pe *domain.ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("body %q: expected ParseError, got %v", body, err)
		}
	}

	_, err := decodeCollectionResponse[domain.Artist](newResponse(http.StatusOK, `{"items":[]}`), "artists")
	if !errors.Is(err, domain.ErrUnexpectedShape) {
		t.Fatalf("expected ErrUnexpectedShape, got %v", err)
	}
}

func TestDecodeCollection_MalformedJSON(t *testing.T) {
	_, err := decodeCollectionResponse[domain.Artist](newResponse(http.StatusOK, `[{"id":`), "artists")
	var pe *domain.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestCheckStatus_HTTPErrorWithEnvelope(t *testing.T) {
	err := checkStatus(newResponse(http.StatusForbidden, `{"error":"forbidden"}`))
	var he *domain.HTTPError
	if !errors.As(err, &he) {
		t.Fatalf("expected HTTPError, got %v", err)
	}
	if he.StatusCode != http.StatusForbidden || he.Message != "forbidden" {
		t.Fatalf("unexpected error fields: %+v", he)
	}
	if he.URL != "http://api.test/api/artists" {
		t.Fatalf("unexpected url %q", he.URL)
	}
}

func TestCheckStatus_PlainTextBody(t *testing.T) {
	err := checkStatus(newResponse(http.StatusBadGateway, "upstream down\n"))
	var he *domain.HTTPError
	if !errors.As(err, &he) || he.Message != "upstream down" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReadJSON(t *testing.T) {
	var out struct {
		User domain.User `json:"user"`
	}
	if err := readJSON(newResponse(http.StatusOK, `{"user":{"id":"1","role":"admin"}}`), &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.ID != "1" || out.User.Role != domain.RoleAdmin {
		t.Fatalf("unexpected user: %+v", out.User)
	}

	err := readJSON(newResponse(http.StatusOK, `not-json`), &out)
	var pe *domain.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}
