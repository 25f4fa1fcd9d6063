package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func newContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func fixedClient(client *Client) ClientSource {
	return func(echo.Context) *Client { return client }
}

type stubSessionService struct {
	state    domain.SessionState
	loginFn  func(ctx context.Context, email, password string) (*domain.LoginResult, error)
	logoutFn func(ctx context.Context)
}

func (s *stubSessionService) Init(context.Context) {}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Logout(ctx context.Context) {
	if s.logoutFn != nil {
		s.logoutFn(ctx)
	}
}

func (s *stubSessionService) State() domain.SessionState { return s.state }

func (s *stubSessionService) Token(context.Context) (string, bool) { return "", false }

type stubArtistResource struct {
	calls []string
	state ports.ResourceState[domain.Artist]
}

func (s *stubArtistResource) Activate(_ context.Context, showAll bool) {
	s.calls = append(s.calls, "activate:"+boolString(showAll))
}

func (s *stubArtistResource) SetShowAll(_ context.Context, showAll bool) {
	s.calls = append(s.calls, "showAll:"+boolString(showAll))
}

func (s *stubArtistResource) Refresh(context.Context) { s.calls = append(s.calls, "refresh") }

func (s *stubArtistResource) State() ports.ResourceState[domain.Artist] { return s.state }

type stubProductResource struct {
	calls []string
	state ports.ResourceState[domain.Product]
}

func (s *stubProductResource) Fetch(_ context.Context, category domain.ProductCategory) {
	s.calls = append(s.calls, "fetch:"+string(category))
}

func (s *stubProductResource) Search(_ context.Context, query string) {
	s.calls = append(s.calls, "search:"+query)
}

func (s *stubProductResource) State() ports.ResourceState[domain.Product] { return s.state }

type stubAPI struct {
	callFn func(ctx context.Context, endpoint string) (*http.Response, error)
}

func (s *stubAPI) BuildURL(endpoint string) string { return "http://api.test/" + endpoint }

func (s *stubAPI) Call(ctx context.Context, endpoint string, _ *ports.RequestOptions) (*http.Response, error) {
	return s.callFn(ctx, endpoint)
}

func (s *stubAPI) CallWithAuth(ctx context.Context, endpoint, _ string, _ *ports.RequestOptions) (*http.Response, error) {
	return s.callFn(ctx, endpoint)
}

type stubStore struct{}

func (stubStore) Get(context.Context) (string, bool) { return "", false }
func (stubStore) Set(context.Context, string)        {}
func (stubStore) Clear(context.Context)              {}

type pingingStore struct {
	stubStore
	err error
}

func (p pingingStore) Ping(context.Context) error { return p.err }

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
