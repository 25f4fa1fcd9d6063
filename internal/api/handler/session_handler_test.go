package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/culturahub/portal/internal/core/domain"
)

func TestSessionHandler_Get(t *testing.T) {
	e := newEcho()
	user := &domain.User{ID: "u1", Email: "ana@example.com", Name: "Ana", Role: domain.RoleAdmin}
	h := NewSessionHandler(fixedClient(&Client{Session: &stubSessionService{state: domain.StateAuthenticated{User: user}}, Navigator: NewRouteNavigator()}))

	c, rec := newContext(e, http.MethodGet, "/session", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "authenticated" {
		t.Fatalf("expected authenticated, got %v", resp["status"])
	}
	u, ok := resp["user"].(map[string]any)
	if !ok || u["email"] != "ana@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestSessionHandler_GetUnauthenticatedHasNoUser(t *testing.T) {
	e := newEcho()
	h := NewSessionHandler(fixedClient(&Client{Session: &stubSessionService{state: domain.StateUnauthenticated{}}, Navigator: NewRouteNavigator()}))

	c, rec := newContext(e, http.MethodGet, "/session", "")
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["status"] != "unauthenticated" {
		t.Fatalf("expected unauthenticated, got %v", resp["status"])
	}
	if _, ok := resp["user"]; ok {
		t.Fatalf("expected no user field, got %+v", resp)
	}
}

func TestSessionHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*domain.LoginResult, error) {
			if email != "ana@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.LoginResult{Token: "tok", User: &domain.User{ID: "u1", Email: email}}, nil
		},
	}
	h := NewSessionHandler(fixedClient(&Client{Session: stub, Navigator: NewRouteNavigator()}))

	c, rec := newContext(e, http.MethodPost, "/session/login", `{"email":"ana@example.com","password":"secret"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "tok" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestSessionHandler_Login_PropagatesError(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(context.Context, string, string) (*domain.LoginResult, error) {
			return nil, &domain.AuthenticationError{StatusCode: http.StatusUnauthorized}
		},
	}
	h := NewSessionHandler(fixedClient(&Client{Session: stub, Navigator: NewRouteNavigator()}))

	c, _ := newContext(e, http.MethodPost, "/session/login", `{"email":"ana@example.com","password":"bad"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrLoginFailed) {
		t.Fatalf("expected ErrLoginFailed, got %v", err)
	}
}

func TestSessionHandler_Login_Validation(t *testing.T) {
	e := newEcho()
	stub := &stubSessionService{
		loginFn: func(context.Context, string, string) (*domain.LoginResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewSessionHandler(fixedClient(&Client{Session: stub, Navigator: NewRouteNavigator()}))

	cases := map[string]string{
		"not json":      "{",
		"missing pass":  `{"email":"ana@example.com"}`,
		"invalid email": `{"email":"ana","password":"x"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newContext(e, http.MethodPost, "/session/login", body)
			err := h.Login(c)

			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %v", err)
			}
		})
	}
}

func TestSessionHandler_LogoutRedirectsToNavigatorTarget(t *testing.T) {
	e := newEcho()
	nav := NewRouteNavigator()
	stub := &stubSessionService{
		logoutFn: func(context.Context) { nav.Navigate("/login") },
	}
	h := NewSessionHandler(fixedClient(&Client{Session: stub, Navigator: nav}))

	c, rec := newContext(e, http.MethodPost, "/session/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/login" {
		t.Fatalf("expected /login, got %q", loc)
	}
}

func TestRouteNavigator_DefaultTarget(t *testing.T) {
	nav := NewRouteNavigator()
	if nav.Target() != "/" {
		t.Fatalf("expected /, got %q", nav.Target())
	}
	nav.Navigate("/login")
	if nav.Target() != "/login" {
		t.Fatalf("expected /login, got %q", nav.Target())
	}
}
