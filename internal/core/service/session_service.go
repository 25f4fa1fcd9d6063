package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
	"github.com/culturahub/portal/internal/metrics"
)

// LoginPath is where logout sends the user.
const LoginPath = "/login"

const (
	endpointMe    = "auth/me"
	endpointLogin = "auth/login"
)

// StateListener is notified after every state transition.
type StateListener func(domain.SessionState)

// SessionService owns the authentication lifecycle: the identity check at
// startup, login and logout. Concurrent Login calls are not serialised; the
// last response to arrive wins.
type SessionService struct {
	api   ports.APIClient
	store ports.SessionStore
	nav   ports.Navigator
	log   zerolog.Logger

	initOnce  sync.Once
	mu        sync.RWMutex
	state     domain.SessionState
	listeners []StateListener
}

var _ ports.SessionService = (*SessionService)(nil)

// NewSessionService returns a manager in the loading state. Call Init once.
func NewSessionService(api ports.APIClient, store ports.SessionStore, nav ports.Navigator, log zerolog.Logger) *SessionService {
	return &SessionService{
		api:   api,
		store: store,
		nav:   nav,
		log:   log.With().Str("component", "session").Logger(),
		state: domain.StateLoading{},
	}
}

// Subscribe registers a listener for state transitions.
func (s *SessionService) Subscribe(l StateListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// Init runs the identity check. Only the first call does anything; errors
// are absorbed and leave the session unauthenticated.
func (s *SessionService) Init(ctx context.Context) {
	s.initOnce.Do(func() { s.checkIdentity(ctx) })
}

func (s *SessionService) checkIdentity(ctx context.Context) {
	token, ok := s.store.Get(ctx)
	if !ok {
		s.log.Debug().Msg("no stored token")
		s.transition(domain.StateUnauthenticated{})
		return
	}

	user, err := s.fetchMe(ctx, token)
	if err != nil {
		s.log.Info().Err(err).Msg("identity check failed, clearing session")
		s.store.Clear(ctx)
		s.transition(domain.StateUnauthenticated{})
		return
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("session restored")
	s.transition(domain.StateAuthenticated{User: user})
}

func (s *SessionService) fetchMe(ctx context.Context, token string) (*domain.User, error) {
	resp, err := s.api.CallWithAuth(ctx, endpointMe, token, nil)
	if err != nil {
		return nil, fmt.Errorf("identity check: %w", err)
	}

	var body struct {
		User *domain.User `json:"user"`
	}
	if err := readJSON(resp, &body); err != nil {
		return nil, fmt.Errorf("identity check: %w", err)
	}
	if body.User == nil {
		return nil, fmt.Errorf("identity check: %w", &domain.ParseError{Err: fmt.Errorf("%w: missing user", domain.ErrUnexpectedShape)})
	}
	return body.User, nil
}

// Login exchanges credentials for a token. A rejected login returns an
// *domain.AuthenticationError and leaves the stored token untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	payload, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	resp, err := s.api.Call(ctx, endpointLogin, &ports.RequestOptions{
		Method: http.MethodPost,
		Header: http.Header{"Content-Type": {"application/json"}},
		Body:   bytes.NewReader(payload),
	})
	if err != nil {
		s.log.Warn().Err(err).Msg("login request failed")
		return nil, fmt.Errorf("login: %w", err)
	}

	if statusErr := checkStatus(resp); statusErr != nil {
		var he *domain.HTTPError
		code := 0
		if errors.As(statusErr, &he) {
			code = he.StatusCode
		}
		s.log.Info().Int("status", code).Msg("login rejected")
		return nil, &domain.AuthenticationError{StatusCode: code}
	}

	var result domain.LoginResult
	if err := decodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if result.Token == "" || result.User == nil {
		return nil, fmt.Errorf("login: %w", &domain.ParseError{Err: fmt.Errorf("%w: missing token or user", domain.ErrUnexpectedShape)})
	}

	s.store.Set(ctx, result.Token)
	s.transition(domain.StateAuthenticated{User: result.User})
	s.log.Info().Str("user_id", result.User.ID).Str("role", string(result.User.Role)).Msg("logged in")

	return &result, nil
}

// Logout drops the token, marks the session unauthenticated and navigates to
// the login surface. It never fails.
func (s *SessionService) Logout(ctx context.Context) {
	s.store.Clear(ctx)
	s.transition(domain.StateUnauthenticated{})
	if s.nav != nil {
		s.nav.Navigate(LoginPath)
	}
	s.log.Info().Msg("logged out")
}

// State returns the current state.
func (s *SessionService) State() domain.SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the authenticated user, or nil.
func (s *SessionService) User() *domain.User {
	if a, ok := s.State().(domain.StateAuthenticated); ok {
		return a.User
	}
	return nil
}

// Loading reports whether the identity check is still pending.
func (s *SessionService) Loading() bool {
	return s.State().Status() == domain.StatusLoading
}

// Token returns the stored token. Presence does not imply validity.
func (s *SessionService) Token(ctx context.Context) (string, bool) {
	return s.store.Get(ctx)
}

func (s *SessionService) transition(next domain.SessionState) {
	s.mu.Lock()
	s.state = next
	listeners := append([]StateListener(nil), s.listeners...)
	s.mu.Unlock()

	metrics.SessionTransitionsTotal.WithLabelValues(string(next.Status())).Inc()
	for _, l := range listeners {
		l(next)
	}
}
