package service

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
)

// stubAPI records every request and answers through respond.
type stubAPI struct {
	mu      sync.Mutex
	calls   []stubCall
	respond func(call stubCall) (*http.Response, error)
}

type stubCall struct {
	Endpoint string
	Token    string
	Auth     bool
	Method   string
	Header   http.Header
	Body     string
}

func (s *stubAPI) BuildURL(endpoint string) string {
	return "http://api.test/api/" + strings.TrimLeft(endpoint, "/")
}

func (s *stubAPI) Call(_ context.Context, endpoint string, opts *ports.RequestOptions) (*http.Response, error) {
	return s.record(endpoint, "", false, opts)
}

func (s *stubAPI) CallWithAuth(_ context.Context, endpoint, token string, opts *ports.RequestOptions) (*http.Response, error) {
	return s.record(endpoint, token, true, opts)
}

func (s *stubAPI) record(endpoint, token string, auth bool, opts *ports.RequestOptions) (*http.Response, error) {
	call := stubCall{Endpoint: endpoint, Token: token, Auth: auth, Method: http.MethodGet}
	if opts != nil {
		if opts.Method != "" {
			call.Method = opts.Method
		}
		call.Header = opts.Header
		if opts.Body != nil {
			b, _ := io.ReadAll(opts.Body)
			call.Body = string(b)
		}
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()

	if s.respond == nil {
		return jsonResponse(http.StatusOK, `{}`), nil
	}
	return s.respond(call)
}

func (s *stubAPI) Calls() []stubCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]stubCall(nil), s.calls...)
}

func jsonResponse(status int, body string) *http.Response {
	req, _ := http.NewRequest(http.MethodGet, "http://api.test/api/", nil)
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}
}

// stubStore is an in-memory session slot that counts writes.
type stubStore struct {
	mu     sync.Mutex
	token  string
	ok     bool
	sets   int
	clears int
}

func newStubStore(token string) *stubStore {
	return &stubStore{token: token, ok: token != ""}
}

func (s *stubStore) Get(context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.ok
}

func (s *stubStore) Set(_ context.Context, token string) {
	s.mu.Lock()
	s.token, s.ok = token, true
	s.sets++
	s.mu.Unlock()
}

func (s *stubStore) Clear(context.Context) {
	s.mu.Lock()
	s.token, s.ok = "", false
	s.clears++
	s.mu.Unlock()
}

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) Navigate(path string) {
	n.paths = append(n.paths, path)
}

// recordingDispatcher keeps dispatched notifications in order.
type recordingDispatcher struct {
	got []domain.Notification
}

func (d *recordingDispatcher) Dispatch(n domain.Notification) domain.NotificationEntry {
	d.got = append(d.got, n)
	return domain.NotificationEntry{ID: "n-1", Notification: n}
}
