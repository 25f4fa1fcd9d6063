package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
)

const artistJSON = `{"id":"1","name":"X","area":"painting","description":"d","email":"e","phone":"p"}`

func TestArtistResource_AcceptsWrappedAndBareBodies(t *testing.T) {
	for _, body := range []string{`{"artists":[` + artistJSON + `]}`, `[` + artistJSON + `]`} {
		api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
			return jsonResponse(http.StatusOK, body), nil
		}}
		r := NewArtistResource(api, newStubStore(""), zerolog.Nop())

		r.Activate(context.Background(), false)

		state := r.State()
		if state.Loading || state.Error != "" {
			t.Fatalf("body %s: unexpected state %+v", body, state)
		}
		if len(state.Data) != 1 || state.Data[0].Name != "X" || state.Data[0].Area != "painting" {
			t.Fatalf("body %s: unexpected data %+v", body, state.Data)
		}
	}
}

func TestArtistResource_PublicListUsesPlainCall(t *testing.T) {
	api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[]`), nil
	}}
	r := NewArtistResource(api, newStubStore("tok"), zerolog.Nop())

	r.Activate(context.Background(), false)

	call := api.Calls()[0]
	if call.Endpoint != "artists" || call.Auth {
		t.Fatalf("expected plain GET artists, got %+v", call)
	}
}

func TestArtistResource_ShowAllWithToken(t *testing.T) {
	api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"artists":[]}`), nil
	}}
	r := NewArtistResource(api, newStubStore("tok"), zerolog.Nop())

	r.Activate(context.Background(), true)

	call := api.Calls()[0]
	if call.Endpoint != "artists?showAll=true" || !call.Auth || call.Token != "tok" {
		t.Fatalf("expected authenticated showAll request, got %+v", call)
	}
}

func TestArtistResource_ShowAllWithoutTokenFallsBackToPublic(t *testing.T) {
	api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[]`), nil
	}}
	r := NewArtistResource(api, newStubStore(""), zerolog.Nop())

	r.Activate(context.Background(), true)

	call := api.Calls()[0]
	if call.Endpoint != "artists" || call.Auth {
		t.Fatalf("expected public request, got %+v", call)
	}
}

func TestArtistResource_SetShowAllRefetchesOnlyOnChange(t *testing.T) {
	api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[]`), nil
	}}
	r := NewArtistResource(api, newStubStore("tok"), zerolog.Nop())

	r.Activate(context.Background(), false)
	r.SetShowAll(context.Background(), false)
	r.SetShowAll(context.Background(), true)
	r.SetShowAll(context.Background(), true)

	calls := api.Calls()
	if len(calls) != 2 {
		t.Fatalf("expected 2 fetches, got %d", len(calls))
	}
	if calls[1].Endpoint != "artists?showAll=true" {
		t.Fatalf("unexpected second fetch: %+v", calls[1])
	}

	r.Refresh(context.Background())
	if n := len(api.Calls()); n != 3 {
		t.Fatalf("expected Refresh to refetch, got %d calls", n)
	}
}

func TestArtistResource_FailureResetsCollection(t *testing.T) {
	fail := false
	api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
		if fail {
			return nil, &domain.NetworkError{Method: http.MethodGet, URL: "x", Err: errors.New("refused")}
		}
		return jsonResponse(http.StatusOK, `[`+artistJSON+`]`), nil
	}}
	r := NewArtistResource(api, newStubStore(""), zerolog.Nop())
	r.Activate(context.Background(), false)

	fail = true
	r.Refresh(context.Background())

	state := r.State()
	if state.Loading {
		t.Fatalf("expected loading cleared")
	}
	if state.Error == "" {
		t.Fatalf("expected error message")
	}
	if len(state.Data) != 0 {
		t.Fatalf("expected collection reset, got %d items", len(state.Data))
	}
}

func TestArtistResource_HTTPErrorMessage(t *testing.T) {
	api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `{"message":"db down"}`), nil
	}}
	r := NewArtistResource(api, newStubStore(""), zerolog.Nop())

	r.Activate(context.Background(), false)

	want := "Error loading artists: the content service answered 500 (db down)"
	if got := r.State().Error; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestArtistResource_LoadingWhileInFlight(t *testing.T) {
	var r *ArtistResource
	api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
		if !r.State().Loading {
			t.Fatalf("expected loading while request is in flight")
		}
		return jsonResponse(http.StatusOK, `[]`), nil
	}}
	r = NewArtistResource(api, newStubStore(""), zerolog.Nop())

	r.Activate(context.Background(), false)

	if r.State().Loading {
		t.Fatalf("expected loading cleared after settle")
	}
}

func TestArtistResource_LateResultAfterCloseIsDiscarded(t *testing.T) {
	var r *ArtistResource
	api := &stubAPI{respond: func(call stubCall) (*http.Response, error) {
		r.Close()
		return jsonResponse(http.StatusOK, `[`+artistJSON+`]`), nil
	}}
	r = NewArtistResource(api, newStubStore(""), zerolog.Nop())

	r.Activate(context.Background(), false)

	if n := len(r.State().Data); n != 0 {
		t.Fatalf("expected late result discarded, got %d items", n)
	}

	r.Refresh(context.Background())
	if n := len(api.Calls()); n != 1 {
		t.Fatalf("expected no fetch after close, got %d calls", n)
	}
}
