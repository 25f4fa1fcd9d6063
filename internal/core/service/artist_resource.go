package service

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/core/domain"
	"github.com/culturahub/portal/internal/core/ports"
)

const (
	endpointArtists        = "artists"
	endpointArtistsShowAll = "artists?showAll=true"
)

// ArtistResource owns the artists collection. The privileged showAll view is
// requested with the stored token; without a token the public list is used.
type ArtistResource struct {
	api    ports.APIClient
	tokens ports.SessionStore
	coll   *collection[domain.Artist]

	mu        sync.Mutex
	showAll   bool
	activated bool
}

var _ ports.ArtistResource = (*ArtistResource)(nil)

func NewArtistResource(api ports.APIClient, tokens ports.SessionStore, log zerolog.Logger) *ArtistResource {
	return &ArtistResource{
		api:    api,
		tokens: tokens,
		coll:   newCollection[domain.Artist]("artists", true, log),
	}
}

// Activate performs the first fetch.
func (r *ArtistResource) Activate(ctx context.Context, showAll bool) {
	r.mu.Lock()
	r.showAll, r.activated = showAll, true
	r.mu.Unlock()
	r.fetch(ctx, showAll)
}

// SetShowAll refetches only when the flag changes (or before activation).
func (r *ArtistResource) SetShowAll(ctx context.Context, showAll bool) {
	r.mu.Lock()
	unchanged := r.activated && r.showAll == showAll
	r.showAll, r.activated = showAll, true
	r.mu.Unlock()

	if unchanged {
		return
	}
	r.fetch(ctx, showAll)
}

// Refresh refetches with the current flag.
func (r *ArtistResource) Refresh(ctx context.Context) {
	r.mu.Lock()
	showAll := r.showAll
	r.activated = true
	r.mu.Unlock()
	r.fetch(ctx, showAll)
}

func (r *ArtistResource) State() ports.ResourceState[domain.Artist] {
	return r.coll.snapshot()
}

// Close detaches the resource; fetches still in flight are discarded.
func (r *ArtistResource) Close() {
	r.coll.close()
}

func (r *ArtistResource) fetch(ctx context.Context, showAll bool) {
	if !r.coll.begin() {
		return
	}

	var (
		resp *http.Response
		err  error
	)
	token, hasToken := r.tokens.Get(ctx)
	if showAll && hasToken {
		resp, err = r.api.CallWithAuth(ctx, endpointArtistsShowAll, token, nil)
	} else {
		resp, err = r.api.Call(ctx, endpointArtists, nil)
	}

	var artists []domain.Artist
	if err == nil {
		artists, err = decodeCollectionResponse[domain.Artist](resp, "artists")
	}
	r.coll.settle(artists, err)
}
