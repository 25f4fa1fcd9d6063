package api

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/api/handler"
	"github.com/culturahub/portal/internal/core/ports"
	"github.com/culturahub/portal/internal/core/service"
	"github.com/culturahub/portal/pkg/logger"
)

// NewClientFactory builds each caller's client on its own token slot. The
// session manager is restored from that slot before the client is handed
// out. The restore is not bound to the triggering request's cancellation.
func NewClientFactory(apiClient ports.APIClient, stores func(clientID string) ports.SessionStore, log zerolog.Logger) handler.ClientFactory {
	return func(ctx context.Context, id string) *handler.Client {
		store := stores(id)
		nav := handler.NewRouteNavigator()

		session := service.NewSessionService(apiClient, store, nav, logger.For(log, "session"))
		session.Init(context.WithoutCancel(ctx))

		artists := service.NewArtistResource(apiClient, store, logger.For(log, "artists"))
		products := service.NewProductResource(apiClient, logger.For(log, "products"))

		return &handler.Client{
			ID:        id,
			Session:   session,
			Navigator: nav,
			Artists:   artists,
			Products:  products,
			Close: func() {
				artists.Close()
				products.Close()
			},
		}
	}
}
