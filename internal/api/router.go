package api

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/culturahub/portal/internal/api/handler"
	"github.com/culturahub/portal/internal/core/ports"
	"github.com/culturahub/portal/internal/core/service"
)

// Dependencies are the already-constructed services the router exposes.
// Session and content routes are served per caller through Clients; Store
// is the base slot the readiness check pings.
type Dependencies struct {
	API      ports.APIClient
	Store    ports.SessionStore
	Clients  *handler.ClientRegistry
	Center   ports.NotificationCenter
	Notifier *service.Notifier
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// --- Handlers ---
	sessionHandler := handler.NewSessionHandler(deps.Clients.Resolve)
	artistHandler := handler.NewArtistHandler(deps.Clients.Resolve)
	productHandler := handler.NewProductHandler(deps.Clients.Resolve)
	notificationHandler := handler.NewNotificationHandler(deps.Center, deps.Notifier)

	// --- Session ---
	e.GET("/session", sessionHandler.Get)
	e.POST("/session/login", sessionHandler.Login)
	e.POST("/session/logout", sessionHandler.Logout)

	// --- Content ---
	e.GET("/artists", artistHandler.List)
	e.GET("/products", productHandler.List)
	e.GET("/products/search/:query", productHandler.Search)

	// --- Admin notifications ---
	e.GET("/notifications", notificationHandler.List)
	e.POST("/notifications", notificationHandler.Dispatch)
	e.DELETE("/notifications", notificationHandler.Clear)
	e.GET("/notifications/stream", notificationHandler.Stream)
	e.POST("/notifications/read", notificationHandler.MarkAllRead)
	e.POST("/notifications/:id/read", notificationHandler.MarkRead)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.API, deps.Store)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operations ---
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
