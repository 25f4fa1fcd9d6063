package mockapi

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/culturahub/portal/internal/api/handler"
)

// BasePath is the prefix every content endpoint is served under.
const BasePath = "/api"

type Options struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// NewServer builds the Echo instance serving catalog.
func NewServer(catalog *Catalog, opts Options, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))

	auth := NewAuthService(catalog, opts.JWTSecret, opts.TokenTTL)
	h := NewHandler(catalog, auth, opts.JWTSecret)

	api := e.Group(BasePath)
	api.POST("/auth/login", h.Login)
	api.GET("/auth/me", h.Me, Auth(opts.JWTSecret))
	api.GET("/artists", h.Artists)
	api.GET("/products", h.Products)
	api.GET("/products/search/:query", h.SearchProducts)

	return e
}
