package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/culturahub/portal/docs" // swagger docs

	"github.com/culturahub/portal/internal/api"
	"github.com/culturahub/portal/internal/api/handler"
	"github.com/culturahub/portal/internal/core/service"
	"github.com/culturahub/portal/internal/infrastructure/apiclient"
	"github.com/culturahub/portal/internal/infrastructure/config"
	"github.com/culturahub/portal/internal/infrastructure/notify"
	"github.com/culturahub/portal/internal/infrastructure/sessionstore"
	"github.com/culturahub/portal/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// @title        CulturaHub Portal API
// @version      1.0
// @description  Session, content and admin notification endpoints of the portal host.
// @host         localhost:3000
// @BasePath     /
// @schemes      http
func main() {
	// A missing .env is fine; the environment may already be set (e.g. Docker).
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "portal",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Infrastructure ---
	stores, closeStore, err := sessionstore.Open(ctx, sessionstore.Options{
		Backend:  cfg.Session.Backend,
		Key:      cfg.Session.Key,
		FilePath: cfg.Session.File,
		Redis: sessionstore.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Timeout:  cfg.Redis.Timeout,
		},
		Mongo: sessionstore.MongoConfig{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
			Timeout:  cfg.Mongo.Timeout,
		},
	}, logger.For(log, "sessionstore"))
	if err != nil {
		log.Fatal().Err(err).Msg("session store init failed")
	}

	client := apiclient.New(cfg.APIBaseURL, logger.For(log, "apiclient"))
	log.Info().Str("base_url", client.BaseURL()).Str("session_backend", cfg.Session.Backend).Msg("content client ready")

	// --- Core services ---
	clients := handler.NewClientRegistry(
		api.NewClientFactory(client, stores, log),
		cfg.Session.ClientIdle,
	)

	hub := notify.NewHub(cfg.NotificationsCapacity, log)
	notifier := service.NewNotifier(hub)

	e := api.NewRouter(api.Dependencies{
		API:      client,
		Store:    stores(""),
		Clients:  clients,
		Center:   hub,
		Notifier: notifier,
	}, logger.For(log, "http"))

	// --- Serve ---
	go func() {
		log.Info().Str("port", cfg.Port).Msg("portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	clients.Close()
	if err := closeStore(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("session store close failed")
	}

	log.Info().Msg("portal stopped")
}
