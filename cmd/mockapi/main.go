package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/culturahub/portal/internal/infrastructure/config"
	"github.com/culturahub/portal/internal/mockapi"
	"github.com/culturahub/portal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "mockapi",
	})

	catalog, err := mockapi.DefaultCatalog()
	if err != nil {
		log.Fatal().Err(err).Msg("load seed catalog")
	}

	e := mockapi.NewServer(catalog, mockapi.Options{
		JWTSecret: cfg.MockAPI.JWTSecret,
		TokenTTL:  cfg.MockAPI.TokenTTL,
	}, logger.For(log, "http"))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.MockAPI.Port).Str("base_path", mockapi.BasePath).Msg("mock content API listening")
		if err := e.Start(":" + cfg.MockAPI.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
