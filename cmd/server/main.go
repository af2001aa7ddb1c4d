package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/userhub/userhub/internal/api"
	"github.com/userhub/userhub/internal/core/service"
	"github.com/userhub/userhub/internal/infrastructure/config"
	"github.com/userhub/userhub/internal/infrastructure/memory"
	"github.com/userhub/userhub/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	if cfg.SessionSecret == config.DefaultSessionSecret {
		logg.Warn().Msg("SESSION_SECRET not set, using the insecure development default")
	}

	seed, err := memory.DefaultSeed(cfg.BcryptCost)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to seed user store")
	}
	store := memory.NewUserStore(seed...)
	authService := service.NewAuthService(store, cfg.BcryptCost, logg)

	e, err := api.NewRouter(authService, api.Config{
		SessionSecret: cfg.SessionSecret,
		Metrics:       true,
		Logger:        logg,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		logg.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("received interruption signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("error during server shutdown")
	}
	logg.Info().Msg("shutdown complete")
}
