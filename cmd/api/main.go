package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dwirez99/majunkita/internal/api"
	"github.com/dwirez99/majunkita/internal/infrastructure/config"
	"github.com/dwirez99/majunkita/internal/infrastructure/db/postgres"
	"github.com/dwirez99/majunkita/internal/infrastructure/provider"
	"github.com/dwirez99/majunkita/pkg/logger"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(context.Background(), postgres.Config{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	idp := provider.NewClient(cfg.Provider.URL, cfg.Provider.ServiceKey)

	e := api.NewRouter(pool, idp, cfg.Provider.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info().Msg("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	log.Info().Msg("shutdown complete")
}
