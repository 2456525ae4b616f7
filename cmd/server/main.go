package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/victorjanco1992/despensa-app/internal/config"
	"github.com/victorjanco1992/despensa-app/internal/infra"
	"github.com/victorjanco1992/despensa-app/internal/middleware"
	"github.com/victorjanco1992/despensa-app/internal/router"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Redis is optional infrastructure: the sync lock degrades to
	// single-instance semantics without it.
	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, continuing without sync lock")
		rdb = nil
	}

	// The server starts accepting connections right away; /api routes answer
	// 503 until the schema migration finishes.
	probe := middleware.NewReadinessProbe()
	go func() {
		if err := infra.Migrate(db); err != nil {
			log.Error().Err(err).Msg("database migration failed")
			probe.Set(middleware.StateFailed)
			return
		}
		probe.Set(middleware.StateReady)
		log.Info().Msg("database ready")
	}()

	if !cfg.TokenConfigurado() {
		log.Warn().Msg("MERCADOPAGO_ACCESS_TOKEN not configured, sync disabled")
	}

	r := router.New(cfg, db, rdb, probe)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("Despensa backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
