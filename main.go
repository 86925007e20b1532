package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tmcybertech/portal-api/src/config"
	"github.com/tmcybertech/portal-api/src/database"
	"github.com/tmcybertech/portal-api/src/handlers"
	"github.com/tmcybertech/portal-api/src/logging"
	"github.com/tmcybertech/portal-api/src/middleware"
	"github.com/tmcybertech/portal-api/src/services"
)

func main() {
	cfg := config.Load()

	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	// A missing signing secret is fatal: the server must never fall back to
	// accepting unsigned tokens
	if err := middleware.SetJWTSecret(cfg.JWTSecret); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize JWT secret")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	// Auto-seed the first admin account (if ADMIN_EMAIL and ADMIN_PASSWORD are set)
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		hasAdmins, err := services.HasAdmins(context.Background(), db.GetPool())
		if err != nil {
			log.Error().Err(err).Msg("failed to check for existing admin accounts")
		} else if !hasAdmins {
			if _, err := services.SeedAdmin(context.Background(), db.GetPool(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
				log.Error().Err(err).Msg("failed to create initial admin account")
			} else {
				log.Info().Str("email", cfg.AdminEmail).Msg("initial admin account created")
			}
		}
	}

	if cfg.RawQueryEnabled {
		log.Warn().Msg("raw query endpoint enabled: any valid token has unrestricted database access")
	}

	router := handlers.NewRouter(db, cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}
