package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/modernblog/internal/api"
	"github.com/example/modernblog/internal/seed"
	"github.com/example/modernblog/internal/session"
	"github.com/example/modernblog/internal/view"
)

const slideInterval = 5 * time.Second

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addr := getEnv("ADDR", ":8080")
	sessionTTL := getDuration("SESSION_TTL", 30*time.Minute, logger)
	tokenExpiry := getDuration("TOKEN_EXPIRY", 7*24*time.Hour, logger)

	tokenSecret := os.Getenv("TOKEN_SECRET")
	if tokenSecret == "" {
		// Everything is in-memory anyway; a per-process secret just means
		// user tokens stop parsing after a restart.
		tokenSecret = uuid.NewString()
		logger.Warn().Msg("TOKEN_SECRET not set, user tokens will not survive restarts")
	}

	sessions := session.NewManager(seed.NewStore, sessionTTL, logger)
	tokens := session.NewTokenService(tokenSecret, tokenExpiry)
	slider := view.NewSlider(seed.Slides())

	go sessions.Sweep(ctx, time.Minute)
	go slider.AutoAdvance(ctx, slideInterval)

	handlers := api.NewHandlers(sessions, tokens, slider, logger)
	router := api.NewRouter(handlers)

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info().Str("addr", addr).Msg("server started")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info().Msg("shutting down")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration, logger zerolog.Logger) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logger.Warn().Str("key", key).Str("value", value).Msg("invalid duration, using default")
		return defaultValue
	}
	return d
}
