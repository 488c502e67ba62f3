package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/server"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Application aggregates shared infrastructure (store, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	backend *Backend
	redis   *redis.Client
	http    *http.Server
}

// New bootstraps logger, catalog store, optional Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env, cfg.LogLevel)
	logger.Info().Str("store_driver", cfg.Store.Driver).Msg("starting application bootstrap")

	backend, err := OpenBackend(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	checks := []server.Check{{Name: cfg.Store.Driver, Ping: backend.Ping}}

	var (
		redisClient *redis.Client
		cache       trivia.CategoryCache
	)
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
		cache = trivia.NewCache(redisClient, cfg.Redis.CategoryTTL)
		checks = append(checks, server.Check{
			Name: "redis",
			Ping: func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		})
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("category cache enabled")
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; category cache disabled")
	}

	svc := trivia.NewService(backend.Store, cache, trivia.ServiceOptions{PageSize: cfg.Trivia.QuestionsPerPage}, logger)
	handlers := server.NewHandlers(svc, cfg.Runtime.StoreTimeout, logger)
	apiServer := server.NewHTTPServer(cfg, logger, handlers, checks)

	return &Application{
		cfg:     cfg,
		logger:  logger,
		backend: backend,
		redis:   redisClient,
		http:    apiServer,
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		a.close()
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.close()
	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) close() {
	a.backend.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}
}
