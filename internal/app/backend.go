package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/db/repository"
	"github.com/gokatarajesh/trivia-api/internal/db/sqlite"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Backend is an opened catalog store plus its lifecycle hooks.
type Backend struct {
	Store trivia.Store
	Ping  func(ctx context.Context) error
	Close func()
}

// OpenBackend connects the store selected by cfg.Store.Driver. The SQLite
// backend creates its schema and default categories on open; Postgres relies
// on the migrator.
func OpenBackend(ctx context.Context, cfg *config.App, logger zerolog.Logger) (*Backend, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		connString := fmt.Sprintf("%s pool_max_conns=%d", cfg.Postgres.DSN(), cfg.Postgres.MaxConns)
		pool, err := pgxpool.New(ctx, connString)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		logger.Info().
			Str("host", cfg.Postgres.Host).
			Str("database", cfg.Postgres.Database).
			Msg("postgres pool ready")
		return &Backend{
			Store: repository.NewCatalog(pool),
			Ping:  pool.Ping,
			Close: pool.Close,
		}, nil

	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.Store.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := store.SeedCategories(ctx, sqlite.DefaultCategories); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("seed sqlite categories: %w", err)
		}
		logger.Info().Str("path", cfg.Store.SQLitePath).Msg("sqlite store ready")
		return &Backend{
			Store: store,
			Ping:  store.Ping,
			Close: func() {
				if err := store.Close(); err != nil {
					logger.Error().Err(err).Msg("sqlite close error")
				}
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
