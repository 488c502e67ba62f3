package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Store drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"trivia-api"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	LogLevel                string        `env:"LOG_LEVEL" envDefault:"info"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Store    Store
	Postgres Postgres
	Redis    Redis
	Runtime  Runtime
	Trivia   Trivia
	CORS     CORS
	Seed     Seed
}

// Store selects the catalog backend.
type Store struct {
	Driver     string `env:"STORE_DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"trivia.db"`
}

// Postgres captures connection info for the SQL database.
type Postgres struct {
	Host     string `env:"PG_HOST" envDefault:"localhost"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER" envDefault:""`
	Password string `env:"PG_PASSWORD" envDefault:""`
	Database string `env:"PG_DATABASE" envDefault:"trivia"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
	MaxConns int    `env:"PG_MAX_CONNS" envDefault:"10"`
}

// DSN renders the keyword/value connection string understood by pgx.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode)
}

// Redis configures the optional category cache. An empty Addr disables it.
type Redis struct {
	Addr        string        `env:"REDIS_ADDR" envDefault:""`
	DB          int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize    int           `env:"REDIS_POOL_SIZE" envDefault:"20"`
	CategoryTTL time.Duration `env:"CATEGORY_CACHE_TTL" envDefault:"5m"`
}

// Runtime groups per-request limits.
type Runtime struct {
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"4s"`
}

// Trivia tunes the catalog views.
type Trivia struct {
	QuestionsPerPage int `env:"QUESTIONS_PER_PAGE" envDefault:"10"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	AllowedMethods []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,DELETE,OPTIONS"`
	AllowedHeaders []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization,true"`
	MaxAge         int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Seed configures the external question importer.
type Seed struct {
	Source           string        `env:"SEED_SOURCE" envDefault:"opentdb"`
	OpenTDBBaseURL   string        `env:"OPENTDB_BASE_URL" envDefault:"https://opentdb.com"`
	TriviaAPIBaseURL string        `env:"TRIVIA_API_BASE_URL" envDefault:"https://the-trivia-api.com/api"`
	TriviaAPIKey     string        `env:"TRIVIA_API_KEY" envDefault:""`
	Difficulty       string        `env:"SEED_DIFFICULTY" envDefault:""`
	Amount           int           `env:"SEED_AMOUNT" envDefault:"20"`
	HTTPTimeout      time.Duration `env:"SEED_HTTP_TIMEOUT" envDefault:"5s"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: true}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements env tags cannot express.
func (c *App) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.Postgres.User == "" {
			return fmt.Errorf("PG_USER must be set when STORE_DRIVER=%s", DriverPostgres)
		}
	case DriverSQLite:
		if c.Store.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set when STORE_DRIVER=%s", DriverSQLite)
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Trivia.QuestionsPerPage < 1 {
		return fmt.Errorf("QUESTIONS_PER_PAGE must be positive, got %d", c.Trivia.QuestionsPerPage)
	}
	return nil
}
