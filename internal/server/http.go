package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Check probes one backing dependency for /v1/ping.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

// NewHTTPServer wires the trivia routes plus health, metrics and ping.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, handlers *Handlers, checks []Check) *http.Server {
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           NewRouter(cfg, logger, handlers, checks),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// NewRouter builds the full handler chain. Split out so tests can drive it with httptest.
func NewRouter(cfg *config.App, logger zerolog.Logger, handlers *Handlers, checks []Check) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), cfg.Runtime.StoreTimeout)
		defer cancel()
		if name, err := pingDependencies(ctx, checks); err != nil {
			logger := logging.FromContext(ctx)
			logger.Error().Err(err).Str("dependency", name).Msg("dependency ping failed")
			httperrors.RespondErrorWithDetails(w, http.StatusBadGateway, map[string]interface{}{"dependency": name})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	mux.HandleFunc("/{$}", handlers.Index)
	mux.HandleFunc("/categories", handlers.Categories)
	mux.HandleFunc("/categories/{id}/questions", handlers.CategoryQuestions)
	mux.HandleFunc("/questions", handlers.Questions)
	mux.HandleFunc("/questions/search", handlers.Search)
	mux.HandleFunc("/questions/{id}", handlers.DeleteQuestion)
	mux.HandleFunc("/quizzes", handlers.Quizzes)
	mux.HandleFunc("/", handlers.NotFound)

	return withRequestContext(withCORS(mux, cfg.CORS), logger)
}

func pingDependencies(ctx context.Context, checks []Check) (string, error) {
	for _, c := range checks {
		if err := c.Ping(ctx); err != nil {
			return c.Name, err
		}
	}
	return "", nil
}
