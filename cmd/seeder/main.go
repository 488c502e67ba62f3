package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gokatarajesh/trivia-api/internal/app"
	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	"github.com/gokatarajesh/trivia-api/internal/seed"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

type options struct {
	amount     int
	source     string
	difficulty string
}

func main() {
	var opts options
	flag.IntVar(&opts.amount, "amount", 0, "Number of questions to request (defaults to SEED_AMOUNT)")
	flag.StringVar(&opts.source, "source", "", "Question source: opentdb or triviaapi (defaults to SEED_SOURCE)")
	flag.StringVar(&opts.difficulty, "difficulty", "", "Only request easy, medium or hard questions (defaults to SEED_DIFFICULTY)")
	flag.Parse()

	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load("configs/.env"); err != nil {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := run(ctx, opts); err != nil {
		cancel()
		log.Fatalf("seeder: %v", err)
	}
}

func run(ctx context.Context, opts options) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.amount <= 0 {
		opts.amount = cfg.Seed.Amount
	}
	if opts.source == "" {
		opts.source = cfg.Seed.Source
	}
	if opts.difficulty == "" {
		opts.difficulty = cfg.Seed.Difficulty
	}
	switch opts.difficulty {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("unknown difficulty %q. Use: easy, medium or hard", opts.difficulty)
	}

	logger := logging.New(cfg.Name+"-seeder", cfg.Env, cfg.LogLevel)
	httpClient := &http.Client{Timeout: cfg.Seed.HTTPTimeout}

	var src seed.Source
	switch opts.source {
	case "opentdb":
		src = seed.NewOpenTDBClient(cfg.Seed.OpenTDBBaseURL, opts.difficulty, httpClient)
	case "triviaapi":
		src = seed.NewTriviaAPIClient(cfg.Seed.TriviaAPIBaseURL, cfg.Seed.TriviaAPIKey, opts.difficulty, httpClient)
	default:
		return fmt.Errorf("unknown seed source %q. Use: opentdb or triviaapi", opts.source)
	}

	backend, err := app.OpenBackend(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer backend.Close()

	svc := trivia.NewService(backend.Store, nil, trivia.ServiceOptions{PageSize: cfg.Trivia.QuestionsPerPage}, logger)
	report, err := seed.NewImporter(src, svc, logger).Import(ctx, opts.amount)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	logger.Info().
		Str("source", src.Name()).
		Str("difficulty", opts.difficulty).
		Int("imported", report.Imported).
		Msg("seeding complete")
	return nil
}
