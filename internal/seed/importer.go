package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Candidate is an external question normalised to plain text.
type Candidate struct {
	Category   string
	Difficulty string
	Question   string
	Answer     string
}

// Source is an external question provider.
type Source interface {
	Name() string
	Candidates(ctx context.Context, amount int) ([]Candidate, error)
}

// Catalog is the slice of trivia.Service the importer writes through.
type Catalog interface {
	ListCategories(ctx context.Context) ([]trivia.Category, error)
	CreateQuestion(ctx context.Context, in trivia.NewQuestion, page int) (trivia.MutationResult, error)
}

// Report summarises one import run.
type Report struct {
	Fetched  int
	Imported int
	Skipped  int
}

// categoryAliases maps reduced provider category names onto the local ones.
var categoryAliases = map[string]string{
	"arts":  "art",
	"sport": "sports",
	"film":  "entertainment",
	"music": "entertainment",
}

// Importer copies external questions into the local catalog.
type Importer struct {
	source  Source
	catalog Catalog
	logger  zerolog.Logger
}

func NewImporter(source Source, catalog Catalog, logger zerolog.Logger) *Importer {
	return &Importer{
		source:  source,
		catalog: catalog,
		logger:  logger.With().Str("component", "importer").Str("source", source.Name()).Logger(),
	}
}

// Import fetches amount questions and inserts every one whose category maps
// onto a local category. Unmapped or rejected questions are skipped.
func (im *Importer) Import(ctx context.Context, amount int) (Report, error) {
	categories, err := im.catalog.ListCategories(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load categories: %w", err)
	}
	byName := make(map[string]int, len(categories))
	for _, c := range categories {
		byName[strings.ToLower(c.Type)] = c.ID
	}

	fetched, err := im.source.Candidates(ctx, amount)
	if err != nil {
		return Report{}, fmt.Errorf("fetch %s: %w", im.source.Name(), err)
	}

	report := Report{Fetched: len(fetched)}
	for _, c := range fetched {
		categoryID, ok := lookupCategory(byName, c.Category)
		if !ok || c.Question == "" || c.Answer == "" {
			report.Skipped++
			im.logger.Debug().Str("category", c.Category).Msg("candidate skipped")
			continue
		}

		text, answer := c.Question, c.Answer
		difficulty := difficultyLevel(c.Difficulty)
		res, err := im.catalog.CreateQuestion(ctx, trivia.NewQuestion{
			Question:   &text,
			Answer:     &answer,
			Category:   &categoryID,
			Difficulty: &difficulty,
		}, 1)
		if err != nil {
			report.Skipped++
			im.logger.Warn().Err(err).Str("question", text).Msg("insert failed")
			continue
		}
		report.Imported++
		im.logger.Debug().Int("question_id", res.ID).Msg("question imported")
	}

	im.logger.Info().
		Int("fetched", report.Fetched).
		Int("imported", report.Imported).
		Int("skipped", report.Skipped).
		Msg("import finished")
	return report, nil
}

func lookupCategory(byName map[string]int, raw string) (int, bool) {
	name := strings.ToLower(categoryName(raw))
	if id, ok := byName[name]; ok {
		return id, true
	}
	if alias, ok := categoryAliases[name]; ok {
		id, ok := byName[alias]
		return id, ok
	}
	return 0, false
}

// categoryName reduces a provider category to its top-level name:
// "Entertainment: Film" -> "Entertainment", "Science & Nature" -> "Science".
func categoryName(raw string) string {
	name := raw
	if i := strings.Index(name, ":"); i >= 0 {
		name = name[:i]
	}
	if i := strings.Index(name, "&"); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func difficultyLevel(d string) int {
	switch strings.ToLower(d) {
	case "easy":
		return 1
	case "hard":
		return 5
	default:
		return 3
	}
}
