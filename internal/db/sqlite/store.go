// Package sqlite is an embedded trivia.Store on bun and the pure-Go SQLite
// driver. It backs local development and store-level tests.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	_ "modernc.org/sqlite"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// DefaultCategories mirrors the Postgres seed migration.
var DefaultCategories = []string{"Science", "Art", "Geography", "History", "Entertainment", "Sports"}

type categoryModel struct {
	bun.BaseModel `bun:"table:categories,alias:c"`

	ID   int    `bun:"id,pk,autoincrement"`
	Type string `bun:"type,notnull"`
}

type questionModel struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	ID         int    `bun:"id,pk,autoincrement"`
	Question   string `bun:"question,notnull"`
	Answer     string `bun:"answer,notnull"`
	Category   int    `bun:"category,notnull"`
	Difficulty int    `bun:"difficulty,notnull"`
}

func (m questionModel) toDomain() trivia.Question {
	return trivia.Question{
		ID:         m.ID,
		Question:   m.Question,
		Answer:     m.Answer,
		Category:   m.Category,
		Difficulty: m.Difficulty,
	}
}

// Store implements trivia.Store over a *bun.DB.
type Store struct {
	db *bun.DB
}

var _ trivia.Store = (*Store)(nil)

// Open connects to dsn (a file path or ":memory:") and creates the schema.
func Open(ctx context.Context, dsn string) (*Store, error) {
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// Each connection to an in-memory database sees its own empty schema.
	if dsn == ":memory:" || strings.Contains(dsn, "mode=memory") {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}

	s := &Store{db: bun.NewDB(sqlDB, sqlitedialect.New())}
	if err := s.createSchema(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createSchema(ctx context.Context) error {
	models := []interface{}{(*categoryModel)(nil), (*questionModel)(nil)}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// SeedCategories inserts names when the category table is empty.
func (s *Store) SeedCategories(ctx context.Context, names []string) error {
	n, err := s.db.NewSelect().Model((*categoryModel)(nil)).Count(ctx)
	if err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if n > 0 || len(names) == 0 {
		return nil
	}
	rows := make([]categoryModel, 0, len(names))
	for _, name := range names {
		rows = append(rows, categoryModel{Type: name})
	}
	if _, err := s.db.NewInsert().Model(&rows).Column("type").Exec(ctx); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	var rows []categoryModel
	if err := s.db.NewSelect().Model(&rows).Order("id ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	categories := make([]trivia.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, trivia.Category{ID: row.ID, Type: row.Type})
	}
	return categories, nil
}

func (s *Store) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	questions, err := s.selectQuestions(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// SearchQuestions matches in Go: SQLite's LIKE only folds ASCII case, and
// results must agree with the Postgres ILIKE store.
func (s *Store) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	all, err := s.selectQuestions(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	needle := strings.ToLower(term)
	matches := make([]trivia.Question, 0, len(all))
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			matches = append(matches, q)
		}
	}
	return matches, nil
}

func (s *Store) QuestionsByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	questions, err := s.selectQuestions(ctx, func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Where("category = ?", categoryID)
	})
	if err != nil {
		return nil, fmt.Errorf("questions by category %d: %w", categoryID, err)
	}
	return questions, nil
}

func (s *Store) QuestionsExcluding(ctx context.Context, ids []int) ([]trivia.Question, error) {
	var filter func(*bun.SelectQuery) *bun.SelectQuery
	if len(ids) > 0 {
		filter = func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("id NOT IN (?)", bun.In(ids))
		}
	}
	questions, err := s.selectQuestions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("questions excluding: %w", err)
	}
	return questions, nil
}

func (s *Store) InsertQuestion(ctx context.Context, rec trivia.QuestionRecord) (int, error) {
	row := &questionModel{
		Question:   rec.Question,
		Answer:     rec.Answer,
		Category:   rec.Category,
		Difficulty: rec.Difficulty,
	}
	_, err := s.db.NewInsert().
		Model(row).
		Column("question", "answer", "category", "difficulty").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return row.ID, nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	res, err := s.db.NewDelete().Model((*questionModel)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("delete question %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete question %d: %w", id, err)
	}
	return n > 0, nil
}

func (s *Store) CountQuestions(ctx context.Context) (int, error) {
	n, err := s.db.NewSelect().Model((*questionModel)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func (s *Store) selectQuestions(ctx context.Context, filter func(*bun.SelectQuery) *bun.SelectQuery) ([]trivia.Question, error) {
	var rows []questionModel
	q := s.db.NewSelect().Model(&rows)
	if filter != nil {
		q = filter(q)
	}
	if err := q.Order("id ASC").Scan(ctx); err != nil {
		return nil, err
	}
	questions := make([]trivia.Question, 0, len(rows))
	for _, row := range rows {
		questions = append(questions, row.toDomain())
	}
	return questions, nil
}
