package repository

import (
	"context"
	"fmt"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

// Catalog is the Postgres-backed trivia.Store.
type Catalog struct {
	categories *CategoryRepository
	questions  *QuestionRepository
}

var _ trivia.Store = (*Catalog)(nil)

func NewCatalog(db DBTX) *Catalog {
	return &Catalog{
		categories: NewCategoryRepository(db),
		questions:  NewQuestionRepository(db),
	}
}

func (c *Catalog) ListCategories(ctx context.Context) ([]trivia.Category, error) {
	categories, err := c.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (c *Catalog) ListQuestions(ctx context.Context) ([]trivia.Question, error) {
	questions, err := c.questions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

func (c *Catalog) SearchQuestions(ctx context.Context, term string) ([]trivia.Question, error) {
	questions, err := c.questions.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return questions, nil
}

func (c *Catalog) QuestionsByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	questions, err := c.questions.ByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("questions by category %d: %w", categoryID, err)
	}
	return questions, nil
}

func (c *Catalog) QuestionsExcluding(ctx context.Context, ids []int) ([]trivia.Question, error) {
	questions, err := c.questions.Excluding(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("questions excluding: %w", err)
	}
	return questions, nil
}

func (c *Catalog) InsertQuestion(ctx context.Context, rec trivia.QuestionRecord) (int, error) {
	id, err := c.questions.Insert(ctx, rec)
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	return id, nil
}

func (c *Catalog) DeleteQuestion(ctx context.Context, id int) (bool, error) {
	deleted, err := c.questions.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete question %d: %w", id, err)
	}
	return deleted, nil
}

func (c *Catalog) CountQuestions(ctx context.Context) (int, error) {
	n, err := c.questions.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}
