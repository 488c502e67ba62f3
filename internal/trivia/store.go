package trivia

import "context"

// Store is the persistent catalog. Every question listing is ordered by id
// ascending.
type Store interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListQuestions(ctx context.Context) ([]Question, error)
	// SearchQuestions matches term as a case-insensitive substring of the
	// question text only.
	SearchQuestions(ctx context.Context, term string) ([]Question, error)
	QuestionsByCategory(ctx context.Context, categoryID int) ([]Question, error)
	QuestionsExcluding(ctx context.Context, ids []int) ([]Question, error)
	InsertQuestion(ctx context.Context, rec QuestionRecord) (int, error)
	// DeleteQuestion reports false when no row with id existed.
	DeleteQuestion(ctx context.Context, id int) (bool, error)
	CountQuestions(ctx context.Context) (int, error)
}

// CategoryCache holds the category list between requests (implemented by the
// Redis-backed Cache). A nil list with a nil error is a miss.
type CategoryCache interface {
	GetCategories(ctx context.Context) ([]Category, error)
	SetCategories(ctx context.Context, categories []Category) error
}
