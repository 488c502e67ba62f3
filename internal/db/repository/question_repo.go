package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	dbutil "github.com/gokatarajesh/trivia-api/internal/db"
	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

const (
	questionColumns = `id, question, answer, category, difficulty`

	listQuestionsSQL       = `SELECT ` + questionColumns + ` FROM questions ORDER BY id`
	searchQuestionsSQL     = `SELECT ` + questionColumns + ` FROM questions WHERE question ILIKE $1 ORDER BY id`
	questionsByCategorySQL = `SELECT ` + questionColumns + ` FROM questions WHERE category = $1 ORDER BY id`
	questionsExcludingSQL  = `SELECT ` + questionColumns + ` FROM questions WHERE id <> ALL($1::int8[]) ORDER BY id`
	insertQuestionSQL      = `INSERT INTO questions (question, answer, category, difficulty) VALUES ($1, $2, $3, $4) RETURNING id`
	deleteQuestionSQL      = `DELETE FROM questions WHERE id = $1`
	countQuestionsSQL      = `SELECT COUNT(*) FROM questions`
)

// QuestionRepository wraps the SQL for question access. Every listing is
// ordered by id.
type QuestionRepository struct {
	db DBTX
}

func NewQuestionRepository(db DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func (r *QuestionRepository) List(ctx context.Context) ([]trivia.Question, error) {
	return r.query(ctx, listQuestionsSQL)
}

// Search matches term as a case-insensitive substring of the question text.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]trivia.Question, error) {
	return r.query(ctx, searchQuestionsSQL, dbutil.ContainsPattern(term))
}

func (r *QuestionRepository) ByCategory(ctx context.Context, categoryID int) ([]trivia.Question, error) {
	return r.query(ctx, questionsByCategorySQL, categoryID)
}

// Excluding compares ids as int8 so out-of-range caller ids never wrap onto real ones.
func (r *QuestionRepository) Excluding(ctx context.Context, ids []int) ([]trivia.Question, error) {
	excluded := make([]int64, 0, len(ids))
	for _, id := range ids {
		excluded = append(excluded, int64(id))
	}
	return r.query(ctx, questionsExcludingSQL, excluded)
}

// Insert stores a question and returns its generated id.
func (r *QuestionRepository) Insert(ctx context.Context, rec trivia.QuestionRecord) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, insertQuestionSQL, rec.Question, rec.Answer, rec.Category, rec.Difficulty).Scan(&id)
	return id, err
}

// Delete removes the question and reports whether a row existed.
func (r *QuestionRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, deleteQuestionSQL, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *QuestionRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, countQuestionsSQL).Scan(&n)
	return n, err
}

func (r *QuestionRepository) query(ctx context.Context, sql string, args ...interface{}) ([]trivia.Question, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	return scanQuestions(rows)
}

func scanQuestions(rows pgx.Rows) ([]trivia.Question, error) {
	defer rows.Close()

	questions := []trivia.Question{}
	for rows.Next() {
		var q trivia.Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Answer, &q.Category, &q.Difficulty); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}
