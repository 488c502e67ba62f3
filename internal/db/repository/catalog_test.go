package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
)

func TestCatalog_ListCategories(t *testing.T) {
	db := new(mockDB)
	rows := newFakeRows(
		[]interface{}{1, "Science"},
		[]interface{}{2, "Art"},
	)
	db.On("Query", mock.Anything, listCategoriesSQL, []interface{}(nil)).Return(rows, nil)

	got, err := NewCatalog(db).ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []trivia.Category{{ID: 1, Type: "Science"}, {ID: 2, Type: "Art"}}, got)
	assert.True(t, rows.closed)
	db.AssertExpectations(t)
}

func TestCatalog_ListQuestionsEmpty(t *testing.T) {
	db := new(mockDB)
	db.On("Query", mock.Anything, listQuestionsSQL, []interface{}(nil)).Return(newFakeRows(), nil)

	got, err := NewCatalog(db).ListQuestions(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCatalog_SearchEscapesWildcards(t *testing.T) {
	db := new(mockDB)
	rows := newFakeRows([]interface{}{4, "What is 100% juice?", "Orange", 1, 2})
	db.On("Query", mock.Anything, searchQuestionsSQL, []interface{}{`%100\%%`}).Return(rows, nil)

	got, err := NewCatalog(db).SearchQuestions(context.Background(), "100%")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, trivia.Question{ID: 4, Question: "What is 100% juice?", Answer: "Orange", Category: 1, Difficulty: 2}, got[0])
	db.AssertExpectations(t)
}

func TestCatalog_QuestionsByCategory(t *testing.T) {
	db := new(mockDB)
	db.On("Query", mock.Anything, questionsByCategorySQL, []interface{}{3}).Return(newFakeRows(
		[]interface{}{7, "q7", "a7", 3, 1},
	), nil)

	got, err := NewCatalog(db).QuestionsByCategory(context.Background(), 3)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 7, got[0].ID)
	db.AssertExpectations(t)
}

func TestCatalog_QuestionsExcludingPassesInt8Array(t *testing.T) {
	db := new(mockDB)
	db.On("Query", mock.Anything, questionsExcludingSQL, []interface{}{[]int64{10, 11}}).Return(newFakeRows(
		[]interface{}{12, "q12", "a", 1, 3},
	), nil)

	got, err := NewCatalog(db).QuestionsExcluding(context.Background(), []int{10, 11})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].ID)
	db.AssertExpectations(t)
}

func TestCatalog_QueryErrorIsWrapped(t *testing.T) {
	db := new(mockDB)
	boom := errors.New("connection refused")
	db.On("Query", mock.Anything, listQuestionsSQL, mock.Anything).Return(nil, boom)

	_, err := NewCatalog(db).ListQuestions(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "list questions")
}

func TestCatalog_RowsErrSurfaces(t *testing.T) {
	db := new(mockDB)
	rows := newFakeRows()
	rows.err = errors.New("stream reset")
	db.On("Query", mock.Anything, listCategoriesSQL, mock.Anything).Return(rows, nil)

	_, err := NewCatalog(db).ListCategories(context.Background())

	assert.ErrorIs(t, err, rows.err)
}

func TestCatalog_InsertQuestion(t *testing.T) {
	db := new(mockDB)
	rec := trivia.QuestionRecord{Question: "q", Answer: "a", Category: 2, Difficulty: 4}
	db.On("QueryRow", mock.Anything, insertQuestionSQL, []interface{}{"q", "a", 2, 4}).Return(fakeRow{values: []interface{}{42}})

	id, err := NewCatalog(db).InsertQuestion(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, 42, id)
	db.AssertExpectations(t)
}

func TestCatalog_DeleteQuestion(t *testing.T) {
	db := new(mockDB)
	db.On("Exec", mock.Anything, deleteQuestionSQL, []interface{}{5}).Return(pgconn.NewCommandTag("DELETE 1"), nil)
	db.On("Exec", mock.Anything, deleteQuestionSQL, []interface{}{6}).Return(pgconn.NewCommandTag("DELETE 0"), nil)

	catalog := NewCatalog(db)

	deleted, err := catalog.DeleteQuestion(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = catalog.DeleteQuestion(context.Background(), 6)
	require.NoError(t, err)
	assert.False(t, deleted)
	db.AssertExpectations(t)
}

func TestCatalog_CountQuestions(t *testing.T) {
	db := new(mockDB)
	db.On("QueryRow", mock.Anything, countQuestionsSQL, []interface{}(nil)).Return(fakeRow{values: []interface{}{19}})

	n, err := NewCatalog(db).CountQuestions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 19, n)
}

func TestCatalog_QuestionsExcludingKeepsLargeIDsIntact(t *testing.T) {
	db := new(mockDB)
	// 1<<32 + 12 must not be narrowed onto question 12.
	db.On("Query", mock.Anything, questionsExcludingSQL, []interface{}{[]int64{4294967308}}).Return(newFakeRows(
		[]interface{}{12, "q12", "a", 1, 3},
	), nil)

	got, err := NewCatalog(db).QuestionsExcluding(context.Background(), []int{4294967308})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 12, got[0].ID)
	db.AssertExpectations(t)
}
