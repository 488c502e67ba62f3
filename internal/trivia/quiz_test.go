package trivia

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quizStore() *memoryStore {
	return newMemoryStore(testCategories,
		Question{ID: 3, Question: "q3", Answer: "a", Category: 2, Difficulty: 1},
		Question{ID: 10, Question: "q10", Answer: "a", Category: 1, Difficulty: 1},
		Question{ID: 11, Question: "q11", Answer: "a", Category: 1, Difficulty: 2},
		Question{ID: 12, Question: "q12", Answer: "a", Category: 1, Difficulty: 3},
		Question{ID: 13, Question: "q13", Answer: "a", Category: 1, Difficulty: 4},
		Question{ID: 20, Question: "q20", Answer: "a", Category: 3, Difficulty: 5},
	)
}

func TestNextQuizQuestionSkipsPrevious(t *testing.T) {
	svc := newTestService(quizStore())
	previous := []int{10, 11}

	res, err := svc.NextQuizQuestion(context.Background(), QuizRequest{
		Category:          &QuizCategory{ID: 1, Type: "Science"},
		PreviousQuestions: previous,
	})
	require.NoError(t, err)
	require.NotNil(t, res.Question)
	assert.Equal(t, 12, res.Question.ID)
	assert.Equal(t, []int{10, 11, 12}, res.PreviousQuestions)
	assert.Equal(t, []int{10, 11}, previous, "caller slice must not change")
}

func TestNextQuizQuestionAnyCategory(t *testing.T) {
	svc := newTestService(quizStore())
	res, err := svc.NextQuizQuestion(context.Background(), QuizRequest{
		Category:          &QuizCategory{ID: AnyCategory},
		PreviousQuestions: []int{3},
	})
	require.NoError(t, err)
	require.NotNil(t, res.Question)
	assert.Equal(t, 10, res.Question.ID)
}

func TestNextQuizQuestionNilPreviousDefaultsToEmpty(t *testing.T) {
	svc := newTestService(quizStore())
	res, err := svc.NextQuizQuestion(context.Background(), QuizRequest{Category: &QuizCategory{ID: 3}})
	require.NoError(t, err)
	require.NotNil(t, res.Question)
	assert.Equal(t, 20, res.Question.ID)
	assert.Equal(t, []int{20}, res.PreviousQuestions)
}

func TestNextQuizQuestionExhaustsWithoutRepeats(t *testing.T) {
	for _, categoryID := range []int{AnyCategory, 1, 2, 99} {
		svc := newTestService(quizStore())
		var previous []int
		served := map[int]bool{}

		for i := 0; i < 10; i++ {
			res, err := svc.NextQuizQuestion(context.Background(), QuizRequest{
				Category:          &QuizCategory{ID: categoryID},
				PreviousQuestions: previous,
			})
			require.NoError(t, err)
			if res.Question == nil {
				assert.Equal(t, append([]int{}, previous...), res.PreviousQuestions, "exhaustion leaves history unchanged")
				break
			}
			assert.False(t, served[res.Question.ID], "id %d served twice", res.Question.ID)
			served[res.Question.ID] = true
			if categoryID != AnyCategory {
				assert.Equal(t, categoryID, res.Question.Category)
			}
			previous = res.PreviousQuestions
		}

		want := map[int]int{AnyCategory: 6, 1: 4, 2: 1, 99: 0}[categoryID]
		assert.Len(t, served, want, "category %d", categoryID)
	}
}

func TestNextQuizQuestionMissingCategoryIsUnprocessable(t *testing.T) {
	svc := newTestService(quizStore())
	_, err := svc.NextQuizQuestion(context.Background(), QuizRequest{PreviousQuestions: []int{1}})
	assert.True(t, errors.Is(err, ErrUnprocessable))
	assert.True(t, errors.Is(err, ErrMissingQuizCategory))
}

func TestNextQuizQuestionStoreFailure(t *testing.T) {
	store := quizStore()
	store.failReads = errors.New("timeout")
	_, err := newTestService(store).NextQuizQuestion(context.Background(), QuizRequest{Category: &QuizCategory{}})
	assert.Equal(t, KindUnprocessable, KindOf(err))
}
