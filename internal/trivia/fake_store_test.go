package trivia

import (
	"context"
	"strconv"
	"strings"
)

// memoryStore is an in-process Store used by the service tests.
type memoryStore struct {
	categories []Category
	questions  []Question
	nextID     int

	failReads   error
	failInsert  error
	failDelete  error
	insertCalls int
	catCalls    int
}

func newMemoryStore(categories []Category, questions ...Question) *memoryStore {
	s := &memoryStore{categories: categories, nextID: 1}
	for _, q := range questions {
		s.questions = append(s.questions, q)
		if q.ID >= s.nextID {
			s.nextID = q.ID + 1
		}
	}
	return s
}

func (s *memoryStore) ListCategories(_ context.Context) ([]Category, error) {
	s.catCalls++
	if s.failReads != nil {
		return nil, s.failReads
	}
	return append([]Category(nil), s.categories...), nil
}

func (s *memoryStore) ListQuestions(_ context.Context) ([]Question, error) {
	return s.filter(func(Question) bool { return true })
}

func (s *memoryStore) SearchQuestions(_ context.Context, term string) ([]Question, error) {
	term = strings.ToLower(term)
	return s.filter(func(q Question) bool {
		return strings.Contains(strings.ToLower(q.Question), term)
	})
}

func (s *memoryStore) QuestionsByCategory(_ context.Context, categoryID int) ([]Question, error) {
	return s.filter(func(q Question) bool { return q.Category == categoryID })
}

func (s *memoryStore) QuestionsExcluding(_ context.Context, ids []int) ([]Question, error) {
	excluded := make(map[int]bool, len(ids))
	for _, id := range ids {
		excluded[id] = true
	}
	return s.filter(func(q Question) bool { return !excluded[q.ID] })
}

func (s *memoryStore) InsertQuestion(_ context.Context, rec QuestionRecord) (int, error) {
	s.insertCalls++
	if s.failInsert != nil {
		return 0, s.failInsert
	}
	id := s.nextID
	s.nextID++
	s.questions = append(s.questions, Question{
		ID:         id,
		Question:   rec.Question,
		Answer:     rec.Answer,
		Category:   rec.Category,
		Difficulty: rec.Difficulty,
	})
	return id, nil
}

func (s *memoryStore) DeleteQuestion(_ context.Context, id int) (bool, error) {
	if s.failDelete != nil {
		return false, s.failDelete
	}
	for i, q := range s.questions {
		if q.ID == id {
			s.questions = append(s.questions[:i], s.questions[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *memoryStore) CountQuestions(_ context.Context) (int, error) {
	if s.failReads != nil {
		return 0, s.failReads
	}
	return len(s.questions), nil
}

func (s *memoryStore) filter(keep func(Question) bool) ([]Question, error) {
	if s.failReads != nil {
		return nil, s.failReads
	}
	out := []Question{}
	for _, q := range s.questions {
		if keep(q) {
			out = append(out, q)
		}
	}
	return out, nil
}

type memoryCategoryCache struct {
	categories []Category
	sets       int
}

func (c *memoryCategoryCache) GetCategories(_ context.Context) ([]Category, error) {
	return c.categories, nil
}

func (c *memoryCategoryCache) SetCategories(_ context.Context, categories []Category) error {
	c.sets++
	c.categories = categories
	return nil
}

var testCategories = []Category{
	{ID: 1, Type: "Science"},
	{ID: 2, Type: "Art"},
	{ID: 3, Type: "Geography"},
}

func seededQuestions(n int, category func(i int) int) []Question {
	out := make([]Question, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, Question{
			ID:         i,
			Question:   "Question number " + strconv.Itoa(i),
			Answer:     "Answer " + strconv.Itoa(i),
			Category:   category(i),
			Difficulty: 1 + i%5,
		})
	}
	return out
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
