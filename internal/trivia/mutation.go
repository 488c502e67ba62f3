package trivia

import (
	"context"
	"fmt"
	"strings"
)

// Validate checks that every required field is present.
func (n NewQuestion) Validate() (QuestionRecord, error) {
	var missing []string
	if n.Question == nil {
		missing = append(missing, "question")
	}
	if n.Answer == nil {
		missing = append(missing, "answer")
	}
	if n.Category == nil {
		missing = append(missing, "category")
	}
	if n.Difficulty == nil {
		missing = append(missing, "difficulty")
	}
	if len(missing) > 0 {
		return QuestionRecord{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return QuestionRecord{
		Question:   *n.Question,
		Answer:     *n.Answer,
		Category:   *n.Category,
		Difficulty: *n.Difficulty,
	}, nil
}

// CreateQuestion validates and inserts a question, then returns the requested
// page of the updated listing.
func (s *Service) CreateQuestion(ctx context.Context, in NewQuestion, page int) (MutationResult, error) {
	const op = "create_question"
	rec, err := in.Validate()
	if err != nil {
		mutations.WithLabelValues("create", "invalid").Inc()
		return MutationResult{}, badRequest(op, err)
	}

	id, err := s.store.InsertQuestion(ctx, rec)
	if err != nil {
		mutations.WithLabelValues("create", "failed").Inc()
		return MutationResult{}, unprocessable(op, err)
	}
	mutations.WithLabelValues("create", "ok").Inc()
	s.logger.Info().Int("question_id", id).Int("category_id", rec.Category).Msg("question created")

	result, err := s.reproject(ctx, page)
	if err != nil {
		return MutationResult{}, unprocessable(op, err)
	}
	result.ID = id
	return result, nil
}

// DeleteQuestion removes a question by id. A missing id is Unprocessable
// wrapping ErrQuestionNotFound, so callers can still tell it apart from a
// store failure.
func (s *Service) DeleteQuestion(ctx context.Context, id, page int) (MutationResult, error) {
	const op = "delete_question"
	deleted, err := s.store.DeleteQuestion(ctx, id)
	if err != nil {
		mutations.WithLabelValues("delete", "failed").Inc()
		return MutationResult{}, unprocessable(op, err)
	}
	if !deleted {
		mutations.WithLabelValues("delete", "missing").Inc()
		return MutationResult{}, unprocessable(op, fmt.Errorf("%w: id %d", ErrQuestionNotFound, id))
	}
	mutations.WithLabelValues("delete", "ok").Inc()
	s.logger.Info().Int("question_id", id).Msg("question deleted")

	result, err := s.reproject(ctx, page)
	if err != nil {
		return MutationResult{}, unprocessable(op, err)
	}
	result.ID = id
	return result, nil
}

func (s *Service) reproject(ctx context.Context, page int) (MutationResult, error) {
	all, err := s.store.ListQuestions(ctx)
	if err != nil {
		return MutationResult{}, fmt.Errorf("reload questions: %w", err)
	}
	total, err := s.store.CountQuestions(ctx)
	if err != nil {
		return MutationResult{}, fmt.Errorf("count questions: %w", err)
	}
	return MutationResult{
		Questions:      Paginate(all, NormalizePage(page), s.pageSize),
		TotalQuestions: total,
	}, nil
}
