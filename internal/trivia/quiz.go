package trivia

import "context"

// NextQuizQuestion serves the lowest-id question not in PreviousQuestions,
// restricted to the requested category unless it is AnyCategory. When nothing
// is left the result carries a nil Question and the unchanged history.
func (s *Service) NextQuizQuestion(ctx context.Context, req QuizRequest) (QuizResult, error) {
	const op = "next_quiz_question"
	if req.Category == nil {
		return QuizResult{}, unprocessable(op, ErrMissingQuizCategory)
	}

	previous := make([]int, len(req.PreviousQuestions), len(req.PreviousQuestions)+1)
	copy(previous, req.PreviousQuestions)

	candidates, err := s.store.QuestionsExcluding(ctx, previous)
	if err != nil {
		return QuizResult{}, unprocessable(op, err)
	}

	seen := make(map[int]struct{}, len(previous))
	for _, id := range previous {
		seen[id] = struct{}{}
	}
	for _, q := range candidates {
		if _, ok := seen[q.ID]; ok {
			continue
		}
		if req.Category.ID != AnyCategory && q.Category != req.Category.ID {
			continue
		}
		next := q
		quizDraws.WithLabelValues("served").Inc()
		return QuizResult{
			Question:          &next,
			PreviousQuestions: append(previous, next.ID),
		}, nil
	}

	quizDraws.WithLabelValues("exhausted").Inc()
	s.logger.Debug().
		Int("category_id", req.Category.ID).
		Int("previous", len(previous)).
		Msg("quiz exhausted")
	return QuizResult{PreviousQuestions: previous}, nil
}
