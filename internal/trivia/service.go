package trivia

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Service is the query, quiz and mutation core sitting between the HTTP
// handlers and the catalog store. It keeps no state across calls.
type Service struct {
	store    Store
	cache    CategoryCache
	pageSize int
	logger   zerolog.Logger
}

type ServiceOptions struct {
	// PageSize overrides QuestionsPerPage when positive.
	PageSize int
}

// NewService wires the core. cache may be nil.
func NewService(store Store, cache CategoryCache, opts ServiceOptions, logger zerolog.Logger) *Service {
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = QuestionsPerPage
	}
	return &Service{
		store:    store,
		cache:    cache,
		pageSize: pageSize,
		logger:   logger.With().Str("component", "trivia_service").Logger(),
	}
}

// ListCategories returns every category ordered by id.
func (s *Service) ListCategories(ctx context.Context) ([]Category, error) {
	const op = "list_categories"
	categories, err := s.categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(categories) == 0 {
		return nil, notFound(op, ErrNoCategories)
	}
	return categories, nil
}

// ListQuestions returns one page of all questions. An empty page is NotFound.
func (s *Service) ListQuestions(ctx context.Context, page int) (QuestionsView, error) {
	const op = "list_questions"
	all, err := s.store.ListQuestions(ctx)
	if err != nil {
		return QuestionsView{}, fmt.Errorf("%s: %w", op, err)
	}
	current := Paginate(all, NormalizePage(page), s.pageSize)
	if len(current) == 0 {
		return QuestionsView{}, notFound(op, ErrEmptyPage)
	}
	categories, err := s.categories(ctx)
	if err != nil {
		return QuestionsView{}, fmt.Errorf("%s: %w", op, err)
	}
	return QuestionsView{
		Questions:       current,
		TotalQuestions:  len(all),
		Categories:      categories,
		CurrentCategory: currentCategory(categories, current),
	}, nil
}

// SearchQuestions pages through questions whose text contains term,
// ignoring case. A blank term matches everything. Zero matches is a normal,
// empty result rather than NotFound.
func (s *Service) SearchQuestions(ctx context.Context, term string, page int) (QuestionsView, error) {
	const op = "search_questions"
	var (
		matches []Question
		err     error
	)
	if strings.TrimSpace(term) == "" {
		matches, err = s.store.ListQuestions(ctx)
	} else {
		matches, err = s.store.SearchQuestions(ctx, term)
	}
	if err != nil {
		return QuestionsView{}, unprocessable(op, err)
	}
	if len(matches) == 0 {
		return QuestionsView{Questions: []Question{}}, nil
	}

	current := Paginate(matches, NormalizePage(page), s.pageSize)
	categories, err := s.categories(ctx)
	if err != nil {
		return QuestionsView{}, unprocessable(op, err)
	}
	return QuestionsView{
		Questions:       current,
		TotalQuestions:  len(matches),
		Categories:      categories,
		CurrentCategory: currentCategory(categories, current),
	}, nil
}

// QuestionsByCategory returns one page of the questions in categoryID. An
// unknown category, an empty category and a page past the end are all NotFound.
func (s *Service) QuestionsByCategory(ctx context.Context, categoryID, page int) (QuestionsView, error) {
	const op = "questions_by_category"
	selection, err := s.store.QuestionsByCategory(ctx, categoryID)
	if err != nil {
		return QuestionsView{}, fmt.Errorf("%s: %w", op, err)
	}
	current := Paginate(selection, NormalizePage(page), s.pageSize)
	if len(current) == 0 {
		return QuestionsView{}, notFound(op, ErrEmptyPage)
	}
	categories, err := s.categories(ctx)
	if err != nil {
		return QuestionsView{}, fmt.Errorf("%s: %w", op, err)
	}
	return QuestionsView{
		Questions:       current,
		TotalQuestions:  len(selection),
		CurrentCategory: currentCategory(categories, current),
	}, nil
}

func (s *Service) categories(ctx context.Context) ([]Category, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCategories(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && len(categories) > 0 {
		if err := s.cache.SetCategories(ctx, categories); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return categories, nil
}
