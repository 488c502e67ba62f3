package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/trivia"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Handlers exposes the trivia core over JSON.
type Handlers struct {
	svc     *trivia.Service
	timeout time.Duration
	logger  zerolog.Logger
}

// NewHandlers builds the trivia handlers. timeout bounds each store-backed call.
func NewHandlers(svc *trivia.Service, timeout time.Duration, logger zerolog.Logger) *Handlers {
	if timeout <= 0 {
		timeout = 4 * time.Second
	}
	return &Handlers{
		svc:     svc,
		timeout: timeout,
		logger:  logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Index handles GET /
func (h *Handlers) Index(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Welcome to the trivia api!"))
}

// Categories handles GET /categories
func (h *Handlers) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	ctx, cancel := h.context(r)
	defer cancel()

	categories, err := h.svc.ListCategories(ctx)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"categories":       categories,
		"total_categories": len(categories),
	})
}

// Questions handles GET and POST /questions
func (h *Handlers) Questions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listQuestions(w, r)
	case http.MethodPost:
		h.createQuestion(w, r)
	default:
		httperrors.RespondMethodNotAllowed(w)
	}
}

func (h *Handlers) listQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.context(r)
	defer cancel()

	view, err := h.svc.ListQuestions(ctx, pageParam(r))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        view.Questions,
		"total_questions":  view.TotalQuestions,
		"categories":       view.Categories,
		"current_category": view.CurrentCategory,
	})
}

func (h *Handlers) createQuestion(w http.ResponseWriter, r *http.Request) {
	var req trivia.NewQuestion
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	res, err := h.svc.CreateQuestion(ctx, req, pageParam(r))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"created":         res.ID,
		"questions":       res.Questions,
		"total_questions": res.TotalQuestions,
	})
}

type searchRequest struct {
	SearchTerm *string `json:"searchTerm"`
	Search     *string `json:"search"`
}

func (s searchRequest) term() string {
	if s.SearchTerm != nil {
		return *s.SearchTerm
	}
	if s.Search != nil {
		return *s.Search
	}
	return ""
}

// Search handles POST /questions/search
func (h *Handlers) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	view, err := h.svc.SearchQuestions(ctx, req.term(), pageParam(r))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        view.Questions,
		"total_questions":  view.TotalQuestions,
		"categories":       view.Categories,
		"current_category": view.CurrentCategory,
	})
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *Handlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	res, err := h.svc.DeleteQuestion(ctx, id, pageParam(r))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":         true,
		"deleted":         res.ID,
		"questions":       res.Questions,
		"total_questions": res.TotalQuestions,
	})
}

// CategoryQuestions handles GET /categories/{id}/questions
func (h *Handlers) CategoryQuestions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	categoryID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		httperrors.RespondNotFound(w)
		return
	}

	ctx, cancel := h.context(r)
	defer cancel()

	view, err := h.svc.QuestionsByCategory(ctx, categoryID, pageParam(r))
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":          true,
		"questions":        view.Questions,
		"total_questions":  view.TotalQuestions,
		"current_category": view.CurrentCategory,
	})
}

// quizCategoryPayload accepts ids sent as numbers or numeric strings.
type quizCategoryPayload struct {
	ID   json.Number `json:"id"`
	Type string      `json:"type"`
}

type quizRequest struct {
	PreviousQuestions []int                `json:"previous_questions"`
	QuizCategory      *quizCategoryPayload `json:"quiz_category"`
}

// Quizzes handles POST /quizzes
func (h *Handlers) Quizzes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httperrors.RespondMethodNotAllowed(w)
		return
	}
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondUnprocessable(w)
		return
	}

	in := trivia.QuizRequest{PreviousQuestions: req.PreviousQuestions}
	if req.QuizCategory != nil {
		id, err := strconv.Atoi(req.QuizCategory.ID.String())
		if err != nil {
			httperrors.RespondUnprocessable(w)
			return
		}
		in.Category = &trivia.QuizCategory{ID: id, Type: req.QuizCategory.Type}
	}

	ctx, cancel := h.context(r)
	defer cancel()

	res, err := h.svc.NextQuizQuestion(ctx, in)
	if err != nil {
		h.respondErr(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":            true,
		"previous_questions": res.PreviousQuestions,
		"question":           res.Question,
	})
}

// NotFound answers unmatched paths with the JSON envelope.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	httperrors.RespondNotFound(w)
}

func (h *Handlers) context(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), h.timeout)
}

func (h *Handlers) respondErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	requestID := w.Header().Get(requestIDHeader)
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("request_id", requestID).Int("status", status).Msg("request failed")
	} else {
		h.logger.Debug().Err(err).Str("request_id", requestID).Int("status", status).Msg("request rejected")
	}
	httperrors.RespondError(w, status)
}

func statusFor(err error) int {
	switch trivia.KindOf(err) {
	case trivia.KindNotFound:
		return http.StatusNotFound
	case trivia.KindUnprocessable:
		return http.StatusUnprocessableEntity
	case trivia.KindBadRequest:
		return http.StatusBadRequest
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// pageParam reads ?page=, defaulting to 1 for missing or non-numeric values.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil {
		return 1
	}
	return trivia.NormalizePage(page)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}
