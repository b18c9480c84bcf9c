package api

import (
	"net/http"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/progress"
	"github.com/flashlearn/backend/internal/domain/quiz"
)

// ── Response types ──────────────────────────────────────────────────────────

type ProgressSummaryResponse struct {
	AverageScore   int                   `json:"average_score" example:"78"`
	TotalQuizzes   int                   `json:"total_quizzes" example:"12"`
	TotalQuestions int                   `json:"total_questions" example:"96"`
	OverTime       []progress.ScorePoint `json:"over_time"`
}

type StudyMetricsResponse struct {
	Category        string    `json:"category" example:"python"`
	TotalStudyTime  int       `json:"total_study_time" example:"540"`
	CardsReviewed   int       `json:"cards_reviewed" example:"42"`
	AverageAccuracy float64   `json:"average_accuracy" example:"0.74"`
	LastStudyDate   time.Time `json:"last_study_date"`
}

// loadResults fetches the user's quiz history honoring the optional
// category query parameter. Writes the error response itself on failure.
func (h *Handler) loadResults(w http.ResponseWriter, r *http.Request) ([]quiz.Result, bool) {
	ctx := r.Context()
	uid := userID(r)

	var (
		results []quiz.Result
		err     error
	)
	if raw := r.URL.Query().Get("category"); raw != "" {
		category := flashcard.Category(raw)
		if !category.Valid() {
			respondError(w, http.StatusBadRequest, flashcard.ErrInvalidCategory.Error())
			return nil, false
		}
		results, err = h.store.ListQuizResultsByCategory(ctx, uid, category)
	} else {
		results, err = h.store.ListQuizResults(ctx, uid)
	}
	if err != nil {
		h.logger.Error("list quiz results failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load quiz results")
		return nil, false
	}
	return results, true
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listResults returns the user's quiz history.
// @Summary      List quiz results
// @Description  Returns past quiz results, oldest first. Filter with ?category=.
// @Tags         Progress
// @Produce      json
// @Param        category  query     string  false  "fullstack | appdev | python"
// @Success      200       {array}   QuizResultResponse
// @Failure      400       {object}  map[string]string
// @Security     BearerAuth
// @Router       /progress/results [get]
func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	results, ok := h.loadResults(w, r)
	if !ok {
		return
	}

	response := make([]QuizResultResponse, len(results))
	for i, res := range results {
		response[i] = QuizResultResponse{
			ID:             res.ID,
			Category:       string(res.Category),
			TotalQuestions: res.TotalQuestions,
			CorrectAnswers: res.CorrectAnswers,
			ScorePercent:   res.ScorePercent(),
			TimeSpent:      res.TimeSpent,
			Date:           res.Date,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

// getSummary returns aggregate progress over the user's quiz history.
// @Summary      Get progress summary
// @Description  Average score, totals and the score-over-time series. Filter with ?category=.
// @Tags         Progress
// @Produce      json
// @Param        category  query     string  false  "fullstack | appdev | python"
// @Success      200       {object}  ProgressSummaryResponse
// @Failure      400       {object}  map[string]string
// @Security     BearerAuth
// @Router       /progress/summary [get]
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	results, ok := h.loadResults(w, r)
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, ProgressSummaryResponse{
		AverageScore:   progress.AverageScore(results),
		TotalQuizzes:   len(results),
		TotalQuestions: progress.TotalQuestionsAnswered(results),
		OverTime:       progress.OverTime(results),
	})
}

// getMetrics returns the accumulated study metrics for one category.
// @Summary      Get study metrics
// @Tags         Progress
// @Produce      json
// @Param        category  path      string  true  "fullstack | appdev | python"
// @Success      200       {object}  StudyMetricsResponse
// @Failure      400       {object}  map[string]string
// @Failure      404       {object}  map[string]string
// @Security     BearerAuth
// @Router       /progress/metrics/{category} [get]
func (h *Handler) getMetrics(w http.ResponseWriter, r *http.Request) {
	category := flashcard.Category(r.PathValue("category"))
	if !category.Valid() {
		respondError(w, http.StatusBadRequest, flashcard.ErrInvalidCategory.Error())
		return
	}

	m, err := h.store.GetStudyMetrics(r.Context(), userID(r), category)
	if h.handleStoreError(w, err, "study metrics") {
		return
	}

	respondJSON(w, http.StatusOK, StudyMetricsResponse{
		Category:        string(m.Category),
		TotalStudyTime:  m.TotalStudyTime,
		CardsReviewed:   m.CardsReviewed,
		AverageAccuracy: m.AverageAccuracy,
		LastStudyDate:   m.LastStudyDate,
	})
}
