package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/quiz"
	"github.com/flashlearn/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type StartQuizRequest struct {
	Category string `json:"category" example:"python"` // empty for a mixed quiz
}

func (r *StartQuizRequest) Validate() error {
	if r.Category != "" && !flashcard.Category(r.Category).Valid() {
		return flashcard.ErrInvalidCategory
	}
	return nil
}

type AnswerRequest struct {
	CardID  string `json:"card_id" example:"a1b2c3d4e5f6g7h8"`
	Correct bool   `json:"correct" example:"true"`
}

func (r *AnswerRequest) Validate() error {
	if r.CardID == "" {
		return errors.New("card_id is required")
	}
	return nil
}

type QuizCardResponse struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuizResultResponse struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	TotalQuestions int       `json:"total_questions"`
	CorrectAnswers int       `json:"correct_answers"`
	ScorePercent   int       `json:"score_percent"`
	TimeSpent      int       `json:"time_spent"`
	Date           time.Time `json:"date"`
}

type QuizSessionResponse struct {
	ID       string              `json:"id"`
	Category string              `json:"category"`
	State    string              `json:"state"`
	Cards    []QuizCardResponse  `json:"cards"`
	Current  int                 `json:"current"`
	Answered int                 `json:"answered"`
	Score    int                 `json:"score"`
	Elapsed  int                 `json:"elapsed"`
	Result   *QuizResultResponse `json:"result,omitempty"`
}

func toSessionResponse(s quiz.Snapshot) QuizSessionResponse {
	cards := make([]QuizCardResponse, len(s.Cards))
	for i, c := range s.Cards {
		cards[i] = QuizCardResponse{ID: c.ID, Question: c.Question, Answer: c.Answer}
	}

	resp := QuizSessionResponse{
		ID:       s.ID,
		Category: string(s.Category),
		State:    string(s.State),
		Cards:    cards,
		Current:  s.Current,
		Answered: s.Answered,
		Score:    s.Score,
		Elapsed:  s.Elapsed,
	}
	if r := s.Result; r != nil {
		resp.Result = &QuizResultResponse{
			ID:             r.ID,
			Category:       string(r.Category),
			TotalQuestions: r.TotalQuestions,
			CorrectAnswers: r.CorrectAnswers,
			ScorePercent:   r.ScorePercent(),
			TimeSpent:      r.TimeSpent,
			Date:           r.Date,
		}
	}
	return resp
}

// handleQuizError maps quiz and session errors to HTTP responses.
// Returns true if an error was handled.
func (h *Handler) handleQuizError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, "quiz session not found")
	case errors.Is(err, quiz.ErrNoCards):
		respondError(w, http.StatusConflict, "no flashcards available to quiz on")
	case errors.Is(err, quiz.ErrSessionComplete):
		respondError(w, http.StatusConflict, "quiz session is already complete")
	case errors.Is(err, quiz.ErrNotInSession):
		respondError(w, http.StatusBadRequest, "card does not belong to this session")
	case errors.Is(err, flashcard.ErrInvalidCategory):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("quiz error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// ── Handlers ────────────────────────────────────────────────────────────────

// startQuiz opens a quiz session over the user's cards.
// @Summary      Start a quiz
// @Description  Picks up to 10 random cards from one category, or from all categories when none is given.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      StartQuizRequest  true  "Quiz options"
// @Success      201   {object}  QuizSessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Security     BearerAuth
// @Router       /quiz [post]
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	var req StartQuizRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.quiz.StartQuiz(r.Context(), userID(r), flashcard.Category(req.Category))
	if h.handleQuizError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, toSessionResponse(session))
}

// getQuiz returns the current state of a session.
// @Summary      Get a quiz session
// @Tags         Quiz
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  QuizSessionResponse
// @Failure      404        {object}  map[string]string
// @Security     BearerAuth
// @Router       /quiz/{sessionID} [get]
func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Get(userID(r), r.PathValue("sessionID"))
	if h.handleQuizError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// submitAnswer records an outcome for a card in the session.
// @Summary      Answer a question
// @Description  Records whether the user got the card right. Answering the last open card completes the quiz.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string         true  "Session ID"
// @Param        body       body      AnswerRequest  true  "Answer"
// @Success      200        {object}  QuizSessionResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Failure      409        {object}  map[string]string
// @Security     BearerAuth
// @Router       /quiz/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	var req AnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.quiz.Answer(r.Context(), userID(r), r.PathValue("sessionID"), req.CardID, req.Correct)
	if h.handleQuizError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// nextQuestion advances the question pointer.
// @Summary      Go to the next question
// @Tags         Quiz
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  QuizSessionResponse
// @Failure      404        {object}  map[string]string
// @Security     BearerAuth
// @Router       /quiz/{sessionID}/next [post]
func (h *Handler) nextQuestion(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Next(userID(r), r.PathValue("sessionID"))
	if h.handleQuizError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// previousQuestion moves the question pointer back.
// @Summary      Go to the previous question
// @Tags         Quiz
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  QuizSessionResponse
// @Failure      404        {object}  map[string]string
// @Security     BearerAuth
// @Router       /quiz/{sessionID}/previous [post]
func (h *Handler) previousQuestion(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Previous(userID(r), r.PathValue("sessionID"))
	if h.handleQuizError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// restartQuiz reshuffles the session into a fresh attempt.
// @Summary      Restart a quiz
// @Description  Starts a new attempt over the same card pool with a fresh shuffle.
// @Tags         Quiz
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  QuizSessionResponse
// @Failure      404        {object}  map[string]string
// @Security     BearerAuth
// @Router       /quiz/{sessionID}/restart [post]
func (h *Handler) restartQuiz(w http.ResponseWriter, r *http.Request) {
	session, err := h.quiz.Restart(userID(r), r.PathValue("sessionID"))
	if h.handleQuizError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, toSessionResponse(session))
}

// abandonQuiz drops a session without recording a result.
// @Summary      Abandon a quiz
// @Tags         Quiz
// @Param        sessionID  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /quiz/{sessionID} [delete]
func (h *Handler) abandonQuiz(w http.ResponseWriter, r *http.Request) {
	if h.handleQuizError(w, h.quiz.Abandon(userID(r), r.PathValue("sessionID"))) {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
