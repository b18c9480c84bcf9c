package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateFlashcardRequest struct {
	Category string `json:"category" example:"python"`
	Question string `json:"question" example:"What is a list comprehension?"`
	Answer   string `json:"answer" example:"A concise syntax for building lists from iterables"`
}

func (r *CreateFlashcardRequest) Validate() error {
	return flashcard.Validate(flashcard.Category(r.Category), r.Question, r.Answer)
}

type UpdateFlashcardRequest struct {
	Category string `json:"category" example:"python"`
	Question string `json:"question" example:"What is a generator?"`
	Answer   string `json:"answer" example:"A function that yields values lazily"`
}

func (r *UpdateFlashcardRequest) Validate() error {
	return flashcard.Validate(flashcard.Category(r.Category), r.Question, r.Answer)
}

type FlashcardResponse struct {
	ID            string     `json:"id" example:"a1b2c3d4e5f6g7h8"`
	Category      string     `json:"category" example:"python"`
	Question      string     `json:"question" example:"What is a list comprehension?"`
	Answer        string     `json:"answer" example:"A concise syntax for building lists from iterables"`
	TimesReviewed int        `json:"times_reviewed" example:"5"`
	TimesCorrect  int        `json:"times_correct" example:"4"`
	Mastered      bool       `json:"mastered" example:"true"`
	LastReviewed  *time.Time `json:"last_reviewed,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

func toFlashcardResponse(f *flashcard.Flashcard) FlashcardResponse {
	return FlashcardResponse{
		ID:            f.ID,
		Category:      string(f.Category),
		Question:      f.Question,
		Answer:        f.Answer,
		TimesReviewed: f.TimesReviewed,
		TimesCorrect:  f.TimesCorrect,
		Mastered:      f.Mastered(),
		LastReviewed:  f.LastReviewed,
		CreatedAt:     f.CreatedAt,
	}
}

type MasteryResponse struct {
	Mastered   int `json:"mastered" example:"4"`
	Total      int `json:"total" example:"10"`
	Percentage int `json:"percentage" example:"40"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createFlashcard creates a new flashcard.
// @Summary      Create a flashcard
// @Description  Create a flashcard in one of the fixed categories.
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        body  body      CreateFlashcardRequest  true  "Flashcard to create"
// @Success      201   {object}  FlashcardResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Security     BearerAuth
// @Router       /flashcards [post]
func (h *Handler) createFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateFlashcardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := flashcard.New(userID(r), flashcard.Category(req.Category), req.Question, req.Answer)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.SaveFlashcard(ctx, card); err != nil {
		h.logger.Error("save flashcard failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save flashcard")
		return
	}

	respondJSON(w, http.StatusCreated, toFlashcardResponse(card))
}

// listFlashcards lists the user's flashcards, optionally by category.
// @Summary      List flashcards
// @Description  Returns the user's flashcards. Filter with ?category=.
// @Tags         Flashcards
// @Produce      json
// @Param        category  query     string  false  "fullstack | appdev | python"
// @Success      200       {array}   FlashcardResponse
// @Failure      400       {object}  map[string]string
// @Security     BearerAuth
// @Router       /flashcards [get]
func (h *Handler) listFlashcards(w http.ResponseWriter, r *http.Request) {
	cards, ok := h.loadCards(w, r)
	if !ok {
		return
	}

	response := make([]FlashcardResponse, len(cards))
	for i, c := range cards {
		response[i] = toFlashcardResponse(c)
	}
	respondJSON(w, http.StatusOK, response)
}

// loadCards fetches the user's cards honoring the optional category query
// parameter. Writes the error response itself on failure.
func (h *Handler) loadCards(w http.ResponseWriter, r *http.Request) ([]*flashcard.Flashcard, bool) {
	ctx := r.Context()
	uid := userID(r)

	var (
		cards []*flashcard.Flashcard
		err   error
	)
	if raw := r.URL.Query().Get("category"); raw != "" {
		category := flashcard.Category(raw)
		if !category.Valid() {
			respondError(w, http.StatusBadRequest, flashcard.ErrInvalidCategory.Error())
			return nil, false
		}
		cards, err = h.store.ListFlashcardsByCategory(ctx, uid, category)
	} else {
		cards, err = h.store.ListFlashcards(ctx, uid)
	}
	if err != nil {
		h.logger.Error("list flashcards failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load flashcards")
		return nil, false
	}
	return cards, true
}

// getFlashcard returns a single flashcard.
// @Summary      Get a flashcard
// @Tags         Flashcards
// @Produce      json
// @Param        cardID  path      string  true  "Flashcard ID"
// @Success      200     {object}  FlashcardResponse
// @Failure      404     {object}  map[string]string
// @Security     BearerAuth
// @Router       /flashcards/{cardID} [get]
func (h *Handler) getFlashcard(w http.ResponseWriter, r *http.Request) {
	card, err := h.store.GetFlashcard(r.Context(), userID(r), r.PathValue("cardID"))
	if h.handleStoreError(w, err, "flashcard") {
		return
	}
	respondJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// updateFlashcard edits a flashcard's category, question and answer.
// Review counters are never editable.
// @Summary      Update a flashcard
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        cardID  path      string                  true  "Flashcard ID"
// @Param        body    body      UpdateFlashcardRequest  true  "New flashcard data"
// @Success      200     {object}  FlashcardResponse
// @Failure      400     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Security     BearerAuth
// @Router       /flashcards/{cardID} [put]
func (h *Handler) updateFlashcard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req UpdateFlashcardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	card, err := h.store.GetFlashcard(ctx, userID(r), r.PathValue("cardID"))
	if h.handleStoreError(w, err, "flashcard") {
		return
	}

	card.Category = flashcard.Category(req.Category)
	card.Question = req.Question
	card.Answer = req.Answer
	if h.handleStoreError(w, h.store.UpdateFlashcard(ctx, card), "flashcard") {
		return
	}

	respondJSON(w, http.StatusOK, toFlashcardResponse(card))
}

// deleteFlashcard removes a flashcard.
// @Summary      Delete a flashcard
// @Tags         Flashcards
// @Param        cardID  path  string  true  "Flashcard ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /flashcards/{cardID} [delete]
func (h *Handler) deleteFlashcard(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteFlashcard(r.Context(), userID(r), r.PathValue("cardID")), "flashcard") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getMastery returns the mastery breakdown over the user's cards.
// @Summary      Get mastery
// @Description  Counts cards with accuracy >= 80% over at least one review. Filter with ?category=.
// @Tags         Flashcards
// @Produce      json
// @Param        category  query     string  false  "fullstack | appdev | python"
// @Success      200       {object}  MasteryResponse
// @Failure      400       {object}  map[string]string
// @Security     BearerAuth
// @Router       /flashcards/mastery [get]
func (h *Handler) getMastery(w http.ResponseWriter, r *http.Request) {
	cards, ok := h.loadCards(w, r)
	if !ok {
		return
	}

	breakdown := flashcard.CalculateMastery(cards)
	respondJSON(w, http.StatusOK, MasteryResponse{
		Mastered:   breakdown.Mastered,
		Total:      breakdown.Total,
		Percentage: breakdown.Percentage,
	})
}

// ── Answer suggestions ──────────────────────────────────────────────────────

type SuggestAnswerRequest struct {
	Question string `json:"question" example:"What is a closure?"`
}

func (r *SuggestAnswerRequest) Validate() error {
	if r.Question == "" {
		return errors.New("question is required")
	}
	return nil
}

type SuggestAnswerResponse struct {
	Answer string `json:"answer"`
}

const suggestTimeout = 30 * time.Second

// suggestAnswer asks the model for a draft answer to a question.
// @Summary      Suggest an answer
// @Description  Returns an AI-drafted answer for a flashcard question.
// @Tags         Flashcards
// @Accept       json
// @Produce      json
// @Param        body  body      SuggestAnswerRequest  true  "Question"
// @Success      200   {object}  SuggestAnswerResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Security     BearerAuth
// @Router       /flashcards/suggest-answer [post]
func (h *Handler) suggestAnswer(w http.ResponseWriter, r *http.Request) {
	var req SuggestAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), suggestTimeout)
	defer cancel()

	answer, err := h.assistant.SuggestAnswer(ctx, req.Question)
	if err != nil {
		h.logger.Error("answer suggestion failed", "error", err)
		respondError(w, http.StatusBadGateway, "suggestion service unavailable")
		return
	}

	respondJSON(w, http.StatusOK, SuggestAnswerResponse{Answer: answer})
}
