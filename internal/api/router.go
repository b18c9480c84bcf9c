// internal/api/router.go
package api

import (
	"net/http"

	"github.com/flashlearn/backend/internal/domain/flashcard"
)

// RegisterRoutes wires every handler onto the mux. Everything except auth
// and the health check sits behind requireAuth.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Auth
	mux.HandleFunc("POST /auth/register", h.register)
	mux.HandleFunc("POST /auth/login", h.login)

	// Categories
	mux.HandleFunc("GET /categories", h.listCategories)

	// Flashcards
	mux.HandleFunc("POST /flashcards", h.requireAuth(h.createFlashcard))
	mux.HandleFunc("GET /flashcards", h.requireAuth(h.listFlashcards))
	mux.HandleFunc("GET /flashcards/mastery", h.requireAuth(h.getMastery))
	mux.HandleFunc("POST /flashcards/suggest-answer", h.requireAuth(h.suggestAnswer))
	mux.HandleFunc("GET /flashcards/{cardID}", h.requireAuth(h.getFlashcard))
	mux.HandleFunc("PUT /flashcards/{cardID}", h.requireAuth(h.updateFlashcard))
	mux.HandleFunc("DELETE /flashcards/{cardID}", h.requireAuth(h.deleteFlashcard))

	// Quiz sessions
	mux.HandleFunc("POST /quiz", h.requireAuth(h.startQuiz))
	mux.HandleFunc("GET /quiz/{sessionID}", h.requireAuth(h.getQuiz))
	mux.HandleFunc("POST /quiz/{sessionID}/answers", h.requireAuth(h.submitAnswer))
	mux.HandleFunc("POST /quiz/{sessionID}/next", h.requireAuth(h.nextQuestion))
	mux.HandleFunc("POST /quiz/{sessionID}/previous", h.requireAuth(h.previousQuestion))
	mux.HandleFunc("POST /quiz/{sessionID}/restart", h.requireAuth(h.restartQuiz))
	mux.HandleFunc("DELETE /quiz/{sessionID}", h.requireAuth(h.abandonQuiz))

	// Progress
	mux.HandleFunc("GET /progress/results", h.requireAuth(h.listResults))
	mux.HandleFunc("GET /progress/summary", h.requireAuth(h.getSummary))
	mux.HandleFunc("GET /progress/metrics/{category}", h.requireAuth(h.getMetrics))

	// Decks
	mux.HandleFunc("POST /decks", h.requireAuth(h.createDeck))
	mux.HandleFunc("GET /decks", h.requireAuth(h.listDecks))
	mux.HandleFunc("GET /decks/public", h.requireAuth(h.listPublicDecks))
	mux.HandleFunc("GET /decks/{deckID}", h.requireAuth(h.getDeck))
	mux.HandleFunc("DELETE /decks/{deckID}", h.requireAuth(h.deleteDeck))
	mux.HandleFunc("POST /decks/{deckID}/cards", h.requireAuth(h.addDeckCard))
	mux.HandleFunc("GET /decks/{deckID}/cards", h.requireAuth(h.listDeckCards))
	mux.HandleFunc("DELETE /decks/{deckID}/cards/{cardID}", h.requireAuth(h.removeDeckCard))
	mux.HandleFunc("GET /decks/{deckID}/export", h.requireAuth(h.exportDeck))
}

// listCategories returns the fixed category set.
// @Summary      List categories
// @Tags         Categories
// @Produce      json
// @Success      200  {array}  string
// @Router       /categories [get]
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories := flashcard.Categories()
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	respondJSON(w, http.StatusOK, names)
}
