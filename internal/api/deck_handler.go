package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/flashlearn/backend/internal/domain/deck"
	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateDeckRequest struct {
	Name        string `json:"name" example:"Python interview prep"`
	Description string `json:"description" example:"Cards for the screening round"`
	Category    string `json:"category" example:"python"`
	IsPublic    bool   `json:"is_public" example:"false"`
}

func (r *CreateDeckRequest) Validate() error {
	if r.Name == "" {
		return deck.ErrNameRequired
	}
	if !flashcard.Category(r.Category).Valid() {
		return flashcard.ErrInvalidCategory
	}
	return nil
}

type AddDeckCardRequest struct {
	CardID string `json:"card_id" example:"a1b2c3d4e5f6g7h8"`
}

func (r *AddDeckCardRequest) Validate() error {
	if r.CardID == "" {
		return errors.New("card_id is required")
	}
	return nil
}

type DeckResponse struct {
	ID          string    `json:"id" example:"d1e2c3k4i5d6e7f8"`
	Name        string    `json:"name" example:"Python interview prep"`
	Description string    `json:"description" example:"Cards for the screening round"`
	Category    string    `json:"category" example:"python"`
	IsPublic    bool      `json:"is_public" example:"false"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDeckResponse(d *deck.Deck) DeckResponse {
	return DeckResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Category:    string(d.Category),
		IsPublic:    d.IsPublic,
		CreatedAt:   d.CreatedAt,
	}
}

// loadOwnedDeck fetches a deck and verifies the caller owns it. Writes the
// error response itself on failure.
func (h *Handler) loadOwnedDeck(w http.ResponseWriter, r *http.Request) (*deck.Deck, bool) {
	d, err := h.store.GetDeck(r.Context(), r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return nil, false
	}
	if d.UserID != userID(r) {
		// Same response as a missing deck so ownership is not probeable.
		respondError(w, http.StatusNotFound, "deck not found")
		return nil, false
	}
	return d, true
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createDeck creates a shareable deck.
// @Summary      Create a deck
// @Tags         Decks
// @Accept       json
// @Produce      json
// @Param        body  body      CreateDeckRequest  true  "Deck to create"
// @Success      201   {object}  DeckResponse
// @Failure      400   {object}  map[string]string
// @Security     BearerAuth
// @Router       /decks [post]
func (h *Handler) createDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateDeckRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, err := deck.New(userID(r), req.Name, req.Description, flashcard.Category(req.Category), req.IsPublic)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.store.SaveDeck(ctx, d); err != nil {
		h.logger.Error("save deck failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save deck")
		return
	}

	respondJSON(w, http.StatusCreated, toDeckResponse(d))
}

// listDecks lists the user's own decks.
// @Summary      List decks
// @Tags         Decks
// @Produce      json
// @Success      200  {array}  DeckResponse
// @Security     BearerAuth
// @Router       /decks [get]
func (h *Handler) listDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.store.ListDecks(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("list decks failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load decks")
		return
	}

	response := make([]DeckResponse, len(decks))
	for i, d := range decks {
		response[i] = toDeckResponse(d)
	}
	respondJSON(w, http.StatusOK, response)
}

// listPublicDecks lists decks shared by any user.
// @Summary      List public decks
// @Tags         Decks
// @Produce      json
// @Success      200  {array}  DeckResponse
// @Security     BearerAuth
// @Router       /decks/public [get]
func (h *Handler) listPublicDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.store.ListPublicDecks(r.Context())
	if err != nil {
		h.logger.Error("list public decks failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load decks")
		return
	}

	response := make([]DeckResponse, len(decks))
	for i, d := range decks {
		response[i] = toDeckResponse(d)
	}
	respondJSON(w, http.StatusOK, response)
}

// getDeck returns a deck visible to the caller: their own, or a public one.
// @Summary      Get a deck
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {object}  DeckResponse
// @Failure      404     {object}  map[string]string
// @Security     BearerAuth
// @Router       /decks/{deckID} [get]
func (h *Handler) getDeck(w http.ResponseWriter, r *http.Request) {
	d, err := h.store.GetDeck(r.Context(), r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}
	if d.UserID != userID(r) && !d.IsPublic {
		respondError(w, http.StatusNotFound, "deck not found")
		return
	}
	respondJSON(w, http.StatusOK, toDeckResponse(d))
}

// deleteDeck removes a deck and its card memberships. The cards themselves
// are not deleted.
// @Summary      Delete a deck
// @Tags         Decks
// @Param        deckID  path  string  true  "Deck ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /decks/{deckID} [delete]
func (h *Handler) deleteDeck(w http.ResponseWriter, r *http.Request) {
	if h.handleStoreError(w, h.store.DeleteDeck(r.Context(), userID(r), r.PathValue("deckID")), "deck") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// addDeckCard puts one of the user's flashcards into a deck they own.
// @Summary      Add a card to a deck
// @Tags         Decks
// @Accept       json
// @Param        deckID  path      string              true  "Deck ID"
// @Param        body    body      AddDeckCardRequest  true  "Card to add"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Security     BearerAuth
// @Router       /decks/{deckID}/cards [post]
func (h *Handler) addDeckCard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req AddDeckCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	d, ok := h.loadOwnedDeck(w, r)
	if !ok {
		return
	}
	if _, err := h.store.GetFlashcard(ctx, userID(r), req.CardID); h.handleStoreError(w, err, "flashcard") {
		return
	}

	if err := h.store.AddDeckCard(ctx, d.ID, req.CardID); err != nil {
		if errors.Is(err, store.ErrAlreadyInDeck) {
			respondError(w, http.StatusConflict, "flashcard already in deck")
			return
		}
		h.logger.Error("add deck card failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// removeDeckCard takes a flashcard out of a deck the user owns.
// @Summary      Remove a card from a deck
// @Tags         Decks
// @Param        deckID  path  string  true  "Deck ID"
// @Param        cardID  path  string  true  "Flashcard ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /decks/{deckID}/cards/{cardID} [delete]
func (h *Handler) removeDeckCard(w http.ResponseWriter, r *http.Request) {
	d, ok := h.loadOwnedDeck(w, r)
	if !ok {
		return
	}
	if h.handleStoreError(w, h.store.RemoveDeckCard(r.Context(), d.ID, r.PathValue("cardID")), "deck card") {
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listDeckCards lists the flashcards in a visible deck.
// @Summary      List deck cards
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {array}   FlashcardResponse
// @Failure      404     {object}  map[string]string
// @Security     BearerAuth
// @Router       /decks/{deckID}/cards [get]
func (h *Handler) listDeckCards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d, err := h.store.GetDeck(ctx, r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}
	if d.UserID != userID(r) && !d.IsPublic {
		respondError(w, http.StatusNotFound, "deck not found")
		return
	}

	cards, err := h.store.ListDeckCards(ctx, d.ID)
	if err != nil {
		h.logger.Error("list deck cards failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load deck cards")
		return
	}

	response := make([]FlashcardResponse, len(cards))
	for i, c := range cards {
		response[i] = toFlashcardResponse(c)
	}
	respondJSON(w, http.StatusOK, response)
}

// ── Export ──────────────────────────────────────────────────────────────────

type ExportCard struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ExportData struct {
	Version    string       `json:"version"`
	ExportedAt string       `json:"exported_at"`
	DeckName   string       `json:"deck_name"`
	Cards      []ExportCard `json:"cards"`
}

// exportDeck downloads a visible deck's cards as a JSON file.
// @Summary      Export a deck
// @Description  Downloads the deck's cards as JSON, without review history.
// @Tags         Decks
// @Produce      json
// @Param        deckID  path      string  true  "Deck ID"
// @Success      200     {object}  ExportData
// @Failure      404     {object}  map[string]string
// @Security     BearerAuth
// @Router       /decks/{deckID}/export [get]
func (h *Handler) exportDeck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	d, err := h.store.GetDeck(ctx, r.PathValue("deckID"))
	if h.handleStoreError(w, err, "deck") {
		return
	}
	if d.UserID != userID(r) && !d.IsPublic {
		respondError(w, http.StatusNotFound, "deck not found")
		return
	}

	cards, err := h.store.ListDeckCards(ctx, d.ID)
	if err != nil {
		h.logger.Error("export deck failed", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load deck cards")
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		DeckName:   d.Name,
		Cards:      make([]ExportCard, len(cards)),
	}
	for i, c := range cards {
		exportData.Cards[i] = ExportCard{
			Category: string(c.Category),
			Question: c.Question,
			Answer:   c.Answer,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=flashlearn-deck.json")
	json.NewEncoder(w).Encode(exportData)
}
