package deck

import (
	"errors"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/id"
)

var ErrNameRequired = errors.New("deck name is required")

// Deck is a user-owned, optionally public collection of flashcards that
// can be shared with other users.
type Deck struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Category    flashcard.Category
	IsPublic    bool
	CreatedAt   time.Time
}

// New creates a Deck with a generated ID.
func New(userID, name, description string, category flashcard.Category, isPublic bool) (*Deck, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if !category.Valid() {
		return nil, flashcard.ErrInvalidCategory
	}
	return &Deck{
		ID:          id.New(),
		UserID:      userID,
		Name:        name,
		Description: description,
		Category:    category,
		IsPublic:    isPublic,
		CreatedAt:   time.Now().UTC(),
	}, nil
}
