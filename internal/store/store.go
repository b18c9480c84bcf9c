package store

import (
	"context"
	"errors"
	"time"

	"github.com/flashlearn/backend/internal/domain/deck"
	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/progress"
	"github.com/flashlearn/backend/internal/domain/quiz"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrEmailTaken    = errors.New("email already registered")
	ErrAlreadyInDeck = errors.New("flashcard already in deck")
)

// User is an account row. The password hash never leaves the store layer
// except for credential verification.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Store is the persistence collaborator. All rows are scoped by the owning
// user; implementations return ErrNotFound for rows that do not exist or
// belong to someone else. Calls may fail with transport errors, which
// callers treat as non-fatal to in-memory state.
type Store interface {
	// Users
	CreateUser(ctx context.Context, u *User) error
	GetUserByEmail(ctx context.Context, email string) (*User, error)

	// Flashcards
	SaveFlashcard(ctx context.Context, card *flashcard.Flashcard) error
	GetFlashcard(ctx context.Context, userID, cardID string) (*flashcard.Flashcard, error)
	ListFlashcards(ctx context.Context, userID string) ([]*flashcard.Flashcard, error)
	ListFlashcardsByCategory(ctx context.Context, userID string, category flashcard.Category) ([]*flashcard.Flashcard, error)
	UpdateFlashcard(ctx context.Context, card *flashcard.Flashcard) error
	DeleteFlashcard(ctx context.Context, userID, cardID string) error

	// RecordReview applies one answer event to a card's counters:
	// times_reviewed always +1, times_correct +1 only when correct,
	// last_reviewed stamped. The increments happen in SQL so counters
	// stay monotonic no matter what the caller holds in memory.
	RecordReview(ctx context.Context, userID, cardID string, correct bool, when time.Time) error

	// Quiz results. SaveQuizResult inserts the immutable result row and
	// performs the study-metrics read-modify-write in one transaction.
	SaveQuizResult(ctx context.Context, r quiz.Result) error
	ListQuizResults(ctx context.Context, userID string) ([]quiz.Result, error)
	ListQuizResultsByCategory(ctx context.Context, userID string, category flashcard.Category) ([]quiz.Result, error)

	// GetStudyMetrics returns the aggregate for (user, category), or
	// ErrNotFound when the user has not finished a quiz in that category.
	GetStudyMetrics(ctx context.Context, userID string, category flashcard.Category) (*progress.StudyMetrics, error)

	// Decks
	SaveDeck(ctx context.Context, d *deck.Deck) error
	GetDeck(ctx context.Context, deckID string) (*deck.Deck, error)
	ListDecks(ctx context.Context, userID string) ([]*deck.Deck, error)
	ListPublicDecks(ctx context.Context) ([]*deck.Deck, error)
	DeleteDeck(ctx context.Context, userID, deckID string) error
	AddDeckCard(ctx context.Context, deckID, cardID string) error
	RemoveDeckCard(ctx context.Context, deckID, cardID string) error
	ListDeckCards(ctx context.Context, deckID string) ([]*flashcard.Flashcard, error)

	Close() error
}
