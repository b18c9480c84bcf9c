// internal/store/sqlite_decks.go
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/flashlearn/backend/internal/domain/deck"
	"github.com/flashlearn/backend/internal/domain/flashcard"
)

const deckColumns = "id, user_id, name, description, category, is_public, created_at"

func (s *SQLiteStore) SaveDeck(ctx context.Context, d *deck.Deck) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO decks ("+deckColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		d.ID, d.UserID, d.Name, d.Description, d.Category, d.IsPublic, d.CreatedAt,
	)
	return err
}

func (s *SQLiteStore) GetDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	var d deck.Deck
	err := s.db.QueryRowContext(ctx,
		"SELECT "+deckColumns+" FROM decks WHERE id = ?", deckID,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.Category, &d.IsPublic, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *SQLiteStore) ListDecks(ctx context.Context, userID string) ([]*deck.Deck, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+deckColumns+" FROM decks WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDecks(rows)
}

func (s *SQLiteStore) ListPublicDecks(ctx context.Context) ([]*deck.Deck, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+deckColumns+" FROM decks WHERE is_public = 1 ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDecks(rows)
}

func (s *SQLiteStore) DeleteDeck(ctx context.Context, userID, deckID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM deck_flashcards WHERE deck_id = ?", deckID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, "DELETE FROM decks WHERE id = ? AND user_id = ?", deckID, userID)
	if err != nil {
		return err
	}
	if err := requireRow(result); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *SQLiteStore) AddDeckCard(ctx context.Context, deckID, cardID string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO deck_flashcards (deck_id, flashcard_id) VALUES (?, ?)", deckID, cardID)
	if err != nil && isUniqueViolation(err) {
		return ErrAlreadyInDeck
	}
	return err
}

func (s *SQLiteStore) RemoveDeckCard(ctx context.Context, deckID, cardID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM deck_flashcards WHERE deck_id = ? AND flashcard_id = ?", deckID, cardID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *SQLiteStore) ListDeckCards(ctx context.Context, deckID string) ([]*flashcard.Flashcard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT f.id, f.user_id, f.category, f.question, f.answer,
		       f.times_reviewed, f.times_correct, f.last_reviewed, f.created_at
		FROM flashcards f
		JOIN deck_flashcards df ON df.flashcard_id = f.id
		WHERE df.deck_id = ?
		ORDER BY f.created_at`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFlashcards(rows)
}

func collectDecks(rows *sql.Rows) ([]*deck.Deck, error) {
	var decks []*deck.Deck
	for rows.Next() {
		var d deck.Deck
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.Category, &d.IsPublic, &d.CreatedAt); err != nil {
			return nil, err
		}
		decks = append(decks, &d)
	}
	return decks, rows.Err()
}
