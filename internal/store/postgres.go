// internal/store/postgres.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/flashlearn/backend/internal/domain/deck"
	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/progress"
	"github.com/flashlearn/backend/internal/domain/quiz"
)

const pgSchema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS flashcards (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    category TEXT NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    times_reviewed INTEGER NOT NULL DEFAULT 0,
    times_correct INTEGER NOT NULL DEFAULT 0,
    last_reviewed TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL,
    CHECK (times_correct <= times_reviewed)
);

CREATE TABLE IF NOT EXISTS quiz_results (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    category TEXT NOT NULL,
    total_questions INTEGER NOT NULL,
    correct_answers INTEGER NOT NULL,
    time_spent INTEGER NOT NULL,
    date TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS study_metrics (
    user_id TEXT NOT NULL,
    category TEXT NOT NULL,
    total_study_time INTEGER NOT NULL DEFAULT 0,
    cards_reviewed INTEGER NOT NULL DEFAULT 0,
    average_accuracy DOUBLE PRECISION NOT NULL DEFAULT 0,
    last_study_date TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (user_id, category)
);

CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL,
    is_public BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS deck_flashcards (
    deck_id TEXT NOT NULL REFERENCES decks(id) ON DELETE CASCADE,
    flashcard_id TEXT NOT NULL REFERENCES flashcards(id) ON DELETE CASCADE,
    PRIMARY KEY (deck_id, flashcard_id)
);
`

// PostgresStore persists to a remote hosted database through a pgx pool.
// It implements the same Store contract as the local SQLite store.
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

func NewPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("new pool: %w", err)
	}

	if _, err := pool.Exec(ctx, pgSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// ============================================================================
// Users
// ============================================================================

func (s *PostgresStore) CreateUser(ctx context.Context, u *User) error {
	_, err := s.pool.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, created_at) VALUES ($1, $2, $3, $4)",
		u.ID, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if isPgUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.pool.QueryRow(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE email = $1", email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ============================================================================
// Flashcards
// ============================================================================

func (s *PostgresStore) SaveFlashcard(ctx context.Context, card *flashcard.Flashcard) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO flashcards (id, user_id, category, question, answer, times_reviewed, times_correct, last_reviewed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		card.ID, card.UserID, card.Category, card.Question, card.Answer,
		card.TimesReviewed, card.TimesCorrect, card.LastReviewed, card.CreatedAt,
	)
	return err
}

func (s *PostgresStore) GetFlashcard(ctx context.Context, userID, cardID string) (*flashcard.Flashcard, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, category, question, answer, times_reviewed, times_correct, last_reviewed, created_at
		FROM flashcards WHERE id = $1 AND user_id = $2`, cardID, userID)
	if err != nil {
		return nil, err
	}
	cards, err := collectPgFlashcards(rows)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		return nil, ErrNotFound
	}
	return cards[0], nil
}

func (s *PostgresStore) ListFlashcards(ctx context.Context, userID string) ([]*flashcard.Flashcard, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, category, question, answer, times_reviewed, times_correct, last_reviewed, created_at
		FROM flashcards WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	return collectPgFlashcards(rows)
}

func (s *PostgresStore) ListFlashcardsByCategory(ctx context.Context, userID string, category flashcard.Category) ([]*flashcard.Flashcard, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, category, question, answer, times_reviewed, times_correct, last_reviewed, created_at
		FROM flashcards WHERE user_id = $1 AND category = $2 ORDER BY created_at`, userID, category)
	if err != nil {
		return nil, err
	}
	return collectPgFlashcards(rows)
}

func (s *PostgresStore) UpdateFlashcard(ctx context.Context, card *flashcard.Flashcard) error {
	tag, err := s.pool.Exec(ctx,
		"UPDATE flashcards SET category = $1, question = $2, answer = $3 WHERE id = $4 AND user_id = $5",
		card.Category, card.Question, card.Answer, card.ID, card.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteFlashcard(ctx context.Context, userID, cardID string) error {
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM flashcards WHERE id = $1 AND user_id = $2", cardID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) RecordReview(ctx context.Context, userID, cardID string, correct bool, when time.Time) error {
	correctInc := 0
	if correct {
		correctInc = 1
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE flashcards
		SET times_reviewed = times_reviewed + 1,
		    times_correct = times_correct + $1,
		    last_reviewed = $2
		WHERE id = $3 AND user_id = $4`,
		correctInc, when, cardID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func collectPgFlashcards(rows pgx.Rows) ([]*flashcard.Flashcard, error) {
	defer rows.Close()
	var cards []*flashcard.Flashcard
	for rows.Next() {
		var card flashcard.Flashcard
		if err := rows.Scan(&card.ID, &card.UserID, &card.Category, &card.Question, &card.Answer,
			&card.TimesReviewed, &card.TimesCorrect, &card.LastReviewed, &card.CreatedAt); err != nil {
			return nil, err
		}
		cards = append(cards, &card)
	}
	return cards, rows.Err()
}

// ============================================================================
// Quiz results & study metrics
// ============================================================================

func (s *PostgresStore) SaveQuizResult(ctx context.Context, r quiz.Result) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO quiz_results (id, user_id, category, total_questions, correct_answers, time_spent, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.UserID, r.Category, r.TotalQuestions, r.CorrectAnswers, r.TimeSpent, r.Date,
	)
	if err != nil {
		return err
	}

	var m progress.StudyMetrics
	m.UserID = r.UserID
	m.Category = r.Category
	err = tx.QueryRow(ctx, `
		SELECT total_study_time, cards_reviewed, average_accuracy, last_study_date
		FROM study_metrics WHERE user_id = $1 AND category = $2 FOR UPDATE`,
		r.UserID, r.Category,
	).Scan(&m.TotalStudyTime, &m.CardsReviewed, &m.AverageAccuracy, &m.LastStudyDate)

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		m = progress.MetricsFromResult(r)
	case err != nil:
		return err
	default:
		m.Apply(r)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO study_metrics (user_id, category, total_study_time, cards_reviewed, average_accuracy, last_study_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, category) DO UPDATE SET
			total_study_time = EXCLUDED.total_study_time,
			cards_reviewed = EXCLUDED.cards_reviewed,
			average_accuracy = EXCLUDED.average_accuracy,
			last_study_date = EXCLUDED.last_study_date`,
		m.UserID, m.Category, m.TotalStudyTime, m.CardsReviewed, m.AverageAccuracy, m.LastStudyDate,
	)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *PostgresStore) ListQuizResults(ctx context.Context, userID string) ([]quiz.Result, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, category, total_questions, correct_answers, time_spent, date
		FROM quiz_results WHERE user_id = $1 ORDER BY date`, userID)
	if err != nil {
		return nil, err
	}
	return collectPgResults(rows)
}

func (s *PostgresStore) ListQuizResultsByCategory(ctx context.Context, userID string, category flashcard.Category) ([]quiz.Result, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, category, total_questions, correct_answers, time_spent, date
		FROM quiz_results WHERE user_id = $1 AND category = $2 ORDER BY date`, userID, category)
	if err != nil {
		return nil, err
	}
	return collectPgResults(rows)
}

func collectPgResults(rows pgx.Rows) ([]quiz.Result, error) {
	defer rows.Close()
	var results []quiz.Result
	for rows.Next() {
		var r quiz.Result
		if err := rows.Scan(&r.ID, &r.UserID, &r.Category, &r.TotalQuestions,
			&r.CorrectAnswers, &r.TimeSpent, &r.Date); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (s *PostgresStore) GetStudyMetrics(ctx context.Context, userID string, category flashcard.Category) (*progress.StudyMetrics, error) {
	m := progress.StudyMetrics{UserID: userID, Category: category}
	err := s.pool.QueryRow(ctx, `
		SELECT total_study_time, cards_reviewed, average_accuracy, last_study_date
		FROM study_metrics WHERE user_id = $1 AND category = $2`,
		userID, category,
	).Scan(&m.TotalStudyTime, &m.CardsReviewed, &m.AverageAccuracy, &m.LastStudyDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ============================================================================
// Decks
// ============================================================================

func (s *PostgresStore) SaveDeck(ctx context.Context, d *deck.Deck) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO decks (id, user_id, name, description, category, is_public, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.UserID, d.Name, d.Description, d.Category, d.IsPublic, d.CreatedAt,
	)
	return err
}

func (s *PostgresStore) GetDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	var d deck.Deck
	err := s.pool.QueryRow(ctx, `
		SELECT id, user_id, name, description, category, is_public, created_at
		FROM decks WHERE id = $1`, deckID,
	).Scan(&d.ID, &d.UserID, &d.Name, &d.Description, &d.Category, &d.IsPublic, &d.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *PostgresStore) ListDecks(ctx context.Context, userID string) ([]*deck.Deck, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, name, description, category, is_public, created_at
		FROM decks WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	return collectPgDecks(rows)
}

func (s *PostgresStore) ListPublicDecks(ctx context.Context) ([]*deck.Deck, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, user_id, name, description, category, is_public, created_at
		FROM decks WHERE is_public ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return collectPgDecks(rows)
}

func (s *PostgresStore) DeleteDeck(ctx context.Context, userID, deckID string) error {
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM decks WHERE id = $1 AND user_id = $2", deckID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) AddDeckCard(ctx context.Context, deckID, cardID string) error {
	_, err := s.pool.Exec(ctx,
		"INSERT INTO deck_flashcards (deck_id, flashcard_id) VALUES ($1, $2)", deckID, cardID)
	if isPgUniqueViolation(err) {
		return ErrAlreadyInDeck
	}
	return err
}

func (s *PostgresStore) RemoveDeckCard(ctx context.Context, deckID, cardID string) error {
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM deck_flashcards WHERE deck_id = $1 AND flashcard_id = $2", deckID, cardID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) ListDeckCards(ctx context.Context, deckID string) ([]*flashcard.Flashcard, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT f.id, f.user_id, f.category, f.question, f.answer,
		       f.times_reviewed, f.times_correct, f.last_reviewed, f.created_at
		FROM flashcards f
		JOIN deck_flashcards df ON df.flashcard_id = f.id
		WHERE df.deck_id = $1
		ORDER BY f.created_at`, deckID)
	if err != nil {
		return nil, err
	}
	return collectPgFlashcards(rows)
}

func collectPgDecks(rows pgx.Rows) ([]*deck.Deck, error) {
	defer rows.Close()
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

func isPgUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
