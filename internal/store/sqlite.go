// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/progress"
	"github.com/flashlearn/backend/internal/domain/quiz"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS flashcards (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    category TEXT NOT NULL,
    question TEXT NOT NULL,
    answer TEXT NOT NULL,
    times_reviewed INTEGER NOT NULL DEFAULT 0,
    times_correct INTEGER NOT NULL DEFAULT 0,
    last_reviewed TIMESTAMP,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
    CHECK (times_correct <= times_reviewed)
);

CREATE TABLE IF NOT EXISTS quiz_results (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    category TEXT NOT NULL,
    total_questions INTEGER NOT NULL,
    correct_answers INTEGER NOT NULL,
    time_spent INTEGER NOT NULL,
    date TIMESTAMP NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS study_metrics (
    user_id TEXT NOT NULL,
    category TEXT NOT NULL,
    total_study_time INTEGER NOT NULL DEFAULT 0,
    cards_reviewed INTEGER NOT NULL DEFAULT 0,
    average_accuracy REAL NOT NULL DEFAULT 0,
    last_study_date TIMESTAMP NOT NULL,
    PRIMARY KEY (user_id, category)
);

CREATE TABLE IF NOT EXISTS decks (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL,
    is_public INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS deck_flashcards (
    deck_id TEXT NOT NULL,
    flashcard_id TEXT NOT NULL,
    PRIMARY KEY (deck_id, flashcard_id),
    FOREIGN KEY (deck_id) REFERENCES decks(id) ON DELETE CASCADE,
    FOREIGN KEY (flashcard_id) REFERENCES flashcards(id) ON DELETE CASCADE
);
`

type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Users
// ============================================================================

func (s *SQLiteStore) CreateUser(ctx context.Context, u *User) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		u.ID, u.Email, u.PasswordHash, u.CreatedAt,
	)
	if err != nil && isUniqueViolation(err) {
		return ErrEmailTaken
	}
	return err
}

func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	var u User
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, password_hash, created_at FROM users WHERE email = ?", email,
	).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
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

const flashcardColumns = "id, user_id, category, question, answer, times_reviewed, times_correct, last_reviewed, created_at"

func (s *SQLiteStore) SaveFlashcard(ctx context.Context, card *flashcard.Flashcard) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO flashcards ("+flashcardColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		card.ID, card.UserID, card.Category, card.Question, card.Answer,
		card.TimesReviewed, card.TimesCorrect, card.LastReviewed, card.CreatedAt,
	)
	return err
}

func (s *SQLiteStore) GetFlashcard(ctx context.Context, userID, cardID string) (*flashcard.Flashcard, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+flashcardColumns+" FROM flashcards WHERE id = ? AND user_id = ?", cardID, userID)
	return scanFlashcard(row)
}

func (s *SQLiteStore) ListFlashcards(ctx context.Context, userID string) ([]*flashcard.Flashcard, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+flashcardColumns+" FROM flashcards WHERE user_id = ? ORDER BY created_at", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFlashcards(rows)
}

func (s *SQLiteStore) ListFlashcardsByCategory(ctx context.Context, userID string, category flashcard.Category) ([]*flashcard.Flashcard, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+flashcardColumns+" FROM flashcards WHERE user_id = ? AND category = ? ORDER BY created_at",
		userID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectFlashcards(rows)
}

func (s *SQLiteStore) UpdateFlashcard(ctx context.Context, card *flashcard.Flashcard) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE flashcards SET category = ?, question = ?, answer = ? WHERE id = ? AND user_id = ?",
		card.Category, card.Question, card.Answer, card.ID, card.UserID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *SQLiteStore) DeleteFlashcard(ctx context.Context, userID, cardID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM flashcards WHERE id = ? AND user_id = ?", cardID, userID)
	if err != nil {
		return err
	}
	return requireRow(result)
}

func (s *SQLiteStore) RecordReview(ctx context.Context, userID, cardID string, correct bool, when time.Time) error {
	correctInc := 0
	if correct {
		correctInc = 1
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE flashcards
		SET times_reviewed = times_reviewed + 1,
		    times_correct = times_correct + ?,
		    last_reviewed = ?
		WHERE id = ? AND user_id = ?`,
		correctInc, when, cardID, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFlashcard(row rowScanner) (*flashcard.Flashcard, error) {
	var card flashcard.Flashcard
	var lastReviewed sql.NullTime
	err := row.Scan(&card.ID, &card.UserID, &card.Category, &card.Question, &card.Answer,
		&card.TimesReviewed, &card.TimesCorrect, &lastReviewed, &card.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if lastReviewed.Valid {
		card.LastReviewed = &lastReviewed.Time
	}
	return &card, nil
}

func collectFlashcards(rows *sql.Rows) ([]*flashcard.Flashcard, error) {
	var cards []*flashcard.Flashcard
	for rows.Next() {
		card, err := scanFlashcard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, rows.Err()
}

// ============================================================================
// Quiz results & study metrics
// ============================================================================

// SaveQuizResult stores the immutable result row and folds it into the
// (user, category) study-metrics row. Both writes happen in one
// transaction so the metrics read-modify-write is atomic.
func (s *SQLiteStore) SaveQuizResult(ctx context.Context, r quiz.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO quiz_results (id, user_id, category, total_questions, correct_answers, time_spent, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.Category, r.TotalQuestions, r.CorrectAnswers, r.TimeSpent, r.Date,
	)
	if err != nil {
		return err
	}

	var m progress.StudyMetrics
	m.UserID = r.UserID
	m.Category = r.Category
	err = tx.QueryRowContext(ctx, `
		SELECT total_study_time, cards_reviewed, average_accuracy, last_study_date
		FROM study_metrics WHERE user_id = ? AND category = ?`,
		r.UserID, r.Category,
	).Scan(&m.TotalStudyTime, &m.CardsReviewed, &m.AverageAccuracy, &m.LastStudyDate)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		m = progress.MetricsFromResult(r)
	case err != nil:
		return err
	default:
		m.Apply(r)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO study_metrics (user_id, category, total_study_time, cards_reviewed, average_accuracy, last_study_date)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, category) DO UPDATE SET
			total_study_time = excluded.total_study_time,
			cards_reviewed = excluded.cards_reviewed,
			average_accuracy = excluded.average_accuracy,
			last_study_date = excluded.last_study_date`,
		m.UserID, m.Category, m.TotalStudyTime, m.CardsReviewed, m.AverageAccuracy, m.LastStudyDate,
	)
	if err != nil {
		return err
	}

	return tx.Commit()
}

const resultColumns = "id, user_id, category, total_questions, correct_answers, time_spent, date"

func (s *SQLiteStore) ListQuizResults(ctx context.Context, userID string) ([]quiz.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+resultColumns+" FROM quiz_results WHERE user_id = ? ORDER BY date", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResults(rows)
}

func (s *SQLiteStore) ListQuizResultsByCategory(ctx context.Context, userID string, category flashcard.Category) ([]quiz.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+resultColumns+" FROM quiz_results WHERE user_id = ? AND category = ? ORDER BY date",
		userID, category)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResults(rows)
}

func collectResults(rows *sql.Rows) ([]quiz.Result, error) {
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

func (s *SQLiteStore) GetStudyMetrics(ctx context.Context, userID string, category flashcard.Category) (*progress.StudyMetrics, error) {
	m := progress.StudyMetrics{UserID: userID, Category: category}
	err := s.db.QueryRowContext(ctx, `
		SELECT total_study_time, cards_reviewed, average_accuracy, last_study_date
		FROM study_metrics WHERE user_id = ? AND category = ?`,
		userID, category,
	).Scan(&m.TotalStudyTime, &m.CardsReviewed, &m.AverageAccuracy, &m.LastStudyDate)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ============================================================================
// Helpers
// ============================================================================

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	// modernc sqlite surfaces constraint failures in the error text.
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
