package store_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/flashlearn/backend/internal/domain/deck"
	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/quiz"
	"github.com/flashlearn/backend/internal/id"
	"github.com/flashlearn/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedUser(t *testing.T, s *store.SQLiteStore, email string) *store.User {
	t.Helper()
	u := &store.User{
		ID:           id.New(),
		Email:        email,
		PasswordHash: "$2a$10$fakehashforstoretests",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	return u
}

func seedCard(t *testing.T, s *store.SQLiteStore, userID string, category flashcard.Category) *flashcard.Flashcard {
	t.Helper()
	card, err := flashcard.New(userID, category, "What does HTTP stand for?", "Hypertext Transfer Protocol")
	if err != nil {
		t.Fatalf("flashcard.New: %v", err)
	}
	if err := s.SaveFlashcard(context.Background(), card); err != nil {
		t.Fatalf("SaveFlashcard: %v", err)
	}
	return card
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	seedUser(t, s, "dup@example.com")

	u := &store.User{ID: id.New(), Email: "dup@example.com", PasswordHash: "x", CreatedAt: time.Now().UTC()}
	if err := s.CreateUser(context.Background(), u); !errors.Is(err, store.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestFlashcardCRUD(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "cards@example.com")
	card := seedCard(t, s, user.ID, flashcard.CategoryPython)

	got, err := s.GetFlashcard(ctx, user.ID, card.ID)
	if err != nil {
		t.Fatalf("GetFlashcard: %v", err)
	}
	if got.Question != card.Question || got.Category != flashcard.CategoryPython {
		t.Errorf("got %q/%q, want %q/%q", got.Question, got.Category, card.Question, flashcard.CategoryPython)
	}
	if got.LastReviewed != nil {
		t.Errorf("fresh card should have nil LastReviewed, got %v", got.LastReviewed)
	}

	card.Question = "What is a goroutine?"
	card.Answer = "A lightweight thread managed by the Go runtime"
	if err := s.UpdateFlashcard(ctx, card); err != nil {
		t.Fatalf("UpdateFlashcard: %v", err)
	}

	got, err = s.GetFlashcard(ctx, user.ID, card.ID)
	if err != nil {
		t.Fatalf("GetFlashcard after update: %v", err)
	}
	if got.Question != "What is a goroutine?" {
		t.Errorf("update not persisted, got %q", got.Question)
	}

	if err := s.DeleteFlashcard(ctx, user.ID, card.ID); err != nil {
		t.Fatalf("DeleteFlashcard: %v", err)
	}
	if _, err := s.GetFlashcard(ctx, user.ID, card.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestFlashcardScopedByUser(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	owner := seedUser(t, s, "owner@example.com")
	other := seedUser(t, s, "other@example.com")
	card := seedCard(t, s, owner.ID, flashcard.CategoryFullstack)

	if _, err := s.GetFlashcard(ctx, other.ID, card.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign card, got %v", err)
	}
	if err := s.DeleteFlashcard(ctx, other.ID, card.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound deleting foreign card, got %v", err)
	}
}

func TestListFlashcardsByCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "list@example.com")
	seedCard(t, s, user.ID, flashcard.CategoryPython)
	seedCard(t, s, user.ID, flashcard.CategoryPython)
	seedCard(t, s, user.ID, flashcard.CategoryAppDev)

	all, err := s.ListFlashcards(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListFlashcards: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 cards, got %d", len(all))
	}

	python, err := s.ListFlashcardsByCategory(ctx, user.ID, flashcard.CategoryPython)
	if err != nil {
		t.Fatalf("ListFlashcardsByCategory: %v", err)
	}
	if len(python) != 2 {
		t.Errorf("expected 2 python cards, got %d", len(python))
	}
}

func TestRecordReviewIncrements(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "review@example.com")
	card := seedCard(t, s, user.ID, flashcard.CategoryFullstack)

	now := time.Now().UTC()
	for _, correct := range []bool{true, false, true} {
		if err := s.RecordReview(ctx, user.ID, card.ID, correct, now); err != nil {
			t.Fatalf("RecordReview: %v", err)
		}
	}

	got, err := s.GetFlashcard(ctx, user.ID, card.ID)
	if err != nil {
		t.Fatalf("GetFlashcard: %v", err)
	}
	if got.TimesReviewed != 3 || got.TimesCorrect != 2 {
		t.Errorf("counters = %d/%d, want 3 reviewed / 2 correct", got.TimesReviewed, got.TimesCorrect)
	}
	if got.LastReviewed == nil {
		t.Error("LastReviewed should be set after a review")
	}
}

func TestRecordReviewUnknownCard(t *testing.T) {
	s := newTestStore(t)
	user := seedUser(t, s, "nocard@example.com")

	err := s.RecordReview(context.Background(), user.ID, "missing", true, time.Now().UTC())
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveQuizResultUpdatesMetrics(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "quiz@example.com")

	if _, err := s.GetStudyMetrics(ctx, user.ID, flashcard.CategoryPython); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound before any result, got %v", err)
	}

	first := quiz.Result{
		ID: id.New(), UserID: user.ID, Category: flashcard.CategoryPython,
		TotalQuestions: 10, CorrectAnswers: 5, TimeSpent: 120, Date: time.Now().UTC(),
	}
	if err := s.SaveQuizResult(ctx, first); err != nil {
		t.Fatalf("SaveQuizResult: %v", err)
	}

	m, err := s.GetStudyMetrics(ctx, user.ID, flashcard.CategoryPython)
	if err != nil {
		t.Fatalf("GetStudyMetrics: %v", err)
	}
	if m.CardsReviewed != 10 || m.TotalStudyTime != 120 {
		t.Errorf("seed metrics = %d cards / %ds, want 10 / 120", m.CardsReviewed, m.TotalStudyTime)
	}
	if m.AverageAccuracy != 0.5 {
		t.Errorf("seed accuracy = %v, want 0.5", m.AverageAccuracy)
	}

	second := quiz.Result{
		ID: id.New(), UserID: user.ID, Category: flashcard.CategoryPython,
		TotalQuestions: 5, CorrectAnswers: 5, TimeSpent: 60, Date: time.Now().UTC(),
	}
	if err := s.SaveQuizResult(ctx, second); err != nil {
		t.Fatalf("SaveQuizResult second: %v", err)
	}

	m, err = s.GetStudyMetrics(ctx, user.ID, flashcard.CategoryPython)
	if err != nil {
		t.Fatalf("GetStudyMetrics after second: %v", err)
	}
	if m.CardsReviewed != 15 || m.TotalStudyTime != 180 {
		t.Errorf("folded metrics = %d cards / %ds, want 15 / 180", m.CardsReviewed, m.TotalStudyTime)
	}
	// (0.5*10 + 1.0*5) / 15
	want := (0.5*10 + 1.0*5) / 15
	if diff := m.AverageAccuracy - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("folded accuracy = %v, want %v", m.AverageAccuracy, want)
	}

	results, err := s.ListQuizResults(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListQuizResults: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("expected 2 results, got %d", len(results))
	}
}

func TestMetricsIsolatedPerCategory(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "percat@example.com")

	r := quiz.Result{
		ID: id.New(), UserID: user.ID, Category: flashcard.CategoryAppDev,
		TotalQuestions: 4, CorrectAnswers: 4, TimeSpent: 30, Date: time.Now().UTC(),
	}
	if err := s.SaveQuizResult(ctx, r); err != nil {
		t.Fatalf("SaveQuizResult: %v", err)
	}

	if _, err := s.GetStudyMetrics(ctx, user.ID, flashcard.CategoryPython); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("python metrics should be untouched, got %v", err)
	}
}

func TestDeckCards(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "decks@example.com")
	card := seedCard(t, s, user.ID, flashcard.CategoryFullstack)

	d, err := deck.New(user.ID, "HTTP basics", "transport layer refresher", flashcard.CategoryFullstack, false)
	if err != nil {
		t.Fatalf("deck.New: %v", err)
	}
	if err := s.SaveDeck(ctx, d); err != nil {
		t.Fatalf("SaveDeck: %v", err)
	}

	if err := s.AddDeckCard(ctx, d.ID, card.ID); err != nil {
		t.Fatalf("AddDeckCard: %v", err)
	}
	if err := s.AddDeckCard(ctx, d.ID, card.ID); !errors.Is(err, store.ErrAlreadyInDeck) {
		t.Fatalf("expected ErrAlreadyInDeck, got %v", err)
	}

	cards, err := s.ListDeckCards(ctx, d.ID)
	if err != nil {
		t.Fatalf("ListDeckCards: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != card.ID {
		t.Fatalf("expected the one added card, got %d cards", len(cards))
	}

	if err := s.RemoveDeckCard(ctx, d.ID, card.ID); err != nil {
		t.Fatalf("RemoveDeckCard: %v", err)
	}
	if err := s.DeleteDeck(ctx, user.ID, d.ID); err != nil {
		t.Fatalf("DeleteDeck: %v", err)
	}
	if _, err := s.GetDeck(ctx, d.ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after DeleteDeck, got %v", err)
	}
}
