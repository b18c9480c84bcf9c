package flashcard_test

import (
	"errors"
	"testing"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
)

func TestNew_ValidCard(t *testing.T) {
	card, err := flashcard.New("user1", flashcard.CategoryPython, "What is a decorator?", "A wrapper adding behavior to a function")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if card.ID == "" {
		t.Error("expected a generated ID")
	}
	if card.TimesReviewed != 0 || card.TimesCorrect != 0 {
		t.Errorf("expected zeroed counters, got reviewed=%d correct=%d", card.TimesReviewed, card.TimesCorrect)
	}
	if card.LastReviewed != nil {
		t.Error("expected LastReviewed to be nil before first review")
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		category flashcard.Category
		question string
		answer   string
		wantErr  error
	}{
		{"question too short", flashcard.CategoryPython, "ab", "a valid answer", flashcard.ErrQuestionTooShort},
		{"answer too short", flashcard.CategoryPython, "a valid question", "ab", flashcard.ErrAnswerTooShort},
		{"unknown category", flashcard.Category("golang"), "a valid question", "a valid answer", flashcard.ErrInvalidCategory},
		{"empty category", flashcard.Category(""), "a valid question", "a valid answer", flashcard.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := flashcard.New("user1", tt.category, tt.question, tt.answer)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestRecordReview_Counters(t *testing.T) {
	card, _ := flashcard.New("user1", flashcard.CategoryAppDev, "What is Swift?", "Apple's app language")
	now := time.Now()

	sequence := []bool{true, false, true, true, false}
	for _, correct := range sequence {
		card.RecordReview(correct, now)

		// Invariant must hold after every answer event.
		if card.TimesCorrect > card.TimesReviewed {
			t.Fatalf("timesCorrect %d exceeds timesReviewed %d", card.TimesCorrect, card.TimesReviewed)
		}
	}

	if card.TimesReviewed != 5 {
		t.Errorf("expected 5 reviews, got %d", card.TimesReviewed)
	}
	if card.TimesCorrect != 3 {
		t.Errorf("expected 3 correct, got %d", card.TimesCorrect)
	}
	if card.LastReviewed == nil || !card.LastReviewed.Equal(now) {
		t.Errorf("expected LastReviewed %v, got %v", now, card.LastReviewed)
	}
}

func TestAccuracy_NeverReviewed(t *testing.T) {
	card, _ := flashcard.New("user1", flashcard.CategoryFullstack, "What is React?", "A UI library")

	if got := card.Accuracy(); got != 0 {
		t.Errorf("expected accuracy 0 for unreviewed card, got %v", got)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range flashcard.Categories() {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	if flashcard.Category("devops").Valid() {
		t.Error("expected unknown category to be invalid")
	}
}
