package flashcard

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/flashlearn/backend/internal/id"
)

// Category is a fixed topic tag partitioning flashcards and quizzes.
type Category string

const (
	CategoryFullstack Category = "fullstack"
	CategoryAppDev    Category = "appdev"
	CategoryPython    Category = "python"
)

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{CategoryFullstack, CategoryAppDev, CategoryPython}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryFullstack, CategoryAppDev, CategoryPython:
		return true
	}
	return false
}

const minTextLen = 3

var (
	ErrQuestionTooShort = errors.New("question must be at least 3 characters")
	ErrAnswerTooShort   = errors.New("answer must be at least 3 characters")
	ErrInvalidCategory  = errors.New("invalid category")
)

// Flashcard is a single question/answer study unit owned by one user.
// TimesCorrect never exceeds TimesReviewed; both counters only grow.
type Flashcard struct {
	ID            string
	UserID        string
	Category      Category
	Question      string
	Answer        string
	TimesReviewed int
	TimesCorrect  int
	LastReviewed  *time.Time // nil until first review
	CreatedAt     time.Time
}

// New validates the fields and creates a Flashcard with a generated ID
// and zeroed review counters.
func New(userID string, category Category, question, answer string) (*Flashcard, error) {
	if err := Validate(category, question, answer); err != nil {
		return nil, err
	}
	return &Flashcard{
		ID:        id.New(),
		UserID:    userID,
		Category:  category,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Validate checks the creation/edit rules: a valid category and question
// and answer text of at least 3 characters each.
func Validate(category Category, question, answer string) error {
	if !category.Valid() {
		return ErrInvalidCategory
	}
	if utf8.RuneCountInString(question) < minTextLen {
		return ErrQuestionTooShort
	}
	if utf8.RuneCountInString(answer) < minTextLen {
		return ErrAnswerTooShort
	}
	return nil
}

// RecordReview applies one answer event: TimesReviewed always increments,
// TimesCorrect only on a correct answer, LastReviewed is stamped to when.
func (f *Flashcard) RecordReview(correct bool, when time.Time) {
	f.TimesReviewed++
	if correct {
		f.TimesCorrect++
	}
	t := when
	f.LastReviewed = &t
}

// Accuracy returns historical accuracy in [0,1]. A never-reviewed card
// has accuracy 0 (the denominator is floored at 1, never zero).
func (f *Flashcard) Accuracy() float64 {
	reviewed := f.TimesReviewed
	if reviewed < 1 {
		reviewed = 1
	}
	return float64(f.TimesCorrect) / float64(reviewed)
}
