package quiz

import (
	"math"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
)

// DefaultCategory tags results of mixed-category sessions. Pooling every
// category under one bucket is a known reporting tradeoff, kept as-is.
const DefaultCategory = flashcard.CategoryFullstack

// Result is an immutable record of one completed quiz session.
// Invariants: 0 <= CorrectAnswers <= TotalQuestions, TotalQuestions >= 1,
// TimeSpent >= 0.
type Result struct {
	ID             string
	UserID         string
	Category       flashcard.Category
	TotalQuestions int
	CorrectAnswers int
	TimeSpent      int // elapsed seconds from quiz start to completion
	Date           time.Time
}

// ScorePercent returns the result's score as a rounded percentage.
func (r Result) ScorePercent() int {
	return scorePercent(r.CorrectAnswers, r.TotalQuestions)
}

func scorePercent(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
