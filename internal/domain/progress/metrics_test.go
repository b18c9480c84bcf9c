package progress_test

import (
	"math"
	"testing"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/progress"
	"github.com/flashlearn/backend/internal/domain/quiz"
)

func TestMetricsFromResult_SeedsInitialAggregate(t *testing.T) {
	date := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	r := quiz.Result{
		UserID:         "user1",
		Category:       flashcard.CategoryAppDev,
		TotalQuestions: 5,
		CorrectAnswers: 4,
		TimeSpent:      120,
		Date:           date,
	}

	m := progress.MetricsFromResult(r)

	if m.CardsReviewed != 5 || m.TotalStudyTime != 120 {
		t.Errorf("unexpected aggregate: %+v", m)
	}
	if math.Abs(m.AverageAccuracy-0.8) > 1e-9 {
		t.Errorf("expected accuracy 0.8, got %v", m.AverageAccuracy)
	}
	if !m.LastStudyDate.Equal(date) {
		t.Errorf("expected last study date %v, got %v", date, m.LastStudyDate)
	}
}

func TestApply_WeightedRunningAverage(t *testing.T) {
	m := progress.StudyMetrics{
		UserID:          "user1",
		Category:        flashcard.CategoryPython,
		CardsReviewed:   10,
		AverageAccuracy: 0.5,
		TotalStudyTime:  300,
	}

	date := time.Date(2025, 5, 2, 9, 0, 0, 0, time.UTC)
	m.Apply(quiz.Result{
		UserID:         "user1",
		Category:       flashcard.CategoryPython,
		TotalQuestions: 5,
		CorrectAnswers: 5, // accuracy 1.0
		TimeSpent:      90,
		Date:           date,
	})

	// (0.5*10 + 1.0*5) / 15 = 0.666...
	want := (0.5*10 + 1.0*5) / 15
	if math.Abs(m.AverageAccuracy-want) > 1e-9 {
		t.Errorf("expected weighted accuracy %v, got %v", want, m.AverageAccuracy)
	}
	if m.CardsReviewed != 15 {
		t.Errorf("expected 15 cards reviewed, got %d", m.CardsReviewed)
	}
	if m.TotalStudyTime != 390 {
		t.Errorf("expected 390s study time, got %d", m.TotalStudyTime)
	}
	if !m.LastStudyDate.Equal(date) {
		t.Errorf("expected last study date updated to %v, got %v", date, m.LastStudyDate)
	}
}

func TestApply_NotAnAverageOfAverages(t *testing.T) {
	m := progress.StudyMetrics{CardsReviewed: 1, AverageAccuracy: 0.0}

	// A 100-question perfect quiz should dominate a 1-question miss.
	m.Apply(quiz.Result{TotalQuestions: 100, CorrectAnswers: 100})

	unweighted := 0.5
	if math.Abs(m.AverageAccuracy-unweighted) < 1e-9 {
		t.Fatal("accuracy looks like an unweighted average of averages")
	}
	want := 100.0 / 101.0
	if math.Abs(m.AverageAccuracy-want) > 1e-9 {
		t.Errorf("expected %v, got %v", want, m.AverageAccuracy)
	}
}
