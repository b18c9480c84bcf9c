package progress_test

import (
	"testing"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/progress"
	"github.com/flashlearn/backend/internal/domain/quiz"
)

func result(correct, total int, date time.Time) quiz.Result {
	return quiz.Result{
		ID:             "r-" + date.Format("20060102"),
		UserID:         "user1",
		Category:       flashcard.CategoryPython,
		TotalQuestions: total,
		CorrectAnswers: correct,
		TimeSpent:      60,
		Date:           date,
	}
}

func TestAverageScore_Empty(t *testing.T) {
	if got := progress.AverageScore(nil); got != 0 {
		t.Errorf("expected 0 for empty collection, got %d", got)
	}
}

func TestAverageScore_RoundsMeanOfPercentages(t *testing.T) {
	now := time.Now()
	results := []quiz.Result{
		result(3, 5, now), // 60
		result(5, 5, now), // 100
		result(3, 4, now), // 75
	}

	// (60 + 100 + 75) / 3 = 78.33 -> 78
	if got := progress.AverageScore(results); got != 78 {
		t.Errorf("expected 78, got %d", got)
	}
}

func TestOverTime_SortsByTimestampAscending(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	results := []quiz.Result{
		result(5, 5, base.Add(48*time.Hour)),
		result(2, 5, base),
		result(4, 5, base.Add(24*time.Hour)),
	}

	points := progress.OverTime(results)

	wantScores := []int{40, 80, 100}
	wantDates := []string{"2025-03-10", "2025-03-11", "2025-03-12"}
	for i := range points {
		if points[i].Score != wantScores[i] || points[i].Date != wantDates[i] {
			t.Errorf("point %d: got %+v, want {%s %d}", i, points[i], wantDates[i], wantScores[i])
		}
	}
}

func TestOverTime_DoesNotMutateInput(t *testing.T) {
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	results := []quiz.Result{
		result(5, 5, base.Add(time.Hour)),
		result(2, 5, base),
	}

	progress.OverTime(results)

	if !results[0].Date.After(results[1].Date) {
		t.Error("input slice order changed")
	}
}

func TestOverTime_TimestampNotStringComparison(t *testing.T) {
	// 2025-01-02 09:00 vs 2025-01-02 08:00 on the same day: ordering must
	// follow the actual instants even though the formatted days are equal.
	d1 := time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 1, 2, 8, 0, 0, 0, time.UTC)
	results := []quiz.Result{result(5, 5, d1), result(0, 5, d2)}

	points := progress.OverTime(results)

	if points[0].Score != 0 || points[1].Score != 100 {
		t.Errorf("expected earlier instant first, got %+v", points)
	}
}

func TestTotalQuestionsAnswered(t *testing.T) {
	now := time.Now()
	results := []quiz.Result{result(1, 5, now), result(2, 4, now)}

	if got := progress.TotalQuestionsAnswered(results); got != 9 {
		t.Errorf("expected 9, got %d", got)
	}
}
