package progress

import (
	"math"
	"sort"

	"github.com/flashlearn/backend/internal/domain/quiz"
)

// ScorePoint is one charted quiz outcome.
type ScorePoint struct {
	Date  string `json:"date"` // day the quiz was taken, ISO format
	Score int    `json:"score"`
}

// AverageScore returns the rounded mean of each result's score percentage,
// or 0 for an empty collection. Category filtering is the caller's job.
func AverageScore(results []quiz.Result) int {
	if len(results) == 0 {
		return 0
	}

	total := 0.0
	for _, r := range results {
		total += float64(r.CorrectAnswers) / float64(r.TotalQuestions) * 100
	}
	return int(math.Round(total / float64(len(results))))
}

// OverTime maps the results to chartable points sorted ascending by actual
// timestamp, regardless of input order. The returned slice is freshly
// built; the input is not mutated.
func OverTime(results []quiz.Result) []ScorePoint {
	sorted := make([]quiz.Result, len(results))
	copy(sorted, results)

	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	points := make([]ScorePoint, len(sorted))
	for i, r := range sorted {
		points[i] = ScorePoint{
			Date:  r.Date.Format("2006-01-02"),
			Score: r.ScorePercent(),
		}
	}
	return points
}

// TotalQuestionsAnswered sums the question counts across all results.
func TotalQuestionsAnswered(results []quiz.Result) int {
	total := 0
	for _, r := range results {
		total += r.TotalQuestions
	}
	return total
}
