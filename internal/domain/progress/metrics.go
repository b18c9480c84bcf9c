package progress

import (
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/quiz"
)

// StudyMetrics is the running aggregate for one (user, category) pair.
// At most one row exists per pair.
type StudyMetrics struct {
	UserID          string
	Category        flashcard.Category
	TotalStudyTime  int     // cumulative seconds across all quizzes
	CardsReviewed   int     // cumulative questions answered
	AverageAccuracy float64 // weighted running mean in [0,1]
	LastStudyDate   time.Time
}

// MetricsFromResult seeds a first metrics row from a quiz result.
func MetricsFromResult(r quiz.Result) StudyMetrics {
	return StudyMetrics{
		UserID:          r.UserID,
		Category:        r.Category,
		TotalStudyTime:  r.TimeSpent,
		CardsReviewed:   r.TotalQuestions,
		AverageAccuracy: accuracy(r),
		LastStudyDate:   r.Date,
	}
}

// Apply folds one quiz result into the aggregate. The running accuracy is
// weighted by each quiz's question count:
//
//	(oldAvg*oldCount + newAccuracy*newCount) / (oldCount + newCount)
//
// never a plain average of averages.
func (m *StudyMetrics) Apply(r quiz.Result) {
	oldCount := m.CardsReviewed
	newCount := r.TotalQuestions

	if oldCount+newCount > 0 {
		m.AverageAccuracy = (m.AverageAccuracy*float64(oldCount) + accuracy(r)*float64(newCount)) /
			float64(oldCount+newCount)
	}
	m.CardsReviewed += newCount
	m.TotalStudyTime += r.TimeSpent
	m.LastStudyDate = r.Date
}

func accuracy(r quiz.Result) float64 {
	if r.TotalQuestions == 0 {
		return 0
	}
	return float64(r.CorrectAnswers) / float64(r.TotalQuestions)
}
