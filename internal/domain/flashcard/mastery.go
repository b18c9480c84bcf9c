package flashcard

import "math"

// MasteryThreshold is the historical accuracy at or above which a card
// counts as mastered.
const MasteryThreshold = 0.8

// Breakdown summarizes mastery across a set of cards.
type Breakdown struct {
	Mastered   int
	Total      int
	Percentage int // 0-100, rounded
}

// Mastered reports whether the card's historical accuracy has reached
// the mastery threshold. A card with no reviews is never mastered.
func (f *Flashcard) Mastered() bool {
	return f.Accuracy() >= MasteryThreshold
}

// CalculateMastery derives the mastery breakdown for a collection of
// cards, typically pre-filtered to one category. Order is irrelevant.
// An empty collection yields all zeroes.
func CalculateMastery(cards []*Flashcard) Breakdown {
	total := len(cards)
	if total == 0 {
		return Breakdown{}
	}

	mastered := 0
	for _, c := range cards {
		if c.Mastered() {
			mastered++
		}
	}

	return Breakdown{
		Mastered:   mastered,
		Total:      total,
		Percentage: int(math.Round(float64(mastered) / float64(total) * 100)),
	}
}
