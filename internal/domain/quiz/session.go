package quiz

import (
	"errors"
	"math/rand"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/id"
)

// MaxQuestions caps the active question set of a session.
const MaxQuestions = 10

var (
	// ErrNoCards is the distinct "no cards available" condition: a quiz
	// cannot start from an empty candidate set. Non-fatal by design.
	ErrNoCards = errors.New("no flashcards available")

	ErrNotInSession    = errors.New("card does not belong to this session")
	ErrSessionComplete = errors.New("session is already complete")
)

// State of a quiz session. Selection happens inside the constructor, so a
// live session is only ever InProgress or Complete.
type State string

const (
	StateInProgress State = "in_progress"
	StateComplete   State = "complete"
)

// Session is a finite state machine for one quiz attempt. It is pure
// in-memory logic: persistence side effects belong to the caller, which
// observes answers and the finalized Result.
//
// Not safe for concurrent use; callers serialize access per session.
type Session struct {
	ID       string
	UserID   string
	Category flashcard.Category // DefaultCategory for mixed sessions

	pool      []*flashcard.Flashcard // full candidate set, kept for Restart
	cards     []*flashcard.Flashcard // active question set, <= MaxQuestions
	outcomes  map[string]bool        // card ID -> correct
	current   int                    // zero-based question index
	startedAt time.Time
	state     State
	result    *Result

	now func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the session's clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// NewSession gathers the candidate cards, shuffles them uniformly and takes
// a prefix of at most MaxQuestions as the active question set. The category
// is the quiz's requested category, or DefaultCategory when cards were
// pooled across all categories.
//
// Returns ErrNoCards when the candidate set is empty.
func NewSession(userID string, category flashcard.Category, candidates []*flashcard.Flashcard, opts ...Option) (*Session, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCards
	}

	if !category.Valid() {
		category = DefaultCategory
	}

	s := &Session{
		ID:       id.New(),
		UserID:   userID,
		Category: category,
		pool:     candidates,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.begin()
	return s, nil
}

// begin (re)enters InProgress with a freshly shuffled question set.
func (s *Session) begin() {
	s.cards = selectCards(s.pool)
	s.outcomes = make(map[string]bool, len(s.cards))
	s.current = 0
	s.startedAt = s.now()
	s.state = StateInProgress
	s.result = nil
}

// selectCards returns a uniform random permutation prefix of at most
// MaxQuestions cards.
func selectCards(pool []*flashcard.Flashcard) []*flashcard.Flashcard {
	shuffled := make([]*flashcard.Flashcard, len(pool))
	copy(shuffled, pool)

	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) > MaxQuestions {
		shuffled = shuffled[:MaxQuestions]
	}
	return shuffled
}

// Answer records the outcome for a card in the active set. Re-answering the
// same card overwrites its outcome rather than duplicating it. On success
// the current index advances by one unless already at the last question.
//
// The session transitions to Complete the instant every question has a
// recorded outcome; finalization happens exactly once, with a single clock
// read for TimeSpent.
func (s *Session) Answer(cardID string, correct bool) error {
	if s.state == StateComplete {
		return ErrSessionComplete
	}
	if !s.contains(cardID) {
		return ErrNotInSession
	}

	s.outcomes[cardID] = correct

	if s.current < len(s.cards)-1 {
		s.current++
	}

	if len(s.outcomes) == len(s.cards) {
		s.finalize()
	}
	return nil
}

func (s *Session) contains(cardID string) bool {
	for _, c := range s.cards {
		if c.ID == cardID {
			return true
		}
	}
	return false
}

// finalize computes the Result and enters the terminal state. Guarded so a
// repeated completion check can never emit a second result.
func (s *Session) finalize() {
	if s.state == StateComplete {
		return
	}

	correct := 0
	for _, ok := range s.outcomes {
		if ok {
			correct++
		}
	}

	finishedAt := s.now()
	s.result = &Result{
		ID:             id.New(),
		UserID:         s.UserID,
		Category:       s.Category,
		TotalQuestions: len(s.cards),
		CorrectAnswers: correct,
		TimeSpent:      int(finishedAt.Sub(s.startedAt).Seconds()),
		Date:           finishedAt,
	}
	s.state = StateComplete
}

// Next moves to the following question. Navigation is decoupled from
// answering and clamped to the active set.
func (s *Session) Next() {
	if s.current < len(s.cards)-1 {
		s.current++
	}
}

// Previous moves to the preceding question, clamped at the first.
func (s *Session) Previous() {
	if s.current > 0 {
		s.current--
	}
}

// Restart transitions a completed (or in-progress) session back to a fresh
// attempt with a reshuffled question set.
func (s *Session) Restart() {
	s.begin()
}

// State returns the session's current FSM state.
func (s *Session) State() State { return s.state }

// Cards returns the active question set in presentation order.
func (s *Session) Cards() []*flashcard.Flashcard { return s.cards }

// Current returns the zero-based index of the current question.
func (s *Session) Current() int { return s.current }

// Answered returns how many questions have a recorded outcome.
func (s *Session) Answered() int { return len(s.outcomes) }

// Outcome reports the recorded outcome for a card, if any.
func (s *Session) Outcome(cardID string) (correct, answered bool) {
	correct, answered = s.outcomes[cardID]
	return
}

// StartedAt returns when the current attempt entered InProgress.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Elapsed returns whole seconds since the attempt started. Display only:
// the authoritative TimeSpent is the single clock read at finalization.
func (s *Session) Elapsed() int {
	if s.state == StateComplete && s.result != nil {
		return s.result.TimeSpent
	}
	return int(s.now().Sub(s.startedAt).Seconds())
}

// Score returns the running score as a rounded percentage of answered
// questions that were correct, over the full active set.
func (s *Session) Score() int {
	correct := 0
	for _, ok := range s.outcomes {
		if ok {
			correct++
		}
	}
	return scorePercent(correct, len(s.cards))
}

// Result returns the finalized result, or nil while in progress.
func (s *Session) Result() *Result { return s.result }

// Snapshot is a point-in-time value copy of a session's observable state.
// Safe to read after the caller's lock on the session is released.
type Snapshot struct {
	ID       string
	UserID   string
	Category flashcard.Category
	State    State
	Cards    []*flashcard.Flashcard
	Current  int
	Answered int
	Score    int
	Elapsed  int
	Result   *Result
}

// Snapshot captures the session's state for rendering. The card slice is
// copied so a later Restart cannot swap it out from under the reader; the
// cards and result themselves are never mutated after creation.
func (s *Session) Snapshot() Snapshot {
	cards := make([]*flashcard.Flashcard, len(s.cards))
	copy(cards, s.cards)

	return Snapshot{
		ID:       s.ID,
		UserID:   s.UserID,
		Category: s.Category,
		State:    s.state,
		Cards:    cards,
		Current:  s.current,
		Answered: len(s.outcomes),
		Score:    s.Score(),
		Elapsed:  s.Elapsed(),
		Result:   s.result,
	}
}
