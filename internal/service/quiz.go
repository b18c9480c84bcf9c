// internal/service/quiz.go
package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/flashlearn/backend/internal/domain/flashcard"
	"github.com/flashlearn/backend/internal/domain/quiz"
	"github.com/flashlearn/backend/internal/store"
	"github.com/flashlearn/backend/internal/worker"
)

var ErrSessionNotFound = errors.New("quiz session not found")

const (
	reviewWorkers    = 4
	reviewBufferSize = 64

	// Idle sessions are evicted after this long without activity.
	sessionTTL    = 2 * time.Hour
	janitorPeriod = 10 * time.Minute
)

type sessionEntry struct {
	session    *quiz.Session
	lastActive time.Time
}

// QuizService owns the registry of live quiz sessions and the persistence
// side effects around them. Sessions are in-memory only; answered cards and
// finalized results go to the store.
//
// Sessions are mutated and read only under qs.mu; every method hands back a
// quiz.Snapshot taken while the lock is held, never the live session, so
// callers can render state while another request mutates the session.
type QuizService struct {
	store   store.Store
	logger  *slog.Logger
	reviews *worker.Pool[error]

	mu       sync.Mutex
	sessions map[string]*sessionEntry

	janitorDone chan struct{}
}

func NewQuizService(s store.Store, logger *slog.Logger) *QuizService {
	qs := &QuizService{
		store:       s,
		logger:      logger,
		reviews:     worker.NewPool[error](reviewWorkers, reviewBufferSize),
		sessions:    make(map[string]*sessionEntry),
		janitorDone: make(chan struct{}),
	}

	go qs.drainReviewResults()
	go qs.janitor()

	return qs
}

// drainReviewResults logs failed review writes. A failed write only means a
// card's counters lag; the in-memory session is unaffected.
func (qs *QuizService) drainReviewResults() {
	for res := range qs.reviews.Results() {
		if res.Output != nil {
			qs.logger.Error("review write failed", "card_id", res.JobID, "error", res.Output)
		}
	}
}

// janitor evicts sessions that have been idle past sessionTTL.
func (qs *QuizService) janitor() {
	ticker := time.NewTicker(janitorPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-qs.janitorDone:
			return
		case now := <-ticker.C:
			qs.mu.Lock()
			for id, entry := range qs.sessions {
				if now.Sub(entry.lastActive) > sessionTTL {
					qs.logger.Info("evicting idle quiz session", "session_id", id)
					delete(qs.sessions, id)
				}
			}
			qs.mu.Unlock()
		}
	}
}

// StartQuiz gathers the user's cards (one category, or all of them when
// category is empty) and opens a new session. Returns quiz.ErrNoCards when
// the user has nothing to study.
func (qs *QuizService) StartQuiz(ctx context.Context, userID string, category flashcard.Category) (quiz.Snapshot, error) {
	var (
		cards []*flashcard.Flashcard
		err   error
	)
	if category == "" {
		cards, err = qs.store.ListFlashcards(ctx, userID)
	} else {
		if !category.Valid() {
			return quiz.Snapshot{}, flashcard.ErrInvalidCategory
		}
		cards, err = qs.store.ListFlashcardsByCategory(ctx, userID, category)
	}
	if err != nil {
		return quiz.Snapshot{}, err
	}

	session, err := quiz.NewSession(userID, category, cards)
	if err != nil {
		return quiz.Snapshot{}, err
	}

	qs.mu.Lock()
	qs.sessions[session.ID] = &sessionEntry{session: session, lastActive: time.Now()}
	snap := session.Snapshot()
	qs.mu.Unlock()

	return snap, nil
}

// Get returns the current state of a session owned by userID.
func (qs *QuizService) Get(userID, sessionID string) (quiz.Snapshot, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	session, err := qs.lookupLocked(userID, sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

func (qs *QuizService) lookupLocked(userID, sessionID string) (*quiz.Session, error) {
	entry, ok := qs.sessions[sessionID]
	if !ok || entry.session.UserID != userID {
		return nil, ErrSessionNotFound
	}
	entry.lastActive = time.Now()
	return entry.session, nil
}

// Answer records an outcome on the session and queues the card's review
// counters for an async write. When the answer completes the session, the
// finalized result is persisted before returning so the client observes a
// durable result alongside the Complete state.
func (qs *QuizService) Answer(ctx context.Context, userID, sessionID, cardID string, correct bool) (quiz.Snapshot, error) {
	qs.mu.Lock()
	session, err := qs.lookupLocked(userID, sessionID)
	if err != nil {
		qs.mu.Unlock()
		return quiz.Snapshot{}, err
	}
	if err := session.Answer(cardID, correct); err != nil {
		qs.mu.Unlock()
		return quiz.Snapshot{}, err
	}
	snap := session.Snapshot()
	qs.mu.Unlock()

	// Re-answers overwrite the in-session outcome but still count as a
	// review event on the card itself.
	when := time.Now().UTC()
	submitted := qs.reviews.Submit(cardID, func() error {
		return qs.store.RecordReview(context.Background(), userID, cardID, correct, when)
	})
	if !submitted {
		qs.logger.Warn("review write dropped, service shutting down", "card_id", cardID)
	}

	if snap.State == quiz.StateComplete && snap.Result != nil {
		if err := qs.store.SaveQuizResult(ctx, *snap.Result); err != nil {
			// The session stays Complete in memory; history just
			// misses this attempt.
			qs.logger.Error("failed to save quiz result",
				"session_id", sessionID, "error", err)
		}
	}

	return snap, nil
}

// Next advances the session's question pointer.
func (qs *QuizService) Next(userID, sessionID string) (quiz.Snapshot, error) {
	return qs.update(userID, sessionID, (*quiz.Session).Next)
}

// Previous moves the session's question pointer back.
func (qs *QuizService) Previous(userID, sessionID string) (quiz.Snapshot, error) {
	return qs.update(userID, sessionID, (*quiz.Session).Previous)
}

// Restart reshuffles the session into a fresh attempt over the same pool.
func (qs *QuizService) Restart(userID, sessionID string) (quiz.Snapshot, error) {
	return qs.update(userID, sessionID, (*quiz.Session).Restart)
}

// update applies a mutation to a session and snapshots it, all under the
// registry lock.
func (qs *QuizService) update(userID, sessionID string, mutate func(*quiz.Session)) (quiz.Snapshot, error) {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	session, err := qs.lookupLocked(userID, sessionID)
	if err != nil {
		return quiz.Snapshot{}, err
	}
	mutate(session)
	return session.Snapshot(), nil
}

// Abandon drops a session from the registry without persisting a result.
func (qs *QuizService) Abandon(userID, sessionID string) error {
	qs.mu.Lock()
	defer qs.mu.Unlock()
	entry, ok := qs.sessions[sessionID]
	if !ok || entry.session.UserID != userID {
		return ErrSessionNotFound
	}
	delete(qs.sessions, sessionID)
	return nil
}

// Close stops the janitor and waits for queued review writes to land.
// Submissions arriving after Close are dropped, not crashed.
func (qs *QuizService) Close() {
	close(qs.janitorDone)
	qs.reviews.Close()
}
