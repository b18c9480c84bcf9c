package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/flashlearn/backend/internal/api"
	"github.com/flashlearn/backend/internal/auth"
	"github.com/flashlearn/backend/internal/service"
	"github.com/flashlearn/backend/internal/store"
)

type cannedAssistant struct {
	answer string
}

func (c cannedAssistant) SuggestAnswer(ctx context.Context, question string) (string, error) {
	return c.answer, nil
}

type testEnv struct {
	server *httptest.Server
	quiz   *service.QuizService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authn := auth.New("api-test-secret", time.Hour)
	quizSvc := service.NewQuizService(db, logger)
	t.Cleanup(quizSvc.Close)

	handler := api.NewHandler(db, authn, quizSvc, cannedAssistant{answer: "A function plus its captured environment"}, logger)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testEnv{server: server, quiz: quizSvc}
}

// do sends a JSON request and decodes the JSON response into out (when
// out is non-nil). Returns the status code.
func (e *testEnv) do(t *testing.T, method, path, token string, body, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
			t.Fatalf("decode response of %s %s: %v", method, path, err)
		}
	}
	return resp.StatusCode
}

func (e *testEnv) registerUser(t *testing.T, email string) string {
	t.Helper()
	var resp api.AuthResponse
	status := e.do(t, http.MethodPost, "/auth/register", "",
		api.RegisterRequest{Email: email, Password: "correcthorse"}, &resp)
	if status != http.StatusCreated {
		t.Fatalf("register returned %d", status)
	}
	return resp.Token
}

func TestRegisterLoginFlow(t *testing.T) {
	env := newTestEnv(t)
	env.registerUser(t, "flow@example.com")

	var login api.AuthResponse
	status := env.do(t, http.MethodPost, "/auth/login", "",
		api.LoginRequest{Email: "flow@example.com", Password: "correcthorse"}, &login)
	if status != http.StatusOK || login.Token == "" {
		t.Fatalf("login: status %d, token %q", status, login.Token)
	}

	status = env.do(t, http.MethodPost, "/auth/login", "",
		api.LoginRequest{Email: "flow@example.com", Password: "wrong"}, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("wrong password: status %d, want 401", status)
	}

	status = env.do(t, http.MethodPost, "/auth/login", "",
		api.LoginRequest{Email: "nobody@example.com", Password: "whatever"}, nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("unknown email: status %d, want 401", status)
	}
}

// brokenStore fails user lookups with a transport error. The embedded
// interface panics on anything else.
type brokenStore struct {
	store.Store
}

func (brokenStore) GetUserByEmail(ctx context.Context, email string) (*store.User, error) {
	return nil, errors.New("connection reset by peer")
}

func TestLoginStoreFailureIsNotUnauthorized(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authn := auth.New("api-test-secret", time.Hour)
	quizSvc := service.NewQuizService(brokenStore{}, logger)
	t.Cleanup(quizSvc.Close)

	handler := api.NewHandler(brokenStore{}, authn, quizSvc, cannedAssistant{}, logger)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	body, _ := json.Marshal(api.LoginRequest{Email: "flow@example.com", Password: "correcthorse"})
	resp, err := http.Post(server.URL+"/auth/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("store failure: status %d, want 500", resp.StatusCode)
	}
}

func TestAuthRequired(t *testing.T) {
	env := newTestEnv(t)

	if status := env.do(t, http.MethodGet, "/flashcards", "", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want 401", status)
	}
	if status := env.do(t, http.MethodGet, "/flashcards", "garbage", nil, nil); status != http.StatusUnauthorized {
		t.Fatalf("bad token: status %d, want 401", status)
	}
}

func TestFlashcardLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "cards@example.com")

	var card api.FlashcardResponse
	status := env.do(t, http.MethodPost, "/flashcards", token, api.CreateFlashcardRequest{
		Category: "python",
		Question: "What is a decorator?",
		Answer:   "A callable that wraps another callable",
	}, &card)
	if status != http.StatusCreated {
		t.Fatalf("create: status %d", status)
	}
	if card.Mastered {
		t.Error("fresh card must not be mastered")
	}

	status = env.do(t, http.MethodPost, "/flashcards", token, api.CreateFlashcardRequest{
		Category: "golf", Question: "Long enough", Answer: "Long enough",
	}, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("invalid category: status %d, want 400", status)
	}

	var list []api.FlashcardResponse
	if status := env.do(t, http.MethodGet, "/flashcards?category=python", token, nil, &list); status != http.StatusOK {
		t.Fatalf("list: status %d", status)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 card, got %d", len(list))
	}

	if status := env.do(t, http.MethodDelete, "/flashcards/"+card.ID, token, nil, nil); status != http.StatusNoContent {
		t.Fatalf("delete: status %d", status)
	}
}

func TestFlashcardsAreUserScoped(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerUser(t, "alice@example.com")
	bob := env.registerUser(t, "bob@example.com")

	var card api.FlashcardResponse
	env.do(t, http.MethodPost, "/flashcards", alice, api.CreateFlashcardRequest{
		Category: "fullstack", Question: "What is CORS?", Answer: "Cross-origin resource sharing",
	}, &card)

	if status := env.do(t, http.MethodGet, "/flashcards/"+card.ID, bob, nil, nil); status != http.StatusNotFound {
		t.Fatalf("foreign card: status %d, want 404", status)
	}
}

func TestQuizFlow(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "quiz@example.com")

	// No cards yet.
	status := env.do(t, http.MethodPost, "/quiz", token, api.StartQuizRequest{}, nil)
	if status != http.StatusConflict {
		t.Fatalf("empty quiz: status %d, want 409", status)
	}

	for _, q := range []string{"What is a slice?", "What is a map?", "What is a channel?"} {
		status := env.do(t, http.MethodPost, "/flashcards", token, api.CreateFlashcardRequest{
			Category: "appdev", Question: q, Answer: "A Go data structure",
		}, nil)
		if status != http.StatusCreated {
			t.Fatalf("create card: status %d", status)
		}
	}

	var session api.QuizSessionResponse
	status = env.do(t, http.MethodPost, "/quiz", token, api.StartQuizRequest{Category: "appdev"}, &session)
	if status != http.StatusCreated {
		t.Fatalf("start quiz: status %d", status)
	}
	if session.State != "in_progress" || len(session.Cards) != 3 {
		t.Fatalf("session = %s with %d cards, want in_progress with 3", session.State, len(session.Cards))
	}

	for i, card := range session.Cards {
		var updated api.QuizSessionResponse
		status := env.do(t, http.MethodPost, "/quiz/"+session.ID+"/answers", token,
			api.AnswerRequest{CardID: card.ID, Correct: i != 0}, &updated)
		if status != http.StatusOK {
			t.Fatalf("answer %d: status %d", i, status)
		}
		session = updated
	}

	if session.State != "complete" || session.Result == nil {
		t.Fatalf("after last answer: state %s, result %v", session.State, session.Result)
	}
	if session.Result.CorrectAnswers != 2 || session.Result.TotalQuestions != 3 {
		t.Errorf("result = %d/%d, want 2/3", session.Result.CorrectAnswers, session.Result.TotalQuestions)
	}

	// Answering a finished quiz is rejected.
	status = env.do(t, http.MethodPost, "/quiz/"+session.ID+"/answers", token,
		api.AnswerRequest{CardID: session.Cards[0].ID, Correct: true}, nil)
	if status != http.StatusConflict {
		t.Fatalf("answer after complete: status %d, want 409", status)
	}

	// The result shows up in progress.
	var summary api.ProgressSummaryResponse
	if status := env.do(t, http.MethodGet, "/progress/summary", token, nil, &summary); status != http.StatusOK {
		t.Fatalf("summary: status %d", status)
	}
	if summary.TotalQuizzes != 1 || summary.AverageScore != 67 {
		t.Errorf("summary = %d quizzes, average %d; want 1 and 67", summary.TotalQuizzes, summary.AverageScore)
	}

	var metrics api.StudyMetricsResponse
	if status := env.do(t, http.MethodGet, "/progress/metrics/appdev", token, nil, &metrics); status != http.StatusOK {
		t.Fatalf("metrics: status %d", status)
	}
	if metrics.CardsReviewed != 3 {
		t.Errorf("metrics cards reviewed = %d, want 3", metrics.CardsReviewed)
	}
}

func TestSuggestAnswer(t *testing.T) {
	env := newTestEnv(t)
	token := env.registerUser(t, "assist@example.com")

	var resp api.SuggestAnswerResponse
	status := env.do(t, http.MethodPost, "/flashcards/suggest-answer", token,
		api.SuggestAnswerRequest{Question: "What is a closure?"}, &resp)
	if status != http.StatusOK {
		t.Fatalf("suggest: status %d", status)
	}
	if resp.Answer != "A function plus its captured environment" {
		t.Errorf("answer = %q", resp.Answer)
	}
}

func TestPublicDeckVisibility(t *testing.T) {
	env := newTestEnv(t)
	alice := env.registerUser(t, "sharer@example.com")
	bob := env.registerUser(t, "viewer@example.com")

	var card api.FlashcardResponse
	env.do(t, http.MethodPost, "/flashcards", alice, api.CreateFlashcardRequest{
		Category: "python", Question: "What is PEP 8?", Answer: "The Python style guide",
	}, &card)

	var private, public api.DeckResponse
	env.do(t, http.MethodPost, "/decks", alice, api.CreateDeckRequest{
		Name: "Private notes", Category: "python",
	}, &private)
	env.do(t, http.MethodPost, "/decks", alice, api.CreateDeckRequest{
		Name: "Shared prep", Category: "python", IsPublic: true,
	}, &public)

	if status := env.do(t, http.MethodPost, "/decks/"+public.ID+"/cards", alice,
		api.AddDeckCardRequest{CardID: card.ID}, nil); status != http.StatusNoContent {
		t.Fatalf("add deck card: status %d", status)
	}

	// Bob sees the public deck and its cards, not the private one.
	if status := env.do(t, http.MethodGet, "/decks/"+private.ID, bob, nil, nil); status != http.StatusNotFound {
		t.Fatalf("private deck visible to stranger: status %d", status)
	}
	var cards []api.FlashcardResponse
	if status := env.do(t, http.MethodGet, "/decks/"+public.ID+"/cards", bob, nil, &cards); status != http.StatusOK {
		t.Fatalf("public deck cards: status %d", status)
	}
	if len(cards) != 1 {
		t.Fatalf("expected 1 card in public deck, got %d", len(cards))
	}

	// Only the owner can modify a deck.
	if status := env.do(t, http.MethodPost, "/decks/"+public.ID+"/cards", bob,
		api.AddDeckCardRequest{CardID: card.ID}, nil); status != http.StatusNotFound {
		t.Fatalf("stranger modified deck: status %d", status)
	}
}
