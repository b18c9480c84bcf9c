package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/flashlearn/backend/internal/auth"
)

func TestPasswordRoundTrip(t *testing.T) {
	a := auth.New("test-secret", time.Hour)

	hash, err := a.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := a.CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("valid password rejected: %v", err)
	}
	if err := a.CheckPassword(hash, "wrong"); !errors.Is(err, auth.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	a := auth.New("test-secret", time.Hour)

	token, err := a.IssueToken("user-42")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	userID, err := a.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if userID != "user-42" {
		t.Errorf("subject = %q, want user-42", userID)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := auth.New("secret-a", time.Hour)
	verifier := auth.New("secret-b", time.Hour)

	token, err := issuer.IssueToken("user-42")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := verifier.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenExpired(t *testing.T) {
	a := auth.New("test-secret", -time.Minute)

	token, err := a.IssueToken("user-42")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	if _, err := a.VerifyToken(token); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenGarbage(t *testing.T) {
	a := auth.New("test-secret", time.Hour)
	if _, err := a.VerifyToken("not.a.token"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
