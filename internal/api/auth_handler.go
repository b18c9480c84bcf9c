package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/flashlearn/backend/internal/id"
	"github.com/flashlearn/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type RegisterRequest struct {
	Email    string `json:"email" example:"student@example.com"`
	Password string `json:"password" example:"hunter22"`
}

func (r *RegisterRequest) Validate() error {
	if !strings.Contains(r.Email, "@") {
		return errors.New("a valid email is required")
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email" example:"student@example.com"`
	Password string `json:"password" example:"hunter22"`
}

func (r *LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return errors.New("email and password are required")
	}
	return nil
}

type AuthResponse struct {
	Token string `json:"token"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// register creates an account and returns a session token.
// @Summary      Register
// @Description  Create an account with email and password.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterRequest  true  "Credentials"
// @Success      201   {object}  AuthResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /auth/register [post]
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hash, err := h.auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("password hash failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	u := &store.User{
		ID:           id.New(),
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := h.store.CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			respondError(w, http.StatusConflict, "email already registered")
			return
		}
		h.logger.Error("create user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	token, err := h.auth.IssueToken(u.ID)
	if err != nil {
		h.logger.Error("token issue failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusCreated, AuthResponse{Token: token})
}

// login verifies credentials and returns a session token.
// @Summary      Login
// @Description  Exchange email and password for a bearer token.
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      LoginRequest  true  "Credentials"
// @Success      200   {object}  AuthResponse
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	u, err := h.store.GetUserByEmail(ctx, strings.ToLower(req.Email))
	if errors.Is(err, store.ErrNotFound) {
		// Same response for unknown email and wrong password.
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}
	if err != nil {
		h.logger.Error("get user failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := h.auth.CheckPassword(u.PasswordHash, req.Password); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := h.auth.IssueToken(u.ID)
	if err != nil {
		h.logger.Error("token issue failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
		return
	}

	respondJSON(w, http.StatusOK, AuthResponse{Token: token})
}
