package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tjwls11/diary111/internal/domain"
	authsvc "github.com/tjwls11/diary111/internal/service/auth"
)

// authService defines the auth operations the handler needs.
type authService interface {
	Signup(ctx context.Context, input authsvc.SignupInput) (*domain.User, error)
	Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.AuthResult, error)
	ChangePassword(ctx context.Context, input authsvc.ChangePasswordInput) error
}

// AuthHandler serves signup, login and password change.
type AuthHandler struct {
	log *slog.Logger
	svc authService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(log *slog.Logger, svc authService) *AuthHandler {
	return &AuthHandler{log: log, svc: svc}
}

// Signup handles POST /signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"user_id"`
		Name     string `json:"name"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	user, err := h.svc.Signup(r.Context(), authsvc.SignupInput{
		ID:       req.UserID,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusCreated, "signup successful", map[string]any{
		"user": toUserJSON(user),
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"user_id"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	result, err := h.svc.Login(r.Context(), authsvc.LoginInput{
		ID:       req.UserID,
		Password: req.Password,
	})
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "login successful", map[string]any{
		"token": result.Token,
		"user": map[string]any{
			"user_id": result.User.ID,
			"name":    result.User.Name,
		},
	})
}

// ChangePassword handles POST /change-password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	err := h.svc.ChangePassword(r.Context(), authsvc.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "password changed", nil)
}
