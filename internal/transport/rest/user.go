package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/tjwls11/diary111/internal/domain"
)

// userService defines the profile operations the handler needs.
type userService interface {
	GetInfo(ctx context.Context) (*domain.User, error)
	SetProfilePicture(ctx context.Context, originalName string, r io.Reader) (string, error)
}

// UserHandler serves the authenticated user's profile.
type UserHandler struct {
	log            *slog.Logger
	svc            userService
	maxUploadBytes int64
}

// NewUserHandler creates a UserHandler. maxUploadBytes caps profile picture
// uploads.
func NewUserHandler(log *slog.Logger, svc userService, maxUploadBytes int64) *UserHandler {
	return &UserHandler{log: log, svc: svc, maxUploadBytes: maxUploadBytes}
}

// GetInfo handles GET /get-user-info.
func (h *UserHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.GetInfo(r.Context())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"user": toUserJSON(user),
	})
}

// UploadProfilePicture handles POST /upload-profile-picture. The image comes
// as the multipart field "profilePicture".
func (h *UserHandler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, header, err := r.FormFile("profilePicture")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusBadRequest, "file too large")
			return
		}
		respondDomainError(r.Context(), h.log, w,
			domain.NewValidationError("profilePicture", "file required"))
		return
	}
	defer file.Close()

	path, err := h.svc.SetProfilePicture(r.Context(), header.Filename, file)
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "profile picture updated", map[string]any{
		"profilePicture": path,
	})
}
