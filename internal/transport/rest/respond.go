package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/tjwls11/diary111/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// respond writes a success envelope. Extra payload keys are merged next to
// isSuccess and message.
func respond(w http.ResponseWriter, status int, message string, payload map[string]any) {
	body := map[string]any{
		"isSuccess": true,
		"message":   message,
	}
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, status, body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"isSuccess": false,
		"message":   message,
	})
}

// respondDomainError maps domain errors to HTTP statuses. Unexpected errors
// are logged and answered with a generic 500 so internals never leak.
func respondDomainError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"isSuccess": false,
			"message":   vErr.Error(),
			"errors":    vErr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		respondError(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, domain.ErrInsufficientCoins):
		respondError(w, http.StatusBadRequest, "not enough coins")
	case errors.Is(err, domain.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrForbidden):
		respondError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		respondError(w, http.StatusConflict, "already exists")
	default:
		log.ErrorContext(ctx, "request failed", slog.Any("error", err))
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeBody reads a JSON request body into dst.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("body", "invalid JSON")
	}
	return nil
}
