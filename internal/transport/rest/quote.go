package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tjwls11/diary111/internal/domain"
)

// quoteService defines the quote operations the handler needs.
type quoteService interface {
	Random(ctx context.Context) (*domain.Quote, error)
}

// QuoteHandler serves daily quotes.
type QuoteHandler struct {
	log *slog.Logger
	svc quoteService
}

// NewQuoteHandler creates a QuoteHandler.
func NewQuoteHandler(log *slog.Logger, svc quoteService) *QuoteHandler {
	return &QuoteHandler{log: log, svc: svc}
}

// Random handles GET /random-quote.
func (h *QuoteHandler) Random(w http.ResponseWriter, r *http.Request) {
	q, err := h.svc.Random(r.Context())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"quote": map[string]any{
			"text":   q.Text,
			"author": q.Author,
		},
	})
}
