package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tjwls11/diary111/internal/domain"
)

// stickerService defines the shop operations the handler needs.
type stickerService interface {
	Catalog(ctx context.Context) ([]domain.Sticker, error)
	Purchase(ctx context.Context, stickerID int64) (*domain.Sticker, error)
	Owned(ctx context.Context) ([]domain.OwnedSticker, error)
}

// StickerHandler serves the sticker shop.
type StickerHandler struct {
	log *slog.Logger
	svc stickerService
}

// NewStickerHandler creates a StickerHandler.
func NewStickerHandler(log *slog.Logger, svc stickerService) *StickerHandler {
	return &StickerHandler{log: log, svc: svc}
}

// Catalog handles GET /stickers.
func (h *StickerHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	stickers, err := h.svc.Catalog(r.Context())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"stickers": toStickerListJSON(stickers),
	})
}

// Purchase handles POST /purchase-sticker.
func (h *StickerHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StickerID int64 `json:"sticker_id"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}
	if req.StickerID <= 0 {
		respondDomainError(r.Context(), h.log, w,
			domain.NewValidationError("sticker_id", "required"))
		return
	}

	bought, err := h.svc.Purchase(r.Context(), req.StickerID)
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "sticker purchased", map[string]any{
		"sticker": stickerJSON{
			StickerID: bought.ID,
			Name:      bought.Name,
			ImageURL:  bought.ImageURL,
			Price:     bought.Price,
		},
	})
}

// Owned handles GET /get-user-stickers.
func (h *StickerHandler) Owned(w http.ResponseWriter, r *http.Request) {
	owned, err := h.svc.Owned(r.Context())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"stickers": toOwnedStickerListJSON(owned),
	})
}
