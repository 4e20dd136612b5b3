package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/tjwls11/diary111/internal/domain"
	diarysvc "github.com/tjwls11/diary111/internal/service/diary"
)

// diaryService defines the diary operations the handler needs.
type diaryService interface {
	Create(ctx context.Context, input diarysvc.EntryInput) (*domain.DiaryEntry, error)
	List(ctx context.Context) ([]domain.DiaryEntry, error)
	Get(ctx context.Context, id int64) (*domain.DiaryEntry, error)
	Update(ctx context.Context, id int64, input diarysvc.EntryInput) (*domain.DiaryEntry, error)
	Delete(ctx context.Context, id int64) error
	ExistsOnDate(ctx context.Context, date string) (bool, error)
}

// DiaryHandler serves diary entry CRUD for the authenticated user.
type DiaryHandler struct {
	log *slog.Logger
	svc diaryService
}

// NewDiaryHandler creates a DiaryHandler.
func NewDiaryHandler(log *slog.Logger, svc diaryService) *DiaryHandler {
	return &DiaryHandler{log: log, svc: svc}
}

// entryRequest is the JSON body shared by add and edit.
type entryRequest struct {
	Date    string `json:"date"`
	Title   string `json:"title"`
	One     string `json:"one"`
	Content string `json:"content"`
}

func (req entryRequest) toInput() diarysvc.EntryInput {
	return diarysvc.EntryInput{
		Date:    req.Date,
		Title:   req.Title,
		One:     req.One,
		Content: req.Content,
	}
}

// Add handles POST /add-diary.
func (h *DiaryHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if err := decodeBody(r, &req); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	entry, err := h.svc.Create(r.Context(), req.toInput())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusCreated, "diary saved", map[string]any{
		"diary": toDiaryJSON(entry),
	})
}

// List handles GET /get-diaries.
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.svc.List(r.Context())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"diaries": toDiaryListJSON(entries),
	})
}

// Get handles GET /get-diary/{id}.
func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"diary": toDiaryJSON(entry),
	})
}

// Edit handles PUT /edit-diary/{id}.
func (h *DiaryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	var req entryRequest
	if err := decodeBody(r, &req); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	entry, err := h.svc.Update(r.Context(), id, req.toInput())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "diary updated", map[string]any{
		"diary": toDiaryJSON(entry),
	})
}

// Delete handles DELETE /delete-diary/{id}.
func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "diary deleted", nil)
}

// Check handles GET /checkDiary?date=YYYY-MM-DD.
func (h *DiaryHandler) Check(w http.ResponseWriter, r *http.Request) {
	exists, err := h.svc.ExistsOnDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"exists": exists,
	})
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "must be a positive integer")
	}
	return id, nil
}
