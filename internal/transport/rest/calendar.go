package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tjwls11/diary111/internal/domain"
	calendarsvc "github.com/tjwls11/diary111/internal/service/calendar"
)

// calendarService defines the calendar operations the handler needs.
type calendarService interface {
	SetColor(ctx context.Context, input calendarsvc.SetColorInput) error
	SetTag(ctx context.Context, input calendarsvc.SetTagInput) error
	Calendar(ctx context.Context) ([]domain.CalendarMark, error)
	Tags(ctx context.Context) ([]domain.CalendarMark, error)
}

// CalendarHandler serves per-day mood colors and tags.
type CalendarHandler struct {
	log *slog.Logger
	svc calendarService
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(log *slog.Logger, svc calendarService) *CalendarHandler {
	return &CalendarHandler{log: log, svc: svc}
}

// SetColor handles POST /set-mood-color.
func (h *CalendarHandler) SetColor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date  string `json:"date"`
		Color string `json:"color"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	err := h.svc.SetColor(r.Context(), calendarsvc.SetColorInput{Date: req.Date, Color: req.Color})
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "mood color saved", nil)
}

// SetTag handles POST /mood-tags.
func (h *CalendarHandler) SetTag(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date string `json:"date"`
		Tag  string `json:"tag"`
	}
	if err := decodeBody(r, &req); err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	err := h.svc.SetTag(r.Context(), calendarsvc.SetTagInput{Date: req.Date, Tag: req.Tag})
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "mood tag saved", nil)
}

// Calendar handles GET /get-user-calendar.
func (h *CalendarHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	marks, err := h.svc.Calendar(r.Context())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"data": toMarkListJSON(marks),
	})
}

// Tags handles GET /get-user-tags.
func (h *CalendarHandler) Tags(w http.ResponseWriter, r *http.Request) {
	marks, err := h.svc.Tags(r.Context())
	if err != nil {
		respondDomainError(r.Context(), h.log, w, err)
		return
	}

	respond(w, http.StatusOK, "ok", map[string]any{
		"data": toMarkListJSON(marks),
	})
}
