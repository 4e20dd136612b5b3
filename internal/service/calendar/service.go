package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/tjwls11/diary111/internal/domain"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// calendarRepo defines the repository interface needed by the calendar service.
type calendarRepo interface {
	SetColor(ctx context.Context, userID string, date time.Time, color string) error
	SetTag(ctx context.Context, userID string, date time.Time, tag string) error
	ListByUser(ctx context.Context, userID string) ([]domain.CalendarMark, error)
	ListTagged(ctx context.Context, userID string) ([]domain.CalendarMark, error)
}

// Service implements per-day mood color and tag operations. All operations
// act on behalf of the authenticated user taken from the request context.
type Service struct {
	log   *slog.Logger
	marks calendarRepo
}

// NewService creates a new calendar service instance.
func NewService(logger *slog.Logger, marks calendarRepo) *Service {
	return &Service{
		log:   logger.With("service", "calendar"),
		marks: marks,
	}
}
