package diary

import (
	"context"
	"log/slog"
	"time"

	"github.com/tjwls11/diary111/internal/domain"
)

// DateLayout is the wire format for diary dates.
const DateLayout = "2006-01-02"

// diaryRepo defines the repository interface needed by the diary service.
type diaryRepo interface {
	Create(ctx context.Context, e *domain.DiaryEntry) (*domain.DiaryEntry, error)
	ListByUser(ctx context.Context, userID string) ([]domain.DiaryEntry, error)
	GetByID(ctx context.Context, userID string, id int64) (*domain.DiaryEntry, error)
	Update(ctx context.Context, userID string, id int64, date time.Time, title, one, content string) (*domain.DiaryEntry, error)
	Delete(ctx context.Context, userID string, id int64) error
	ExistsOnDate(ctx context.Context, userID string, date time.Time) (bool, error)
}

// Service implements diary entry operations. All operations act on behalf of
// the authenticated user taken from the request context.
type Service struct {
	log     *slog.Logger
	entries diaryRepo
}

// NewService creates a new diary service instance.
func NewService(logger *slog.Logger, entries diaryRepo) *Service {
	return &Service{
		log:     logger.With("service", "diary"),
		entries: entries,
	}
}
