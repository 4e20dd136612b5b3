package diary

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tjwls11/diary111/internal/domain"
	"github.com/tjwls11/diary111/pkg/ctxutil"
)

// Create adds a diary entry for the authenticated user.
// Returns ErrAlreadyExists when the user already has an entry on that date.
func (s *Service) Create(ctx context.Context, input EntryInput) (*domain.DiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.Create(ctx, &domain.DiaryEntry{
		UserID:  userID,
		Date:    input.date(),
		Title:   input.Title,
		One:     input.One,
		Content: input.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("diary.Create: %w", err)
	}

	s.log.InfoContext(ctx, "diary entry created",
		slog.String("user_id", userID),
		slog.Int64("entry_id", entry.ID))

	return entry, nil
}

// List returns all diary entries of the authenticated user, newest first.
func (s *Service) List(ctx context.Context) ([]domain.DiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("diary.List: %w", err)
	}
	return entries, nil
}

// Get returns one entry owned by the authenticated user.
// Entries of other users look like they do not exist.
func (s *Service) Get(ctx context.Context, id int64) (*domain.DiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	entry, err := s.entries.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("diary.Get: %w", err)
	}
	return entry, nil
}

// Update rewrites an owned entry. Returns ErrNotFound when the entry does not
// exist or belongs to someone else.
func (s *Service) Update(ctx context.Context, id int64, input EntryInput) (*domain.DiaryEntry, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.entries.Update(ctx, userID, id, input.date(), input.Title, input.One, input.Content)
	if err != nil {
		return nil, fmt.Errorf("diary.Update: %w", err)
	}

	s.log.InfoContext(ctx, "diary entry updated",
		slog.String("user_id", userID),
		slog.Int64("entry_id", id))

	return entry, nil
}

// Delete removes an owned entry. Returns ErrNotFound when the entry does not
// exist or belongs to someone else.
func (s *Service) Delete(ctx context.Context, id int64) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.entries.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("diary.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "diary entry deleted",
		slog.String("user_id", userID),
		slog.Int64("entry_id", id))

	return nil
}

// ExistsOnDate reports whether the authenticated user already has an entry on
// the given date.
func (s *Service) ExistsOnDate(ctx context.Context, date string) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return false, domain.NewValidationError("date", "must be YYYY-MM-DD")
	}

	exists, err := s.entries.ExistsOnDate(ctx, userID, parsed)
	if err != nil {
		return false, fmt.Errorf("diary.ExistsOnDate: %w", err)
	}
	return exists, nil
}
