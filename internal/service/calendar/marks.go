package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tjwls11/diary111/internal/domain"
	"github.com/tjwls11/diary111/pkg/ctxutil"
)

const (
	maxColorLen = 32
	maxTagLen   = 100
)

// SetColorInput holds parameters for the mood color upsert.
type SetColorInput struct {
	Date  string
	Color string
}

// Validate validates the color input.
func (i SetColorInput) Validate() error {
	var errs []domain.FieldError
	errs = appendDateError(errs, i.Date)

	if i.Color == "" {
		errs = append(errs, domain.FieldError{Field: "color", Message: "required"})
	} else if len(i.Color) > maxColorLen {
		errs = append(errs, domain.FieldError{Field: "color", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetTagInput holds parameters for the mood tag upsert.
type SetTagInput struct {
	Date string
	Tag  string
}

// Validate validates the tag input.
func (i SetTagInput) Validate() error {
	var errs []domain.FieldError
	errs = appendDateError(errs, i.Date)

	if i.Tag == "" {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "required"})
	} else if len(i.Tag) > maxTagLen {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func appendDateError(errs []domain.FieldError, date string) []domain.FieldError {
	if date == "" {
		return append(errs, domain.FieldError{Field: "date", Message: "required"})
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return append(errs, domain.FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	return errs
}

// SetColor records the mood color for one day, creating the day's mark if it
// does not exist yet. An existing tag on the same day is preserved.
func (s *Service) SetColor(ctx context.Context, input SetColorInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	date, _ := time.Parse(DateLayout, input.Date)
	if err := s.marks.SetColor(ctx, userID, date, input.Color); err != nil {
		return fmt.Errorf("calendar.SetColor: %w", err)
	}

	s.log.InfoContext(ctx, "mood color set",
		slog.String("user_id", userID),
		slog.String("date", input.Date))

	return nil
}

// SetTag records the mood tag for one day, creating the day's mark if it does
// not exist yet. An existing color on the same day is preserved.
func (s *Service) SetTag(ctx context.Context, input SetTagInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	date, _ := time.Parse(DateLayout, input.Date)
	if err := s.marks.SetTag(ctx, userID, date, input.Tag); err != nil {
		return fmt.Errorf("calendar.SetTag: %w", err)
	}

	s.log.InfoContext(ctx, "mood tag set",
		slog.String("user_id", userID),
		slog.String("date", input.Date))

	return nil
}

// Calendar returns all of the caller's day marks in date order.
func (s *Service) Calendar(ctx context.Context) ([]domain.CalendarMark, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	marks, err := s.marks.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("calendar.Calendar: %w", err)
	}
	return marks, nil
}

// Tags returns the caller's day marks that carry a tag, in date order.
func (s *Service) Tags(ctx context.Context) ([]domain.CalendarMark, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	marks, err := s.marks.ListTagged(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("calendar.Tags: %w", err)
	}
	return marks, nil
}
