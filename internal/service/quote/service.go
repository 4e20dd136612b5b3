package quote

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tjwls11/diary111/internal/domain"
)

// quoteRepo defines the repository interface needed by the quote service.
type quoteRepo interface {
	Random(ctx context.Context) (*domain.Quote, error)
}

// Service serves daily quotes.
type Service struct {
	log    *slog.Logger
	quotes quoteRepo
}

// NewService creates a new quote service instance.
func NewService(logger *slog.Logger, quotes quoteRepo) *Service {
	return &Service{
		log:    logger.With("service", "quote"),
		quotes: quotes,
	}
}

// Random returns one random quote. Returns ErrNotFound when the quote table
// is empty.
func (s *Service) Random(ctx context.Context) (*domain.Quote, error) {
	q, err := s.quotes.Random(ctx)
	if err != nil {
		return nil, fmt.Errorf("quote.Random: %w", err)
	}
	return q, nil
}
