package auth

import (
	"context"
	"log/slog"

	"github.com/tjwls11/diary111/internal/config"
	"github.com/tjwls11/diary111/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}

// tokenIssuer defines the JWT token management interface needed by auth service.
type tokenIssuer interface {
	Generate(userID string, name string) (string, error)
}

// Service implements signup, login and password change operations.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
	cfg    config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer, cfg config.AuthConfig) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
		cfg:    cfg,
	}
}
