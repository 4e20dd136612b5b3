package user

import (
	"context"
	"io"
	"log/slog"

	"github.com/tjwls11/diary111/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfilePicture(ctx context.Context, id string, path string) error
}

// fileStore defines the image storage interface needed by the user service.
type fileStore interface {
	Save(originalName string, r io.Reader) (string, error)
	Remove(publicPath string) error
}

// Service implements profile operations for the authenticated user.
type Service struct {
	log   *slog.Logger
	users userRepo
	files fileStore
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, files fileStore) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		files: files,
	}
}
