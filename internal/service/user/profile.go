package user

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/tjwls11/diary111/internal/domain"
	"github.com/tjwls11/diary111/pkg/ctxutil"
)

// GetInfo returns the authenticated user's profile.
func (s *Service) GetInfo(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetInfo: %w", err)
	}
	return u, nil
}

// SetProfilePicture stores the uploaded image and points the user's profile
// at it, replacing any previous picture on disk. Returns the public URL path
// of the new picture.
func (s *Service) SetProfilePicture(ctx context.Context, originalName string, r io.Reader) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("user.SetProfilePicture get user: %w", err)
	}

	path, err := s.files.Save(originalName, r)
	if err != nil {
		return "", fmt.Errorf("user.SetProfilePicture save file: %w", err)
	}

	if err := s.users.UpdateProfilePicture(ctx, userID, path); err != nil {
		// The profile still points at the old picture; drop the orphan.
		if rmErr := s.files.Remove(path); rmErr != nil {
			s.log.WarnContext(ctx, "failed to remove orphaned upload",
				slog.String("path", path), slog.Any("error", rmErr))
		}
		return "", fmt.Errorf("user.SetProfilePicture update user: %w", err)
	}

	if current.ProfilePicture != nil && *current.ProfilePicture != path {
		if rmErr := s.files.Remove(*current.ProfilePicture); rmErr != nil {
			s.log.WarnContext(ctx, "failed to remove previous profile picture",
				slog.String("path", *current.ProfilePicture), slog.Any("error", rmErr))
		}
	}

	s.log.InfoContext(ctx, "profile picture updated",
		slog.String("user_id", userID),
		slog.String("path", path))

	return path, nil
}
