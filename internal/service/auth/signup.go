package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tjwls11/diary111/internal/domain"
)

// Signup registers a new user with the default coin balance.
// Returns ErrAlreadyExists if the user id is taken.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Signup hash password: %w", err)
	}

	user := &domain.User{
		ID:           input.ID,
		Name:         input.Name,
		PasswordHash: string(hash),
		Coin:         domain.SignupCoins,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("auth.Signup create user: %w", err)
	}

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", user.ID))

	return user, nil
}
