// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tjwls11/diary111/internal/adapter/postgres"
	"github.com/tjwls11/diary111/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new user. Returns domain.ErrAlreadyExists when the
// user_id is taken (primary key violation).
func (r *Repo) Create(ctx context.Context, u *domain.User) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("users").
		Columns("user_id", "name", "password_hash", "coin").
		Values(u.ID, u.Name, u.PasswordHash, u.Coin).
		ToSql()
	if err != nil {
		return fmt.Errorf("build create user: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "user", u.ID)
	}

	return nil
}

// GetByID returns a user by login ID.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("user_id", "name", "password_hash", "coin", "profile_picture", "created_at", "updated_at").
		From("users").
		Where("user_id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var u domain.User
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Coin, &u.ProfilePicture, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return &u, nil
}

// UpdatePassword replaces the stored password hash.
// Returns domain.ErrNotFound when the user does not exist.
func (r *Repo) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update("users").
		Set("password_hash", passwordHash).
		Set("updated_at", squirrel.Expr("now()")).
		Where("user_id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update password: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateProfilePicture stores the public path of the uploaded picture.
// Returns domain.ErrNotFound when the user does not exist.
func (r *Repo) UpdateProfilePicture(ctx context.Context, id string, path string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update("users").
		Set("profile_picture", path).
		Set("updated_at", squirrel.Expr("now()")).
		Where("user_id = ?", id).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update profile picture: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// SpendCoins conditionally decrements the user's balance. The WHERE clause
// makes the check-and-decrement a single atomic statement: zero affected
// rows means the balance was too low.
func (r *Repo) SpendCoins(ctx context.Context, id string, amount int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update("users").
		Set("coin", squirrel.Expr("coin - ?", amount)).
		Set("updated_at", squirrel.Expr("now()")).
		Where("user_id = ?", id).
		Where("coin >= ?", amount).
		ToSql()
	if err != nil {
		return fmt.Errorf("build spend coins: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrInsufficientCoins)
	}

	return nil
}
