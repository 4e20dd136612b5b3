// Package sticker implements the sticker catalog and ownership repository
// using PostgreSQL.
package sticker

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tjwls11/diary111/internal/adapter/postgres"
	"github.com/tjwls11/diary111/internal/domain"
)

// Repo provides sticker persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new sticker repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ListCatalog returns the global sticker catalog ordered by id.
func (r *Repo) ListCatalog(ctx context.Context) ([]domain.Sticker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("sticker_id", "name", "image_url", "price").
		From("stickers").
		OrderBy("sticker_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list catalog: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	defer rows.Close()

	stickers := []domain.Sticker{}
	for rows.Next() {
		var s domain.Sticker
		if err := rows.Scan(&s.ID, &s.Name, &s.ImageURL, &s.Price); err != nil {
			return nil, fmt.Errorf("scan sticker: %w", err)
		}
		stickers = append(stickers, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	return stickers, nil
}

// GetByID returns one catalog sticker.
// Returns domain.ErrNotFound for an unknown id.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Sticker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("sticker_id", "name", "image_url", "price").
		From("stickers").
		Where("sticker_id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sticker: %w", err)
	}

	var s domain.Sticker
	row := q.QueryRow(ctx, sql, args...)
	if err := row.Scan(&s.ID, &s.Name, &s.ImageURL, &s.Price); err != nil {
		return nil, postgres.MapError(err, "sticker", strconv.FormatInt(id, 10))
	}

	return &s, nil
}

// AddOwnership records a purchase. The (user_id, sticker_id) primary key
// makes a repeat purchase a unique violation, surfaced as
// domain.ErrAlreadyExists.
func (r *Repo) AddOwnership(ctx context.Context, userID string, stickerID int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("user_stickers").
		Columns("user_id", "sticker_id").
		Values(userID, stickerID).
		ToSql()
	if err != nil {
		return fmt.Errorf("build add ownership: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "sticker", strconv.FormatInt(stickerID, 10))
	}

	return nil
}

// ListOwned returns the user's purchases joined with the catalog, newest first.
// Returns an empty slice (not nil) when the user owns nothing.
func (r *Repo) ListOwned(ctx context.Context, userID string) ([]domain.OwnedSticker, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("us.user_id", "us.sticker_id", "s.name", "s.image_url", "us.purchased_at").
		From("user_stickers us").
		Join("stickers s ON s.sticker_id = us.sticker_id").
		Where("us.user_id = ?", userID).
		OrderBy("us.purchased_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list owned: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list owned: %w", err)
	}
	defer rows.Close()

	owned := []domain.OwnedSticker{}
	for rows.Next() {
		var o domain.OwnedSticker
		if err := rows.Scan(&o.UserID, &o.StickerID, &o.Name, &o.ImageURL, &o.PurchasedAt); err != nil {
			return nil, fmt.Errorf("scan owned sticker: %w", err)
		}
		owned = append(owned, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list owned: %w", err)
	}

	return owned, nil
}
