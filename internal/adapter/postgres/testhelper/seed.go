package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tjwls11/diary111/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with the default signup balance.
// The password hash is a fixed bcrypt hash of "password".
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           "user-" + suffix,
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Coin:         domain.SignupCoins,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (user_id, name, password_hash, coin) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Name, user.PasswordHash, user.Coin,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedDiary creates one diary entry owned by userID on the given date.
func SeedDiary(t *testing.T, pool *pgxpool.Pool, userID string, date time.Time) domain.DiaryEntry {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	entry := domain.DiaryEntry{
		UserID:  userID,
		Date:    date,
		Title:   "Title " + suffix,
		One:     "One-liner " + suffix,
		Content: "Content " + suffix,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO diaries (user_id, date, title, one, content)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		entry.UserID, entry.Date, entry.Title, entry.One, entry.Content,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedDiary insert diary: %v", err)
	}

	return entry
}

// SeedSticker adds one catalog sticker with the given price.
func SeedSticker(t *testing.T, pool *pgxpool.Pool, price int64) domain.Sticker {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	sticker := domain.Sticker{
		Name:     "Sticker " + suffix,
		ImageURL: "/assets/stickers/" + suffix + ".png",
		Price:    price,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO stickers (name, image_url, price) VALUES ($1, $2, $3) RETURNING sticker_id`,
		sticker.Name, sticker.ImageURL, sticker.Price,
	).Scan(&sticker.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedSticker insert sticker: %v", err)
	}

	return sticker
}

// SeedQuote adds one quote to the global pool.
func SeedQuote(t *testing.T, pool *pgxpool.Pool) domain.Quote {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	author := "Author " + suffix
	quote := domain.Quote{
		Text:   "Quote " + suffix,
		Author: &author,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO quotes (text, author) VALUES ($1, $2) RETURNING id`,
		quote.Text, quote.Author,
	).Scan(&quote.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedQuote insert quote: %v", err)
	}

	return quote
}
