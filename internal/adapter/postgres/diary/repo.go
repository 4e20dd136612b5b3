// Package diary implements the DiaryEntry repository using PostgreSQL.
// Every query is scoped to the owning user: an entry that exists but
// belongs to someone else is indistinguishable from one that does not exist.
package diary

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tjwls11/diary111/internal/adapter/postgres"
	"github.com/tjwls11/diary111/internal/domain"
)

// Repo provides diary entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new diary repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var diaryColumns = []string{"id", "user_id", "date", "title", "one", "content", "created_at", "updated_at"}

func scanEntry(row pgx.Row) (*domain.DiaryEntry, error) {
	var e domain.DiaryEntry
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &e.Title, &e.One, &e.Content, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts a new entry and returns it with generated fields populated.
// Returns domain.ErrAlreadyExists when the user already has an entry for
// that date (unique constraint on user_id, date).
func (r *Repo) Create(ctx context.Context, e *domain.DiaryEntry) (*domain.DiaryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("diaries").
		Columns("user_id", "date", "title", "one", "content").
		Values(e.UserID, e.Date, e.Title, e.One, e.Content).
		Suffix("RETURNING id, user_id, date, title, one, content, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create diary: %w", err)
	}

	created, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "diary", e.Date.Format("2006-01-02"))
	}

	return created, nil
}

// ListByUser returns all entries owned by the user, newest date first.
// Returns an empty slice (not nil) when the user has no entries.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.DiaryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(diaryColumns...).
		From("diaries").
		Where("user_id = ?", userID).
		OrderBy("date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list diaries: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}
	defer rows.Close()

	entries := []domain.DiaryEntry{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan diary: %w", err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list diaries: %w", err)
	}

	return entries, nil
}

// GetByID returns one entry by primary key, combined with the owner filter.
// Returns domain.ErrNotFound when the entry does not exist or belongs to
// another user.
func (r *Repo) GetByID(ctx context.Context, userID string, id int64) (*domain.DiaryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(diaryColumns...).
		From("diaries").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get diary: %w", err)
	}

	e, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "diary", strconv.FormatInt(id, 10))
	}

	return e, nil
}

// Update rewrites the mutable fields of an owned entry.
// Returns domain.ErrNotFound when the combined id+owner filter matches
// nothing, and domain.ErrAlreadyExists when the new date collides with
// another entry of the same user.
func (r *Repo) Update(ctx context.Context, userID string, id int64, date time.Time, title, one, content string) (*domain.DiaryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Update("diaries").
		Set("date", date).
		Set("title", title).
		Set("one", one).
		Set("content", content).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING id, user_id, date, title, one, content, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update diary: %w", err)
	}

	e, err := scanEntry(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "diary", strconv.FormatInt(id, 10))
	}

	return e, nil
}

// Delete removes an owned entry.
// Returns domain.ErrNotFound when the combined id+owner filter matches nothing.
func (r *Repo) Delete(ctx context.Context, userID string, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Delete("diaries").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete diary: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "diary", strconv.FormatInt(id, 10))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("diary %d: %w", id, domain.ErrNotFound)
	}

	return nil
}

// ExistsOnDate reports whether the user already has an entry for the date.
func (r *Repo) ExistsOnDate(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM diaries WHERE user_id = $1 AND date = $2)`,
		userID, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check diary date: %w", err)
	}

	return exists, nil
}
