// Package calendar implements the CalendarMark repository using PostgreSQL.
// Color and tag are written through single-statement upserts so concurrent
// writes to the same (user, date) never clobber the other field.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tjwls11/diary111/internal/adapter/postgres"
	"github.com/tjwls11/diary111/internal/domain"
)

// Repo provides calendar mark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new calendar repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// SetColor upserts the mood color for (user, date), preserving any tag.
func (r *Repo) SetColor(ctx context.Context, userID string, date time.Time, color string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("calendar_marks").
		Columns("user_id", "date", "color").
		Values(userID, date, color).
		Suffix("ON CONFLICT (user_id, date) DO UPDATE SET color = EXCLUDED.color, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set color: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "calendar", date.Format("2006-01-02"))
	}

	return nil
}

// SetTag upserts the mood tag for (user, date), preserving any color.
func (r *Repo) SetTag(ctx context.Context, userID string, date time.Time, tag string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("calendar_marks").
		Columns("user_id", "date", "tag").
		Values(userID, date, tag).
		Suffix("ON CONFLICT (user_id, date) DO UPDATE SET tag = EXCLUDED.tag, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build set tag: %w", err)
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "calendar", date.Format("2006-01-02"))
	}

	return nil
}

// ListByUser returns all marks owned by the user, oldest first.
// Returns an empty slice (not nil) when the user has no marks.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.CalendarMark, error) {
	return r.list(ctx, userID, false)
}

// ListTagged returns only the marks that carry a tag, oldest first.
func (r *Repo) ListTagged(ctx context.Context, userID string) ([]domain.CalendarMark, error) {
	return r.list(ctx, userID, true)
}

func (r *Repo) list(ctx context.Context, userID string, taggedOnly bool) ([]domain.CalendarMark, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query := postgres.Builder().
		Select("user_id", "date", "color", "tag", "updated_at").
		From("calendar_marks").
		Where("user_id = ?", userID).
		OrderBy("date ASC")
	if taggedOnly {
		query = query.Where("tag IS NOT NULL")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list marks: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	defer rows.Close()

	marks := []domain.CalendarMark{}
	for rows.Next() {
		var m domain.CalendarMark
		if err := rows.Scan(&m.UserID, &m.Date, &m.Color, &m.Tag, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan mark: %w", err)
		}
		marks = append(marks, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}

	return marks, nil
}
