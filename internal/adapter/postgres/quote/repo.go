// Package quote implements the read-only quote pool repository using PostgreSQL.
package quote

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/tjwls11/diary111/internal/adapter/postgres"
	"github.com/tjwls11/diary111/internal/domain"
)

// Repo provides quote reads backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new quote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Random returns one uniformly random quote.
// Returns domain.ErrNotFound when the pool is empty.
func (r *Repo) Random(ctx context.Context) (*domain.Quote, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var quote domain.Quote
	row := q.QueryRow(ctx, `SELECT id, text, author FROM quotes ORDER BY random() LIMIT 1`)
	if err := row.Scan(&quote.ID, &quote.Text, &quote.Author); err != nil {
		return nil, postgres.MapError(err, "quote", "-")
	}

	return &quote, nil
}
