package postgres

import (
	"github.com/Masterminds/squirrel"
)

// Builder returns a squirrel statement builder configured for PostgreSQL
// ($N placeholders). Repositories build all their queries through it.
func Builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
