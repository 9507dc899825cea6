package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Pagination bounds shared by list queries.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Builder is a squirrel statement builder using $N placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Page clamps limit and offset and applies them to q.
func Page(q sq.SelectBuilder, limit, offset int) sq.SelectBuilder {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return q.Limit(uint64(limit)).Offset(uint64(offset))
}

// QueryBuilt renders a squirrel query and runs it.
func QueryBuilt(ctx context.Context, q Querier, b sq.Sqlizer) (pgx.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.Query(ctx, query, args...)
}

// QueryRowBuilt renders a squirrel query and runs it for a single row.
func QueryRowBuilt(ctx context.Context, q Querier, b sq.Sqlizer) (pgx.Row, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return q.QueryRow(ctx, query, args...), nil
}
