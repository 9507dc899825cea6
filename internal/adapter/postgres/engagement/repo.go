// Package engagement implements the Engagement repository using PostgreSQL.
package engagement

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const columns = "id, user_id, post_id, contact_name, contact_title, kind, strategic_score, created_at"

// Repo provides engagement persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new engagement repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an engagement on one of the user's posts. Returns
// domain.ErrNotFound if the post is not owned by the user.
func (r *Repo) Create(ctx context.Context, e *domain.Engagement) (*domain.Engagement, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO engagements (user_id, post_id, contact_name, contact_title, kind, strategic_score)
SELECT $1, p.id, $3, $4, $5, $6
FROM posts p
WHERE p.id = $2 AND p.user_id = $1
RETURNING `+columns,
		e.UserID, e.PostID, e.ContactName, e.ContactTitle, e.Kind, e.StrategicScore,
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "post", e.PostID)
	}
	return out, nil
}

// Delete removes an engagement.
func (r *Repo) Delete(ctx context.Context, userID, engagementID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM engagements WHERE id = $1 AND user_id = $2`, engagementID, userID)
	if err != nil {
		return postgres.MapError(err, "engagement", engagementID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "engagement", engagementID)
	}
	return nil
}

// ListByPost returns the engagements on one post, oldest first.
func (r *Repo) ListByPost(ctx context.Context, userID, postID uuid.UUID) ([]domain.Engagement, error) {
	return r.list(ctx,
		`SELECT `+columns+` FROM engagements WHERE user_id = $1 AND post_id = $2 ORDER BY created_at, id`,
		userID, postID)
}

// ListAll returns every engagement of the user.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Engagement, error) {
	return r.list(ctx,
		`SELECT `+columns+` FROM engagements WHERE user_id = $1 ORDER BY created_at, id`,
		userID)
}

func (r *Repo) list(ctx context.Context, query string, args ...any) ([]domain.Engagement, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list engagements: %w", err)
	}
	defer rows.Close()

	out := []domain.Engagement{}
	for rows.Next() {
		e, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan engagement: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list engagements: %w", err)
	}
	return out, nil
}

func scan(row pgx.Row) (*domain.Engagement, error) {
	var e domain.Engagement
	if err := row.Scan(
		&e.ID, &e.UserID, &e.PostID, &e.ContactName, &e.ContactTitle, &e.Kind, &e.StrategicScore, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
