// Package post implements the Post repository using PostgreSQL.
package post

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const columns = "id, user_id, narrative_id, theme, content, published_at, created_at"

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new post repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a post.
func (r *Repo) Create(ctx context.Context, p *domain.Post) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO posts (user_id, narrative_id, theme, content, published_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+columns,
		p.UserID, p.NarrativeID, p.Theme, p.Content, p.PublishedAt,
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "post", uuid.Nil)
	}
	return out, nil
}

// GetByID returns a post owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM posts WHERE id = $1 AND user_id = $2`, postID, userID)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "post", postID)
	}
	return out, nil
}

// Delete removes a post and its engagements.
func (r *Repo) Delete(ctx context.Context, userID, postID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM posts WHERE id = $1 AND user_id = $2`, postID, userID)
	if err != nil {
		return postgres.MapError(err, "post", postID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "post", postID)
	}
	return nil
}

// List returns a page of posts, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, page domain.Page) ([]domain.Post, error) {
	b := postgres.Builder.Select(columns).
		From("posts").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")
	return r.query(ctx, postgres.Page(b, page.Limit, page.Offset))
}

// ListAll returns every post of the user.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Post, error) {
	b := postgres.Builder.Select(columns).
		From("posts").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")
	return r.query(ctx, b)
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.Post, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	out := []domain.Post{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

func scan(row pgx.Row) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.UserID, &p.NarrativeID, &p.Theme, &p.Content, &p.PublishedAt, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}
