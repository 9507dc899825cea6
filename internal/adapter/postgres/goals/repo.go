// Package goals implements the weekly goals repository using PostgreSQL.
package goals

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const (
	getSQL = `SELECT user_id, applications, contacts, posts, updated_at FROM weekly_goals WHERE user_id = $1`

	upsertSQL = `
INSERT INTO weekly_goals (user_id, applications, contacts, posts)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id) DO UPDATE
SET applications = EXCLUDED.applications,
    contacts     = EXCLUDED.contacts,
    posts        = EXCLUDED.posts,
    updated_at   = now()
RETURNING user_id, applications, contacts, posts, updated_at`
)

// Repo provides weekly goal persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new goals repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the user's goals, or domain.ErrNotFound if none were set.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID) (*domain.WeeklyGoals, error) {
	var g domain.WeeklyGoals
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, userID).
		Scan(&g.UserID, &g.Applications, &g.Contacts, &g.Posts, &g.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "weekly goals", userID)
	}
	return &g, nil
}

// Upsert stores the user's goals.
func (r *Repo) Upsert(ctx context.Context, goals domain.WeeklyGoals) (*domain.WeeklyGoals, error) {
	var g domain.WeeklyGoals
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, upsertSQL, goals.UserID, goals.Applications, goals.Contacts, goals.Posts).
		Scan(&g.UserID, &g.Applications, &g.Contacts, &g.Posts, &g.UpdatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "weekly goals", goals.UserID)
	}
	return &g, nil
}
