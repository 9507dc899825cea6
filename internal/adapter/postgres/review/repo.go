// Package review implements the reviewed job repository using PostgreSQL.
package review

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const columns = "id, user_id, title, company_name, url, recommended, confidence, rationale, override, justification, overridden_at, created_at"

// Repo provides reviewed job persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new review repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a job awaiting review.
func (r *Repo) Create(ctx context.Context, j *domain.ReviewedJob) (*domain.ReviewedJob, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `
INSERT INTO reviewed_jobs (user_id, title, company_name, url, recommended, confidence, rationale)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING `+columns,
		j.UserID, j.Title, j.CompanyName, j.URL, j.Recommended, j.Confidence, j.Rationale,
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "reviewed job", uuid.Nil)
	}
	return out, nil
}

// ListPending returns jobs without a human decision, oldest first.
func (r *Repo) ListPending(ctx context.Context, userID uuid.UUID) ([]domain.ReviewedJob, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT `+columns+` FROM reviewed_jobs WHERE user_id = $1 AND override IS NULL ORDER BY created_at, id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("list pending jobs: %w", err)
	}
	defer rows.Close()

	out := []domain.ReviewedJob{}
	for rows.Next() {
		j, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reviewed job: %w", err)
		}
		out = append(out, *j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending jobs: %w", err)
	}
	return out, nil
}

// Override records the human decision. Returns domain.ErrNotFound if the job
// does not exist or was already decided.
func (r *Repo) Override(ctx context.Context, userID, jobID uuid.UUID, override bool, justification string) (*domain.ReviewedJob, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `
UPDATE reviewed_jobs
SET override = $3, justification = $4, overridden_at = now()
WHERE id = $1 AND user_id = $2 AND override IS NULL
RETURNING `+columns,
		jobID, userID, override, justification,
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "reviewed job", jobID)
	}
	return out, nil
}

func scan(row pgx.Row) (*domain.ReviewedJob, error) {
	var j domain.ReviewedJob
	if err := row.Scan(
		&j.ID, &j.UserID, &j.Title, &j.CompanyName, &j.URL, &j.Recommended, &j.Confidence,
		&j.Rationale, &j.Override, &j.Justification, &j.OverriddenAt, &j.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &j, nil
}
