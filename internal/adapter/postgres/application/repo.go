// Package application implements the Application repository using
// PostgreSQL. Applications are always returned with their interviews.
package application

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres/interview"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const columns = "id, user_id, company_id, job_title, job_link, status, strategic_fit_score, narrative_id, applied_at, created_at, updated_at"

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	pool       *pgxpool.Pool
	interviews *interview.Repo
}

// New creates a new application repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, interviews: interview.New(pool)}
}

// Create inserts an application. Returns domain.ErrNotFound if the company
// or narrative does not exist.
func (r *Repo) Create(ctx context.Context, a *domain.Application) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO applications (user_id, company_id, job_title, job_link, status, strategic_fit_score, narrative_id, applied_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING `+columns,
		a.UserID, a.CompanyID, a.JobTitle, a.JobLink, string(a.Status), a.StrategicFitScore, a.NarrativeID, a.AppliedAt,
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", uuid.Nil)
	}
	out.Interviews = []domain.Interview{}
	return out, nil
}

// GetByID returns an application owned by the user, with its interviews.
func (r *Repo) GetByID(ctx context.Context, userID, applicationID uuid.UUID) (*domain.Application, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM applications WHERE id = $1 AND user_id = $2`, applicationID, userID)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", applicationID)
	}

	ivs, err := r.interviews.ListByApplication(ctx, userID, applicationID)
	if err != nil {
		return nil, err
	}
	out.Interviews = ivs
	return out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, userID, applicationID uuid.UUID, params domain.ApplicationUpdateParams) (*domain.Application, error) {
	b := postgres.Builder.Update("applications").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": applicationID, "user_id": userID}).
		Suffix("RETURNING " + columns)

	if params.JobTitle != nil {
		b = b.Set("job_title", *params.JobTitle)
	}
	if params.JobLink != nil {
		b = b.Set("job_link", *params.JobLink)
	}
	if params.Status != nil {
		b = b.Set("status", string(*params.Status))
	}
	switch {
	case params.ClearFitScore:
		b = b.Set("strategic_fit_score", nil)
	case params.StrategicFitScore != nil:
		b = b.Set("strategic_fit_score", *params.StrategicFitScore)
	}
	switch {
	case params.ClearNarrative:
		b = b.Set("narrative_id", nil)
	case params.NarrativeID != nil:
		b = b.Set("narrative_id", *params.NarrativeID)
	}
	if params.AppliedAt != nil {
		b = b.Set("applied_at", *params.AppliedAt)
	}

	row, err := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", applicationID)
	}

	ivs, err := r.interviews.ListByApplication(ctx, userID, applicationID)
	if err != nil {
		return nil, err
	}
	out.Interviews = ivs
	return out, nil
}

// Delete removes an application and its interviews.
func (r *Repo) Delete(ctx context.Context, userID, applicationID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM applications WHERE id = $1 AND user_id = $2`, applicationID, userID)
	if err != nil {
		return postgres.MapError(err, "application", applicationID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "application", applicationID)
	}
	return nil
}

// List returns a filtered page of applications, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ApplicationFilter) ([]domain.Application, error) {
	b := postgres.Builder.Select(columns).
		From("applications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.CompanyID != nil {
		b = b.Where(sq.Eq{"company_id": *filter.CompanyID})
	}
	if filter.NarrativeID != nil {
		b = b.Where(sq.Eq{"narrative_id": *filter.NarrativeID})
	}

	apps, err := r.query(ctx, postgres.Page(b, filter.Limit, filter.Offset))
	if err != nil {
		return nil, err
	}

	appIDs := make([]uuid.UUID, len(apps))
	for i, a := range apps {
		appIDs[i] = a.ID
	}
	return r.attachInterviews(ctx, userID, apps, appIDs)
}

// ListAll returns every application of the user with interviews attached.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Application, error) {
	b := postgres.Builder.Select(columns).
		From("applications").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id")

	apps, err := r.query(ctx, b)
	if err != nil {
		return nil, err
	}
	return r.attachInterviews(ctx, userID, apps, nil)
}

func (r *Repo) attachInterviews(ctx context.Context, userID uuid.UUID, apps []domain.Application, appIDs []uuid.UUID) ([]domain.Application, error) {
	if len(apps) == 0 {
		return apps, nil
	}
	byApp, err := r.interviews.ListByApplications(ctx, userID, appIDs)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		apps[i].Interviews = byApp[apps[i].ID]
		if apps[i].Interviews == nil {
			apps[i].Interviews = []domain.Interview{}
		}
	}
	return apps, nil
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.Application, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	out := []domain.Application{}
	for rows.Next() {
		a, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return out, nil
}

func scan(row pgx.Row) (*domain.Application, error) {
	var (
		a      domain.Application
		status string
	)
	if err := row.Scan(
		&a.ID, &a.UserID, &a.CompanyID, &a.JobTitle, &a.JobLink, &status,
		&a.StrategicFitScore, &a.NarrativeID, &a.AppliedAt, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Status = domain.ApplicationStatus(status)
	return &a, nil
}
