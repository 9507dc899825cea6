// Package company implements the Company repository using PostgreSQL.
// Research info fields are stored as a single jsonb document.
package company

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

const columns = "id, user_id, name, website, competitors, info, created_at, updated_at"

// Repo provides company persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new company repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a company and returns the stored row.
// Returns domain.ErrAlreadyExists when the user already has a company with
// the same name (case-insensitive).
func (r *Repo) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	info := c.Info
	if info == nil {
		info = map[string]domain.InfoField{}
	}

	row := q.QueryRow(ctx, `
INSERT INTO companies (user_id, name, website, competitors, info)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+columns,
		c.UserID, c.Name, c.Website, c.Competitors, info,
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "company", uuid.Nil)
	}
	return out, nil
}

// GetByID returns a company owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, companyID uuid.UUID) (*domain.Company, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM companies WHERE id = $1 AND user_id = $2`, companyID, userID)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "company", companyID)
	}
	return out, nil
}

// Update applies the non-nil fields of params. A non-nil Info replaces the
// whole info document.
func (r *Repo) Update(ctx context.Context, userID, companyID uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error) {
	b := postgres.Builder.Update("companies").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": companyID, "user_id": userID}).
		Suffix("RETURNING " + columns)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Website != nil {
		b = b.Set("website", *params.Website)
	}
	if params.Competitors != nil {
		b = b.Set("competitors", *params.Competitors)
	}
	if params.Info != nil {
		b = b.Set("info", params.Info)
	}

	row, err := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "company", companyID)
	}
	return out, nil
}

// Delete removes a company. Applications of the company are removed with it.
func (r *Repo) Delete(ctx context.Context, userID, companyID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM companies WHERE id = $1 AND user_id = $2`, companyID, userID)
	if err != nil {
		return postgres.MapError(err, "company", companyID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "company", companyID)
	}
	return nil
}

// List returns a page of companies ordered by name.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, page domain.Page) ([]domain.Company, error) {
	b := postgres.Builder.Select(columns).
		From("companies").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("lower(name)", "id")
	return r.query(ctx, postgres.Page(b, page.Limit, page.Offset))
}

// ListAll returns every company of the user ordered by name.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Company, error) {
	b := postgres.Builder.Select(columns).
		From("companies").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("lower(name)", "id")
	return r.query(ctx, b)
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.Company, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	out := []domain.Company{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return out, nil
}

func scan(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	if err := row.Scan(
		&c.ID, &c.UserID, &c.Name, &c.Website, &c.Competitors, &c.Info, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if c.Info == nil {
		c.Info = map[string]domain.InfoField{}
	}
	return &c, nil
}
