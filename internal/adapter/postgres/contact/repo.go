// Package contact implements the Contact repository using PostgreSQL.
// Narrative tags live in contact_narratives and keep their insertion order.
package contact

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/adapter/postgres"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const narrativesSubquery = `COALESCE((SELECT array_agg(cn.narrative_id ORDER BY cn.position)
	FROM contact_narratives cn WHERE cn.contact_id = c.id), '{}') AS narrative_ids`

var columns = []string{
	"c.id", "c.user_id", "c.company_id", "c.first_name", "c.last_name", "c.job_title",
	"c.linkedin_url", "c.status", "c.is_referral", "c.alignment_score", narrativesSubquery,
	"c.created_at", "c.updated_at",
}

const returning = "RETURNING id, user_id, company_id, first_name, last_name, job_title, linkedin_url, status, is_referral, alignment_score, '{}'::uuid[], created_at, updated_at"

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a contact together with its narrative tags. Callers should
// run it inside a transaction.
func (r *Repo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO contacts (user_id, company_id, first_name, last_name, job_title, linkedin_url, status, is_referral, alignment_score)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`+returning,
		c.UserID, c.CompanyID, c.FirstName, c.LastName, c.JobTitle, c.LinkedInURL,
		string(c.Status), c.IsReferral, c.AlignmentScore,
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "contact", uuid.Nil)
	}

	if len(c.NarrativeIDs) > 0 {
		if err := r.SetNarratives(ctx, c.UserID, out.ID, c.NarrativeIDs); err != nil {
			return nil, err
		}
	}
	out.NarrativeIDs = narratives(c.NarrativeIDs)
	return out, nil
}

// GetByID returns a contact owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error) {
	b := postgres.Builder.Select(columns...).
		From("contacts c").
		Where(sq.Eq{"c.id": contactID, "c.user_id": userID})

	row, err := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "contact", contactID)
	}
	return out, nil
}

// Update applies the non-nil fields of params. A non-nil NarrativeIDs
// replaces the tag set. Callers should run it inside a transaction.
func (r *Repo) Update(ctx context.Context, userID, contactID uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error) {
	b := postgres.Builder.Update("contacts").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": contactID, "user_id": userID}).
		Suffix(returning)

	if params.CompanyID != nil {
		if *params.CompanyID == uuid.Nil {
			b = b.Set("company_id", nil)
		} else {
			b = b.Set("company_id", *params.CompanyID)
		}
	}
	if params.FirstName != nil {
		b = b.Set("first_name", *params.FirstName)
	}
	if params.LastName != nil {
		b = b.Set("last_name", *params.LastName)
	}
	if params.JobTitle != nil {
		b = b.Set("job_title", *params.JobTitle)
	}
	if params.LinkedInURL != nil {
		b = b.Set("linkedin_url", *params.LinkedInURL)
	}
	if params.Status != nil {
		b = b.Set("status", string(*params.Status))
	}
	if params.IsReferral != nil {
		b = b.Set("is_referral", *params.IsReferral)
	}
	if params.AlignmentScore != nil {
		b = b.Set("alignment_score", *params.AlignmentScore)
	}

	row, err := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	if _, err := scan(row); err != nil {
		return nil, postgres.MapError(err, "contact", contactID)
	}

	if params.NarrativeIDs != nil {
		if err := r.SetNarratives(ctx, userID, contactID, params.NarrativeIDs); err != nil {
			return nil, err
		}
	}
	return r.GetByID(ctx, userID, contactID)
}

// SetNarratives replaces the narrative tags of a contact, keeping the order
// of ids. Returns domain.ErrNotFound if any narrative is not owned by the user.
func (r *Repo) SetNarratives(ctx context.Context, userID, contactID uuid.UUID, ids []uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	ids = domain.UniqueIDs(ids)

	if _, err := q.Exec(ctx, `DELETE FROM contact_narratives WHERE contact_id = $1`, contactID); err != nil {
		return postgres.MapError(err, "contact", contactID)
	}
	if len(ids) == 0 {
		return nil
	}

	tag, err := q.Exec(ctx, `
INSERT INTO contact_narratives (contact_id, narrative_id, position)
SELECT $1, t.id, t.pos
FROM unnest($2::uuid[]) WITH ORDINALITY AS t(id, pos)
JOIN narratives n ON n.id = t.id AND n.user_id = $3`,
		contactID, ids, userID,
	)
	if err != nil {
		return postgres.MapError(err, "contact", contactID)
	}
	if int(tag.RowsAffected()) != len(ids) {
		return postgres.MapError(pgx.ErrNoRows, "narrative", uuid.Nil)
	}
	return nil
}

// Delete removes a contact with its tags and messages.
func (r *Repo) Delete(ctx context.Context, userID, contactID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM contacts WHERE id = $1 AND user_id = $2`, contactID, userID)
	if err != nil {
		return postgres.MapError(err, "contact", contactID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "contact", contactID)
	}
	return nil
}

// List returns a filtered page of contacts, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.ContactFilter) ([]domain.Contact, error) {
	b := postgres.Builder.Select(columns...).
		From("contacts c").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC", "c.id")

	if filter.Status != nil {
		b = b.Where(sq.Eq{"c.status": string(*filter.Status)})
	}
	if filter.CompanyID != nil {
		b = b.Where(sq.Eq{"c.company_id": *filter.CompanyID})
	}
	if filter.NarrativeID != nil {
		b = b.Where("EXISTS (SELECT 1 FROM contact_narratives cn WHERE cn.contact_id = c.id AND cn.narrative_id = ?)", *filter.NarrativeID)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		pattern := "%" + escapeLike(s) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"c.first_name || ' ' || c.last_name": pattern},
			sq.ILike{"c.job_title": pattern},
		})
	}

	return r.query(ctx, postgres.Page(b, filter.Limit, filter.Offset))
}

// ListAll returns every contact of the user.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Contact, error) {
	b := postgres.Builder.Select(columns...).
		From("contacts c").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.created_at DESC", "c.id")
	return r.query(ctx, b)
}

func (r *Repo) query(ctx context.Context, b sq.SelectBuilder) ([]domain.Contact, error) {
	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	out := []domain.Contact{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return out, nil
}

func scan(row pgx.Row) (*domain.Contact, error) {
	var (
		c      domain.Contact
		status string
	)
	if err := row.Scan(
		&c.ID, &c.UserID, &c.CompanyID, &c.FirstName, &c.LastName, &c.JobTitle,
		&c.LinkedInURL, &status, &c.IsReferral, &c.AlignmentScore, &c.NarrativeIDs,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.Status = domain.ContactStatus(status)
	c.NarrativeIDs = narratives(c.NarrativeIDs)
	return &c, nil
}

func narratives(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return domain.UniqueIDs(ids)
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
