// Package interview implements the Interview repository using PostgreSQL.
// The story deck and prep notes are stored as jsonb documents.
package interview

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

// Columns is the select list understood by Scan.
const Columns = "id, user_id, application_id, interview_type, scheduled_at, contact_ids, story_deck, prep, notes, created_at, updated_at"

// Repo provides interview persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new interview repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts an interview. The parent application must belong to the
// same user, otherwise domain.ErrNotFound is returned.
func (r *Repo) Create(ctx context.Context, iv *domain.Interview) (*domain.Interview, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO interviews (user_id, application_id, interview_type, scheduled_at, contact_ids, story_deck, prep, notes)
SELECT $1, a.id, $3, $4, $5, $6, $7, $8
FROM applications a
WHERE a.id = $2 AND a.user_id = $1
RETURNING `+Columns,
		iv.UserID, iv.ApplicationID, iv.Type, iv.ScheduledAt,
		ids(iv.ContactIDs), deck(iv.Deck), prep(iv.Prep), iv.Notes,
	)
	out, err := Scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "application", iv.ApplicationID)
	}
	return out, nil
}

// GetByID returns an interview owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, interviewID uuid.UUID) (*domain.Interview, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+Columns+` FROM interviews WHERE id = $1 AND user_id = $2`, interviewID, userID)
	out, err := Scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "interview", interviewID)
	}
	return out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, userID, interviewID uuid.UUID, params domain.InterviewUpdateParams) (*domain.Interview, error) {
	b := postgres.Builder.Update("interviews").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": interviewID, "user_id": userID}).
		Suffix("RETURNING " + Columns)

	if params.Type != nil {
		b = b.Set("interview_type", *params.Type)
	}
	if params.ScheduledAt != nil {
		b = b.Set("scheduled_at", *params.ScheduledAt)
	}
	if params.ContactIDs != nil {
		b = b.Set("contact_ids", ids(params.ContactIDs))
	}
	if params.Deck != nil {
		b = b.Set("story_deck", deck(params.Deck))
	}
	if params.Prep != nil {
		b = b.Set("prep", params.Prep)
	}
	if params.Notes != nil {
		b = b.Set("notes", *params.Notes)
	}

	row, err := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}
	out, err := Scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "interview", interviewID)
	}
	return out, nil
}

// Delete removes an interview.
func (r *Repo) Delete(ctx context.Context, userID, interviewID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM interviews WHERE id = $1 AND user_id = $2`, interviewID, userID)
	if err != nil {
		return postgres.MapError(err, "interview", interviewID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "interview", interviewID)
	}
	return nil
}

// ListByApplication returns the interviews of one application, earliest
// scheduled first.
func (r *Repo) ListByApplication(ctx context.Context, userID, applicationID uuid.UUID) ([]domain.Interview, error) {
	byApp, err := r.ListByApplications(ctx, userID, []uuid.UUID{applicationID})
	if err != nil {
		return nil, err
	}
	out := byApp[applicationID]
	if out == nil {
		out = []domain.Interview{}
	}
	return out, nil
}

// ListByApplications returns interviews grouped by application ID. A nil
// ids slice loads every interview of the user.
func (r *Repo) ListByApplications(ctx context.Context, userID uuid.UUID, applicationIDs []uuid.UUID) (map[uuid.UUID][]domain.Interview, error) {
	b := postgres.Builder.Select(Columns).
		From("interviews").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("scheduled_at NULLS LAST", "created_at", "id")
	if applicationIDs != nil {
		b = b.Where("application_id = ANY(?)", applicationIDs)
	}

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	defer rows.Close()

	out := make(map[uuid.UUID][]domain.Interview)
	for rows.Next() {
		iv, err := Scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview: %w", err)
		}
		out[iv.ApplicationID] = append(out[iv.ApplicationID], *iv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}
	return out, nil
}

// Scan reads one interview row selected with Columns.
func Scan(row pgx.Row) (*domain.Interview, error) {
	var iv domain.Interview
	if err := row.Scan(
		&iv.ID, &iv.UserID, &iv.ApplicationID, &iv.Type, &iv.ScheduledAt,
		&iv.ContactIDs, &iv.Deck, &iv.Prep, &iv.Notes, &iv.CreatedAt, &iv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if iv.ContactIDs == nil {
		iv.ContactIDs = []uuid.UUID{}
	}
	if iv.Deck == nil {
		iv.Deck = []domain.DeckItem{}
	}
	return &iv, nil
}

// jsonb and array columns are NOT NULL; nil Go values would encode as NULL.

func ids(v []uuid.UUID) []uuid.UUID {
	if v == nil {
		return []uuid.UUID{}
	}
	return v
}

func deck(v []domain.DeckItem) []domain.DeckItem {
	if v == nil {
		return []domain.DeckItem{}
	}
	return v
}

func prep(v map[string]string) map[string]string {
	if v == nil {
		return map[string]string{}
	}
	return v
}
