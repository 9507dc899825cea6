// Package narrative implements the Narrative repository using PostgreSQL.
// Impact stories are embedded in the narrative row as a jsonb array.
package narrative

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

const columns = "id, user_id, name, desired_title, positioning_statement, signature_capability, impact_stories, created_at, updated_at"

// Repo provides narrative persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new narrative repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a narrative with its stories.
func (r *Repo) Create(ctx context.Context, n *domain.Narrative) (*domain.Narrative, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO narratives (user_id, name, desired_title, positioning_statement, signature_capability, impact_stories)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+columns,
		n.UserID, n.Name, n.DesiredTitle, n.PositioningStatement, n.SignatureCapability, stories(n.Stories),
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "narrative", uuid.Nil)
	}
	return out, nil
}

// GetByID returns a narrative owned by the user.
func (r *Repo) GetByID(ctx context.Context, userID, narrativeID uuid.UUID) (*domain.Narrative, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `SELECT `+columns+` FROM narratives WHERE id = $1 AND user_id = $2`, narrativeID, userID)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "narrative", narrativeID)
	}
	return out, nil
}

// Update applies the non-nil fields of params. A non-nil Stories replaces
// the whole story list.
func (r *Repo) Update(ctx context.Context, userID, narrativeID uuid.UUID, params domain.NarrativeUpdateParams) (*domain.Narrative, error) {
	b := postgres.Builder.Update("narratives").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": narrativeID, "user_id": userID}).
		Suffix("RETURNING " + columns)

	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.DesiredTitle != nil {
		b = b.Set("desired_title", *params.DesiredTitle)
	}
	if params.PositioningStatement != nil {
		b = b.Set("positioning_statement", *params.PositioningStatement)
	}
	if params.SignatureCapability != nil {
		b = b.Set("signature_capability", *params.SignatureCapability)
	}
	if params.Stories != nil {
		b = b.Set("impact_stories", params.Stories)
	}

	row, err := postgres.QueryRowBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, fmt.Errorf("update narrative: %w", err)
	}
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "narrative", narrativeID)
	}
	return out, nil
}

// Delete removes a narrative. References from applications and posts are
// cleared; contact tags are dropped.
func (r *Repo) Delete(ctx context.Context, userID, narrativeID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM narratives WHERE id = $1 AND user_id = $2`, narrativeID, userID)
	if err != nil {
		return postgres.MapError(err, "narrative", narrativeID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "narrative", narrativeID)
	}
	return nil
}

// ListAll returns every narrative of the user, oldest first.
func (r *Repo) ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Narrative, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+columns+` FROM narratives WHERE user_id = $1 ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("list narratives: %w", err)
	}
	defer rows.Close()

	out := []domain.Narrative{}
	for rows.Next() {
		n, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan narrative: %w", err)
		}
		out = append(out, *n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list narratives: %w", err)
	}
	return out, nil
}

func scan(row pgx.Row) (*domain.Narrative, error) {
	var n domain.Narrative
	if err := row.Scan(
		&n.ID, &n.UserID, &n.Name, &n.DesiredTitle, &n.PositioningStatement,
		&n.SignatureCapability, &n.Stories, &n.CreatedAt, &n.UpdatedAt,
	); err != nil {
		return nil, err
	}
	n.Stories = stories(n.Stories)
	return &n, nil
}

func stories(v []domain.ImpactStory) []domain.ImpactStory {
	if v == nil {
		return []domain.ImpactStory{}
	}
	return v
}
