// Package message implements the Message repository using PostgreSQL.
package message

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

const columns = "id, user_id, contact_id, company_id, application_id, type, content, follow_up_due_date, is_user_sent, created_at"

// Repo provides message persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new message repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a message. Every referenced entity must belong to the user,
// otherwise domain.ErrNotFound is returned.
func (r *Repo) Create(ctx context.Context, m *domain.Message) (*domain.Message, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
INSERT INTO messages (user_id, contact_id, company_id, application_id, type, content, follow_up_due_date, is_user_sent)
SELECT $1, $2, $3, $4, $5, $6, $7, $8
WHERE ($2::uuid IS NULL OR EXISTS (SELECT 1 FROM contacts WHERE id = $2 AND user_id = $1))
  AND ($3::uuid IS NULL OR EXISTS (SELECT 1 FROM companies WHERE id = $3 AND user_id = $1))
  AND ($4::uuid IS NULL OR EXISTS (SELECT 1 FROM applications WHERE id = $4 AND user_id = $1))
RETURNING `+columns,
		m.UserID, m.ContactID, m.CompanyID, m.ApplicationID,
		string(m.Type), m.Content, m.FollowUpDueDate, m.IsUserSent,
	)
	out, err := scan(row)
	if err != nil {
		return nil, postgres.MapError(err, "message", uuid.Nil)
	}
	return out, nil
}

// Delete removes a message.
func (r *Repo) Delete(ctx context.Context, userID, messageID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM messages WHERE id = $1 AND user_id = $2`, messageID, userID)
	if err != nil {
		return postgres.MapError(err, "message", messageID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "message", messageID)
	}
	return nil
}

// List returns messages matching filter in chronological order.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter domain.MessageFilter) ([]domain.Message, error) {
	b := postgres.Builder.Select(columns).
		From("messages").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at", "id")

	if filter.ContactID != nil {
		b = b.Where(sq.Eq{"contact_id": *filter.ContactID})
	}
	if filter.CompanyID != nil {
		b = b.Where(sq.Eq{"company_id": *filter.CompanyID})
	}
	if filter.ApplicationID != nil {
		b = b.Where(sq.Eq{"application_id": *filter.ApplicationID})
	}
	if filter.Type != nil {
		b = b.Where(sq.Eq{"type": string(*filter.Type)})
	}

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), postgres.Page(b, filter.Limit, filter.Offset))
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	out := []domain.Message{}
	for rows.Next() {
		m, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return out, nil
}

func scan(row pgx.Row) (*domain.Message, error) {
	var (
		m   domain.Message
		typ string
	)
	if err := row.Scan(
		&m.ID, &m.UserID, &m.ContactID, &m.CompanyID, &m.ApplicationID,
		&typ, &m.Content, &m.FollowUpDueDate, &m.IsUserSent, &m.CreatedAt,
	); err != nil {
		return nil, err
	}
	m.Type = domain.MessageType(typ)
	return &m, nil
}
