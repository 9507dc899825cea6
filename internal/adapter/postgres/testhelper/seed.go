package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// NewUserID returns a fresh owner ID. Users live in the identity provider,
// so there is no row to insert.
func NewUserID() uuid.UUID {
	return uuid.New()
}

// SeedCompany inserts a company owned by userID.
func SeedCompany(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Company {
	t.Helper()

	c := domain.Company{UserID: userID, Name: "Company " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO companies (user_id, name) VALUES ($1, $2) RETURNING id, created_at, updated_at`,
		c.UserID, c.Name,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}
	c.Info = map[string]domain.InfoField{}
	return c
}

// SeedNarrative inserts a narrative with the given stories.
func SeedNarrative(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, stories ...domain.ImpactStory) domain.Narrative {
	t.Helper()

	if stories == nil {
		stories = []domain.ImpactStory{}
	}
	n := domain.Narrative{UserID: userID, Name: "Narrative " + uniqueSuffix(), Stories: stories}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO narratives (user_id, name, impact_stories) VALUES ($1, $2, $3) RETURNING id, created_at, updated_at`,
		n.UserID, n.Name, n.Stories,
	).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedNarrative: %v", err)
	}
	return n
}

// SeedApplication inserts an application for the company.
func SeedApplication(t *testing.T, pool *pgxpool.Pool, userID, companyID uuid.UUID) domain.Application {
	t.Helper()

	a := domain.Application{
		UserID:    userID,
		CompanyID: companyID,
		JobTitle:  "Engineer " + uniqueSuffix(),
		Status:    domain.ApplicationStatusDraft,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO applications (user_id, company_id, job_title, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		a.UserID, a.CompanyID, a.JobTitle, string(a.Status),
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedApplication: %v", err)
	}
	a.Interviews = []domain.Interview{}
	return a
}

// SeedContact inserts an untagged contact.
func SeedContact(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Contact {
	t.Helper()

	c := domain.Contact{
		UserID:       userID,
		FirstName:    "Pat",
		LastName:     uniqueSuffix(),
		Status:       domain.ContactStatusToContact,
		NarrativeIDs: []uuid.UUID{},
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO contacts (user_id, first_name, last_name, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at`,
		c.UserID, c.FirstName, c.LastName, string(c.Status),
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}
	return c
}

// SeedPost inserts a post, optionally tagged with a narrative.
func SeedPost(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, narrativeID *uuid.UUID) domain.Post {
	t.Helper()

	p := domain.Post{UserID: userID, NarrativeID: narrativeID, Content: "post " + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO posts (user_id, narrative_id, content) VALUES ($1, $2, $3) RETURNING id, created_at`,
		p.UserID, p.NarrativeID, p.Content,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedPost: %v", err)
	}
	return p
}
