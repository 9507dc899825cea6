// Package narrative manages positioning narratives with their impact
// stories, and the brand content (posts, engagements, weekly goals) measured
// against them.
package narrative

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

type narrativeRepo interface {
	Create(ctx context.Context, n *domain.Narrative) (*domain.Narrative, error)
	GetByID(ctx context.Context, userID, narrativeID uuid.UUID) (*domain.Narrative, error)
	Update(ctx context.Context, userID, narrativeID uuid.UUID, params domain.NarrativeUpdateParams) (*domain.Narrative, error)
	Delete(ctx context.Context, userID, narrativeID uuid.UUID) error
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Narrative, error)
}

type postRepo interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	GetByID(ctx context.Context, userID, postID uuid.UUID) (*domain.Post, error)
	Delete(ctx context.Context, userID, postID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, page domain.Page) ([]domain.Post, error)
}

type engagementRepo interface {
	Create(ctx context.Context, e *domain.Engagement) (*domain.Engagement, error)
	Delete(ctx context.Context, userID, engagementID uuid.UUID) error
	ListByPost(ctx context.Context, userID, postID uuid.UUID) ([]domain.Engagement, error)
}

type goalsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.WeeklyGoals, error)
	Upsert(ctx context.Context, goals domain.WeeklyGoals) (*domain.WeeklyGoals, error)
}

// Service provides narrative and brand content operations.
type Service struct {
	narratives  narrativeRepo
	posts       postRepo
	engagements engagementRepo
	goals       goalsRepo
	log         *slog.Logger
}

// NewService creates a new narrative service.
func NewService(
	log *slog.Logger,
	narratives narrativeRepo,
	posts postRepo,
	engagements engagementRepo,
	goals goalsRepo,
) *Service {
	return &Service{
		narratives:  narratives,
		posts:       posts,
		engagements: engagements,
		goals:       goals,
		log:         log.With("service", "narrative"),
	}
}
