package insight

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

type applicationRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Application, error)
}

type contactRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Contact, error)
}

type postRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Post, error)
}

type engagementRepo interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Engagement, error)
}

type goalsRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.WeeklyGoals, error)
}

type companyRepo interface {
	GetByID(ctx context.Context, userID, companyID uuid.UUID) (*domain.Company, error)
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Company, error)
}

// Service loads a user's collections and derives dashboard view models.
type Service struct {
	apps        applicationRepo
	contacts    contactRepo
	posts       postRepo
	engagements engagementRepo
	goals       goalsRepo
	companies   companyRepo
	loc         *time.Location
	now         func() time.Time
	log         *slog.Logger
}

// NewService creates a new insight service. loc is the calendar used for
// weekly windows.
func NewService(
	log *slog.Logger,
	loc *time.Location,
	apps applicationRepo,
	contacts contactRepo,
	posts postRepo,
	engagements engagementRepo,
	goals goalsRepo,
	companies companyRepo,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		apps:        apps,
		contacts:    contacts,
		posts:       posts,
		engagements: engagements,
		goals:       goals,
		companies:   companies,
		loc:         loc,
		now:         time.Now,
		log:         log.With("service", "insight"),
	}
}
