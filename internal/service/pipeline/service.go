// Package pipeline manages job applications and their interviews.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

type applicationRepo interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	GetByID(ctx context.Context, userID, applicationID uuid.UUID) (*domain.Application, error)
	Update(ctx context.Context, userID, applicationID uuid.UUID, params domain.ApplicationUpdateParams) (*domain.Application, error)
	Delete(ctx context.Context, userID, applicationID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ApplicationFilter) ([]domain.Application, error)
}

type interviewRepo interface {
	Create(ctx context.Context, iv *domain.Interview) (*domain.Interview, error)
	GetByID(ctx context.Context, userID, interviewID uuid.UUID) (*domain.Interview, error)
	Update(ctx context.Context, userID, interviewID uuid.UUID, params domain.InterviewUpdateParams) (*domain.Interview, error)
	Delete(ctx context.Context, userID, interviewID uuid.UUID) error
}

type narrativeRepo interface {
	GetByID(ctx context.Context, userID, narrativeID uuid.UUID) (*domain.Narrative, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides application and interview operations.
type Service struct {
	apps       applicationRepo
	interviews interviewRepo
	narratives narrativeRepo
	tx         txManager
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new pipeline service.
func NewService(
	log *slog.Logger,
	apps applicationRepo,
	interviews interviewRepo,
	narratives narrativeRepo,
	tx txManager,
) *Service {
	return &Service{
		apps:       apps,
		interviews: interviews,
		narratives: narratives,
		tx:         tx,
		now:        time.Now,
		log:        log.With("service", "pipeline"),
	}
}
