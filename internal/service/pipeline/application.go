package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// CreateApplication creates an application for the authenticated user.
// Creating an application directly in Applied status stamps AppliedAt.
func (s *Service) CreateApplication(ctx context.Context, input CreateApplicationInput) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if strings.TrimSpace(string(status)) == "" {
		status = domain.ApplicationStatusDraft
	}
	appliedAt := input.AppliedAt
	if appliedAt == nil && status == domain.ApplicationStatusApplied {
		now := s.now().UTC()
		appliedAt = &now
	}

	app, err := s.apps.Create(ctx, &domain.Application{
		UserID:            userID,
		CompanyID:         input.CompanyID,
		JobTitle:          strings.TrimSpace(input.JobTitle),
		JobLink:           strings.TrimSpace(input.JobLink),
		Status:            status,
		StrategicFitScore: input.StrategicFitScore,
		NarrativeID:       input.NarrativeID,
		AppliedAt:         appliedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	s.log.InfoContext(ctx, "application created",
		slog.String("user_id", userID.String()),
		slog.String("application_id", app.ID.String()),
		slog.String("status", string(app.Status)),
	)

	return app, nil
}

// GetApplication returns an application with its interviews.
func (s *Service) GetApplication(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	app, err := s.apps.GetByID(ctx, userID, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

// UpdateApplication applies a partial update. Moving to Applied stamps
// AppliedAt unless the application already has one or the input sets it.
func (s *Service) UpdateApplication(ctx context.Context, input UpdateApplicationInput) (*domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := input.params()

	var updated *domain.Application
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if params.Status != nil && *params.Status == domain.ApplicationStatusApplied && params.AppliedAt == nil {
			old, err := s.apps.GetByID(txCtx, userID, input.ApplicationID)
			if err != nil {
				return fmt.Errorf("get application: %w", err)
			}
			if old.AppliedAt == nil {
				now := s.now().UTC()
				params.AppliedAt = &now
			}
		}

		var err error
		updated, err = s.apps.Update(txCtx, userID, input.ApplicationID, params)
		if err != nil {
			return fmt.Errorf("update application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "application updated",
		slog.String("user_id", userID.String()),
		slog.String("application_id", input.ApplicationID.String()),
	)

	return updated, nil
}

// DeleteApplication removes an application and its interviews.
func (s *Service) DeleteApplication(ctx context.Context, applicationID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.apps.Delete(ctx, userID, applicationID); err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	s.log.InfoContext(ctx, "application deleted",
		slog.String("user_id", userID.String()),
		slog.String("application_id", applicationID.String()),
	)
	return nil
}

// ListApplications returns a filtered page of applications.
func (s *Service) ListApplications(ctx context.Context, input ListApplicationsInput) ([]domain.Application, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	apps, err := s.apps.List(ctx, userID, input.Filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}
