package narrative

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// GetGoals returns the user's weekly goals, or the defaults when none are
// stored.
func (s *Service) GetGoals(ctx context.Context) (*domain.WeeklyGoals, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	g, err := s.goals.Get(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultWeeklyGoals(userID)
		return &def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get goals: %w", err)
	}
	return g, nil
}

// SetGoals stores the user's weekly goals.
func (s *Service) SetGoals(ctx context.Context, input SetGoalsInput) (*domain.WeeklyGoals, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	g, err := s.goals.Upsert(ctx, domain.WeeklyGoals{
		UserID:       userID,
		Applications: input.Applications,
		Contacts:     input.Contacts,
		Posts:        input.Posts,
	})
	if err != nil {
		return nil, fmt.Errorf("set goals: %w", err)
	}

	s.log.InfoContext(ctx, "weekly goals set",
		slog.String("user_id", userID.String()),
		slog.Int("applications", g.Applications),
		slog.Int("contacts", g.Contacts),
		slog.Int("posts", g.Posts),
	)
	return g, nil
}
