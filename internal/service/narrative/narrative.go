package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// CreateNarrative creates a narrative. Stories without an ID get one.
func (s *Service) CreateNarrative(ctx context.Context, input CreateNarrativeInput) (*domain.Narrative, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	n, err := s.narratives.Create(ctx, &domain.Narrative{
		UserID:               userID,
		Name:                 strings.TrimSpace(input.Name),
		DesiredTitle:         strings.TrimSpace(input.DesiredTitle),
		PositioningStatement: strings.TrimSpace(input.PositioningStatement),
		SignatureCapability:  strings.TrimSpace(input.SignatureCapability),
		Stories:              toStories(input.Stories),
	})
	if err != nil {
		return nil, fmt.Errorf("create narrative: %w", err)
	}

	s.log.InfoContext(ctx, "narrative created",
		slog.String("user_id", userID.String()),
		slog.String("narrative_id", n.ID.String()),
		slog.Int("stories", len(n.Stories)),
	)
	return n, nil
}

// GetNarrative returns one narrative with its stories.
func (s *Service) GetNarrative(ctx context.Context, narrativeID uuid.UUID) (*domain.Narrative, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	n, err := s.narratives.GetByID(ctx, userID, narrativeID)
	if err != nil {
		return nil, fmt.Errorf("get narrative: %w", err)
	}
	return n, nil
}

// UpdateNarrative applies a partial update.
func (s *Service) UpdateNarrative(ctx context.Context, input UpdateNarrativeInput) (*domain.Narrative, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.NarrativeUpdateParams{
		Name:                 trimmed(input.Name),
		DesiredTitle:         trimmed(input.DesiredTitle),
		PositioningStatement: trimmed(input.PositioningStatement),
		SignatureCapability:  trimmed(input.SignatureCapability),
	}
	if input.Stories != nil {
		params.Stories = toStories(input.Stories)
	}

	n, err := s.narratives.Update(ctx, userID, input.NarrativeID, params)
	if err != nil {
		return nil, fmt.Errorf("update narrative: %w", err)
	}

	s.log.InfoContext(ctx, "narrative updated",
		slog.String("user_id", userID.String()),
		slog.String("narrative_id", n.ID.String()),
	)
	return n, nil
}

// DeleteNarrative deletes a narrative. References from applications and
// posts are cleared by the store.
func (s *Service) DeleteNarrative(ctx context.Context, narrativeID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.narratives.Delete(ctx, userID, narrativeID); err != nil {
		return fmt.Errorf("delete narrative: %w", err)
	}

	s.log.InfoContext(ctx, "narrative deleted",
		slog.String("user_id", userID.String()),
		slog.String("narrative_id", narrativeID.String()),
	)
	return nil
}

// ListNarratives returns all of the user's narratives, oldest first.
func (s *Service) ListNarratives(ctx context.Context) ([]domain.Narrative, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	list, err := s.narratives.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list narratives: %w", err)
	}
	return list, nil
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}
