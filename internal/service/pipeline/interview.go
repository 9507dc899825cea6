package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// InterviewDeck is an interview together with its resolved story deck.
type InterviewDeck struct {
	Interview   *domain.Interview         `json:"interview"`
	NarrativeID *uuid.UUID                `json:"narrative_id,omitempty"`
	Items       []domain.ResolvedDeckItem `json:"items"`
}

// CreateInterview schedules an interview on one of the user's applications.
func (s *Service) CreateInterview(ctx context.Context, input CreateInterviewInput) (*domain.Interview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	iv, err := s.interviews.Create(ctx, &domain.Interview{
		UserID:        userID,
		ApplicationID: input.ApplicationID,
		Type:          strings.TrimSpace(input.Type),
		ScheduledAt:   input.ScheduledAt,
		ContactIDs:    domain.UniqueIDs(input.ContactIDs),
		Deck:          []domain.DeckItem{},
		Notes:         input.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("create interview: %w", err)
	}

	s.log.InfoContext(ctx, "interview created",
		slog.String("user_id", userID.String()),
		slog.String("application_id", input.ApplicationID.String()),
		slog.String("interview_id", iv.ID.String()),
	)
	return iv, nil
}

// GetInterview returns one interview.
func (s *Service) GetInterview(ctx context.Context, interviewID uuid.UUID) (*domain.Interview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	iv, err := s.interviews.GetByID(ctx, userID, interviewID)
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}
	return iv, nil
}

// UpdateInterview applies a partial update of the interview details. The
// story deck is edited through SaveInterview.
func (s *Service) UpdateInterview(ctx context.Context, input UpdateInterviewInput) (*domain.Interview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.InterviewUpdateParams{
		ScheduledAt: input.ScheduledAt,
		Prep:        input.Prep,
		Notes:       input.Notes,
	}
	if input.Type != nil {
		t := strings.TrimSpace(*input.Type)
		params.Type = &t
	}
	if input.ContactIDs != nil {
		params.ContactIDs = domain.UniqueIDs(input.ContactIDs)
	}

	iv, err := s.interviews.Update(ctx, userID, input.InterviewID, params)
	if err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}

	s.log.InfoContext(ctx, "interview updated",
		slog.String("user_id", userID.String()),
		slog.String("interview_id", input.InterviewID.String()),
	)
	return iv, nil
}

// SaveInterview writes the full editable state of an interview, including
// its story deck, and returns the stored entity.
func (s *Service) SaveInterview(ctx context.Context, iv domain.Interview) (*domain.Interview, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validateDeck(iv.Deck); err != nil {
		return nil, err
	}

	deck := make([]domain.DeckItem, len(iv.Deck))
	for i, item := range iv.Deck {
		deck[i] = item.Clone()
		deck[i].Order = i
	}
	typ := strings.TrimSpace(iv.Type)
	notes := iv.Notes

	saved, err := s.interviews.Update(ctx, userID, iv.ID, domain.InterviewUpdateParams{
		Type:        &typ,
		ScheduledAt: iv.ScheduledAt,
		ContactIDs:  domain.UniqueIDs(iv.ContactIDs),
		Deck:        deck,
		Prep:        iv.Prep,
		Notes:       &notes,
	})
	if err != nil {
		return nil, fmt.Errorf("save interview: %w", err)
	}

	s.log.InfoContext(ctx, "interview saved",
		slog.String("user_id", userID.String()),
		slog.String("interview_id", iv.ID.String()),
		slog.Int("deck_size", len(deck)),
	)
	return saved, nil
}

// DeleteInterview removes an interview.
func (s *Service) DeleteInterview(ctx context.Context, interviewID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.interviews.Delete(ctx, userID, interviewID); err != nil {
		return fmt.Errorf("delete interview: %w", err)
	}
	return nil
}

// GetInterviewDeck resolves the interview's story deck against the
// application's narrative, or the active narrative from the context when the
// application has none. Stories missing from the narrative stay in the deck
// and are marked unavailable.
func (s *Service) GetInterviewDeck(ctx context.Context, interviewID uuid.UUID) (*InterviewDeck, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	iv, err := s.interviews.GetByID(ctx, userID, interviewID)
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}
	app, err := s.apps.GetByID(ctx, userID, iv.ApplicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	narrativeID := app.NarrativeID
	if narrativeID == nil {
		if id, ok := ctxutil.NarrativeIDFromCtx(ctx); ok {
			narrativeID = &id
		}
	}

	var narrative *domain.Narrative
	if narrativeID != nil {
		narrative, err = s.narratives.GetByID(ctx, userID, *narrativeID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			narrativeID = nil
		case err != nil:
			return nil, fmt.Errorf("get narrative: %w", err)
		}
	}

	return &InterviewDeck{
		Interview:   iv,
		NarrativeID: narrativeID,
		Items:       domain.ResolveDeck(iv.Deck, narrative),
	}, nil
}

func validateDeck(deck []domain.DeckItem) error {
	seen := make(map[uuid.UUID]bool, len(deck))
	for _, item := range deck {
		if item.StoryID == uuid.Nil {
			return domain.NewValidationError("story_deck", "story id required")
		}
		if seen[item.StoryID] {
			return domain.NewValidationError("story_deck", "duplicate story "+item.StoryID.String())
		}
		seen[item.StoryID] = true
	}
	return nil
}
