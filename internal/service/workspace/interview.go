package workspace

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/draft"
)

// InterviewSnapshot is the client view of an interview session.
type InterviewSnapshot = draft.Snapshot[domain.Interview]

// InterviewEdit changes interview fields. Nil fields are unchanged; a
// non-nil Prep replaces the prep map.
type InterviewEdit struct {
	Type        *string
	ScheduledAt *time.Time
	Notes       *string
	Prep        map[string]string
}

// OpenInterview opens (or returns the already open) session for an
// interview.
func (s *Service) OpenInterview(ctx context.Context, interviewID uuid.UUID) (InterviewSnapshot, error) {
	sess, err := open(ctx, s.interviewSessions, interviewID, s.interviews.GetInterview, s.hooks(KindInterview))
	if err != nil {
		return InterviewSnapshot{}, err
	}
	return sess.Snapshot(), nil
}

// InterviewSession returns the current state of an interview session.
func (s *Service) InterviewSession(ctx context.Context, interviewID uuid.UUID) (InterviewSnapshot, error) {
	sess, err := lookup(ctx, s.interviewSessions, interviewID)
	if err != nil {
		return InterviewSnapshot{}, err
	}
	return sess.Snapshot(), nil
}

// BeginInterviewEdit enters Editing.
func (s *Service) BeginInterviewEdit(ctx context.Context, interviewID uuid.UUID) (InterviewSnapshot, error) {
	return begin(ctx, s.interviewSessions, interviewID)
}

// EditInterview changes interview fields of the draft.
func (s *Service) EditInterview(ctx context.Context, interviewID uuid.UUID, e InterviewEdit) (InterviewSnapshot, error) {
	return edit(ctx, s.interviewSessions, interviewID, func(iv *domain.Interview) error {
		if e.Type != nil {
			t := strings.TrimSpace(*e.Type)
			if t == "" {
				return domain.NewValidationError("interview_type", "required")
			}
			iv.Type = t
		}
		if e.ScheduledAt != nil {
			at := *e.ScheduledAt
			iv.ScheduledAt = &at
		}
		if e.Notes != nil {
			iv.Notes = *e.Notes
		}
		if e.Prep != nil {
			iv.Prep = make(map[string]string, len(e.Prep))
			for k, v := range e.Prep {
				if k = strings.TrimSpace(k); k != "" {
					iv.Prep[k] = v
				}
			}
		}
		return nil
	})
}

// ReorderDeck moves the dragged story to the target's position.
func (s *Service) ReorderDeck(ctx context.Context, interviewID, draggedID, targetID uuid.UUID) (InterviewSnapshot, error) {
	return edit(ctx, s.interviewSessions, interviewID, func(iv *domain.Interview) error {
		return iv.ReorderDeck(draggedID, targetID)
	})
}

// AddStory appends a story to the deck.
func (s *Service) AddStory(ctx context.Context, interviewID, storyID uuid.UUID) (InterviewSnapshot, error) {
	return edit(ctx, s.interviewSessions, interviewID, func(iv *domain.Interview) error {
		return iv.AddStory(storyID)
	})
}

// RemoveStory drops a story from the deck.
func (s *Service) RemoveStory(ctx context.Context, interviewID, storyID uuid.UUID) (InterviewSnapshot, error) {
	return edit(ctx, s.interviewSessions, interviewID, func(iv *domain.Interview) error {
		return iv.RemoveStory(storyID)
	})
}

// AddPersona adds an empty persona override set to every deck item.
func (s *Service) AddPersona(ctx context.Context, interviewID uuid.UUID, persona string) (InterviewSnapshot, error) {
	return edit(ctx, s.interviewSessions, interviewID, func(iv *domain.Interview) error {
		return iv.AddPersona(strings.TrimSpace(persona))
	})
}

// RemovePersona removes a persona from every deck item. The default persona
// cannot be removed.
func (s *Service) RemovePersona(ctx context.Context, interviewID uuid.UUID, persona string) (InterviewSnapshot, error) {
	return edit(ctx, s.interviewSessions, interviewID, func(iv *domain.Interview) error {
		return iv.RemovePersona(persona)
	})
}

// SetNote sets one persona note on a deck item. An empty value clears the
// override.
func (s *Service) SetNote(ctx context.Context, interviewID, storyID uuid.UUID, persona, field, value string) (InterviewSnapshot, error) {
	return edit(ctx, s.interviewSessions, interviewID, func(iv *domain.Interview) error {
		item, err := iv.Item(storyID)
		if err != nil {
			return err
		}
		return item.SetNote(persona, field, value)
	})
}

// SaveInterview persists the draft.
func (s *Service) SaveInterview(ctx context.Context, interviewID uuid.UUID) (InterviewSnapshot, error) {
	return save(ctx, s.interviewSessions, interviewID, s.interviews.SaveInterview)
}

// CancelInterview discards the draft.
func (s *Service) CancelInterview(ctx context.Context, interviewID uuid.UUID) (InterviewSnapshot, error) {
	return cancel(ctx, s.interviewSessions, interviewID)
}

// RefreshInterview reloads the canonical interview from the store.
func (s *Service) RefreshInterview(ctx context.Context, interviewID uuid.UUID) (InterviewSnapshot, error) {
	return refresh(ctx, s.interviewSessions, interviewID, s.interviews.GetInterview)
}

// CloseInterview drops the session. A save in flight still completes.
func (s *Service) CloseInterview(ctx context.Context, interviewID uuid.UUID) error {
	return closeSession(ctx, s.interviewSessions, interviewID)
}
