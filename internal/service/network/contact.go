package network

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// CreateContact creates a contact, tagging it with the given narratives.
// With no narratives given, the active narrative from the context is used.
func (s *Service) CreateContact(ctx context.Context, input CreateContactInput) (*domain.Contact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.ContactStatusToContact
	}
	narratives := domain.UniqueIDs(input.NarrativeIDs)
	if len(narratives) == 0 {
		if id, ok := ctxutil.NarrativeIDFromCtx(ctx); ok {
			narratives = []uuid.UUID{id}
		}
	}

	var created *domain.Contact
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.contacts.Create(txCtx, &domain.Contact{
			UserID:         userID,
			CompanyID:      input.CompanyID,
			FirstName:      strings.TrimSpace(input.FirstName),
			LastName:       strings.TrimSpace(input.LastName),
			JobTitle:       strings.TrimSpace(input.JobTitle),
			LinkedInURL:    strings.TrimSpace(input.LinkedInURL),
			Status:         status,
			IsReferral:     input.IsReferral,
			NarrativeIDs:   narratives,
			AlignmentScore: input.AlignmentScore,
		})
		if err != nil {
			return fmt.Errorf("create contact: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "contact created",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", created.ID.String()),
		slog.Int("narratives", len(narratives)),
	)
	return created, nil
}

// GetContact returns a contact with its message thread.
func (s *Service) GetContact(ctx context.Context, contactID uuid.UUID) (*domain.Contact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.contacts.GetByID(ctx, userID, contactID)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	msgs, err := s.messages.List(ctx, userID, domain.MessageFilter{ContactID: &contactID, Limit: maxPageSize})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	c.Messages = msgs
	return c, nil
}

// UpdateContact applies a partial update.
func (s *Service) UpdateContact(ctx context.Context, input UpdateContactInput) (*domain.Contact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ContactUpdateParams{
		CompanyID:      input.CompanyID,
		FirstName:      trimmed(input.FirstName),
		LastName:       trimmed(input.LastName),
		JobTitle:       trimmed(input.JobTitle),
		LinkedInURL:    trimmed(input.LinkedInURL),
		Status:         input.Status,
		IsReferral:     input.IsReferral,
		AlignmentScore: input.AlignmentScore,
	}
	if input.NarrativeIDs != nil {
		params.NarrativeIDs = domain.UniqueIDs(input.NarrativeIDs)
	}

	var updated *domain.Contact
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.contacts.Update(txCtx, userID, input.ContactID, params)
		if err != nil {
			return fmt.Errorf("update contact: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "contact updated",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", input.ContactID.String()),
	)
	return updated, nil
}

// TagNarrative adds a narrative to the contact's tag set. Tagging twice is a
// no-op.
func (s *Service) TagNarrative(ctx context.Context, contactID, narrativeID uuid.UUID) (*domain.Contact, error) {
	return s.retag(ctx, contactID, func(c *domain.Contact) bool { return c.AddNarrative(narrativeID) })
}

// UntagNarrative removes a narrative from the contact's tag set.
func (s *Service) UntagNarrative(ctx context.Context, contactID, narrativeID uuid.UUID) (*domain.Contact, error) {
	return s.retag(ctx, contactID, func(c *domain.Contact) bool { return c.RemoveNarrative(narrativeID) })
}

func (s *Service) retag(ctx context.Context, contactID uuid.UUID, change func(*domain.Contact) bool) (*domain.Contact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var out *domain.Contact
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		c, err := s.contacts.GetByID(txCtx, userID, contactID)
		if err != nil {
			return fmt.Errorf("get contact: %w", err)
		}
		if !change(c) {
			out = c
			return nil
		}
		out, err = s.contacts.Update(txCtx, userID, contactID, domain.ContactUpdateParams{NarrativeIDs: c.NarrativeIDs})
		if err != nil {
			return fmt.Errorf("update contact narratives: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteContact removes a contact and its messages.
func (s *Service) DeleteContact(ctx context.Context, contactID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.contacts.Delete(ctx, userID, contactID); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact deleted",
		slog.String("user_id", userID.String()),
		slog.String("contact_id", contactID.String()),
	)
	return nil
}

// ListContacts returns a filtered page of contacts.
func (s *Service) ListContacts(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validatePage(filter.Limit, filter.Offset); err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.IsValid() {
		return nil, domain.NewValidationError("status", "unknown status")
	}

	out, err := s.contacts.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return out, nil
}
