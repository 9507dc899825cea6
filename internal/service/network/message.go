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

// CreateMessage logs a message against a contact, company or application.
func (s *Service) CreateMessage(ctx context.Context, input CreateMessageInput) (*domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	typ := input.Type
	if typ == "" {
		typ = domain.MessageTypeNote
	}

	m, err := s.messages.Create(ctx, &domain.Message{
		UserID:          userID,
		ContactID:       input.ContactID,
		CompanyID:       input.CompanyID,
		ApplicationID:   input.ApplicationID,
		Type:            typ,
		Content:         strings.TrimSpace(input.Content),
		FollowUpDueDate: input.FollowUpDueDate,
		IsUserSent:      input.IsUserSent,
	})
	if err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.log.InfoContext(ctx, "message created",
		slog.String("user_id", userID.String()),
		slog.String("message_id", m.ID.String()),
		slog.String("type", string(m.Type)),
	)
	return m, nil
}

// ListMessages returns messages matching the filter in chronological order.
func (s *Service) ListMessages(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validatePage(filter.Limit, filter.Offset); err != nil {
		return nil, err
	}

	out, err := s.messages.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return out, nil
}

// DeleteMessage removes a message.
func (s *Service) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.messages.Delete(ctx, userID, messageID); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
