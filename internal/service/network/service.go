// Package network manages companies, contacts and the message threads
// attached to them.
package network

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

type companyRepo interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, userID, companyID uuid.UUID) (*domain.Company, error)
	Update(ctx context.Context, userID, companyID uuid.UUID, params domain.CompanyUpdateParams) (*domain.Company, error)
	Delete(ctx context.Context, userID, companyID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, page domain.Page) ([]domain.Company, error)
}

type contactRepo interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, userID, contactID uuid.UUID) (*domain.Contact, error)
	Update(ctx context.Context, userID, contactID uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error)
	Delete(ctx context.Context, userID, contactID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.ContactFilter) ([]domain.Contact, error)
}

type messageRepo interface {
	Create(ctx context.Context, m *domain.Message) (*domain.Message, error)
	Delete(ctx context.Context, userID, messageID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter domain.MessageFilter) ([]domain.Message, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides network operations.
type Service struct {
	companies companyRepo
	contacts  contactRepo
	messages  messageRepo
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new network service.
func NewService(
	log *slog.Logger,
	companies companyRepo,
	contacts contactRepo,
	messages messageRepo,
	tx txManager,
) *Service {
	return &Service{
		companies: companies,
		contacts:  contacts,
		messages:  messages,
		tx:        tx,
		log:       log.With("service", "network"),
	}
}
