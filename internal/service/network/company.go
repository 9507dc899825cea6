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

// CreateCompany creates a company for the authenticated user.
func (s *Service) CreateCompany(ctx context.Context, input CreateCompanyInput) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	c, err := s.companies.Create(ctx, &domain.Company{
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Website:     strings.TrimSpace(input.Website),
		Competitors: strings.TrimSpace(input.Competitors),
		Info:        normalizeInfo(input.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}

	s.log.InfoContext(ctx, "company created",
		slog.String("user_id", userID.String()),
		slog.String("company_id", c.ID.String()),
	)
	return c, nil
}

// GetCompany returns one company.
func (s *Service) GetCompany(ctx context.Context, companyID uuid.UUID) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	c, err := s.companies.GetByID(ctx, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	return c, nil
}

// UpdateCompany applies a partial update. Info fields are merged into the
// stored ones.
func (s *Service) UpdateCompany(ctx context.Context, input UpdateCompanyInput) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CompanyUpdateParams{
		Website:     trimmed(input.Website),
		Competitors: trimmed(input.Competitors),
		Name:        trimmed(input.Name),
	}

	var updated *domain.Company
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.Info != nil {
			old, err := s.companies.GetByID(txCtx, userID, input.CompanyID)
			if err != nil {
				return fmt.Errorf("get company: %w", err)
			}
			old.MergeInfo(normalizeInfo(input.Info))
			params.Info = old.Info
		}

		var err error
		updated, err = s.companies.Update(txCtx, userID, input.CompanyID, params)
		if err != nil {
			return fmt.Errorf("update company: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "company updated",
		slog.String("user_id", userID.String()),
		slog.String("company_id", input.CompanyID.String()),
	)
	return updated, nil
}

// SaveCompany writes the full editable state of a company and returns the
// stored entity. The info map replaces the stored one.
func (s *Service) SaveCompany(ctx context.Context, c domain.Company) (*domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input := CreateCompanyInput{Name: c.Name, Info: c.Info}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(c.Name)
	website := strings.TrimSpace(c.Website)
	competitors := strings.TrimSpace(c.Competitors)

	saved, err := s.companies.Update(ctx, userID, c.ID, domain.CompanyUpdateParams{
		Name:        &name,
		Website:     &website,
		Competitors: &competitors,
		Info:        normalizeInfo(c.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("save company: %w", err)
	}

	s.log.InfoContext(ctx, "company saved",
		slog.String("user_id", userID.String()),
		slog.String("company_id", c.ID.String()),
		slog.Int("info_fields", len(saved.Info)),
	)
	return saved, nil
}

// DeleteCompany removes a company and its applications.
func (s *Service) DeleteCompany(ctx context.Context, companyID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.companies.Delete(ctx, userID, companyID); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}

	s.log.InfoContext(ctx, "company deleted",
		slog.String("user_id", userID.String()),
		slog.String("company_id", companyID.String()),
	)
	return nil
}

// ListCompanies returns a page of companies ordered by name.
func (s *Service) ListCompanies(ctx context.Context, page domain.Page) ([]domain.Company, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := validatePage(page.Limit, page.Offset); err != nil {
		return nil, err
	}

	out, err := s.companies.List(ctx, userID, page)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	return out, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}
