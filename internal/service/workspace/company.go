package workspace

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/draft"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/generation"
)

// CompanySnapshot is the client view of a company session.
type CompanySnapshot = draft.Snapshot[domain.Company]

// CompanyEdit changes top-level company fields. Nil fields are unchanged.
type CompanyEdit struct {
	Name        *string
	Website     *string
	Competitors *string
}

// OpenCompany opens (or returns the already open) session for a company.
func (s *Service) OpenCompany(ctx context.Context, companyID uuid.UUID) (CompanySnapshot, error) {
	sess, err := open(ctx, s.companySessions, companyID, s.companies.GetCompany, s.hooks(KindCompany))
	if err != nil {
		return CompanySnapshot{}, err
	}
	return sess.Snapshot(), nil
}

// CompanySession returns the current state of a company session.
func (s *Service) CompanySession(ctx context.Context, companyID uuid.UUID) (CompanySnapshot, error) {
	sess, err := lookup(ctx, s.companySessions, companyID)
	if err != nil {
		return CompanySnapshot{}, err
	}
	return sess.Snapshot(), nil
}

// BeginCompanyEdit enters Editing.
func (s *Service) BeginCompanyEdit(ctx context.Context, companyID uuid.UUID) (CompanySnapshot, error) {
	return begin(ctx, s.companySessions, companyID)
}

// EditCompany changes top-level fields of the draft.
func (s *Service) EditCompany(ctx context.Context, companyID uuid.UUID, e CompanyEdit) (CompanySnapshot, error) {
	return edit(ctx, s.companySessions, companyID, func(c *domain.Company) error {
		if e.Name != nil {
			name := strings.TrimSpace(*e.Name)
			if name == "" {
				return domain.NewValidationError("name", "required")
			}
			c.Name = name
		}
		if e.Website != nil {
			c.Website = strings.TrimSpace(*e.Website)
		}
		if e.Competitors != nil {
			c.Competitors = strings.TrimSpace(*e.Competitors)
		}
		return nil
	})
}

// EditCompanyInfo changes the text of one info field and keeps its source.
func (s *Service) EditCompanyInfo(ctx context.Context, companyID uuid.UUID, key, text string) (CompanySnapshot, error) {
	return edit(ctx, s.companySessions, companyID, func(c *domain.Company) error {
		return c.SetInfoText(key, text)
	})
}

// ResearchCompany enriches the draft with researched info fields. A failed
// research call is reported in the snapshot's enrichment error and does not
// fail the request.
func (s *Service) ResearchCompany(ctx context.Context, companyID uuid.UUID, fields []string) (CompanySnapshot, error) {
	sess, err := lookup(ctx, s.companySessions, companyID)
	if err != nil {
		return CompanySnapshot{}, err
	}

	err = sess.Enrich(context.WithoutCancel(ctx), func(ctx context.Context, snap domain.Company) (func(*domain.Company), error) {
		found, err := s.research.ResearchCompany(ctx, generation.CompanyResearchRequest{
			CompanyName: snap.Name,
			Website:     snap.Website,
			Fields:      fields,
		})
		if err != nil {
			return nil, err
		}
		return func(c *domain.Company) { c.MergeInfo(found) }, nil
	})
	if err != nil {
		s.log.WarnContext(ctx, "company research failed",
			slog.String("company_id", companyID.String()),
			slog.String("error", err.Error()),
		)
	}
	return sess.Snapshot(), nil
}

// SaveCompany persists the draft.
func (s *Service) SaveCompany(ctx context.Context, companyID uuid.UUID) (CompanySnapshot, error) {
	return save(ctx, s.companySessions, companyID, s.companies.SaveCompany)
}

// CancelCompany discards the draft.
func (s *Service) CancelCompany(ctx context.Context, companyID uuid.UUID) (CompanySnapshot, error) {
	return cancel(ctx, s.companySessions, companyID)
}

// RefreshCompany reloads the canonical company from the store.
func (s *Service) RefreshCompany(ctx context.Context, companyID uuid.UUID) (CompanySnapshot, error) {
	return refresh(ctx, s.companySessions, companyID, s.companies.GetCompany)
}

// CloseCompany drops the session. A save in flight still completes.
func (s *Service) CloseCompany(ctx context.Context, companyID uuid.UUID) error {
	return closeSession(ctx, s.companySessions, companyID)
}
