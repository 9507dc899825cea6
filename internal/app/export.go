package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

type applicationLister interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Application, error)
}

type companyLister interface {
	ListAll(ctx context.Context, userID uuid.UUID) ([]domain.Company, error)
}

type applicationExporter interface {
	ExportApplication(ctx context.Context, app domain.Application, companyName string) (string, error)
}

// ExportResult counts what an export run did.
type ExportResult struct {
	Exported int
	Skipped  int
	Failed   int
}

// ExportApplications pushes the user's applications to the external
// tracker. Draft applications are skipped. A failed page does not stop the
// run; the first failure is returned with the totals.
func ExportApplications(
	ctx context.Context,
	log *slog.Logger,
	userID uuid.UUID,
	apps applicationLister,
	companies companyLister,
	out applicationExporter,
) (ExportResult, error) {
	var res ExportResult

	list, err := apps.ListAll(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("list applications: %w", err)
	}
	cs, err := companies.ListAll(ctx, userID)
	if err != nil {
		return res, fmt.Errorf("list companies: %w", err)
	}
	names := make(map[uuid.UUID]string, len(cs))
	for _, c := range cs {
		names[c.ID] = c.Name
	}

	var firstErr error
	for _, a := range list {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if a.Status == domain.ApplicationStatusDraft {
			res.Skipped++
			continue
		}
		pageID, err := out.ExportApplication(ctx, a, names[a.CompanyID])
		if err != nil {
			res.Failed++
			log.WarnContext(ctx, "export application failed",
				slog.String("application_id", a.ID.String()),
				slog.String("error", err.Error()),
			)
			if firstErr == nil {
				firstErr = fmt.Errorf("export application %s: %w", a.ID, err)
			}
			continue
		}
		res.Exported++
		log.DebugContext(ctx, "application exported",
			slog.String("application_id", a.ID.String()),
			slog.String("page_id", pageID),
		)
	}
	return res, firstErr
}
