package insight

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// Dashboard is the aggregated home view.
type Dashboard struct {
	Funnel          []FunnelBucket     `json:"funnel"`
	FunnelTotal     int                `json:"funnel_total"`
	Weekly          Weekly             `json:"weekly"`
	Alignment       float64            `json:"alignment_score"`
	ActiveNarrative *NarrativeTraction `json:"active_narrative,omitempty"`
	GeneratedAt     time.Time          `json:"generated_at"`
}

// GetDashboard derives the dashboard for the authenticated user. Traction is
// included when the request carries an active narrative.
func (s *Service) GetDashboard(ctx context.Context) (Dashboard, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Dashboard{}, domain.ErrUnauthorized
	}

	cols, goals, err := s.load(ctx, userID)
	if err != nil {
		return Dashboard{}, err
	}

	now := s.now()
	funnel := Funnel(cols.Contacts, cols.Applications)
	d := Dashboard{
		Funnel:      funnel,
		FunnelTotal: FunnelTotal(funnel),
		Weekly:      WeeklyProgress(now, s.loc, goals, cols.Applications, cols.Contacts, cols.Posts),
		Alignment:   AlignmentScore(cols.Applications),
		GeneratedAt: now.UTC(),
	}
	if narrativeID, ok := ctxutil.NarrativeIDFromCtx(ctx); ok {
		t := Traction(narrativeID, cols)
		d.ActiveNarrative = &t
	}

	s.log.DebugContext(ctx, "dashboard derived",
		slog.String("user_id", userID.String()),
		slog.Int("applications", len(cols.Applications)),
		slog.Int("contacts", len(cols.Contacts)),
	)

	return d, nil
}

// CompareNarratives returns A/B traction for two narratives.
func (s *Service) CompareNarratives(ctx context.Context, a, b uuid.UUID) (Comparison, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return Comparison{}, domain.ErrUnauthorized
	}
	if a == uuid.Nil && b == uuid.Nil {
		return Comparison{}, domain.NewValidationError("narratives", "at least one narrative is required")
	}

	cols, _, err := s.load(ctx, userID)
	if err != nil {
		return Comparison{}, err
	}
	return CompareNarratives(a, b, cols), nil
}

// MatchCompetitors matches a company's competitors text against the user's
// other companies.
func (s *Service) MatchCompetitors(ctx context.Context, companyID uuid.UUID) ([]CompetitorMatch, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	company, err := s.companies.GetByID(ctx, userID, companyID)
	if err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}
	all, err := s.companies.ListAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	others := make([]domain.Company, 0, len(all))
	for _, c := range all {
		if c.ID != company.ID {
			others = append(others, c)
		}
	}
	return MatchCompetitors(company.Competitors, others), nil
}

func (s *Service) load(ctx context.Context, userID uuid.UUID) (Collections, domain.WeeklyGoals, error) {
	var (
		cols  Collections
		goals domain.WeeklyGoals
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cols.Applications, err = s.apps.ListAll(gctx, userID)
		if err != nil {
			return fmt.Errorf("list applications: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		cols.Contacts, err = s.contacts.ListAll(gctx, userID)
		if err != nil {
			return fmt.Errorf("list contacts: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		cols.Posts, err = s.posts.ListAll(gctx, userID)
		if err != nil {
			return fmt.Errorf("list posts: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		cols.Engagements, err = s.engagements.ListAll(gctx, userID)
		if err != nil {
			return fmt.Errorf("list engagements: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		stored, err := s.goals.Get(gctx, userID)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			goals = domain.DefaultWeeklyGoals(userID)
		case err != nil:
			return fmt.Errorf("get weekly goals: %w", err)
		default:
			goals = *stored
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return Collections{}, domain.WeeklyGoals{}, err
	}
	return cols, goals, nil
}
