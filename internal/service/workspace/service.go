// Package workspace hosts server-side edit sessions. A client opens a
// session on a company or an interview, edits the draft, optionally enriches
// it with research, and then saves or cancels.
package workspace

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/config"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/draft"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/generation"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

type companyStore interface {
	GetCompany(ctx context.Context, companyID uuid.UUID) (*domain.Company, error)
	SaveCompany(ctx context.Context, c domain.Company) (*domain.Company, error)
}

type interviewStore interface {
	GetInterview(ctx context.Context, interviewID uuid.UUID) (*domain.Interview, error)
	SaveInterview(ctx context.Context, iv domain.Interview) (*domain.Interview, error)
}

type researcher interface {
	ResearchCompany(ctx context.Context, req generation.CompanyResearchRequest) (map[string]domain.InfoField, error)
}

type recorder interface {
	ObserveDraft(kind, op string, err error)
}

// Session kinds.
const (
	KindCompany   = "company"
	KindInterview = "interview"
)

// SessionInfo summarizes one open session.
type SessionInfo struct {
	Kind     string      `json:"kind"`
	EntityID uuid.UUID   `json:"entity_id"`
	State    draft.State `json:"state"`
}

// Service owns the per-user session registries.
type Service struct {
	companies  companyStore
	interviews interviewStore
	research   researcher
	metrics    recorder
	log        *slog.Logger

	companySessions   *registry[domain.Company]
	interviewSessions *registry[domain.Interview]
	sweepEvery        time.Duration
}

// NewService creates a workspace service. A nil metrics recorder is allowed.
func NewService(
	log *slog.Logger,
	companies companyStore,
	interviews interviewStore,
	research researcher,
	metrics recorder,
	cfg config.WorkspaceConfig,
) *Service {
	sweepEvery := cfg.IdleTTL / 4
	if sweepEvery <= 0 {
		sweepEvery = time.Minute
	}
	return &Service{
		companies:         companies,
		interviews:        interviews,
		research:          research,
		metrics:           metrics,
		log:               log.With("service", "workspace"),
		companySessions:   newRegistry[domain.Company](cfg.MaxSessionsPerUser, cfg.IdleTTL, time.Now),
		interviewSessions: newRegistry[domain.Interview](cfg.MaxSessionsPerUser, cfg.IdleTTL, time.Now),
		sweepEvery:        sweepEvery,
	}
}

// Run evicts idle sessions until ctx is done.
func (s *Service) Run(ctx context.Context) error {
	t := time.NewTicker(s.sweepEvery)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if n := s.companySessions.sweep() + s.interviewSessions.sweep(); n > 0 {
				s.log.Info("idle edit sessions evicted", slog.Int("count", n))
			}
		}
	}
}

// Sessions lists the caller's open sessions.
func (s *Service) Sessions(ctx context.Context) ([]SessionInfo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	out := []SessionInfo{}
	for _, sess := range s.companySessions.list(userID) {
		out = append(out, SessionInfo{Kind: KindCompany, EntityID: sess.ID(), State: sess.State()})
	}
	for _, sess := range s.interviewSessions.list(userID) {
		out = append(out, SessionInfo{Kind: KindInterview, EntityID: sess.ID(), State: sess.State()})
	}
	return out, nil
}

func (s *Service) hooks(kind string) draft.Hooks {
	return draft.Hooks{
		OnSave: func(err error) {
			if s.metrics != nil {
				s.metrics.ObserveDraft(kind, "save", err)
			}
		},
		OnEnrich: func(err error) {
			if s.metrics != nil {
				s.metrics.ObserveDraft(kind, "enrich", err)
			}
		},
	}
}

// lookup resolves the caller's session for entityID.
func lookup[T draft.Entity[T]](ctx context.Context, r *registry[T], entityID uuid.UUID) (*draft.Session[T], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return r.get(userID, entityID)
}

// open returns the caller's session for entityID, loading the canonical
// entity when none is open yet.
func open[T draft.Entity[T]](
	ctx context.Context,
	r *registry[T],
	entityID uuid.UUID,
	load func(context.Context, uuid.UUID) (*T, error),
	hooks draft.Hooks,
) (*draft.Session[T], error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if sess, err := r.get(userID, entityID); err == nil {
		return sess, nil
	}

	canonical, err := load(ctx, entityID)
	if err != nil {
		return nil, err
	}
	return r.put(userID, draft.New(*canonical, hooks))
}

func closeSession[T draft.Entity[T]](ctx context.Context, r *registry[T], entityID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !r.remove(userID, entityID) {
		return ErrSessionNotFound
	}
	return nil
}

// edit runs fn against the draft and returns the resulting snapshot.
func edit[T draft.Entity[T]](ctx context.Context, r *registry[T], entityID uuid.UUID, fn func(*T) error) (draft.Snapshot[T], error) {
	sess, err := lookup(ctx, r, entityID)
	if err != nil {
		return draft.Snapshot[T]{}, err
	}
	if err := sess.TryEdit(fn); err != nil {
		return draft.Snapshot[T]{}, err
	}
	return sess.Snapshot(), nil
}

// save persists the draft. The store call is detached from ctx cancellation
// so a client that goes away does not abort a write already in progress.
func save[T draft.Entity[T]](ctx context.Context, r *registry[T], entityID uuid.UUID, store func(context.Context, T) (*T, error)) (draft.Snapshot[T], error) {
	sess, err := lookup(ctx, r, entityID)
	if err != nil {
		return draft.Snapshot[T]{}, err
	}

	_, err = sess.Save(context.WithoutCancel(ctx), func(ctx context.Context, d T) (T, error) {
		out, err := store(ctx, d)
		if err != nil {
			var zero T
			return zero, err
		}
		return *out, nil
	})
	return sess.Snapshot(), err
}

func cancel[T draft.Entity[T]](ctx context.Context, r *registry[T], entityID uuid.UUID) (draft.Snapshot[T], error) {
	sess, err := lookup(ctx, r, entityID)
	if err != nil {
		return draft.Snapshot[T]{}, err
	}
	if err := sess.Cancel(); err != nil {
		return draft.Snapshot[T]{}, err
	}
	return sess.Snapshot(), nil
}

func begin[T draft.Entity[T]](ctx context.Context, r *registry[T], entityID uuid.UUID) (draft.Snapshot[T], error) {
	sess, err := lookup(ctx, r, entityID)
	if err != nil {
		return draft.Snapshot[T]{}, err
	}
	sess.Begin()
	return sess.Snapshot(), nil
}

// refresh re-reads the canonical entity and hands it to the session.
func refresh[T draft.Entity[T]](ctx context.Context, r *registry[T], entityID uuid.UUID, load func(context.Context, uuid.UUID) (*T, error)) (draft.Snapshot[T], error) {
	sess, err := lookup(ctx, r, entityID)
	if err != nil {
		return draft.Snapshot[T]{}, err
	}
	canonical, err := load(ctx, entityID)
	if err != nil {
		return draft.Snapshot[T]{}, err
	}
	if err := sess.Replace(*canonical); err != nil {
		return draft.Snapshot[T]{}, err
	}
	return sess.Snapshot(), nil
}
