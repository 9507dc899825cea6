// Package generation renders closed request types into prompts and runs
// them against the configured text generation provider.
package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/config"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// ErrDisabled is returned when no provider is configured.
var ErrDisabled = fmt.Errorf("generation is not configured: %w", domain.ErrUnavailable)

type generator interface {
	Complete(ctx context.Context, p domain.Prompt) (string, error)
}

type narrativeRepo interface {
	GetByID(ctx context.Context, userID, narrativeID uuid.UUID) (*domain.Narrative, error)
}

type recorder interface {
	ObserveGeneration(templateID, outcome string, elapsed time.Duration)
}

// Outcomes reported to the recorder.
const (
	OutcomeOK        = "ok"
	OutcomeError     = "error"
	OutcomeRejected  = "rejected"
	OutcomeMalformed = "malformed"
)

// Service runs generation requests.
type Service struct {
	gen        generator
	narratives narrativeRepo
	metrics    recorder
	breaker    *gobreaker.CircuitBreaker
	cfg        config.GenerationConfig
	log        *slog.Logger
}

// NewService creates a generation service. A nil gen disables generation;
// a nil metrics recorder is allowed.
func NewService(
	log *slog.Logger,
	gen generator,
	narratives narrativeRepo,
	metrics recorder,
	cfg config.GenerationConfig,
) *Service {
	log = log.With("service", "generation")
	return &Service{
		gen:        gen,
		narratives: narratives,
		metrics:    metrics,
		breaker:    newBreaker(cfg, log),
		cfg:        cfg,
		log:        log,
	}
}

// Enabled reports whether a provider is configured.
func (s *Service) Enabled() bool { return s.gen != nil }

// StrategicMessages returns ranked outreach message drafts.
func (s *Service) StrategicMessages(ctx context.Context, req StrategicMessageRequest) ([]domain.Artifact, error) {
	text, err := s.run(ctx, req)
	if err != nil {
		return nil, err
	}

	limit := req.Count
	if limit == 0 {
		limit = defaultCount
	}
	out, err := parseRanked(text, limit)
	if err != nil {
		s.observe(req.TemplateID(), OutcomeMalformed, 0)
		return nil, err
	}
	return out, nil
}

// BrandVoice returns one post draft.
func (s *Service) BrandVoice(ctx context.Context, req BrandVoiceRequest) (*domain.Artifact, error) {
	text, err := s.run(ctx, req)
	if err != nil {
		return nil, err
	}

	a, err := parseSingle(text)
	if err != nil {
		s.observe(req.TemplateID(), OutcomeMalformed, 0)
		return nil, err
	}
	return &a, nil
}

// ResearchCompany returns researched info fields keyed by info key.
func (s *Service) ResearchCompany(ctx context.Context, req CompanyResearchRequest) (map[string]domain.InfoField, error) {
	text, err := s.run(ctx, req)
	if err != nil {
		return nil, err
	}

	fields, err := parseResearch(text, req.fields())
	if err != nil {
		s.observe(req.TemplateID(), OutcomeMalformed, 0)
		return nil, err
	}
	return fields, nil
}

func (s *Service) run(ctx context.Context, req Request) (string, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}

	if err := req.Validate(); err != nil {
		return "", err
	}

	if s.gen == nil {
		return "", ErrDisabled
	}

	var n *domain.Narrative
	if explicit, wanted := req.narrative(); wanted {
		var err error
		if n, err = s.narrative(ctx, userID, explicit); err != nil {
			return "", err
		}
	}

	prompt, err := render(req, n, s.cfg.MaxTokens)
	if err != nil {
		return "", err
	}

	start := time.Now()
	callCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	out, err := s.breaker.Execute(func() (any, error) {
		return s.gen.Complete(callCtx, prompt)
	})
	elapsed := time.Since(start)

	switch {
	case isBreakerRejection(err):
		s.observe(req.TemplateID(), OutcomeRejected, elapsed)
		return "", fmt.Errorf("generate %s: %w: %w", req.TemplateID(), domain.ErrUnavailable, err)
	case err != nil:
		s.observe(req.TemplateID(), OutcomeError, elapsed)
		s.log.ErrorContext(ctx, "generation failed",
			slog.String("user_id", userID.String()),
			slog.String("template", req.TemplateID()),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		return "", fmt.Errorf("generate %s: %w: %w", req.TemplateID(), domain.ErrUnavailable, err)
	}

	s.observe(req.TemplateID(), OutcomeOK, elapsed)
	s.log.InfoContext(ctx, "content generated",
		slog.String("user_id", userID.String()),
		slog.String("template", req.TemplateID()),
		slog.Duration("elapsed", elapsed),
	)
	return out.(string), nil
}

// narrative loads the explicit narrative, falling back to the active one.
// A stale active narrative is ignored; a missing explicit one is an error.
func (s *Service) narrative(ctx context.Context, userID uuid.UUID, explicit *uuid.UUID) (*domain.Narrative, error) {
	id, fromCtx := uuid.Nil, false
	switch {
	case explicit != nil:
		id = *explicit
	default:
		id, fromCtx = ctxutil.NarrativeIDFromCtx(ctx)
		if !fromCtx {
			return nil, nil
		}
	}

	n, err := s.narratives.GetByID(ctx, userID, id)
	if err != nil {
		if fromCtx && errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get narrative: %w", err)
	}
	return n, nil
}

func (s *Service) observe(templateID, outcome string, elapsed time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveGeneration(templateID, outcome, elapsed)
	}
}
