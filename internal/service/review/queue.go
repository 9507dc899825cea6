package review

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

const (
	maxJustificationLen = 2000
	maxTitleLen         = 300
)

// SubmitInput holds a job posting with its automated recommendation.
type SubmitInput struct {
	Title       string
	CompanyName string
	URL         string
	Recommended bool
	Confidence  *float64
	Rationale   string
}

// Validate checks all fields and collects all errors.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}
	if strings.TrimSpace(i.CompanyName) == "" {
		errs = append(errs, domain.FieldError{Field: "company_name", Message: "required"})
	}
	if i.Confidence != nil && (*i.Confidence < 0 || *i.Confidence > 1) {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// OverrideInput records a human decision on a job.
type OverrideInput struct {
	JobID         uuid.UUID
	Override      bool
	Justification string
}

// Validate checks all fields and collects all errors.
func (i OverrideInput) Validate() error {
	var errs []domain.FieldError

	if i.JobID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "job_id", Message: "required"})
	}
	j := strings.TrimSpace(i.Justification)
	if j == "" {
		errs = append(errs, domain.FieldError{Field: "justification", Message: "required"})
	}
	if len(j) > maxJustificationLen {
		errs = append(errs, domain.FieldError{Field: "justification", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Submit adds a job to the user's review queue.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.ReviewedJob, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	j, err := s.jobs.Create(ctx, &domain.ReviewedJob{
		UserID:      userID,
		Title:       strings.TrimSpace(input.Title),
		CompanyName: strings.TrimSpace(input.CompanyName),
		URL:         strings.TrimSpace(input.URL),
		Recommended: input.Recommended,
		Confidence:  input.Confidence,
		Rationale:   strings.TrimSpace(input.Rationale),
	})
	if err != nil {
		return nil, fmt.Errorf("submit job: %w", err)
	}

	s.mu.Lock()
	if q := s.queueLocked(userID); q.loaded {
		q.jobs = append(q.jobs, *j)
	}
	s.mu.Unlock()

	s.log.InfoContext(ctx, "job submitted for review",
		slog.String("user_id", userID.String()),
		slog.String("job_id", j.ID.String()),
	)
	return j, nil
}

// Pending returns the user's queue. The store is read on first use only.
func (s *Service) Pending(ctx context.Context) ([]domain.ReviewedJob, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	if q := s.queueLocked(userID); q.loaded {
		out := slices.Clone(q.jobs)
		s.mu.Unlock()
		return out, nil
	}
	s.mu.Unlock()

	return s.reload(ctx, userID, false)
}

// Reload re-reads the user's queue from the store.
func (s *Service) Reload(ctx context.Context) ([]domain.ReviewedJob, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.reload(ctx, userID, true)
}

// reload fetches the queue. Without force, a queue loaded concurrently by
// another caller wins so that its removals are kept.
func (s *Service) reload(ctx context.Context, userID uuid.UUID, force bool) ([]domain.ReviewedJob, error) {
	jobs, err := s.jobs.ListPending(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list pending jobs: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.queueLocked(userID)
	if q.loaded && !force {
		return slices.Clone(q.jobs), nil
	}
	q.loaded = true
	q.jobs = slices.Clone(jobs)
	return jobs, nil
}

// Override records a decision. The job is removed from the queue before the
// store write completes; the returned slice is the queue after removal.
func (s *Service) Override(ctx context.Context, input OverrideInput) ([]domain.ReviewedJob, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.Pending(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, domain.ErrUnavailable
	}
	q := s.queueLocked(userID)
	i := slices.IndexFunc(q.jobs, func(j domain.ReviewedJob) bool { return j.ID == input.JobID })
	if i < 0 {
		s.mu.Unlock()
		return nil, fmt.Errorf("reviewed job %s: %w", input.JobID, domain.ErrNotFound)
	}
	q.jobs = slices.Delete(q.jobs, i, i+1)
	remaining := slices.Clone(q.jobs)
	s.wg.Add(1)
	s.mu.Unlock()

	go s.persist(context.WithoutCancel(ctx), userID, input)

	return remaining, nil
}

func (s *Service) persist(ctx context.Context, userID uuid.UUID, input OverrideInput) {
	defer s.wg.Done()

	_, err := s.jobs.Override(ctx, userID, input.JobID, input.Override, strings.TrimSpace(input.Justification))
	if err != nil {
		s.log.ErrorContext(ctx, "override sync failed",
			slog.String("user_id", userID.String()),
			slog.String("job_id", input.JobID.String()),
			slog.String("error", err.Error()),
		)
		s.notify(userID, "error", fmt.Sprintf("Could not save your decision on job %s. Reload the queue to see it again.", input.JobID))
		return
	}

	s.log.InfoContext(ctx, "job overridden",
		slog.String("user_id", userID.String()),
		slog.String("job_id", input.JobID.String()),
		slog.Bool("override", input.Override),
	)
}

// Notifications returns the user's notification feed, oldest first.
func (s *Service) Notifications(ctx context.Context) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	notes := s.queueLocked(userID).notes
	out := make([]domain.Notification, len(notes))
	copy(out, notes)
	return out, nil
}

// DismissNotifications clears the user's notification feed.
func (s *Service) DismissNotifications(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	s.mu.Lock()
	s.queueLocked(userID).notes = nil
	s.mu.Unlock()
	return nil
}
