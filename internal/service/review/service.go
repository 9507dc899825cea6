// Package review keeps the human-in-the-loop job review queue.
//
// Overrides are optimistic: the job leaves the caller's queue immediately and
// the store write runs in the background. A failed write is logged and pushed
// to the user's notification feed; the job is not put back. Reload re-reads
// the store and closes any gap left by a failed write.
package review

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

type jobRepo interface {
	Create(ctx context.Context, j *domain.ReviewedJob) (*domain.ReviewedJob, error)
	ListPending(ctx context.Context, userID uuid.UUID) ([]domain.ReviewedJob, error)
	Override(ctx context.Context, userID, jobID uuid.UUID, override bool, justification string) (*domain.ReviewedJob, error)
}

type queue struct {
	loaded bool
	jobs   []domain.ReviewedJob
	notes  []domain.Notification
}

// Service holds one review queue per user.
type Service struct {
	jobs      jobRepo
	log       *slog.Logger
	noteLimit int
	now       func() time.Time

	mu     sync.Mutex
	queues map[uuid.UUID]*queue
	closed bool
	wg     sync.WaitGroup
}

// NewService creates a review service. noteLimit bounds each user's
// notification feed; older entries are dropped first.
func NewService(log *slog.Logger, jobs jobRepo, noteLimit int) *Service {
	if noteLimit <= 0 {
		noteLimit = 50
	}
	return &Service{
		jobs:      jobs,
		log:       log.With("service", "review"),
		noteLimit: noteLimit,
		now:       time.Now,
		queues:    make(map[uuid.UUID]*queue),
	}
}

// Close waits for in-flight overrides to finish. Overrides submitted after
// Close fail with ErrUnavailable.
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}

// queueLocked returns the user's queue, creating it if needed. Callers hold mu.
func (s *Service) queueLocked(userID uuid.UUID) *queue {
	q, ok := s.queues[userID]
	if !ok {
		q = &queue{}
		s.queues[userID] = q
	}
	return q
}

func (s *Service) notify(userID uuid.UUID, level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.queueLocked(userID)
	q.notes = append(q.notes, domain.Notification{
		ID:        uuid.New(),
		Level:     level,
		Message:   msg,
		CreatedAt: s.now(),
	})
	if over := len(q.notes) - s.noteLimit; over > 0 {
		q.notes = append([]domain.Notification(nil), q.notes[over:]...)
	}
}
