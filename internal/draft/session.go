// Package draft keeps a working copy of one entity separate from its last
// server-confirmed version while the user edits it.
//
// A Session moves between three states:
//
//	Viewing  the draft mirrors the canonical copy
//	Editing  the draft may diverge; edits never touch the canonical copy
//	Saving   a snapshot of the draft is being persisted
//
// Saving resolves back to Viewing on success (draft and canonical both become
// the persisted result) or to Editing on failure (draft kept as is).
package draft

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// Entity is anything a session can hold. Clone must return a deep copy.
type Entity[T any] interface {
	EntityID() uuid.UUID
	Clone() T
}

// Mutation persists a draft and returns the canonical result.
type Mutation[T any] func(ctx context.Context, draft T) (T, error)

// Enrichment computes changes from a snapshot of the draft. The returned
// patch is applied to whatever the draft is when the enrichment finishes.
type Enrichment[T any] func(ctx context.Context, snapshot T) (func(*T), error)

var (
	ErrNotEditing      = fmt.Errorf("draft is not being edited: %w", domain.ErrConflict)
	ErrSaveInProgress  = fmt.Errorf("draft save already in progress: %w", domain.ErrConflict)
	ErrIdentityChanged = fmt.Errorf("draft identity cannot change: %w", domain.ErrValidation)
)

// Hooks observe session outcomes. Nil fields are ignored.
type Hooks struct {
	OnSave   func(err error)
	OnEnrich func(err error)
}

// Session is safe for concurrent use. The lock is never held while a
// mutation or enrichment runs.
type Session[T Entity[T]] struct {
	mu        sync.Mutex
	state     State
	canonical T
	draft     T
	saveErr   error
	enrichErr error
	hooks     Hooks
}

// New returns a session in Viewing state.
func New[T Entity[T]](canonical T, hooks Hooks) *Session[T] {
	return &Session[T]{
		state:     Viewing,
		canonical: canonical.Clone(),
		draft:     canonical.Clone(),
		hooks:     hooks,
	}
}

// ID is the identity shared by the draft and its canonical copy.
func (s *Session[T]) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canonical.EntityID()
}

// State returns the current state.
func (s *Session[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin enters Editing. It is a no-op when already Editing or Saving.
func (s *Session[T]) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Viewing {
		s.state = Editing
	}
}

// Edit applies fn to the draft. Allowed while Editing and while Saving.
func (s *Session[T]) Edit(fn func(*T)) error {
	return s.TryEdit(func(t *T) error {
		fn(t)
		return nil
	})
}

// TryEdit is like Edit but fn may reject the change, in which case the draft
// is left as it was.
func (s *Session[T]) TryEdit(fn func(*T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Viewing {
		return ErrNotEditing
	}
	return s.applyLocked(fn)
}

// applyLocked runs fn against a copy and commits it only if fn succeeds and
// the identity is unchanged.
func (s *Session[T]) applyLocked(fn func(*T) error) error {
	next := s.draft.Clone()
	if err := fn(&next); err != nil {
		return err
	}
	if next.EntityID() != s.canonical.EntityID() {
		return ErrIdentityChanged
	}
	s.draft = next
	return nil
}

// Enrich runs fn against a snapshot of the draft without holding the lock.
// On success the patch is applied to the current draft and the session
// enters Editing so the result can be reviewed before saving. On failure the
// error goes to the enrichment slot and the draft is untouched.
func (s *Session[T]) Enrich(ctx context.Context, fn Enrichment[T]) error {
	s.mu.Lock()
	snapshot := s.draft.Clone()
	s.enrichErr = nil
	s.mu.Unlock()

	patch, err := fn(ctx, snapshot)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil && patch != nil {
		err = s.applyLocked(func(t *T) error {
			patch(t)
			return nil
		})
	}
	if err != nil {
		s.enrichErr = err
		s.observe(s.hooks.OnEnrich, err)
		return err
	}
	if s.state == Viewing {
		s.state = Editing
	}
	s.observe(s.hooks.OnEnrich, nil)
	return nil
}

// Save submits a snapshot of the draft to m. A second Save while one is in
// flight fails with ErrSaveInProgress. Edits made after submission are not
// part of the payload; on success they are replaced by the persisted result,
// on failure they are kept.
func (s *Session[T]) Save(ctx context.Context, m Mutation[T]) (T, error) {
	var zero T

	s.mu.Lock()
	switch s.state {
	case Viewing:
		s.mu.Unlock()
		return zero, ErrNotEditing
	case Saving:
		s.mu.Unlock()
		return zero, ErrSaveInProgress
	}
	payload := s.draft.Clone()
	s.state = Saving
	s.saveErr = nil
	s.mu.Unlock()

	result, err := s.run(ctx, m, payload)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = Editing
		s.saveErr = err
		s.observe(s.hooks.OnSave, err)
		return zero, err
	}
	s.canonical = result.Clone()
	s.draft = result.Clone()
	s.state = Viewing
	s.enrichErr = nil
	s.observe(s.hooks.OnSave, nil)
	return result.Clone(), nil
}

func (s *Session[T]) run(ctx context.Context, m Mutation[T], payload T) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.mu.Lock()
			s.state = Editing
			s.saveErr = fmt.Errorf("save panicked: %v", r)
			s.mu.Unlock()
			panic(r)
		}
	}()
	return m(ctx, payload)
}

// Cancel discards the draft and returns to Viewing. Not allowed while Saving.
func (s *Session[T]) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Saving {
		return ErrSaveInProgress
	}
	s.draft = s.canonical.Clone()
	s.state = Viewing
	s.saveErr = nil
	s.enrichErr = nil
	return nil
}

// Replace records an external update of the canonical entity. In Viewing the
// draft follows it; otherwise the draft is left alone until the next save or
// cancel.
func (s *Session[T]) Replace(canonical T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if canonical.EntityID() != s.canonical.EntityID() {
		return ErrIdentityChanged
	}
	s.canonical = canonical.Clone()
	if s.state == Viewing {
		s.draft = canonical.Clone()
	}
	return nil
}

// Draft returns a copy of the working copy.
func (s *Session[T]) Draft() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft.Clone()
}

// Canonical returns a copy of the last confirmed entity.
func (s *Session[T]) Canonical() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canonical.Clone()
}

// Snapshot is a consistent view of a session.
type Snapshot[T any] struct {
	State       State  `json:"state"`
	Canonical   T      `json:"canonical"`
	Draft       T      `json:"draft"`
	SaveError   string `json:"save_error,omitempty"`
	EnrichError string `json:"enrichment_error,omitempty"`
}

// Snapshot returns copies of the session state taken under one lock.
func (s *Session[T]) Snapshot() Snapshot[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot[T]{
		State:     s.state,
		Canonical: s.canonical.Clone(),
		Draft:     s.draft.Clone(),
	}
	if s.saveErr != nil {
		snap.SaveError = s.saveErr.Error()
	}
	if s.enrichErr != nil {
		snap.EnrichError = s.enrichErr.Error()
	}
	return snap
}

func (s *Session[T]) observe(fn func(error), err error) {
	if fn != nil {
		fn(err)
	}
}
