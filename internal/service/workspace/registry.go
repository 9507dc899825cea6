package workspace

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/draft"
)

var (
	ErrSessionNotFound = fmt.Errorf("edit session: %w", domain.ErrNotFound)
	ErrTooManySessions = fmt.Errorf("too many open edit sessions: %w", domain.ErrConflict)
)

type sessionKey struct {
	userID   uuid.UUID
	entityID uuid.UUID
}

type slot[T draft.Entity[T]] struct {
	session  *draft.Session[T]
	lastUsed time.Time
}

// registry holds the open sessions of one entity kind. Sessions are keyed by
// owner so a user can never reach another user's session.
type registry[T draft.Entity[T]] struct {
	mu    sync.Mutex
	slots map[sessionKey]*slot[T]
	max   int
	ttl   time.Duration
	now   func() time.Time
}

func newRegistry[T draft.Entity[T]](limit int, ttl time.Duration, now func() time.Time) *registry[T] {
	return &registry[T]{
		slots: make(map[sessionKey]*slot[T]),
		max:   limit,
		ttl:   ttl,
		now:   now,
	}
}

func (r *registry[T]) get(userID, entityID uuid.UUID) (*draft.Session[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[sessionKey{userID, entityID}]
	if !ok {
		return nil, fmt.Errorf("%s: %w", entityID, ErrSessionNotFound)
	}
	s.lastUsed = r.now()
	return s.session, nil
}

// put stores a new session. If one is already open for the entity, that one
// is kept and returned. When the user is at the limit, their least recently
// used session in Viewing state is dropped to make room.
func (r *registry[T]) put(userID uuid.UUID, sess *draft.Session[T]) (*draft.Session[T], error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := sessionKey{userID, sess.ID()}
	if s, ok := r.slots[k]; ok {
		s.lastUsed = r.now()
		return s.session, nil
	}

	if r.max > 0 && r.countLocked(userID) >= r.max && !r.evictIdleLocked(userID) {
		return nil, ErrTooManySessions
	}

	r.slots[k] = &slot[T]{session: sess, lastUsed: r.now()}
	return sess, nil
}

func (r *registry[T]) remove(userID, entityID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := sessionKey{userID, entityID}
	if _, ok := r.slots[k]; !ok {
		return false
	}
	delete(r.slots, k)
	return true
}

// list returns the user's sessions.
func (r *registry[T]) list(userID uuid.UUID) []*draft.Session[T] {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*draft.Session[T]
	for k, s := range r.slots {
		if k.userID == userID {
			out = append(out, s.session)
		}
	}
	return out
}

// sweep drops sessions idle for longer than ttl. Sessions with a save in
// flight are kept.
func (r *registry[T]) sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	n := 0
	for k, s := range r.slots {
		if s.lastUsed.Before(cutoff) && s.session.State() != draft.Saving {
			delete(r.slots, k)
			n++
		}
	}
	return n
}

func (r *registry[T]) countLocked(userID uuid.UUID) int {
	n := 0
	for k := range r.slots {
		if k.userID == userID {
			n++
		}
	}
	return n
}

func (r *registry[T]) evictIdleLocked(userID uuid.UUID) bool {
	var (
		oldest sessionKey
		at     time.Time
		found  bool
	)
	for k, s := range r.slots {
		if k.userID != userID || s.session.State() != draft.Viewing {
			continue
		}
		if !found || s.lastUsed.Before(at) {
			oldest, at, found = k, s.lastUsed, true
		}
	}
	if found {
		delete(r.slots, oldest)
	}
	return found
}
