package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Narrative is a positioning profile used to tailor content and to segment
// metrics.
type Narrative struct {
	ID                   uuid.UUID     `json:"id"`
	UserID               uuid.UUID     `json:"-"`
	Name                 string        `json:"name"`
	DesiredTitle         string        `json:"desired_title,omitempty"`
	PositioningStatement string        `json:"positioning_statement"`
	SignatureCapability  string        `json:"signature_capability"`
	Stories              []ImpactStory `json:"impact_stories"`
	CreatedAt            time.Time     `json:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at"`
}

func (n Narrative) EntityID() uuid.UUID { return n.ID }

// Clone returns a deep copy.
func (n Narrative) Clone() Narrative {
	out := n
	if n.Stories != nil {
		out.Stories = make([]ImpactStory, len(n.Stories))
		for i, s := range n.Stories {
			out.Stories[i] = s.Clone()
		}
	}
	return out
}

// Story looks up an impact story by ID.
func (n Narrative) Story(id uuid.UUID) (ImpactStory, bool) {
	i := slices.IndexFunc(n.Stories, func(s ImpactStory) bool { return s.ID == id })
	if i < 0 {
		return ImpactStory{}, false
	}
	return n.Stories[i].Clone(), true
}

// ImpactStory is a reusable structured anecdote.
type ImpactStory struct {
	ID     uuid.UUID         `json:"id"`
	Title  string            `json:"title"`
	Format StoryFormat       `json:"format"`
	Fields map[string]string `json:"fields"`
}

// Clone returns a deep copy.
func (s ImpactStory) Clone() ImpactStory {
	out := s
	out.Fields = cloneMap(s.Fields)
	return out
}

// NarrativeUpdateParams holds the optional fields of a narrative update.
type NarrativeUpdateParams struct {
	Name                 *string
	DesiredTitle         *string
	PositioningStatement *string
	SignatureCapability  *string
	Stories              []ImpactStory // nil = unchanged
}
