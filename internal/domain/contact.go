package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a person in the user's professional network.
type Contact struct {
	ID             uuid.UUID     `json:"id"`
	UserID         uuid.UUID     `json:"-"`
	CompanyID      *uuid.UUID    `json:"company_id,omitempty"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	JobTitle       string        `json:"job_title,omitempty"`
	LinkedInURL    string        `json:"linkedin_url,omitempty"`
	Status         ContactStatus `json:"status"`
	IsReferral     bool          `json:"is_referral"`
	NarrativeIDs   []uuid.UUID   `json:"narrative_ids"`
	AlignmentScore *float64      `json:"alignment_score,omitempty"`
	Messages       []Message     `json:"messages,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (c Contact) EntityID() uuid.UUID { return c.ID }

// Clone returns a deep copy.
func (c Contact) Clone() Contact {
	out := c
	out.CompanyID = clonePtr(c.CompanyID)
	out.AlignmentScore = clonePtr(c.AlignmentScore)
	out.NarrativeIDs = slices.Clone(c.NarrativeIDs)
	if c.Messages != nil {
		out.Messages = make([]Message, len(c.Messages))
		for i, m := range c.Messages {
			out.Messages[i] = m.Clone()
		}
	}
	return out
}

// FullName joins first and last name.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// HasNarrative reports whether the contact is tagged with the narrative.
func (c Contact) HasNarrative(id uuid.UUID) bool {
	return slices.Contains(c.NarrativeIDs, id)
}

// AddNarrative tags the contact with a narrative. Returns false if it was
// already present.
func (c *Contact) AddNarrative(id uuid.UUID) bool {
	if c.HasNarrative(id) {
		return false
	}
	c.NarrativeIDs = append(c.NarrativeIDs, id)
	return true
}

// RemoveNarrative untags the contact. Returns false if it was not present.
func (c *Contact) RemoveNarrative(id uuid.UUID) bool {
	i := slices.Index(c.NarrativeIDs, id)
	if i < 0 {
		return false
	}
	c.NarrativeIDs = slices.Delete(c.NarrativeIDs, i, i+1)
	return true
}

// UniqueIDs drops duplicate and nil IDs, keeping first-seen order.
func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

// ContactUpdateParams holds the optional fields of a contact update.
type ContactUpdateParams struct {
	CompanyID      *uuid.UUID
	FirstName      *string
	LastName       *string
	JobTitle       *string
	LinkedInURL    *string
	Status         *ContactStatus
	IsReferral     *bool
	NarrativeIDs   []uuid.UUID // nil = unchanged
	AlignmentScore *float64
}
