package domain

import (
	"time"

	"github.com/google/uuid"
)

// Post is a piece of published brand content.
type Post struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"-"`
	NarrativeID *uuid.UUID `json:"narrative_id,omitempty"`
	Theme       string     `json:"theme"`
	Content     string     `json:"content"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// HasNarrative reports whether the post is tagged with the narrative.
func (p Post) HasNarrative(id uuid.UUID) bool {
	return p.NarrativeID != nil && *p.NarrativeID == id
}

// Engagement is an interaction by someone on one of the user's posts.
type Engagement struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"-"`
	PostID         uuid.UUID `json:"post_id"`
	ContactName    string    `json:"contact_name"`
	ContactTitle   string    `json:"contact_title,omitempty"`
	Kind           string    `json:"kind,omitempty"`
	StrategicScore *float64  `json:"strategic_score,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// WeeklyGoals holds the user's weekly activity targets.
type WeeklyGoals struct {
	UserID       uuid.UUID `json:"-"`
	Applications int       `json:"applications"`
	Contacts     int       `json:"contacts"`
	Posts        int       `json:"posts"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DefaultWeeklyGoals returns the targets used before the user sets any.
func DefaultWeeklyGoals(userID uuid.UUID) WeeklyGoals {
	return WeeklyGoals{
		UserID:       userID,
		Applications: 5,
		Contacts:     10,
		Posts:        2,
	}
}
