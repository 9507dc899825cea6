package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewedJob is a job posting with an automated recommendation awaiting
// human review.
type ReviewedJob struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"-"`
	Title         string     `json:"title"`
	CompanyName   string     `json:"company_name"`
	URL           string     `json:"url,omitempty"`
	Recommended   bool       `json:"recommended"`
	Confidence    *float64   `json:"confidence,omitempty"`
	Rationale     string     `json:"rationale,omitempty"`
	Override      *bool      `json:"override,omitempty"`
	Justification string     `json:"justification,omitempty"`
	OverriddenAt  *time.Time `json:"overridden_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Pending reports whether the job still awaits a human decision.
func (j ReviewedJob) Pending() bool { return j.Override == nil }

// Notification is an out-of-band message for the user, such as a failed
// background sync.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
