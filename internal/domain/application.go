package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Application is a tracked job application.
type Application struct {
	ID                uuid.UUID         `json:"id"`
	UserID            uuid.UUID         `json:"-"`
	CompanyID         uuid.UUID         `json:"company_id"`
	JobTitle          string            `json:"job_title"`
	JobLink           string            `json:"job_link,omitempty"`
	Status            ApplicationStatus `json:"status"`
	StrategicFitScore *float64          `json:"strategic_fit_score,omitempty"`
	NarrativeID       *uuid.UUID        `json:"narrative_id,omitempty"`
	AppliedAt         *time.Time        `json:"applied_at,omitempty"`
	Interviews        []Interview       `json:"interviews"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

func (a Application) EntityID() uuid.UUID { return a.ID }

// Clone returns a deep copy.
func (a Application) Clone() Application {
	out := a
	out.StrategicFitScore = clonePtr(a.StrategicFitScore)
	out.NarrativeID = clonePtr(a.NarrativeID)
	out.AppliedAt = clonePtr(a.AppliedAt)
	if a.Interviews != nil {
		out.Interviews = make([]Interview, len(a.Interviews))
		for i, iv := range a.Interviews {
			out.Interviews[i] = iv.Clone()
		}
	}
	return out
}

// HasNarrative reports whether the application is tagged with the narrative.
func (a Application) HasNarrative(id uuid.UUID) bool {
	return a.NarrativeID != nil && *a.NarrativeID == id
}

// InterviewContactIDs returns every contact that took part in any of the
// application's interviews.
func (a Application) InterviewContactIDs() []uuid.UUID {
	var ids []uuid.UUID
	for _, iv := range a.Interviews {
		for _, id := range iv.ContactIDs {
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// ApplicationUpdateParams holds the optional fields of an application update.
// A nil pointer means "leave unchanged".
type ApplicationUpdateParams struct {
	JobTitle          *string
	JobLink           *string
	Status            *ApplicationStatus
	StrategicFitScore *float64
	ClearFitScore     bool
	NarrativeID       *uuid.UUID
	ClearNarrative    bool
	AppliedAt         *time.Time
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
