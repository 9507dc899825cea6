package pipeline

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const (
	maxTitleLen = 200
	maxLinkLen  = 2048
	maxNotesLen = 10000
	maxPageSize = 200
)

// CreateApplicationInput holds the parameters for creating an application.
type CreateApplicationInput struct {
	CompanyID         uuid.UUID
	JobTitle          string
	JobLink           string
	Status            domain.ApplicationStatus // empty = Draft
	StrategicFitScore *float64
	NarrativeID       *uuid.UUID
	AppliedAt         *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateApplicationInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	errs = validateTitle(errs, "job_title", i.JobTitle)
	if len(i.JobLink) > maxLinkLen {
		errs = append(errs, domain.FieldError{Field: "job_link", Message: "too long"})
	}
	errs = validateFit(errs, i.StrategicFitScore)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateApplicationInput holds the parameters for updating an application.
type UpdateApplicationInput struct {
	ApplicationID     uuid.UUID
	JobTitle          *string
	JobLink           *string
	Status            *domain.ApplicationStatus
	StrategicFitScore *float64
	ClearFitScore     bool
	NarrativeID       *uuid.UUID
	ClearNarrative    bool
	AppliedAt         *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateApplicationInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if i.JobTitle != nil {
		errs = validateTitle(errs, "job_title", *i.JobTitle)
	}
	if i.JobLink != nil && len(*i.JobLink) > maxLinkLen {
		errs = append(errs, domain.FieldError{Field: "job_link", Message: "too long"})
	}
	if i.Status != nil && strings.TrimSpace(string(*i.Status)) == "" {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must not be blank"})
	}
	if i.ClearFitScore && i.StrategicFitScore != nil {
		errs = append(errs, domain.FieldError{Field: "strategic_fit_score", Message: "cannot set and clear"})
	}
	errs = validateFit(errs, i.StrategicFitScore)
	if i.ClearNarrative && i.NarrativeID != nil {
		errs = append(errs, domain.FieldError{Field: "narrative_id", Message: "cannot set and clear"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i UpdateApplicationInput) params() domain.ApplicationUpdateParams {
	p := domain.ApplicationUpdateParams{
		JobLink:           i.JobLink,
		Status:            i.Status,
		StrategicFitScore: i.StrategicFitScore,
		ClearFitScore:     i.ClearFitScore,
		NarrativeID:       i.NarrativeID,
		ClearNarrative:    i.ClearNarrative,
		AppliedAt:         i.AppliedAt,
	}
	if i.JobTitle != nil {
		t := strings.TrimSpace(*i.JobTitle)
		p.JobTitle = &t
	}
	return p
}

// ListApplicationsInput holds listing filters.
type ListApplicationsInput struct {
	Filter domain.ApplicationFilter
}

// Validate checks all fields and collects all errors.
func (i ListApplicationsInput) Validate() error {
	return validatePage(i.Filter.Limit, i.Filter.Offset)
}

// CreateInterviewInput holds the parameters for scheduling an interview.
type CreateInterviewInput struct {
	ApplicationID uuid.UUID
	Type          string
	ScheduledAt   *time.Time
	ContactIDs    []uuid.UUID
	Notes         string
}

// Validate checks all fields and collects all errors.
func (i CreateInterviewInput) Validate() error {
	var errs []domain.FieldError

	if i.ApplicationID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "required"})
	}
	if len(i.Type) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "interview_type", Message: "too long"})
	}
	if len(i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInterviewInput holds the parameters for updating an interview.
type UpdateInterviewInput struct {
	InterviewID uuid.UUID
	Type        *string
	ScheduledAt *time.Time
	ContactIDs  []uuid.UUID // nil = unchanged
	Prep        map[string]string
	Notes       *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInterviewInput) Validate() error {
	var errs []domain.FieldError

	if i.InterviewID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "interview_id", Message: "required"})
	}
	if i.Type != nil && len(*i.Type) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "interview_type", Message: "too long"})
	}
	if i.Notes != nil && len(*i.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(errs []domain.FieldError, field, v string) []domain.FieldError {
	v = strings.TrimSpace(v)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(v) > maxTitleLen {
		return append(errs, domain.FieldError{Field: field, Message: "max 200 characters"})
	}
	return errs
}

func validateFit(errs []domain.FieldError, v *float64) []domain.FieldError {
	if v != nil && (*v < 0 || *v > 10) {
		return append(errs, domain.FieldError{Field: "strategic_fit_score", Message: "must be between 0 and 10"})
	}
	return errs
}

func validatePage(limit, offset int) error {
	var errs []domain.FieldError
	if limit < 0 || limit > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be >= 0"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
