package generation

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

// Output tells whether a request yields one artifact or a ranked list.
type Output int

const (
	Single Output = iota
	Ranked
)

// Template identifiers.
const (
	TemplateStrategicMessage = "strategic_message"
	TemplateBrandVoice       = "brand_voice"
	TemplateCompanyResearch  = "company_research"
)

const (
	defaultCount = 3
	maxCount     = 5
	maxFieldLen  = 2000
)

// DefaultResearchFields are researched when a request names none.
var DefaultResearchFields = []string{"mission", "values", "products", "culture", "recent_news"}

// Request is one of the request types defined in this package.
type Request interface {
	Validate() error
	TemplateID() string
	Output() Output
	// narrative returns an explicit narrative id and whether the template
	// uses a narrative at all.
	narrative() (*uuid.UUID, bool)
}

// StrategicMessageRequest asks for outreach messages to one contact.
type StrategicMessageRequest struct {
	ContactName  string             `json:"contact_name"`
	ContactTitle string             `json:"contact_title,omitempty"`
	CompanyName  string             `json:"company_name"`
	Type         domain.MessageType `json:"type"`
	Goal         string             `json:"goal"`
	Context      string             `json:"context,omitempty"`
	NarrativeID  *uuid.UUID         `json:"narrative_id,omitempty"`
	Count        int                `json:"count,omitempty"`
}

func (r StrategicMessageRequest) TemplateID() string            { return TemplateStrategicMessage }
func (r StrategicMessageRequest) Output() Output                { return Ranked }
func (r StrategicMessageRequest) narrative() (*uuid.UUID, bool) { return r.NarrativeID, true }

// Validate checks all fields and collects all errors.
func (r StrategicMessageRequest) Validate() error {
	var errs []domain.FieldError

	errs = required(errs, "contact_name", r.ContactName)
	errs = required(errs, "company_name", r.CompanyName)
	errs = required(errs, "goal", r.Goal)
	errs = maxLen(errs, "context", r.Context)
	if r.Type != domain.MessageTypeConnection && r.Type != domain.MessageTypeFollowUp {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be Connection or Follow-up"})
	}
	errs = validateCount(errs, r.Count)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// BrandVoiceRequest asks for one post draft in the narrative's voice.
type BrandVoiceRequest struct {
	Theme         string     `json:"theme"`
	TargetPersona string     `json:"target_persona"`
	Goal          string     `json:"goal,omitempty"`
	NarrativeID   *uuid.UUID `json:"narrative_id,omitempty"`
}

func (r BrandVoiceRequest) TemplateID() string            { return TemplateBrandVoice }
func (r BrandVoiceRequest) Output() Output                { return Single }
func (r BrandVoiceRequest) narrative() (*uuid.UUID, bool) { return r.NarrativeID, true }

// Validate checks all fields and collects all errors.
func (r BrandVoiceRequest) Validate() error {
	var errs []domain.FieldError

	errs = required(errs, "theme", r.Theme)
	errs = required(errs, "target_persona", r.TargetPersona)
	errs = maxLen(errs, "goal", r.Goal)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CompanyResearchRequest asks for info fields about a company.
type CompanyResearchRequest struct {
	CompanyName string   `json:"company_name"`
	Website     string   `json:"website,omitempty"`
	Fields      []string `json:"fields,omitempty"`
}

func (r CompanyResearchRequest) TemplateID() string            { return TemplateCompanyResearch }
func (r CompanyResearchRequest) Output() Output                { return Single }
func (r CompanyResearchRequest) narrative() (*uuid.UUID, bool) { return nil, false }

// Validate checks all fields and collects all errors.
func (r CompanyResearchRequest) Validate() error {
	var errs []domain.FieldError

	errs = required(errs, "company_name", r.CompanyName)
	for _, f := range r.Fields {
		if strings.TrimSpace(f) == "" {
			errs = append(errs, domain.FieldError{Field: "fields", Message: "must not contain blanks"})
			break
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// fields returns the requested keys, trimmed and deduplicated.
func (r CompanyResearchRequest) fields() []string {
	if len(r.Fields) == 0 {
		return DefaultResearchFields
	}
	out := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		f = strings.TrimSpace(f)
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

func required(errs []domain.FieldError, field, v string) []domain.FieldError {
	if strings.TrimSpace(v) == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	return maxLen(errs, field, v)
}

func maxLen(errs []domain.FieldError, field, v string) []domain.FieldError {
	if len(v) > maxFieldLen {
		return append(errs, domain.FieldError{Field: field, Message: "max 2000 characters"})
	}
	return errs
}

func validateCount(errs []domain.FieldError, n int) []domain.FieldError {
	if n < 0 || n > maxCount {
		return append(errs, domain.FieldError{Field: "count", Message: "must be between 1 and 5"})
	}
	return errs
}
