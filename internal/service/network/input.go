package network

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const (
	maxNameLen    = 200
	maxContentLen = 10000
	maxPageSize   = 200
)

// CreateCompanyInput holds the parameters for creating a company.
type CreateCompanyInput struct {
	Name        string
	Website     string
	Competitors string
	Info        map[string]domain.InfoField
}

// Validate checks all fields and collects all errors.
func (i CreateCompanyInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, "name", i.Name)
	errs = validateInfoKeys(errs, i.Info)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCompanyInput holds the parameters for updating a company. Info is
// merged into the stored fields; keys not present are left alone.
type UpdateCompanyInput struct {
	CompanyID   uuid.UUID
	Name        *string
	Website     *string
	Competitors *string
	Info        map[string]domain.InfoField
}

// Validate checks all fields and collects all errors.
func (i UpdateCompanyInput) Validate() error {
	var errs []domain.FieldError

	if i.CompanyID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "company_id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, "name", *i.Name)
	}
	errs = validateInfoKeys(errs, i.Info)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateContactInput holds the parameters for creating a contact.
type CreateContactInput struct {
	CompanyID      *uuid.UUID
	FirstName      string
	LastName       string
	JobTitle       string
	LinkedInURL    string
	Status         domain.ContactStatus // empty = To Contact
	IsReferral     bool
	NarrativeIDs   []uuid.UUID
	AlignmentScore *float64
}

// Validate checks all fields and collects all errors.
func (i CreateContactInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, "first_name", i.FirstName)
	if len(i.LastName) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "last_name", Message: "max 200 characters"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	errs = validateScore(errs, "alignment_score", i.AlignmentScore)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateContactInput holds the parameters for updating a contact. A CompanyID
// of uuid.Nil detaches the contact from its company.
type UpdateContactInput struct {
	ContactID      uuid.UUID
	CompanyID      *uuid.UUID
	FirstName      *string
	LastName       *string
	JobTitle       *string
	LinkedInURL    *string
	Status         *domain.ContactStatus
	IsReferral     *bool
	NarrativeIDs   []uuid.UUID // nil = unchanged
	AlignmentScore *float64
}

// Validate checks all fields and collects all errors.
func (i UpdateContactInput) Validate() error {
	var errs []domain.FieldError

	if i.ContactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contact_id", Message: "required"})
	}
	if i.FirstName != nil {
		errs = validateName(errs, "first_name", *i.FirstName)
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
	errs = validateScore(errs, "alignment_score", i.AlignmentScore)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateMessageInput holds the parameters for logging a message.
type CreateMessageInput struct {
	ContactID       *uuid.UUID
	CompanyID       *uuid.UUID
	ApplicationID   *uuid.UUID
	Type            domain.MessageType // empty = Note
	Content         string
	FollowUpDueDate *time.Time
	IsUserSent      bool
}

// Validate checks all fields and collects all errors.
func (i CreateMessageInput) Validate() error {
	var errs []domain.FieldError

	m := domain.Message{ContactID: i.ContactID, CompanyID: i.CompanyID, ApplicationID: i.ApplicationID}
	if !m.HasReference() {
		errs = append(errs, domain.FieldError{Field: "reference", Message: "contact, company or application required"})
	}
	if i.Type != "" && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown message type"})
	}
	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, field, v string) []domain.FieldError {
	v = strings.TrimSpace(v)
	if v == "" {
		return append(errs, domain.FieldError{Field: field, Message: "required"})
	}
	if len(v) > maxNameLen {
		return append(errs, domain.FieldError{Field: field, Message: "max 200 characters"})
	}
	return errs
}

func validateInfoKeys(errs []domain.FieldError, info map[string]domain.InfoField) []domain.FieldError {
	for k := range info {
		if strings.TrimSpace(k) == "" {
			return append(errs, domain.FieldError{Field: "info", Message: "keys must not be blank"})
		}
	}
	return errs
}

func validateScore(errs []domain.FieldError, field string, v *float64) []domain.FieldError {
	if v != nil && (*v < 0 || *v > 10) {
		return append(errs, domain.FieldError{Field: field, Message: "must be between 0 and 10"})
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

// normalizeInfo trims keys and marks fields without provenance as manual.
func normalizeInfo(info map[string]domain.InfoField) map[string]domain.InfoField {
	out := make(map[string]domain.InfoField, len(info))
	for k, f := range info {
		out[strings.TrimSpace(k)] = f.WithText(f.Text)
	}
	return out
}
