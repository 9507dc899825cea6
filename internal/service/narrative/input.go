package narrative

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
)

const (
	maxNameLen    = 200
	maxTextLen    = 5000
	maxStories    = 50
	maxPageSize   = 200
	maxWeeklyGoal = 1000
)

// StoryInput is an impact story as submitted by the client. A nil ID asks
// the server to assign one.
type StoryInput struct {
	ID     uuid.UUID
	Title  string
	Format domain.StoryFormat
	Fields map[string]string
}

// CreateNarrativeInput holds the parameters for creating a narrative.
type CreateNarrativeInput struct {
	Name                 string
	DesiredTitle         string
	PositioningStatement string
	SignatureCapability  string
	Stories              []StoryInput
}

// Validate checks all fields and collects all errors.
func (i CreateNarrativeInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateText(errs, "positioning_statement", i.PositioningStatement)
	errs = validateText(errs, "signature_capability", i.SignatureCapability)
	errs = validateStories(errs, i.Stories)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateNarrativeInput holds the parameters for updating a narrative. A
// non-nil Stories replaces the whole story list.
type UpdateNarrativeInput struct {
	NarrativeID          uuid.UUID
	Name                 *string
	DesiredTitle         *string
	PositioningStatement *string
	SignatureCapability  *string
	Stories              []StoryInput
}

// Validate checks all fields and collects all errors.
func (i UpdateNarrativeInput) Validate() error {
	var errs []domain.FieldError

	if i.NarrativeID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "narrative_id", Message: "required"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.PositioningStatement != nil {
		errs = validateText(errs, "positioning_statement", *i.PositioningStatement)
	}
	if i.SignatureCapability != nil {
		errs = validateText(errs, "signature_capability", *i.SignatureCapability)
	}
	errs = validateStories(errs, i.Stories)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreatePostInput holds the parameters for recording a post.
type CreatePostInput struct {
	NarrativeID *uuid.UUID
	Theme       string
	Content     string
	PublishedAt *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreatePostInput) Validate() error {
	var errs []domain.FieldError

	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if len(content) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "too long"})
	}
	if len(i.Theme) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "theme", Message: "max 200 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateEngagementInput holds the parameters for recording an engagement.
type CreateEngagementInput struct {
	PostID         uuid.UUID
	ContactName    string
	ContactTitle   string
	Kind           string
	StrategicScore *float64
}

// Validate checks all fields and collects all errors.
func (i CreateEngagementInput) Validate() error {
	var errs []domain.FieldError

	if i.PostID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "post_id", Message: "required"})
	}
	if strings.TrimSpace(i.ContactName) == "" {
		errs = append(errs, domain.FieldError{Field: "contact_name", Message: "required"})
	}
	if i.StrategicScore != nil && (*i.StrategicScore < 0 || *i.StrategicScore > 10) {
		errs = append(errs, domain.FieldError{Field: "strategic_score", Message: "must be between 0 and 10"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetGoalsInput holds the user's weekly targets.
type SetGoalsInput struct {
	Applications int
	Contacts     int
	Posts        int
}

// Validate checks all fields and collects all errors.
func (i SetGoalsInput) Validate() error {
	var errs []domain.FieldError

	for _, g := range []struct {
		field string
		v     int
	}{
		{"applications", i.Applications},
		{"contacts", i.Contacts},
		{"posts", i.Posts},
	} {
		if g.v < 0 || g.v > maxWeeklyGoal {
			errs = append(errs, domain.FieldError{Field: g.field, Message: "must be between 0 and 1000"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, v string) []domain.FieldError {
	v = strings.TrimSpace(v)
	if v == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(v) > maxNameLen {
		return append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	return errs
}

func validateText(errs []domain.FieldError, field, v string) []domain.FieldError {
	if len(v) > maxTextLen {
		return append(errs, domain.FieldError{Field: field, Message: "too long"})
	}
	return errs
}

func validateStories(errs []domain.FieldError, stories []StoryInput) []domain.FieldError {
	if len(stories) > maxStories {
		return append(errs, domain.FieldError{Field: "impact_stories", Message: "max 50 stories"})
	}
	seen := make(map[uuid.UUID]bool, len(stories))
	for i, s := range stories {
		field := fmt.Sprintf("impact_stories[%d]", i)
		if strings.TrimSpace(s.Title) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".title", Message: "required"})
		}
		if !s.Format.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".format", Message: "unknown format"})
			continue
		}
		allowed := s.Format.Fields()
		for k := range s.Fields {
			if !slices.Contains(allowed, k) {
				errs = append(errs, domain.FieldError{Field: field + ".fields", Message: fmt.Sprintf("%q is not a %s field", k, s.Format)})
			}
		}
		if s.ID != uuid.Nil {
			if seen[s.ID] {
				errs = append(errs, domain.FieldError{Field: field + ".id", Message: "duplicate"})
			}
			seen[s.ID] = true
		}
	}
	return errs
}

// toStories assigns IDs to new stories and drops empty field values.
func toStories(in []StoryInput) []domain.ImpactStory {
	out := make([]domain.ImpactStory, len(in))
	for i, s := range in {
		id := s.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		fields := make(map[string]string, len(s.Fields))
		for k, v := range s.Fields {
			if v = strings.TrimSpace(v); v != "" {
				fields[k] = v
			}
		}
		out[i] = domain.ImpactStory{
			ID:     id,
			Title:  strings.TrimSpace(s.Title),
			Format: s.Format,
			Fields: fields,
		}
	}
	return out
}
