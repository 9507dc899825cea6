package domain

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ManualSource marks an info field whose text was entered by hand.
const ManualSource = "manual"

// Company is an organisation the user researches or applies to.
type Company struct {
	ID          uuid.UUID            `json:"id"`
	UserID      uuid.UUID            `json:"-"`
	Name        string               `json:"name"`
	Website     string               `json:"website,omitempty"`
	Competitors string               `json:"competitors,omitempty"`
	Info        map[string]InfoField `json:"info"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func (c Company) EntityID() uuid.UUID { return c.ID }

// Clone returns a deep copy.
func (c Company) Clone() Company {
	out := c
	if c.Info != nil {
		out.Info = make(map[string]InfoField, len(c.Info))
		for k, f := range c.Info {
			out.Info[k] = f.Clone()
		}
	}
	return out
}

// SetInfoText changes the text of an info field and keeps its provenance.
func (c *Company) SetInfoText(key, text string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return NewValidationError("key", "required")
	}
	if c.Info == nil {
		c.Info = make(map[string]InfoField)
	}
	c.Info[key] = c.Info[key].WithText(text)
	return nil
}

// SetInfoSource replaces the provenance of an existing info field.
func (c *Company) SetInfoSource(key string, sources ...string) error {
	f, ok := c.Info[key]
	if !ok {
		return fmt.Errorf("info field %q: %w", key, ErrNotFound)
	}
	c.Info[key] = f.WithSource(sources...)
	return nil
}

// MergeInfo overwrites fields with researched values. Fields not present in
// the update are left alone.
func (c *Company) MergeInfo(fields map[string]InfoField) {
	if len(fields) == 0 {
		return
	}
	if c.Info == nil {
		c.Info = make(map[string]InfoField, len(fields))
	}
	for k, f := range fields {
		if len(f.Source) == 0 {
			f.Source = Provenance{ManualSource}
		}
		c.Info[k] = f.Clone()
	}
}

// InfoField is a free-text research finding with provenance.
type InfoField struct {
	Text   string     `json:"text"`
	Source Provenance `json:"source"`
}

// Clone returns a deep copy.
func (f InfoField) Clone() InfoField {
	return InfoField{Text: f.Text, Source: slices.Clone(f.Source)}
}

// WithText returns the field with new text. The source is kept; a field
// without one is marked as manually entered.
func (f InfoField) WithText(text string) InfoField {
	src := slices.Clone(f.Source)
	if len(src) == 0 {
		src = Provenance{ManualSource}
	}
	return InfoField{Text: text, Source: src}
}

// WithSource returns the field with a new provenance. Blank entries are
// dropped; an empty result falls back to ManualSource.
func (f InfoField) WithSource(sources ...string) InfoField {
	src := make(Provenance, 0, len(sources))
	for _, s := range sources {
		if s = strings.TrimSpace(s); s != "" {
			src = append(src, s)
		}
	}
	if len(src) == 0 {
		src = Provenance{ManualSource}
	}
	return InfoField{Text: f.Text, Source: src}
}

// Provenance is one or more sources. On the wire it is a single string when
// it has exactly one element and an array otherwise.
type Provenance []string

func (p Provenance) MarshalJSON() ([]byte, error) {
	if len(p) == 1 {
		return json.Marshal(p[0])
	}
	if p == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(p))
}

func (p *Provenance) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*p = nil
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*p = nil
		} else {
			*p = Provenance{single}
		}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("provenance: expected string or array: %w", err)
	}
	*p = Provenance(many)
	return nil
}

// CompanyUpdateParams holds the optional fields of a company update.
type CompanyUpdateParams struct {
	Name        *string
	Website     *string
	Competitors *string
	Info        map[string]InfoField // nil = unchanged
}
