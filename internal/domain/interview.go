package domain

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultPersona is the fallback persona every deck item carries.
const DefaultPersona = "default"

// Interview is a scheduled conversation within an application.
type Interview struct {
	ID            uuid.UUID         `json:"id"`
	UserID        uuid.UUID         `json:"-"`
	ApplicationID uuid.UUID         `json:"application_id"`
	Type          string            `json:"interview_type"`
	ScheduledAt   *time.Time        `json:"scheduled_at,omitempty"`
	ContactIDs    []uuid.UUID       `json:"contact_ids"`
	Deck          []DeckItem        `json:"story_deck"`
	Prep          map[string]string `json:"prep,omitempty"`
	Notes         string            `json:"notes,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (iv Interview) EntityID() uuid.UUID { return iv.ID }

// Clone returns a deep copy.
func (iv Interview) Clone() Interview {
	out := iv
	out.ScheduledAt = clonePtr(iv.ScheduledAt)
	out.ContactIDs = slices.Clone(iv.ContactIDs)
	out.Prep = cloneMap(iv.Prep)
	if iv.Deck != nil {
		out.Deck = make([]DeckItem, len(iv.Deck))
		for i, item := range iv.Deck {
			out.Deck[i] = item.Clone()
		}
	}
	return out
}

// DeckItem references an impact story and carries persona-scoped notes.
type DeckItem struct {
	StoryID uuid.UUID               `json:"story_id"`
	Order   int                     `json:"order"`
	Notes   map[string]PersonaNotes `json:"notes"`
}

// PersonaNotes maps a note field name to its text.
type PersonaNotes map[string]string

// Clone returns a deep copy.
func (d DeckItem) Clone() DeckItem {
	out := DeckItem{StoryID: d.StoryID, Order: d.Order}
	if d.Notes != nil {
		out.Notes = make(map[string]PersonaNotes, len(d.Notes))
		for p, n := range d.Notes {
			out.Notes[p] = PersonaNotes(cloneMap(map[string]string(n)))
		}
	}
	return out
}

// NewDeckItem returns an item with an empty default persona.
func NewDeckItem(storyID uuid.UUID) DeckItem {
	return DeckItem{StoryID: storyID, Notes: map[string]PersonaNotes{DefaultPersona: {}}}
}

// ResolveNote returns the persona's value for field, falling back to the
// default persona when the persona has no non-empty override.
func (d DeckItem) ResolveNote(persona, field string) string {
	if notes, ok := d.Notes[persona]; ok {
		if v := notes[field]; v != "" {
			return v
		}
	}
	return d.Notes[DefaultPersona][field]
}

// Personas lists persona labels with the default first and the rest sorted.
func (d DeckItem) Personas() []string {
	out := []string{DefaultPersona}
	var rest []string
	for p := range d.Notes {
		if p != DefaultPersona {
			rest = append(rest, p)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

func (d *DeckItem) ensureDefault() {
	if d.Notes == nil {
		d.Notes = make(map[string]PersonaNotes)
	}
	if _, ok := d.Notes[DefaultPersona]; !ok {
		d.Notes[DefaultPersona] = PersonaNotes{}
	}
}

// AddPersona adds an empty override set. The default persona is not copied.
func (d *DeckItem) AddPersona(persona string) error {
	persona = strings.TrimSpace(persona)
	if persona == "" {
		return NewValidationError("persona", "required")
	}
	d.ensureDefault()
	if _, ok := d.Notes[persona]; ok {
		return fmt.Errorf("persona %q: %w", persona, ErrAlreadyExists)
	}
	d.Notes[persona] = PersonaNotes{}
	return nil
}

// RemovePersona discards a persona's overrides. The default persona cannot
// be removed.
func (d *DeckItem) RemovePersona(persona string) error {
	if persona == DefaultPersona {
		return NewValidationError("persona", "default persona cannot be removed")
	}
	if _, ok := d.Notes[persona]; !ok {
		return fmt.Errorf("persona %q: %w", persona, ErrNotFound)
	}
	delete(d.Notes, persona)
	return nil
}

// SetNote sets a field for an existing persona. An empty value clears the
// override so the default shows through again.
func (d *DeckItem) SetNote(persona, field, value string) error {
	if strings.TrimSpace(field) == "" {
		return NewValidationError("field", "required")
	}
	d.ensureDefault()
	notes, ok := d.Notes[persona]
	if !ok {
		return fmt.Errorf("persona %q: %w", persona, ErrNotFound)
	}
	if value == "" {
		delete(notes, field)
		return nil
	}
	notes[field] = value
	return nil
}

// ReorderDeck moves the dragged item to the drop target's position: the
// dragged item is removed and reinserted at the target's original index.
// Orders are reassigned 0..N-1. The input slice is not modified.
func ReorderDeck(deck []DeckItem, draggedID, targetID uuid.UUID) ([]DeckItem, error) {
	from := deckIndex(deck, draggedID)
	if from < 0 {
		return nil, NewValidationError("dragged_id", "not in deck")
	}
	to := deckIndex(deck, targetID)
	if to < 0 {
		return nil, NewValidationError("target_id", "not in deck")
	}

	out := make([]DeckItem, len(deck))
	for i, item := range deck {
		out[i] = item.Clone()
	}
	if from != to {
		moved := out[from]
		out = slices.Delete(out, from, from+1)
		out = slices.Insert(out, to, moved)
	}
	renumber(out)
	return out, nil
}

func deckIndex(deck []DeckItem, storyID uuid.UUID) int {
	return slices.IndexFunc(deck, func(d DeckItem) bool { return d.StoryID == storyID })
}

func renumber(deck []DeckItem) {
	for i := range deck {
		deck[i].Order = i
	}
}

// ReorderDeck reorders the interview's story deck in place.
func (iv *Interview) ReorderDeck(draggedID, targetID uuid.UUID) error {
	deck, err := ReorderDeck(iv.Deck, draggedID, targetID)
	if err != nil {
		return err
	}
	iv.Deck = deck
	return nil
}

// AddStory appends a story to the deck.
func (iv *Interview) AddStory(storyID uuid.UUID) error {
	if storyID == uuid.Nil {
		return NewValidationError("story_id", "required")
	}
	if deckIndex(iv.Deck, storyID) >= 0 {
		return fmt.Errorf("story %s: %w", storyID, ErrAlreadyExists)
	}
	item := NewDeckItem(storyID)
	for _, persona := range iv.Personas() {
		if persona != DefaultPersona {
			item.Notes[persona] = PersonaNotes{}
		}
	}
	iv.Deck = append(iv.Deck, item)
	renumber(iv.Deck)
	return nil
}

// Personas returns the union of persona labels across the deck, default
// first and the rest sorted.
func (iv *Interview) Personas() []string {
	seen := map[string]bool{DefaultPersona: true}
	out := []string{DefaultPersona}
	var rest []string
	for _, d := range iv.Deck {
		for p := range d.Notes {
			if !seen[p] {
				seen[p] = true
				rest = append(rest, p)
			}
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}

// RemoveStory drops a story from the deck.
func (iv *Interview) RemoveStory(storyID uuid.UUID) error {
	i := deckIndex(iv.Deck, storyID)
	if i < 0 {
		return fmt.Errorf("story %s: %w", storyID, ErrNotFound)
	}
	iv.Deck = slices.Delete(iv.Deck, i, i+1)
	renumber(iv.Deck)
	return nil
}

// Item returns a pointer to the deck item for storyID.
func (iv *Interview) Item(storyID uuid.UUID) (*DeckItem, error) {
	i := deckIndex(iv.Deck, storyID)
	if i < 0 {
		return nil, fmt.Errorf("story %s: %w", storyID, ErrNotFound)
	}
	return &iv.Deck[i], nil
}

// AddPersona adds an empty persona to every deck item that lacks it.
func (iv *Interview) AddPersona(persona string) error {
	if strings.TrimSpace(persona) == "" {
		return NewValidationError("persona", "required")
	}
	for i := range iv.Deck {
		if err := iv.Deck[i].AddPersona(persona); err != nil && !errors.Is(err, ErrAlreadyExists) {
			return err
		}
	}
	return nil
}

// RemovePersona removes a persona from every deck item that has it. It
// returns ErrNotFound when no item carries the persona.
func (iv *Interview) RemovePersona(persona string) error {
	if persona == DefaultPersona {
		return NewValidationError("persona", "default persona cannot be removed")
	}
	found := false
	for i := range iv.Deck {
		if _, ok := iv.Deck[i].Notes[persona]; ok {
			delete(iv.Deck[i].Notes, persona)
			found = true
		}
	}
	if !found {
		return fmt.Errorf("persona %q: %w", persona, ErrNotFound)
	}
	return nil
}

// ResolvedDeckItem pairs a deck item with its story. Available is false when
// the story no longer exists in the narrative.
type ResolvedDeckItem struct {
	DeckItem
	Story     *ImpactStory `json:"story,omitempty"`
	Available bool         `json:"available"`
}

// ResolveDeck attaches narrative stories to the deck in order. Dangling
// references are kept and marked unavailable.
func ResolveDeck(deck []DeckItem, narrative *Narrative) []ResolvedDeckItem {
	sorted := slices.Clone(deck)
	slices.SortStableFunc(sorted, func(a, b DeckItem) int { return a.Order - b.Order })

	out := make([]ResolvedDeckItem, len(sorted))
	for i, item := range sorted {
		out[i] = ResolvedDeckItem{DeckItem: item.Clone()}
		if narrative == nil {
			continue
		}
		if story, ok := narrative.Story(item.StoryID); ok {
			out[i].Story = &story
			out[i].Available = true
		}
	}
	return out
}

// InterviewUpdateParams holds the optional fields of an interview update.
type InterviewUpdateParams struct {
	Type        *string
	ScheduledAt *time.Time
	ContactIDs  []uuid.UUID // nil = unchanged
	Deck        []DeckItem  // nil = unchanged
	Prep        map[string]string
	Notes       *string
}
