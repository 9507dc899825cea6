package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a note or outreach message attached to a contact, company or
// application.
type Message struct {
	ID              uuid.UUID   `json:"id"`
	UserID          uuid.UUID   `json:"-"`
	ContactID       *uuid.UUID  `json:"contact_id,omitempty"`
	CompanyID       *uuid.UUID  `json:"company_id,omitempty"`
	ApplicationID   *uuid.UUID  `json:"application_id,omitempty"`
	Type            MessageType `json:"type"`
	Content         string      `json:"content"`
	FollowUpDueDate *time.Time  `json:"follow_up_due_date,omitempty"`
	IsUserSent      bool        `json:"is_user_sent"`
	CreatedAt       time.Time   `json:"created_at"`
}

// Clone returns a deep copy.
func (m Message) Clone() Message {
	out := m
	out.ContactID = clonePtr(m.ContactID)
	out.CompanyID = clonePtr(m.CompanyID)
	out.ApplicationID = clonePtr(m.ApplicationID)
	out.FollowUpDueDate = clonePtr(m.FollowUpDueDate)
	return out
}

// HasReference reports whether the message points at any owning entity.
func (m Message) HasReference() bool {
	return m.ContactID != nil || m.CompanyID != nil || m.ApplicationID != nil
}

// MessageFilter narrows a message listing. Nil fields are ignored.
type MessageFilter struct {
	ContactID     *uuid.UUID
	CompanyID     *uuid.UUID
	ApplicationID *uuid.UUID
	Type          *MessageType
	Limit         int
	Offset        int
}
