package domain

import "github.com/google/uuid"

// ApplicationFilter narrows an application listing. Nil fields are ignored.
type ApplicationFilter struct {
	Status      *ApplicationStatus
	CompanyID   *uuid.UUID
	NarrativeID *uuid.UUID
	Limit       int
	Offset      int
}

// ContactFilter narrows a contact listing. Nil fields are ignored.
type ContactFilter struct {
	Status      *ContactStatus
	CompanyID   *uuid.UUID
	NarrativeID *uuid.UUID
	Search      string
	Limit       int
	Offset      int
}

// Page is plain limit/offset pagination.
type Page struct {
	Limit  int
	Offset int
}
