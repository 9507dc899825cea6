package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/network"
)

type networkService interface {
	CreateCompany(ctx context.Context, input network.CreateCompanyInput) (*domain.Company, error)
	GetCompany(ctx context.Context, companyID uuid.UUID) (*domain.Company, error)
	UpdateCompany(ctx context.Context, input network.UpdateCompanyInput) (*domain.Company, error)
	DeleteCompany(ctx context.Context, companyID uuid.UUID) error
	ListCompanies(ctx context.Context, page domain.Page) ([]domain.Company, error)
	CreateContact(ctx context.Context, input network.CreateContactInput) (*domain.Contact, error)
	GetContact(ctx context.Context, contactID uuid.UUID) (*domain.Contact, error)
	UpdateContact(ctx context.Context, input network.UpdateContactInput) (*domain.Contact, error)
	TagNarrative(ctx context.Context, contactID, narrativeID uuid.UUID) (*domain.Contact, error)
	UntagNarrative(ctx context.Context, contactID, narrativeID uuid.UUID) (*domain.Contact, error)
	DeleteContact(ctx context.Context, contactID uuid.UUID) error
	ListContacts(ctx context.Context, filter domain.ContactFilter) ([]domain.Contact, error)
	CreateMessage(ctx context.Context, input network.CreateMessageInput) (*domain.Message, error)
	ListMessages(ctx context.Context, filter domain.MessageFilter) ([]domain.Message, error)
	DeleteMessage(ctx context.Context, messageID uuid.UUID) error
}

// NetworkHandler serves companies, contacts and messages.
type NetworkHandler struct {
	svc networkService
	log *slog.Logger
}

// NewNetworkHandler creates a NetworkHandler.
func NewNetworkHandler(svc networkService, logger *slog.Logger) *NetworkHandler {
	return &NetworkHandler{svc: svc, log: logger.With("handler", "network")}
}

type companyRequest struct {
	Name        *string                     `json:"name"`
	Website     *string                     `json:"website"`
	Competitors *string                     `json:"competitors"`
	Info        map[string]domain.InfoField `json:"info"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// CreateCompany handles POST /api/v1/companies.
func (h *NetworkHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.CreateCompany(r.Context(), network.CreateCompanyInput{
		Name:        deref(req.Name),
		Website:     deref(req.Website),
		Competitors: deref(req.Competitors),
		Info:        req.Info,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// GetCompany handles GET /api/v1/companies/{id}.
func (h *NetworkHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.GetCompany(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateCompany handles PATCH /api/v1/companies/{id}. Info entries are
// merged into the stored map.
func (h *NetworkHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req companyRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.UpdateCompany(r.Context(), network.UpdateCompanyInput{
		CompanyID:   id,
		Name:        req.Name,
		Website:     req.Website,
		Competitors: req.Competitors,
		Info:        req.Info,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteCompany handles DELETE /api/v1/companies/{id}.
func (h *NetworkHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteCompany(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCompanies handles GET /api/v1/companies?limit=&offset=.
func (h *NetworkHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	companies, err := h.svc.ListCompanies(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(companies, page))
}

type createContactRequest struct {
	CompanyID      *uuid.UUID           `json:"company_id"`
	FirstName      string               `json:"first_name"`
	LastName       string               `json:"last_name"`
	JobTitle       string               `json:"job_title"`
	LinkedInURL    string               `json:"linkedin_url"`
	Status         domain.ContactStatus `json:"status"`
	IsReferral     bool                 `json:"is_referral"`
	NarrativeIDs   []uuid.UUID          `json:"narrative_ids"`
	AlignmentScore *float64             `json:"alignment_score"`
}

type updateContactRequest struct {
	CompanyID      *uuid.UUID            `json:"company_id"`
	FirstName      *string               `json:"first_name"`
	LastName       *string               `json:"last_name"`
	JobTitle       *string               `json:"job_title"`
	LinkedInURL    *string               `json:"linkedin_url"`
	Status         *domain.ContactStatus `json:"status"`
	IsReferral     *bool                 `json:"is_referral"`
	NarrativeIDs   []uuid.UUID           `json:"narrative_ids"`
	AlignmentScore *float64              `json:"alignment_score"`
}

// CreateContact handles POST /api/v1/contacts.
func (h *NetworkHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.CreateContact(r.Context(), network.CreateContactInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// GetContact handles GET /api/v1/contacts/{id}.
func (h *NetworkHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.GetContact(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// UpdateContact handles PATCH /api/v1/contacts/{id}.
func (h *NetworkHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateContactRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := h.svc.UpdateContact(r.Context(), network.UpdateContactInput{
		ContactID:      id,
		CompanyID:      req.CompanyID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		JobTitle:       req.JobTitle,
		LinkedInURL:    req.LinkedInURL,
		Status:         req.Status,
		IsReferral:     req.IsReferral,
		NarrativeIDs:   req.NarrativeIDs,
		AlignmentScore: req.AlignmentScore,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// TagNarrative handles PUT /api/v1/contacts/{id}/narratives/{narrativeID}.
func (h *NetworkHandler) TagNarrative(w http.ResponseWriter, r *http.Request) {
	h.narrativeTag(w, r, h.svc.TagNarrative)
}

// UntagNarrative handles DELETE /api/v1/contacts/{id}/narratives/{narrativeID}.
func (h *NetworkHandler) UntagNarrative(w http.ResponseWriter, r *http.Request) {
	h.narrativeTag(w, r, h.svc.UntagNarrative)
}

func (h *NetworkHandler) narrativeTag(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, uuid.UUID) (*domain.Contact, error)) {
	contactID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	narrativeID, err := pathUUID(r, "narrativeID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	c, err := op(r.Context(), contactID, narrativeID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteContact handles DELETE /api/v1/contacts/{id}.
func (h *NetworkHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteContact(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListContacts handles GET /api/v1/contacts
// ?status=&company_id=&narrative_id=&q=&limit=&offset=.
func (h *NetworkHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	filter := domain.ContactFilter{Limit: page.Limit, Offset: page.Offset, Search: r.URL.Query().Get("q")}
	if s := queryString(r, "status"); s != nil {
		st := domain.ContactStatus(*s)
		filter.Status = &st
	}
	if filter.CompanyID, err = queryUUID(r, "company_id"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if filter.NarrativeID, err = queryUUID(r, "narrative_id"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	contacts, err := h.svc.ListContacts(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(contacts, page))
}

type createMessageRequest struct {
	ContactID       *uuid.UUID         `json:"contact_id"`
	CompanyID       *uuid.UUID         `json:"company_id"`
	ApplicationID   *uuid.UUID         `json:"application_id"`
	Type            domain.MessageType `json:"message_type"`
	Content         string             `json:"content"`
	FollowUpDueDate *time.Time         `json:"follow_up_due_date"`
	IsUserSent      bool               `json:"is_user_sent"`
}

// CreateMessage handles POST /api/v1/messages.
func (h *NetworkHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req createMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	m, err := h.svc.CreateMessage(r.Context(), network.CreateMessageInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

// ListMessages handles GET /api/v1/messages
// ?contact_id=&company_id=&application_id=&type=&limit=&offset=.
func (h *NetworkHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	filter := domain.MessageFilter{Limit: page.Limit, Offset: page.Offset}
	if t := queryString(r, "type"); t != nil {
		mt := domain.MessageType(*t)
		filter.Type = &mt
	}
	for name, dst := range map[string]**uuid.UUID{
		"contact_id":     &filter.ContactID,
		"company_id":     &filter.CompanyID,
		"application_id": &filter.ApplicationID,
	} {
		if *dst, err = queryUUID(r, name); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	msgs, err := h.svc.ListMessages(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(msgs, page))
}

// DeleteMessage handles DELETE /api/v1/messages/{id}.
func (h *NetworkHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteMessage(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
