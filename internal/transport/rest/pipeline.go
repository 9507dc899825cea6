package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/pipeline"
)

type pipelineService interface {
	CreateApplication(ctx context.Context, input pipeline.CreateApplicationInput) (*domain.Application, error)
	GetApplication(ctx context.Context, applicationID uuid.UUID) (*domain.Application, error)
	UpdateApplication(ctx context.Context, input pipeline.UpdateApplicationInput) (*domain.Application, error)
	DeleteApplication(ctx context.Context, applicationID uuid.UUID) error
	ListApplications(ctx context.Context, input pipeline.ListApplicationsInput) ([]domain.Application, error)
	CreateInterview(ctx context.Context, input pipeline.CreateInterviewInput) (*domain.Interview, error)
	GetInterview(ctx context.Context, interviewID uuid.UUID) (*domain.Interview, error)
	UpdateInterview(ctx context.Context, input pipeline.UpdateInterviewInput) (*domain.Interview, error)
	DeleteInterview(ctx context.Context, interviewID uuid.UUID) error
	GetInterviewDeck(ctx context.Context, interviewID uuid.UUID) (*pipeline.InterviewDeck, error)
}

// PipelineHandler serves applications and their interviews.
type PipelineHandler struct {
	svc pipelineService
	log *slog.Logger
}

// NewPipelineHandler creates a PipelineHandler.
func NewPipelineHandler(svc pipelineService, logger *slog.Logger) *PipelineHandler {
	return &PipelineHandler{svc: svc, log: logger.With("handler", "pipeline")}
}

type createApplicationRequest struct {
	CompanyID         uuid.UUID                `json:"company_id"`
	JobTitle          string                   `json:"job_title"`
	JobLink           string                   `json:"job_link"`
	Status            domain.ApplicationStatus `json:"status"`
	StrategicFitScore *float64                 `json:"strategic_fit_score"`
	NarrativeID       *uuid.UUID               `json:"narrative_id"`
	AppliedAt         *time.Time               `json:"applied_at"`
}

type updateApplicationRequest struct {
	JobTitle          *string                   `json:"job_title"`
	JobLink           *string                   `json:"job_link"`
	Status            *domain.ApplicationStatus `json:"status"`
	StrategicFitScore *float64                  `json:"strategic_fit_score"`
	ClearFitScore     bool                      `json:"clear_fit_score"`
	NarrativeID       *uuid.UUID                `json:"narrative_id"`
	ClearNarrative    bool                      `json:"clear_narrative"`
	AppliedAt         *time.Time                `json:"applied_at"`
}

// CreateApplication handles POST /api/v1/applications.
func (h *PipelineHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req createApplicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.CreateApplication(r.Context(), pipeline.CreateApplicationInput{
		CompanyID:         req.CompanyID,
		JobTitle:          req.JobTitle,
		JobLink:           req.JobLink,
		Status:            req.Status,
		StrategicFitScore: req.StrategicFitScore,
		NarrativeID:       req.NarrativeID,
		AppliedAt:         req.AppliedAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// GetApplication handles GET /api/v1/applications/{id}.
func (h *PipelineHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	app, err := h.svc.GetApplication(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// UpdateApplication handles PATCH /api/v1/applications/{id}.
func (h *PipelineHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateApplicationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	app, err := h.svc.UpdateApplication(r.Context(), pipeline.UpdateApplicationInput{
		ApplicationID:     id,
		JobTitle:          req.JobTitle,
		JobLink:           req.JobLink,
		Status:            req.Status,
		StrategicFitScore: req.StrategicFitScore,
		ClearFitScore:     req.ClearFitScore,
		NarrativeID:       req.NarrativeID,
		ClearNarrative:    req.ClearNarrative,
		AppliedAt:         req.AppliedAt,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// DeleteApplication handles DELETE /api/v1/applications/{id}.
func (h *PipelineHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteApplication(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListApplications handles GET /api/v1/applications
// ?status=&company_id=&narrative_id=&limit=&offset=.
func (h *PipelineHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	filter := domain.ApplicationFilter{Limit: page.Limit, Offset: page.Offset}
	if s := queryString(r, "status"); s != nil {
		st := domain.ApplicationStatus(*s)
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

	apps, err := h.svc.ListApplications(r.Context(), pipeline.ListApplicationsInput{Filter: filter})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(apps, page))
}

type createInterviewRequest struct {
	Type        string      `json:"interview_type"`
	ScheduledAt *time.Time  `json:"scheduled_at"`
	ContactIDs  []uuid.UUID `json:"contact_ids"`
	Notes       string      `json:"notes"`
}

type updateInterviewRequest struct {
	Type        *string           `json:"interview_type"`
	ScheduledAt *time.Time        `json:"scheduled_at"`
	ContactIDs  []uuid.UUID       `json:"contact_ids"`
	Prep        map[string]string `json:"prep"`
	Notes       *string           `json:"notes"`
}

// CreateInterview handles POST /api/v1/applications/{id}/interviews.
func (h *PipelineHandler) CreateInterview(w http.ResponseWriter, r *http.Request) {
	appID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createInterviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	iv, err := h.svc.CreateInterview(r.Context(), pipeline.CreateInterviewInput{
		ApplicationID: appID,
		Type:          req.Type,
		ScheduledAt:   req.ScheduledAt,
		ContactIDs:    req.ContactIDs,
		Notes:         req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, iv)
}

// GetInterview handles GET /api/v1/interviews/{id}.
func (h *PipelineHandler) GetInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	iv, err := h.svc.GetInterview(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, iv)
}

// UpdateInterview handles PATCH /api/v1/interviews/{id}.
func (h *PipelineHandler) UpdateInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateInterviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	iv, err := h.svc.UpdateInterview(r.Context(), pipeline.UpdateInterviewInput{
		InterviewID: id,
		Type:        req.Type,
		ScheduledAt: req.ScheduledAt,
		ContactIDs:  req.ContactIDs,
		Prep:        req.Prep,
		Notes:       req.Notes,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, iv)
}

// DeleteInterview handles DELETE /api/v1/interviews/{id}.
func (h *PipelineHandler) DeleteInterview(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteInterview(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// InterviewDeck handles GET /api/v1/interviews/{id}/deck.
func (h *PipelineHandler) InterviewDeck(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	deck, err := h.svc.GetInterviewDeck(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}
