package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/draft"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/workspace"
)

type workspaceService interface {
	Sessions(ctx context.Context) ([]workspace.SessionInfo, error)

	OpenCompany(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	CompanySession(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	BeginCompanyEdit(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	EditCompany(ctx context.Context, companyID uuid.UUID, e workspace.CompanyEdit) (workspace.CompanySnapshot, error)
	EditCompanyInfo(ctx context.Context, companyID uuid.UUID, key, text string) (workspace.CompanySnapshot, error)
	ResearchCompany(ctx context.Context, companyID uuid.UUID, fields []string) (workspace.CompanySnapshot, error)
	SaveCompany(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	CancelCompany(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	RefreshCompany(ctx context.Context, companyID uuid.UUID) (workspace.CompanySnapshot, error)
	CloseCompany(ctx context.Context, companyID uuid.UUID) error

	OpenInterview(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	InterviewSession(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	BeginInterviewEdit(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	EditInterview(ctx context.Context, interviewID uuid.UUID, e workspace.InterviewEdit) (workspace.InterviewSnapshot, error)
	ReorderDeck(ctx context.Context, interviewID, draggedID, targetID uuid.UUID) (workspace.InterviewSnapshot, error)
	AddStory(ctx context.Context, interviewID, storyID uuid.UUID) (workspace.InterviewSnapshot, error)
	RemoveStory(ctx context.Context, interviewID, storyID uuid.UUID) (workspace.InterviewSnapshot, error)
	AddPersona(ctx context.Context, interviewID uuid.UUID, persona string) (workspace.InterviewSnapshot, error)
	RemovePersona(ctx context.Context, interviewID uuid.UUID, persona string) (workspace.InterviewSnapshot, error)
	SetNote(ctx context.Context, interviewID, storyID uuid.UUID, persona, field, value string) (workspace.InterviewSnapshot, error)
	SaveInterview(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	CancelInterview(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	RefreshInterview(ctx context.Context, interviewID uuid.UUID) (workspace.InterviewSnapshot, error)
	CloseInterview(ctx context.Context, interviewID uuid.UUID) error
}

// WorkspaceHandler serves server-side edit sessions. Every mutating call
// answers with the full session snapshot so clients never merge state.
type WorkspaceHandler struct {
	svc workspaceService
	log *slog.Logger
}

// NewWorkspaceHandler creates a WorkspaceHandler.
func NewWorkspaceHandler(svc workspaceService, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{svc: svc, log: logger.With("handler", "workspace")}
}

// sessionOp runs op for the entity named by the {id} path value.
func sessionOp[T any](h *WorkspaceHandler, w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (T, error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	snap, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

type saveFailure[E any] struct {
	errorResponse
	Session draft.Snapshot[E] `json:"session"`
}

// saveOp reports a failed store write together with the session, whose
// draft still holds the user's edits.
func saveOp[E any](h *WorkspaceHandler, w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (draft.Snapshot[E], error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	snap, err := op(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, snap)
	case snap.SaveError != "":
		status, body := errorBody(h.log, r, err)
		writeJSON(w, status, saveFailure[E]{errorResponse: body, Session: snap})
	default:
		handleError(h.log, w, r, err)
	}
}

// Sessions handles GET /api/v1/workspace/sessions.
func (h *WorkspaceHandler) Sessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.svc.Sessions(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

// OpenCompany handles POST /api/v1/workspace/companies/{id}.
func (h *WorkspaceHandler) OpenCompany(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.OpenCompany)
}

// CompanySession handles GET /api/v1/workspace/companies/{id}.
func (h *WorkspaceHandler) CompanySession(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.CompanySession)
}

// BeginCompanyEdit handles POST /api/v1/workspace/companies/{id}/begin.
func (h *WorkspaceHandler) BeginCompanyEdit(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.BeginCompanyEdit)
}

type companyEditRequest struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	Competitors *string `json:"competitors"`
}

// EditCompany handles PATCH /api/v1/workspace/companies/{id}.
func (h *WorkspaceHandler) EditCompany(w http.ResponseWriter, r *http.Request) {
	var req companyEditRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.CompanySnapshot, error) {
		return h.svc.EditCompany(ctx, id, workspace.CompanyEdit(req))
	})
}

type infoTextRequest struct {
	Text string `json:"text"`
}

// EditCompanyInfo handles PUT /api/v1/workspace/companies/{id}/info/{key}.
// Only the text changes; the field keeps its source.
func (h *WorkspaceHandler) EditCompanyInfo(w http.ResponseWriter, r *http.Request) {
	var req infoTextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	key := r.PathValue("key")
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.CompanySnapshot, error) {
		return h.svc.EditCompanyInfo(ctx, id, key, req.Text)
	})
}

type researchRequest struct {
	Fields []string `json:"fields"`
}

// ResearchCompany handles POST /api/v1/workspace/companies/{id}/research.
// A provider failure is reported in the snapshot's enrichment_error.
func (h *WorkspaceHandler) ResearchCompany(w http.ResponseWriter, r *http.Request) {
	var req researchRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.CompanySnapshot, error) {
		return h.svc.ResearchCompany(ctx, id, req.Fields)
	})
}

// SaveCompany handles POST /api/v1/workspace/companies/{id}/save.
func (h *WorkspaceHandler) SaveCompany(w http.ResponseWriter, r *http.Request) {
	saveOp(h, w, r, h.svc.SaveCompany)
}

// CancelCompany handles POST /api/v1/workspace/companies/{id}/cancel.
func (h *WorkspaceHandler) CancelCompany(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.CancelCompany)
}

// RefreshCompany handles POST /api/v1/workspace/companies/{id}/refresh.
func (h *WorkspaceHandler) RefreshCompany(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.RefreshCompany)
}

// CloseCompany handles DELETE /api/v1/workspace/companies/{id}.
func (h *WorkspaceHandler) CloseCompany(w http.ResponseWriter, r *http.Request) {
	h.closeSession(w, r, h.svc.CloseCompany)
}

func (h *WorkspaceHandler) closeSession(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) error) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := op(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// OpenInterview handles POST /api/v1/workspace/interviews/{id}.
func (h *WorkspaceHandler) OpenInterview(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.OpenInterview)
}

// InterviewSession handles GET /api/v1/workspace/interviews/{id}.
func (h *WorkspaceHandler) InterviewSession(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.InterviewSession)
}

// BeginInterviewEdit handles POST /api/v1/workspace/interviews/{id}/begin.
func (h *WorkspaceHandler) BeginInterviewEdit(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.BeginInterviewEdit)
}

type interviewEditRequest struct {
	Type        *string           `json:"interview_type"`
	ScheduledAt *time.Time        `json:"scheduled_at"`
	Notes       *string           `json:"notes"`
	Prep        map[string]string `json:"prep"`
}

// EditInterview handles PATCH /api/v1/workspace/interviews/{id}.
func (h *WorkspaceHandler) EditInterview(w http.ResponseWriter, r *http.Request) {
	var req interviewEditRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.InterviewSnapshot, error) {
		return h.svc.EditInterview(ctx, id, workspace.InterviewEdit(req))
	})
}

type reorderRequest struct {
	DraggedID uuid.UUID `json:"dragged_id"`
	TargetID  uuid.UUID `json:"target_id"`
}

// ReorderDeck handles POST /api/v1/workspace/interviews/{id}/deck/reorder.
func (h *WorkspaceHandler) ReorderDeck(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.InterviewSnapshot, error) {
		return h.svc.ReorderDeck(ctx, id, req.DraggedID, req.TargetID)
	})
}

// AddStory handles PUT /api/v1/workspace/interviews/{id}/deck/{storyID}.
func (h *WorkspaceHandler) AddStory(w http.ResponseWriter, r *http.Request) {
	h.storyOp(w, r, h.svc.AddStory)
}

// RemoveStory handles DELETE /api/v1/workspace/interviews/{id}/deck/{storyID}.
func (h *WorkspaceHandler) RemoveStory(w http.ResponseWriter, r *http.Request) {
	h.storyOp(w, r, h.svc.RemoveStory)
}

func (h *WorkspaceHandler) storyOp(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID, uuid.UUID) (workspace.InterviewSnapshot, error)) {
	storyID, err := pathUUID(r, "storyID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.InterviewSnapshot, error) {
		return op(ctx, id, storyID)
	})
}

type personaRequest struct {
	Persona string `json:"persona"`
}

// AddPersona handles POST /api/v1/workspace/interviews/{id}/personas.
func (h *WorkspaceHandler) AddPersona(w http.ResponseWriter, r *http.Request) {
	var req personaRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.InterviewSnapshot, error) {
		return h.svc.AddPersona(ctx, id, req.Persona)
	})
}

// RemovePersona handles DELETE /api/v1/workspace/interviews/{id}/personas/{persona}.
func (h *WorkspaceHandler) RemovePersona(w http.ResponseWriter, r *http.Request) {
	persona := r.PathValue("persona")
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.InterviewSnapshot, error) {
		return h.svc.RemovePersona(ctx, id, persona)
	})
}

type noteRequest struct {
	Persona string `json:"persona"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// SetNote handles PUT /api/v1/workspace/interviews/{id}/deck/{storyID}/notes.
func (h *WorkspaceHandler) SetNote(w http.ResponseWriter, r *http.Request) {
	storyID, err := pathUUID(r, "storyID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req noteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	sessionOp(h, w, r, func(ctx context.Context, id uuid.UUID) (workspace.InterviewSnapshot, error) {
		return h.svc.SetNote(ctx, id, storyID, req.Persona, req.Field, req.Value)
	})
}

// SaveInterview handles POST /api/v1/workspace/interviews/{id}/save.
func (h *WorkspaceHandler) SaveInterview(w http.ResponseWriter, r *http.Request) {
	saveOp(h, w, r, h.svc.SaveInterview)
}

// CancelInterview handles POST /api/v1/workspace/interviews/{id}/cancel.
func (h *WorkspaceHandler) CancelInterview(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.CancelInterview)
}

// RefreshInterview handles POST /api/v1/workspace/interviews/{id}/refresh.
func (h *WorkspaceHandler) RefreshInterview(w http.ResponseWriter, r *http.Request) {
	sessionOp(h, w, r, h.svc.RefreshInterview)
}

// CloseInterview handles DELETE /api/v1/workspace/interviews/{id}.
func (h *WorkspaceHandler) CloseInterview(w http.ResponseWriter, r *http.Request) {
	h.closeSession(w, r, h.svc.CloseInterview)
}
