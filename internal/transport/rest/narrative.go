package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/narrative"
)

type narrativeService interface {
	CreateNarrative(ctx context.Context, input narrative.CreateNarrativeInput) (*domain.Narrative, error)
	GetNarrative(ctx context.Context, narrativeID uuid.UUID) (*domain.Narrative, error)
	UpdateNarrative(ctx context.Context, input narrative.UpdateNarrativeInput) (*domain.Narrative, error)
	DeleteNarrative(ctx context.Context, narrativeID uuid.UUID) error
	ListNarratives(ctx context.Context) ([]domain.Narrative, error)
	CreatePost(ctx context.Context, input narrative.CreatePostInput) (*domain.Post, error)
	ListPosts(ctx context.Context, page domain.Page) ([]domain.Post, error)
	DeletePost(ctx context.Context, postID uuid.UUID) error
	CreateEngagement(ctx context.Context, input narrative.CreateEngagementInput) (*domain.Engagement, error)
	ListEngagements(ctx context.Context, postID uuid.UUID) ([]domain.Engagement, error)
	DeleteEngagement(ctx context.Context, engagementID uuid.UUID) error
	GetGoals(ctx context.Context) (*domain.WeeklyGoals, error)
	SetGoals(ctx context.Context, input narrative.SetGoalsInput) (*domain.WeeklyGoals, error)
}

// NarrativeHandler serves strategic narratives, brand posts and weekly goals.
type NarrativeHandler struct {
	svc narrativeService
	log *slog.Logger
}

// NewNarrativeHandler creates a NarrativeHandler.
func NewNarrativeHandler(svc narrativeService, logger *slog.Logger) *NarrativeHandler {
	return &NarrativeHandler{svc: svc, log: logger.With("handler", "narrative")}
}

type storyRequest struct {
	ID     uuid.UUID          `json:"id"`
	Title  string             `json:"title"`
	Format domain.StoryFormat `json:"format"`
	Fields map[string]string  `json:"fields"`
}

type narrativeRequest struct {
	Name                 *string        `json:"name"`
	DesiredTitle         *string        `json:"desired_title"`
	PositioningStatement *string        `json:"positioning_statement"`
	SignatureCapability  *string        `json:"signature_capability"`
	Stories              []storyRequest `json:"impact_stories"`
}

func toStoryInputs(in []storyRequest) []narrative.StoryInput {
	if in == nil {
		return nil
	}
	out := make([]narrative.StoryInput, len(in))
	for i, s := range in {
		out[i] = narrative.StoryInput(s)
	}
	return out
}

// CreateNarrative handles POST /api/v1/narratives.
func (h *NarrativeHandler) CreateNarrative(w http.ResponseWriter, r *http.Request) {
	var req narrativeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	n, err := h.svc.CreateNarrative(r.Context(), narrative.CreateNarrativeInput{
		Name:                 deref(req.Name),
		DesiredTitle:         deref(req.DesiredTitle),
		PositioningStatement: deref(req.PositioningStatement),
		SignatureCapability:  deref(req.SignatureCapability),
		Stories:              toStoryInputs(req.Stories),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, n)
}

// GetNarrative handles GET /api/v1/narratives/{id}.
func (h *NarrativeHandler) GetNarrative(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	n, err := h.svc.GetNarrative(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// UpdateNarrative handles PATCH /api/v1/narratives/{id}. A present
// impact_stories array replaces the stored stories.
func (h *NarrativeHandler) UpdateNarrative(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req narrativeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	n, err := h.svc.UpdateNarrative(r.Context(), narrative.UpdateNarrativeInput{
		NarrativeID:          id,
		Name:                 req.Name,
		DesiredTitle:         req.DesiredTitle,
		PositioningStatement: req.PositioningStatement,
		SignatureCapability:  req.SignatureCapability,
		Stories:              toStoryInputs(req.Stories),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, n)
}

// DeleteNarrative handles DELETE /api/v1/narratives/{id}.
func (h *NarrativeHandler) DeleteNarrative(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteNarrative(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListNarratives handles GET /api/v1/narratives.
func (h *NarrativeHandler) ListNarratives(w http.ResponseWriter, r *http.Request) {
	ns, err := h.svc.ListNarratives(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(ns, domain.Page{}))
}

type createPostRequest struct {
	NarrativeID *uuid.UUID `json:"narrative_id"`
	Theme       string     `json:"theme"`
	Content     string     `json:"content"`
	PublishedAt *time.Time `json:"published_at"`
}

// CreatePost handles POST /api/v1/posts. Without narrative_id the active
// narrative is used.
func (h *NarrativeHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	p, err := h.svc.CreatePost(r.Context(), narrative.CreatePostInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// ListPosts handles GET /api/v1/posts?limit=&offset=.
func (h *NarrativeHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	page, err := queryPage(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	posts, err := h.svc.ListPosts(r.Context(), page)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(posts, page))
}

// DeletePost handles DELETE /api/v1/posts/{id}.
func (h *NarrativeHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeletePost(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type createEngagementRequest struct {
	ContactName    string   `json:"contact_name"`
	ContactTitle   string   `json:"contact_title"`
	Kind           string   `json:"kind"`
	StrategicScore *float64 `json:"strategic_score"`
}

// CreateEngagement handles POST /api/v1/posts/{id}/engagements.
func (h *NarrativeHandler) CreateEngagement(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req createEngagementRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	e, err := h.svc.CreateEngagement(r.Context(), narrative.CreateEngagementInput{
		PostID:         postID,
		ContactName:    req.ContactName,
		ContactTitle:   req.ContactTitle,
		Kind:           req.Kind,
		StrategicScore: req.StrategicScore,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, e)
}

// ListEngagements handles GET /api/v1/posts/{id}/engagements.
func (h *NarrativeHandler) ListEngagements(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	es, err := h.svc.ListEngagements(r.Context(), postID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(es, domain.Page{}))
}

// DeleteEngagement handles DELETE /api/v1/engagements/{id}.
func (h *NarrativeHandler) DeleteEngagement(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.svc.DeleteEngagement(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetGoals handles GET /api/v1/goals.
func (h *NarrativeHandler) GetGoals(w http.ResponseWriter, r *http.Request) {
	g, err := h.svc.GetGoals(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

type goalsRequest struct {
	Applications int `json:"applications"`
	Contacts     int `json:"contacts"`
	Posts        int `json:"posts"`
}

// SetGoals handles PUT /api/v1/goals.
func (h *NarrativeHandler) SetGoals(w http.ResponseWriter, r *http.Request) {
	var req goalsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	g, err := h.svc.SetGoals(r.Context(), narrative.SetGoalsInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}
