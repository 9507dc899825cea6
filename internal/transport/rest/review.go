package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/review"
)

type reviewService interface {
	Submit(ctx context.Context, input review.SubmitInput) (*domain.ReviewedJob, error)
	Pending(ctx context.Context) ([]domain.ReviewedJob, error)
	Reload(ctx context.Context) ([]domain.ReviewedJob, error)
	Override(ctx context.Context, input review.OverrideInput) ([]domain.ReviewedJob, error)
	Notifications(ctx context.Context) ([]domain.Notification, error)
	DismissNotifications(ctx context.Context) error
}

// ReviewHandler serves the job review queue.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type submitJobRequest struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"company_name"`
	URL         string   `json:"url"`
	Recommended bool     `json:"recommended"`
	Confidence  *float64 `json:"confidence"`
	Rationale   string   `json:"rationale"`
}

// Submit handles POST /api/v1/review/jobs.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitJobRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	job, err := h.svc.Submit(r.Context(), review.SubmitInput(req))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

// Pending handles GET /api/v1/review/jobs.
func (h *ReviewHandler) Pending(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.Pending(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(jobs, domain.Page{}))
}

// Reload handles POST /api/v1/review/jobs/reload.
func (h *ReviewHandler) Reload(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.svc.Reload(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(jobs, domain.Page{}))
}

type overrideRequest struct {
	Override      bool   `json:"override"`
	Justification string `json:"justification"`
}

// Override handles POST /api/v1/review/jobs/{id}/override. The job leaves
// the queue immediately; the store write completes in the background and
// answers 202 with the remaining queue.
func (h *ReviewHandler) Override(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req overrideRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	jobs, err := h.svc.Override(r.Context(), review.OverrideInput{
		JobID:         id,
		Override:      req.Override,
		Justification: req.Justification,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, list(jobs, domain.Page{}))
}

// Notifications handles GET /api/v1/review/notifications.
func (h *ReviewHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	ns, err := h.svc.Notifications(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list(ns, domain.Page{}))
}

// DismissNotifications handles DELETE /api/v1/review/notifications.
func (h *ReviewHandler) DismissNotifications(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DismissNotifications(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
