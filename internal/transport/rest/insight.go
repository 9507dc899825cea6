package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/insight"
)

type insightService interface {
	GetDashboard(ctx context.Context) (insight.Dashboard, error)
	CompareNarratives(ctx context.Context, a, b uuid.UUID) (insight.Comparison, error)
	MatchCompetitors(ctx context.Context, companyID uuid.UUID) ([]insight.CompetitorMatch, error)
}

// InsightHandler serves derived views.
type InsightHandler struct {
	svc insightService
	log *slog.Logger
}

// NewInsightHandler creates an InsightHandler.
func NewInsightHandler(svc insightService, logger *slog.Logger) *InsightHandler {
	return &InsightHandler{svc: svc, log: logger.With("handler", "insight")}
}

// Dashboard handles GET /api/v1/dashboard.
func (h *InsightHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetDashboard(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// CompareNarratives handles GET /api/v1/narratives/compare?a=&b=.
func (h *InsightHandler) CompareNarratives(w http.ResponseWriter, r *http.Request) {
	a, err := queryUUID(r, "a")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	b, err := queryUUID(r, "b")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out, err := h.svc.CompareNarratives(r.Context(), orNil(a), orNil(b))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Competitors handles GET /api/v1/companies/{id}/competitors.
func (h *InsightHandler) Competitors(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	matches, err := h.svc.MatchCompetitors(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if matches == nil {
		matches = []insight.CompetitorMatch{}
	}
	writeJSON(w, http.StatusOK, matches)
}

func orNil(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}
