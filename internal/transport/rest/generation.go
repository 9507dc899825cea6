package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/domain"
	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/service/generation"
)

type generationService interface {
	StrategicMessages(ctx context.Context, req generation.StrategicMessageRequest) ([]domain.Artifact, error)
	BrandVoice(ctx context.Context, req generation.BrandVoiceRequest) (*domain.Artifact, error)
	ResearchCompany(ctx context.Context, req generation.CompanyResearchRequest) (map[string]domain.InfoField, error)
}

// GenerationHandler serves the closed set of generative content requests.
// Request bodies decode straight into the service request types.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

type artifactsResponse struct {
	Artifacts []domain.Artifact `json:"artifacts"`
}

// StrategicMessages handles POST /api/v1/generate/strategic-messages.
func (h *GenerationHandler) StrategicMessages(w http.ResponseWriter, r *http.Request) {
	var req generation.StrategicMessageRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	arts, err := h.svc.StrategicMessages(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, artifactsResponse{Artifacts: arts})
}

// BrandVoice handles POST /api/v1/generate/brand-voice.
func (h *GenerationHandler) BrandVoice(w http.ResponseWriter, r *http.Request) {
	var req generation.BrandVoiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	art, err := h.svc.BrandVoice(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, art)
}

type researchResponse struct {
	Info map[string]domain.InfoField `json:"info"`
}

// CompanyResearch handles POST /api/v1/generate/company-research. The
// result is not stored; use a workspace session to merge it into a draft.
func (h *GenerationHandler) CompanyResearch(w http.ResponseWriter, r *http.Request) {
	var req generation.CompanyResearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	info, err := h.svc.ResearchCompany(r.Context(), req)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, researchResponse{Info: info})
}
