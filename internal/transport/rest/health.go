package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves liveness, readiness and component health.
type HealthHandler struct {
	db       Pinger
	optional map[string]Pinger
	version  string
	now      func() time.Time
}

// NewHealthHandler creates a HealthHandler. Optional components are
// reported by /health but never fail readiness.
func NewHealthHandler(db Pinger, version string, optional map[string]Pinger) *HealthHandler {
	return &HealthHandler{db: db, optional: optional, version: version, now: time.Now}
}

// HealthResponse is the JSON body of /live, /ready and /health.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one component.
type CompStatus struct {
	Status   string `json:"status"`
	Latency  string `json:"latency,omitempty"`
	Required bool   `json:"required"`
}

// Live handles GET /live. It always answers 200.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready handles GET /ready: 200 when the database answers, 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health handles GET /health with per-component latency. A failing optional
// component degrades the status without turning it into a 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	components := make(map[string]CompStatus, 1+len(h.optional))
	overall := "ok"

	db := checkComponent(ctx, h.db, true)
	components["database"] = db
	if db.Status != "ok" {
		overall = "down"
	}

	for name, p := range h.optional {
		c := checkComponent(ctx, p, false)
		components[name] = c
		if c.Status != "ok" && overall == "ok" {
			overall = "degraded"
		}
	}

	status := http.StatusOK
	if overall == "down" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{
		Status:     overall,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func checkComponent(ctx context.Context, p Pinger, required bool) CompStatus {
	start := time.Now()
	if err := p.Ping(ctx); err != nil {
		return CompStatus{Status: "down", Required: required}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String(), Required: required}
}
