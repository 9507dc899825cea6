package rest

import (
	"log/slog"
	"net/http"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by the router.
type Handlers struct {
	Health     *HealthHandler
	Pipeline   *PipelineHandler
	Network    *NetworkHandler
	Narrative  *NarrativeHandler
	Insight    *InsightHandler
	Review     *ReviewHandler
	Generation *GenerationHandler
	Workspace  *WorkspaceHandler
}

// RouterDeps holds the cross-cutting pieces of the middleware chain. Nil
// Metrics or RateLimit switches that layer off.
type RouterDeps struct {
	Logger         *slog.Logger
	Auth           middleware.Middleware
	CORS           middleware.Middleware
	RateLimit      middleware.Middleware
	Metrics        middleware.Middleware
	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter builds the HTTP handler. Health endpoints and metrics stay outside the
// authenticated API chain.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	api := http.NewServeMux()
	mountPipeline(api, h.Pipeline)
	mountNetwork(api, h.Network)
	mountNarrative(api, h.Narrative)
	mountInsight(api, h.Insight)
	mountReview(api, h.Review)
	mountGeneration(api, h.Generation)
	mountWorkspace(api, h.Workspace)

	apiChain := middleware.Chain(
		deps.RateLimit,
		deps.Auth,
		middleware.Narrative,
		middleware.RoutePattern,
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /live", h.Health.Live)
	root.HandleFunc("GET /ready", h.Health.Ready)
	root.HandleFunc("GET /health", h.Health.Health)
	if deps.MetricsHandler != nil {
		root.Handle("GET "+deps.MetricsPath, deps.MetricsHandler)
	}
	root.Handle("/api/v1/", apiChain(api))

	return middleware.Chain(
		middleware.Recovery(deps.Logger),
		middleware.RequestID,
		middleware.Logger(deps.Logger),
		deps.Metrics,
		deps.CORS,
		middleware.RoutePattern,
	)(root)
}

func mountPipeline(mux *http.ServeMux, h *PipelineHandler) {
	mux.HandleFunc("POST /api/v1/applications", h.CreateApplication)
	mux.HandleFunc("GET /api/v1/applications", h.ListApplications)
	mux.HandleFunc("GET /api/v1/applications/{id}", h.GetApplication)
	mux.HandleFunc("PATCH /api/v1/applications/{id}", h.UpdateApplication)
	mux.HandleFunc("DELETE /api/v1/applications/{id}", h.DeleteApplication)
	mux.HandleFunc("POST /api/v1/applications/{id}/interviews", h.CreateInterview)
	mux.HandleFunc("GET /api/v1/interviews/{id}", h.GetInterview)
	mux.HandleFunc("PATCH /api/v1/interviews/{id}", h.UpdateInterview)
	mux.HandleFunc("DELETE /api/v1/interviews/{id}", h.DeleteInterview)
	mux.HandleFunc("GET /api/v1/interviews/{id}/deck", h.InterviewDeck)
}

func mountNetwork(mux *http.ServeMux, h *NetworkHandler) {
	mux.HandleFunc("POST /api/v1/companies", h.CreateCompany)
	mux.HandleFunc("GET /api/v1/companies", h.ListCompanies)
	mux.HandleFunc("GET /api/v1/companies/{id}", h.GetCompany)
	mux.HandleFunc("PATCH /api/v1/companies/{id}", h.UpdateCompany)
	mux.HandleFunc("DELETE /api/v1/companies/{id}", h.DeleteCompany)

	mux.HandleFunc("POST /api/v1/contacts", h.CreateContact)
	mux.HandleFunc("GET /api/v1/contacts", h.ListContacts)
	mux.HandleFunc("GET /api/v1/contacts/{id}", h.GetContact)
	mux.HandleFunc("PATCH /api/v1/contacts/{id}", h.UpdateContact)
	mux.HandleFunc("DELETE /api/v1/contacts/{id}", h.DeleteContact)
	mux.HandleFunc("PUT /api/v1/contacts/{id}/narratives/{narrativeID}", h.TagNarrative)
	mux.HandleFunc("DELETE /api/v1/contacts/{id}/narratives/{narrativeID}", h.UntagNarrative)

	mux.HandleFunc("POST /api/v1/messages", h.CreateMessage)
	mux.HandleFunc("GET /api/v1/messages", h.ListMessages)
	mux.HandleFunc("DELETE /api/v1/messages/{id}", h.DeleteMessage)
}

func mountNarrative(mux *http.ServeMux, h *NarrativeHandler) {
	mux.HandleFunc("POST /api/v1/narratives", h.CreateNarrative)
	mux.HandleFunc("GET /api/v1/narratives", h.ListNarratives)
	mux.HandleFunc("GET /api/v1/narratives/{id}", h.GetNarrative)
	mux.HandleFunc("PATCH /api/v1/narratives/{id}", h.UpdateNarrative)
	mux.HandleFunc("DELETE /api/v1/narratives/{id}", h.DeleteNarrative)

	mux.HandleFunc("POST /api/v1/posts", h.CreatePost)
	mux.HandleFunc("GET /api/v1/posts", h.ListPosts)
	mux.HandleFunc("DELETE /api/v1/posts/{id}", h.DeletePost)
	mux.HandleFunc("POST /api/v1/posts/{id}/engagements", h.CreateEngagement)
	mux.HandleFunc("GET /api/v1/posts/{id}/engagements", h.ListEngagements)
	mux.HandleFunc("DELETE /api/v1/engagements/{id}", h.DeleteEngagement)

	mux.HandleFunc("GET /api/v1/goals", h.GetGoals)
	mux.HandleFunc("PUT /api/v1/goals", h.SetGoals)
}

func mountInsight(mux *http.ServeMux, h *InsightHandler) {
	mux.HandleFunc("GET /api/v1/dashboard", h.Dashboard)
	mux.HandleFunc("GET /api/v1/narratives/compare", h.CompareNarratives)
	mux.HandleFunc("GET /api/v1/companies/{id}/competitors", h.Competitors)
}

func mountReview(mux *http.ServeMux, h *ReviewHandler) {
	mux.HandleFunc("POST /api/v1/review/jobs", h.Submit)
	mux.HandleFunc("GET /api/v1/review/jobs", h.Pending)
	mux.HandleFunc("POST /api/v1/review/jobs/reload", h.Reload)
	mux.HandleFunc("POST /api/v1/review/jobs/{id}/override", h.Override)
	mux.HandleFunc("GET /api/v1/review/notifications", h.Notifications)
	mux.HandleFunc("DELETE /api/v1/review/notifications", h.DismissNotifications)
}

func mountGeneration(mux *http.ServeMux, h *GenerationHandler) {
	mux.HandleFunc("POST /api/v1/generate/strategic-messages", h.StrategicMessages)
	mux.HandleFunc("POST /api/v1/generate/brand-voice", h.BrandVoice)
	mux.HandleFunc("POST /api/v1/generate/company-research", h.CompanyResearch)
}

func mountWorkspace(mux *http.ServeMux, h *WorkspaceHandler) {
	mux.HandleFunc("GET /api/v1/workspace/sessions", h.Sessions)

	const company = "/api/v1/workspace/companies/{id}"
	mux.HandleFunc("POST "+company, h.OpenCompany)
	mux.HandleFunc("GET "+company, h.CompanySession)
	mux.HandleFunc("PATCH "+company, h.EditCompany)
	mux.HandleFunc("DELETE "+company, h.CloseCompany)
	mux.HandleFunc("POST "+company+"/begin", h.BeginCompanyEdit)
	mux.HandleFunc("PUT "+company+"/info/{key}", h.EditCompanyInfo)
	mux.HandleFunc("POST "+company+"/research", h.ResearchCompany)
	mux.HandleFunc("POST "+company+"/save", h.SaveCompany)
	mux.HandleFunc("POST "+company+"/cancel", h.CancelCompany)
	mux.HandleFunc("POST "+company+"/refresh", h.RefreshCompany)

	const interview = "/api/v1/workspace/interviews/{id}"
	mux.HandleFunc("POST "+interview, h.OpenInterview)
	mux.HandleFunc("GET "+interview, h.InterviewSession)
	mux.HandleFunc("PATCH "+interview, h.EditInterview)
	mux.HandleFunc("DELETE "+interview, h.CloseInterview)
	mux.HandleFunc("POST "+interview+"/begin", h.BeginInterviewEdit)
	mux.HandleFunc("POST "+interview+"/deck/reorder", h.ReorderDeck)
	mux.HandleFunc("PUT "+interview+"/deck/{storyID}", h.AddStory)
	mux.HandleFunc("DELETE "+interview+"/deck/{storyID}", h.RemoveStory)
	mux.HandleFunc("PUT "+interview+"/deck/{storyID}/notes", h.SetNote)
	mux.HandleFunc("POST "+interview+"/personas", h.AddPersona)
	mux.HandleFunc("DELETE "+interview+"/personas/{persona}", h.RemovePersona)
	mux.HandleFunc("POST "+interview+"/save", h.SaveInterview)
	mux.HandleFunc("POST "+interview+"/cancel", h.CancelInterview)
	mux.HandleFunc("POST "+interview+"/refresh", h.RefreshInterview)
}
