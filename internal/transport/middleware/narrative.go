package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/timjtrainor/Trainium-Job-Center-sub001/pkg/ctxutil"
)

// NarrativeHeader selects the active strategic narrative for a request.
const NarrativeHeader = "X-Narrative-Id"

// Narrative copies the active narrative from the request header into the
// context. The header is optional; a malformed value is a client error.
func Narrative(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := strings.TrimSpace(r.Header.Get(NarrativeHeader))
		if raw == "" {
			next.ServeHTTP(w, r)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			writeError(w, http.StatusBadRequest, "invalid "+NarrativeHeader+" header")
			return
		}
		next.ServeHTTP(w, r.WithContext(ctxutil.WithNarrativeID(r.Context(), id)))
	})
}
