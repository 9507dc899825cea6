package middleware

import (
	"context"
	"net/http"
)

type infoKey struct{}

// requestInfo carries values discovered by inner layers back to the outer
// ones. A request is served by one goroutine, so no locking is needed.
type requestInfo struct {
	route  string
	userID string
}

func withRequestInfo(ctx context.Context, info *requestInfo) context.Context {
	return context.WithValue(ctx, infoKey{}, info)
}

func requestInfoFrom(ctx context.Context) *requestInfo {
	info, _ := ctx.Value(infoKey{}).(*requestInfo)
	return info
}

// ensureRequestInfo reuses the holder installed by an outer layer.
func ensureRequestInfo(r *http.Request) (*http.Request, *requestInfo) {
	if info := requestInfoFrom(r.Context()); info != nil {
		return r, info
	}
	info := &requestInfo{}
	return r.WithContext(withRequestInfo(r.Context(), info)), info
}

// RoutePattern must wrap the ServeMux directly: the mux records the matched
// pattern on the request it was handed, and this layer reports it outward.
// With nested muxes the innermost pattern wins.
func RoutePattern(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		if info := requestInfoFrom(r.Context()); info != nil && info.route == "" {
			info.route = r.Pattern
		}
	})
}
