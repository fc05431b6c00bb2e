package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/common"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/peerlimit"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

// withRequestLogging logs method, path, status and duration. Bodies and
// headers are never logged since they carry tokens.
func withRequestLogging(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			log.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start),
				"request_id", chiMiddleware.GetReqID(r.Context()),
			)
		})
	}
}

// withPeerLimit applies the per-address limiter. The first X-Forwarded-For
// entry is trusted when present.
func withPeerLimit(peers *peerlimit.Limiter, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !peers.Allow(ip) {
				log.Warn(r.Context(), "peer rate limit exceeded", "peer", ip, "path", r.URL.Path)
				writeError(w, api.Classify(common.ErrorRateLimited))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if xff := strings.TrimSpace(r.Header.Get("X-Forwarded-For")); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	return peerlimit.Host(r.RemoteAddr)
}
