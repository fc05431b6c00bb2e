// Package httpapi serves the api Facade as JSON over HTTP for browser
// clients. Every operation is POST /api/v1/<op>; the session token may be
// sent in the body or as a bearer token.
package httpapi

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/notevault/internal/api"
	"github.com/dmitrijs2005/notevault/internal/logging"
	"github.com/dmitrijs2005/notevault/internal/server/peerlimit"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter mounts every operation of f under /api/v1.
func NewRouter(f *api.Facade, log logging.Logger, peers *peerlimit.Limiter, origins []string) http.Handler {
	h := &handler{api: f, log: log.With("module", "http_server")}

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(withRequestLogging(h.log))
	if peers != nil {
		r.Use(withPeerLimit(peers, h.log))
	}
	r.Use(cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{RotatedTokenHeader},
		MaxAge:         int((10 * time.Minute).Seconds()),
	}).Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, &api.PingResponse{Status: "OK"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(chiMiddleware.AllowContentType("application/json"))

		r.Post("/register", handle(h, (*api.Facade).Register))
		r.Post("/requestLoginLink", handle(h, (*api.Facade).RequestLoginLink))
		r.Post("/verifyLoginLink", handle(h, (*api.Facade).VerifyLoginLink))
		r.Post("/loginWithCode", handle(h, (*api.Facade).LoginWithCode))

		r.Post("/storeMasterWrappedDek", handle(h, (*api.Facade).StoreMasterWrappedDEK))
		r.Post("/fetchMasterWrappedDek", handle(h, (*api.Facade).FetchMasterWrappedDEK))
		r.Post("/updatePassphrase", handle(h, (*api.Facade).UpdatePassphrase))
		r.Post("/registerDevice", handle(h, (*api.Facade).RegisterDevice))
		r.Post("/fetchWrappedDekForDevice", handle(h, (*api.Facade).FetchWrappedDEKForDevice))
		r.Post("/revokeSession", handle(h, (*api.Facade).RevokeSession))

		r.Post("/createNote", handle(h, (*api.Facade).CreateNote))
		r.Post("/listNotes", handle(h, (*api.Facade).ListNotes))
		r.Post("/getPreferences", handle(h, (*api.Facade).GetPreferences))
		r.Post("/updatePreferences", handle(h, (*api.Facade).UpdatePreferences))
		r.Post("/ping", handle(h, (*api.Facade).Ping))
	})

	return r
}
