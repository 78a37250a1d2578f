package verify

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/stateid/pkg/logger"
)

// Options configures the verify module.
type Options struct {
	// Logger receives one debug record per validation. Nil discards.
	Logger *slog.Logger
}

// Router creates the verify module router.
//
//	r := chi.NewRouter()
//	r.Use(requestid.Middleware)
//	r.Mount("/v1", verify.Router(verify.Options{Logger: log}))
func Router(opts Options) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	h := &handlers{log: log.With(logger.Component("verify"))}

	r := chi.NewRouter()
	r.Get("/jurisdictions", h.listJurisdictions)
	r.Get("/jurisdictions/{code}", h.getJurisdiction)
	r.Post("/validate", h.validate)
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorDetail{
			Code:    "method_not_allowed",
			Message: http.StatusText(http.StatusMethodNotAllowed),
		})
	})

	return r
}
