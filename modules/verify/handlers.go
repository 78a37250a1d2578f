package verify

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/stateid/pkg/logger"
	"github.com/dmitrymomot/stateid/pkg/stateid"
	"github.com/dmitrymomot/stateid/pkg/validator"
)

const (
	maxBodyBytes = 4 << 10
	maxIDLength  = 64

	fieldID           = "id"
	fieldJurisdiction = "jurisdiction"
)

type handlers struct {
	log *slog.Logger
}

func (h *handlers) listJurisdictions(w http.ResponseWriter, _ *http.Request) {
	codes := stateid.Default.Codes()
	out := make([]Jurisdiction, 0, len(codes))
	for _, code := range codes {
		f, _ := stateid.Lookup(code)
		out = append(out, toJurisdiction(code, f))
	}
	writeJSON(w, http.StatusOK, Envelope{Data: out})
}

func (h *handlers) getJurisdiction(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	f, ok := stateid.Lookup(code)
	if !ok || !f.Constrained() {
		// NONE is an internal sentinel, not a jurisdiction.
		writeError(w, http.StatusNotFound, ErrorDetail{
			Code:    stateid.KindUnknownJurisdiction.String(),
			Message: code + " is not valid",
		})
		return
	}
	writeJSON(w, http.StatusOK, Envelope{Data: toJurisdiction(strings.ToUpper(code), f)})
}

func (h *handlers) validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.log.DebugContext(r.Context(), "malformed validate request", logger.Error(err))
		writeError(w, http.StatusBadRequest, ErrorDetail{
			Code:    "bad_request",
			Message: "request body must be a JSON object with jurisdiction and id",
		})
		return
	}

	verdict := stateid.Validate(req.Jurisdiction, req.ID)
	h.log.DebugContext(r.Context(), "identifier checked",
		logger.Jurisdiction(req.Jurisdiction),
		logger.Verdict(verdict.Kind.String()),
	)

	err := validator.Apply(
		validator.MaxLenString(fieldID, req.ID, maxIDLength),
		validator.ValidStateID(fieldID, fieldJurisdiction, req.Jurisdiction, req.ID),
	)
	result := ValidateResult{
		Valid:        err == nil,
		Jurisdiction: req.Jurisdiction,
		Synopsis:     verdict.Synopsis,
	}
	if err == nil {
		writeJSON(w, http.StatusOK, Envelope{Data: result})
		return
	}

	verrs := validator.ExtractValidationErrors(err)
	details := make(map[string][]string, len(verrs))
	for _, field := range verrs.Fields() {
		details[field] = verrs.Get(field)
	}
	writeJSON(w, http.StatusUnprocessableEntity, Envelope{
		Data: result,
		Error: &ErrorDetail{
			Code:    "validation_error",
			Message: verrs[0].Message,
			Details: details,
		},
	})
}

func toJurisdiction(code string, f stateid.Format) Jurisdiction {
	patterns := make([]string, 0, len(f.Rules))
	for _, p := range f.Rules {
		patterns = append(patterns, p.String())
	}
	return Jurisdiction{Code: code, Synopsis: f.Synopsis, Patterns: patterns}
}
