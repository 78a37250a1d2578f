package verify

import (
	"encoding/json"
	"net/http"
)

// Envelope is the JSON body of every response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request. Details maps field names to messages.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

// Jurisdiction is the public view of a catalog entry.
type Jurisdiction struct {
	Code     string   `json:"code"`
	Synopsis string   `json:"synopsis"`
	Patterns []string `json:"patterns"`
}

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	Jurisdiction string `json:"jurisdiction"`
	ID           string `json:"id"`
}

// ValidateResult is returned for identifiers that pass.
type ValidateResult struct {
	Valid        bool   `json:"valid"`
	Jurisdiction string `json:"jurisdiction"`
	Synopsis     string `json:"synopsis,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, detail ErrorDetail) {
	writeJSON(w, status, Envelope{Error: &detail})
}

// TooManyRequests answers 429 in the module's envelope. It is meant as the
// denied handler of a rate limiter mounted in front of Router.
func TooManyRequests(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusTooManyRequests, ErrorDetail{
		Code:    "rate_limited",
		Message: http.StatusText(http.StatusTooManyRequests),
	})
}
