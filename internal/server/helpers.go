package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bobmcallan/propex/internal/models"
)

// ErrorResponse is the body of every failed request. Code is one of the
// codes below or a scenario code from models.ErrorCode.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Codes raised by the HTTP layer itself
const (
	codeInvalidRequest   = "invalid_request"
	codeBodyTooLarge     = "request_too_large"
	codeNotFound         = "not_found"
	codeMethodNotAllowed = "method_not_allowed"
	codeRateLimited      = "rate_limited"
	codeInternal         = "internal"
)

// maxBodyBytes bounds request bodies; portfolios with many properties stay well under it
const maxBodyBytes = 8 << 20

// WriteJSON writes data as JSON with the given status. A value that cannot
// be encoded (a NaN metric, say) is reported as a 500 with code internal.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		statusCode = http.StatusInternalServerError
		body, _ = json.Marshal(ErrorResponse{Error: "response encoding failed: " + err.Error(), Code: codeInternal})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(append(body, '\n'))
}

// WriteError writes an ErrorResponse.
func WriteError(w http.ResponseWriter, statusCode int, message, code string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message, Code: code})
}

// decodeScenario reads a scenario request from the body. On failure it has
// already written a 400 (or 413 for an oversized body) and returns false.
func decodeScenario(w http.ResponseWriter, r *http.Request) (models.ScenarioRequest, bool) {
	var req models.ScenarioRequest
	if r.Body == nil || r.Body == http.NoBody {
		WriteError(w, http.StatusBadRequest, "Request body is required", codeInvalidRequest)
		return req, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, http.StatusRequestEntityTooLarge, "Request body exceeds 8 MiB", codeBodyTooLarge)
			return req, false
		}
		WriteError(w, http.StatusBadRequest, "Invalid JSON: "+err.Error(), codeInvalidRequest)
		return req, false
	}
	return req, true
}

// writeScenarioError reports a failed scenario call with its error kind so
// the front end can tell failures apart. Runs fail with 500, validation
// with 400.
func (s *Server) writeScenarioError(w http.ResponseWriter, r *http.Request, statusCode int, err error) {
	code := models.ErrorCode(err)
	s.logger.Warn().
		Str("path", r.URL.Path).
		Str("code", code).
		Int("status", statusCode).
		Err(err).
		Msg("Scenario request failed")
	WriteError(w, statusCode, err.Error(), code)
}
