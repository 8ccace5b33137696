package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chris/daygo/internal/db"
	"github.com/chris/daygo/internal/llm"
	"github.com/chris/daygo/internal/planner"
)

// ErrorResponse is the one error contract for the whole API. The code field
// is stable so clients can tell "bad AI output" from "provider down" from
// "bad input".
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error codes
const (
	errBadRequest   = "bad_request"
	errNotFound     = "not_found"
	errUnauthorized = "unauthorized"
	errUpstream     = "upstream_error"
	errUnparsable   = "unparsable_response"
	errInternal     = "internal_error"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeStoreError maps a failure from any layer below the handlers onto
// the error contract.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		writeError(w, http.StatusNotFound, errNotFound, err.Error())
	case errors.Is(err, planner.ErrUnparsableResponse):
		writeError(w, http.StatusBadGateway, errUnparsable, err.Error())
	case errors.Is(err, llm.ErrUpstream):
		writeError(w, http.StatusBadGateway, errUpstream, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, errInternal, err.Error())
	}
}
