package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sivacabs/backend/internal/domain"
	"github.com/sivacabs/backend/internal/service"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// schemaMissingMessage is the persistent setup prompt shown when queries fail
// because the application tables do not exist yet. Unlike other store errors
// it names the fix, since retrying cannot help.
const schemaMissingMessage = "database tables not found: run the setup tool (cmd/setup) against your database, then retry"

// writeError maps a service/repo error onto an HTTP status and JSON body.
// Unrecognised errors become 500 with a generic message; the real error is
// logged, not leaked to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: "not found"},
		})
	case errors.Is(err, domain.ErrSchemaMissing):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{
			Error: errorDetail{Code: "schema_missing", Message: schemaMissingMessage},
		})
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error: errorDetail{Code: "invalid_credentials", Message: service.ErrInvalidCredentials.Error()},
		})
	default:
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// writeBadRequest rejects a request before it reaches the service layer
// (malformed JSON, unparseable date, bad UUID).
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{
		Error: errorDetail{Code: "bad_request", Message: message},
	})
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into dst, rejecting unknown fields so
// typos in client payloads fail loudly instead of silently dropping data.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// unwrapMessage extracts the human-readable part from a wrapped validation
// error, e.g. "service.TripService.Create: validation error: place is
// required" becomes "place is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
