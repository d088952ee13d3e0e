package handler

import (
	"net/http"
	"time"

	"github.com/sivacabs/backend/internal/domain"
)

// purgeRequest is the JSON body for both purge endpoints. Confirm is only
// honoured by POST /purge: the deletion runs solely when it is true, which
// keeps the destructive step behind an explicit second gate after the
// preview.
type purgeRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	DeleteType string `json:"delete_type"`
	Confirm    bool   `json:"confirm,omitempty"`
}

// purgePreviewResponse reports how many rows a confirmed deletion would remove.
type purgePreviewResponse struct {
	Trips  int64 `json:"trips"`
	Diesel int64 `json:"diesel"`
}

// purgeResponse reports the rows actually removed.
type purgeResponse struct {
	TripsDeleted  int64 `json:"trips_deleted"`
	DieselDeleted int64 `json:"diesel_deleted"`
}

// handlePurgePreview handles POST /purge/preview.
func (s *Server) handlePurgePreview(w http.ResponseWriter, r *http.Request) {
	start, end, target, ok := decodePurge(w, r)
	if !ok {
		return
	}

	preview, err := s.purge.Preview(r.Context(), start, end, target)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, purgePreviewResponse{Trips: preview.Trips, Diesel: preview.Diesel})
}

// handlePurge handles POST /purge. Rejects the request unless confirm is
// true; this action cannot be undone.
func (s *Server) handlePurge(w http.ResponseWriter, r *http.Request) {
	var body purgeRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}
	if !body.Confirm {
		writeBadRequest(w, "deletion requires confirm: true")
		return
	}

	start, end, target, ok := convertPurge(w, body)
	if !ok {
		return
	}

	result, err := s.purge.Execute(r.Context(), start, end, target)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, purgeResponse{
		TripsDeleted:  result.TripsDeleted,
		DieselDeleted: result.DieselDeleted,
	})
}

// decodePurge reads and converts a purgeRequest body.
func decodePurge(w http.ResponseWriter, r *http.Request) (time.Time, time.Time, domain.PurgeTarget, bool) {
	var body purgeRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return time.Time{}, time.Time{}, "", false
	}
	return convertPurge(w, body)
}

// convertPurge parses the date fields, leaving empty ones as zero values so
// the service reports "both dates required" as a validation error.
func convertPurge(w http.ResponseWriter, body purgeRequest) (time.Time, time.Time, domain.PurgeTarget, bool) {
	var start, end time.Time
	var err error

	if body.StartDate != "" {
		if start, err = parseDate(body.StartDate); err != nil {
			writeBadRequest(w, err.Error())
			return time.Time{}, time.Time{}, "", false
		}
	}
	if body.EndDate != "" {
		if end, err = parseDate(body.EndDate); err != nil {
			writeBadRequest(w, err.Error())
			return time.Time{}, time.Time{}, "", false
		}
	}

	return start, end, domain.PurgeTarget(body.DeleteType), true
}
