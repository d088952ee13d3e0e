package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sivacabs/backend/internal/domain"
)

// dateLayout is the wire format for all calendar-day fields.
const dateLayout = "2006-01-02"

// tripRequest is the JSON body for creating or updating a trip.
// Amount accepts either a JSON number or a numeric string.
type tripRequest struct {
	Date         string          `json:"date"`
	CustomerName string          `json:"customer_name"`
	Place        string          `json:"place"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
}

// tripResponse is the JSON representation of a persisted trip.
type tripResponse struct {
	ID           string          `json:"id"`
	Date         string          `json:"date"`
	CustomerName string          `json:"customer_name"`
	Place        string          `json:"place"`
	Amount       decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// handleCreateTrip handles POST /trips.
func (s *Server) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	trip, ok := decodeTrip(w, r)
	if !ok {
		return
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// handleListTrips handles GET /trips. All rows, most recent first.
func (s *Server) handleListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]tripResponse, 0, len(trips))
	for _, t := range trips {
		out = append(out, tripToResponse(t))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGetTrip handles GET /trips/{id}.
func (s *Server) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// handleUpdateTrip handles PUT /trips/{id}.
func (s *Server) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	trip, ok := decodeTrip(w, r)
	if !ok {
		return
	}
	trip.ID = id

	updated, err := s.trips.Update(r.Context(), trip)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// handleDeleteTrip handles DELETE /trips/{id}.
func (s *Server) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid trip id")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeTrip reads and converts a tripRequest body, writing a 400 itself
// when the body is malformed. The bool result reports success.
func decodeTrip(w http.ResponseWriter, r *http.Request) (domain.Trip, bool) {
	var body tripRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return domain.Trip{}, false
	}

	date, err := parseDate(body.Date)
	if err != nil {
		writeBadRequest(w, err.Error())
		return domain.Trip{}, false
	}

	return domain.Trip{
		Date:         date,
		CustomerName: body.CustomerName,
		Place:        body.Place,
		Amount:       body.Amount,
		Status:       domain.TripStatus(body.Status),
	}, true
}

// tripToResponse converts a domain.Trip into its JSON representation.
func tripToResponse(t domain.Trip) tripResponse {
	return tripResponse{
		ID:           t.ID.String(),
		Date:         t.Date.Format(dateLayout),
		CustomerName: t.CustomerName,
		Place:        t.Place,
		Amount:       t.Amount,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// parseDate parses a required "2006-01-02" date field.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}
