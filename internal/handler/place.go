package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sivacabs/backend/internal/domain"
)

// placeRequest is the JSON body for creating or updating a place.
type placeRequest struct {
	PlaceName     string          `json:"place_name"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
}

// placeResponse is the JSON representation of a persisted place.
type placeResponse struct {
	ID            string          `json:"id"`
	PlaceName     string          `json:"place_name"`
	DefaultAmount decimal.Decimal `json:"default_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// handleCreatePlace handles POST /places.
func (s *Server) handleCreatePlace(w http.ResponseWriter, r *http.Request) {
	var body placeRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	created, err := s.places.Create(r.Context(), domain.Place{
		PlaceName:     body.PlaceName,
		DefaultAmount: body.DefaultAmount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, placeToResponse(created))
}

// handleListPlaces handles GET /places. All rows, name ascending.
func (s *Server) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := s.places.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placesToResponse(places))
}

// handleSuggestPlaces handles GET /places/suggest?q=.
// Returns the places whose name contains q, case-insensitively. The trip
// form uses the selected place's default amount to pre-fill the fare.
func (s *Server) handleSuggestPlaces(w http.ResponseWriter, r *http.Request) {
	matches, err := s.places.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placesToResponse(matches))
}

// handleGetPlace handles GET /places/{id}.
func (s *Server) handleGetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid place id")
		return
	}

	place, err := s.places.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placeToResponse(place))
}

// handleUpdatePlace handles PUT /places/{id}.
func (s *Server) handleUpdatePlace(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid place id")
		return
	}

	var body placeRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	updated, err := s.places.Update(r.Context(), domain.Place{
		ID:            id,
		PlaceName:     body.PlaceName,
		DefaultAmount: body.DefaultAmount,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, placeToResponse(updated))
}

// handleDeletePlace handles DELETE /places/{id}.
func (s *Server) handleDeletePlace(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid place id")
		return
	}

	if err := s.places.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func placeToResponse(p domain.Place) placeResponse {
	return placeResponse{
		ID:            p.ID.String(),
		PlaceName:     p.PlaceName,
		DefaultAmount: p.DefaultAmount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func placesToResponse(places []domain.Place) []placeResponse {
	out := make([]placeResponse, 0, len(places))
	for _, p := range places {
		out = append(out, placeToResponse(p))
	}
	return out
}
