package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sivacabs/backend/internal/domain"
)

// dieselRequest is the JSON body for creating or updating a diesel expense.
type dieselRequest struct {
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

// dieselResponse is the JSON representation of a persisted diesel expense.
type dieselResponse struct {
	ID        string          `json:"id"`
	Date      string          `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// handleCreateDiesel handles POST /diesel-expenses.
func (s *Server) handleCreateDiesel(w http.ResponseWriter, r *http.Request) {
	exp, ok := decodeDiesel(w, r)
	if !ok {
		return
	}

	created, err := s.diesel.Create(r.Context(), exp)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, dieselToResponse(created))
}

// handleListDiesel handles GET /diesel-expenses. All rows, most recent first.
func (s *Server) handleListDiesel(w http.ResponseWriter, r *http.Request) {
	exps, err := s.diesel.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]dieselResponse, 0, len(exps))
	for _, e := range exps {
		out = append(out, dieselToResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// handleGetDiesel handles GET /diesel-expenses/{id}.
func (s *Server) handleGetDiesel(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid expense id")
		return
	}

	exp, err := s.diesel.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dieselToResponse(exp))
}

// handleUpdateDiesel handles PUT /diesel-expenses/{id}.
func (s *Server) handleUpdateDiesel(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid expense id")
		return
	}

	exp, ok := decodeDiesel(w, r)
	if !ok {
		return
	}
	exp.ID = id

	updated, err := s.diesel.Update(r.Context(), exp)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dieselToResponse(updated))
}

// handleDeleteDiesel handles DELETE /diesel-expenses/{id}.
func (s *Server) handleDeleteDiesel(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		writeBadRequest(w, "invalid expense id")
		return
	}

	if err := s.diesel.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decodeDiesel reads and converts a dieselRequest body, writing a 400 itself
// when the body is malformed. The bool result reports success.
func decodeDiesel(w http.ResponseWriter, r *http.Request) (domain.DieselExpense, bool) {
	var body dieselRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return domain.DieselExpense{}, false
	}

	date, err := parseDate(body.Date)
	if err != nil {
		writeBadRequest(w, err.Error())
		return domain.DieselExpense{}, false
	}

	return domain.DieselExpense{Date: date, Amount: body.Amount}, true
}

func dieselToResponse(e domain.DieselExpense) dieselResponse {
	return dieselResponse{
		ID:        e.ID.String(),
		Date:      e.Date.Format(dateLayout),
		Amount:    e.Amount,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
