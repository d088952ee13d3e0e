package handler

import (
	"net/http"

	"github.com/shopspring/decimal"
)

// summaryResponse is the JSON body for GET /summary.
type summaryResponse struct {
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
}

// handleSummary handles GET /summary. Pass ?refresh=1 to bypass the cached
// value and force a recompute from the store.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	force := r.URL.Query().Get("refresh") == "1"

	sum, err := s.summary.Get(r.Context(), force)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		TotalPaid:    sum.TotalPaid,
		TotalPending: sum.TotalPending,
	})
}
