package handler

import "net/http"

// healthResponse is the JSON body for GET /healthz.
type healthResponse struct {
	Status string `json:"status"`
}

// handleHealth handles GET /healthz. It reports process liveness only and
// deliberately does not touch the database — a missing schema must not make
// the service look dead.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
