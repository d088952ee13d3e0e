package handler

import "net/http"

// loginRequest is the JSON body for POST /auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse carries the session token the client must present as a
// Bearer credential on every other endpoint.
type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// handleLogin handles POST /auth/login. There is no register endpoint: the
// single operator account is fixed in configuration. Logout is client-side
// token discard — the server keeps no session state.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(r, &body); err != nil {
		writeBadRequest(w, "invalid request body: "+err.Error())
		return
	}

	token, err := s.auth.Login(body.Username, body.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: s.auth.Username()})
}
