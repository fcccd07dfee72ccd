package handler

import "net/http"

// handleHealth handles GET /healthz. Liveness only — it does not touch the
// store, so a broken backend still reports the process as up.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
