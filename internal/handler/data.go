package handler

import "net/http"

// handleGetData handles GET /api/data: the full document snapshot the
// frontend polls.
func (s *Server) handleGetData(w http.ResponseWriter, r *http.Request) {
	data, err := s.planner.Data(r.Context())
	if err != nil {
		s.respondError(w, r, "get data", err, "", "Failed to load data")
		return
	}
	s.writeJSON(w, http.StatusOK, data)
}

// handleGetSettlements handles GET /api/settlements: the debt-minimizing
// transfers computed from the current expenses and participants.
func (s *Server) handleGetSettlements(w http.ResponseWriter, r *http.Request) {
	transfers, err := s.planner.Settlements(r.Context())
	if err != nil {
		s.respondError(w, r, "get settlements", err, "", "Failed to compute settlements")
		return
	}
	s.writeJSON(w, http.StatusOK, transfers)
}
