package handler

import (
	"net/http"

	"github.com/jmulder/weekend-planner/backend/internal/service"
)

// handleAddScheduleItem handles POST /api/schedule.
func (s *Server) handleAddScheduleItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Day      string `json:"day"`
		Time     string `json:"time"`
		Activity string `json:"activity"`
		AddedBy  string `json:"addedBy"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := s.planner.AddScheduleItem(r.Context(), service.ScheduleInput{
		Day:      req.Day,
		Time:     req.Time,
		Activity: req.Activity,
		AddedBy:  req.AddedBy,
	})
	if err != nil {
		s.respondError(w, r, "add schedule item", err, "", "Failed to add schedule item")
		return
	}
	s.writeJSON(w, http.StatusCreated, item)
}

// handleRemoveScheduleItem handles DELETE /api/schedule.
func (s *Server) handleRemoveScheduleItem(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.planner.RemoveScheduleItem(r.Context(), req.ID); err != nil {
		s.respondError(w, r, "remove schedule item", err, "", "Failed to remove schedule item")
		return
	}
	s.writeJSON(w, http.StatusOK, successBody{Success: true})
}
