package handler

import (
	"net/http"

	"github.com/jmulder/weekend-planner/backend/internal/service"
)

// handleAddActivity handles POST /api/activities.
func (s *Server) handleAddActivity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParticipantID   string `json:"participantId"`
		ParticipantName string `json:"participantName"`
		Title           string `json:"title"`
		Description     string `json:"description"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	activity, err := s.planner.AddActivity(r.Context(), service.ActivityInput{
		ParticipantID:   req.ParticipantID,
		ParticipantName: req.ParticipantName,
		Title:           req.Title,
		Description:     req.Description,
	})
	if err != nil {
		s.respondError(w, r, "add activity", err, "", "Failed to add activity")
		return
	}
	s.writeJSON(w, http.StatusCreated, activity)
}

// handleToggleVote handles PUT /api/activities: flips the caller's vote on
// the given activity.
func (s *Server) handleToggleVote(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ActivityID    string `json:"activityId"`
		ParticipantID string `json:"participantId"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	activity, err := s.planner.ToggleVote(r.Context(), req.ActivityID, req.ParticipantID)
	if err != nil {
		s.respondError(w, r, "toggle vote", err, "Activity not found", "Failed to toggle vote")
		return
	}
	s.writeJSON(w, http.StatusOK, activity)
}

// handleRemoveActivity handles DELETE /api/activities.
func (s *Server) handleRemoveActivity(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.planner.RemoveActivity(r.Context(), req.ID); err != nil {
		s.respondError(w, r, "remove activity", err, "", "Failed to remove activity")
		return
	}
	s.writeJSON(w, http.StatusOK, successBody{Success: true})
}
