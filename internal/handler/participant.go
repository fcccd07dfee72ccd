package handler

import (
	"net/http"

	"github.com/jmulder/weekend-planner/backend/internal/service"
)

// handleJoinParticipant handles POST /api/participants.
// 201 with the new participant, or 200 with the existing one when the email
// matches (the login path).
func (s *Server) handleJoinParticipant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Emoji string `json:"emoji"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	participant, created, err := s.planner.JoinParticipant(r.Context(), service.ParticipantInput{
		Name:  req.Name,
		Email: req.Email,
		Emoji: req.Emoji,
	})
	if err != nil {
		s.respondError(w, r, "join participant", err, "", "Failed to add participant")
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	s.writeJSON(w, status, participant)
}

// handleRemoveParticipant handles DELETE /api/participants.
// Cascades server-side; deleting an unknown id still succeeds.
func (s *Server) handleRemoveParticipant(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.planner.RemoveParticipant(r.Context(), req.ID); err != nil {
		s.respondError(w, r, "remove participant", err, "", "Failed to remove participant")
		return
	}
	s.writeJSON(w, http.StatusOK, successBody{Success: true})
}
