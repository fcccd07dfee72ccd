package handler

import (
	"net/http"

	"github.com/jmulder/weekend-planner/backend/internal/service"
)

// handleAddWish handles POST /api/wishes.
func (s *Server) handleAddWish(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParticipantID   string `json:"participantId"`
		ParticipantName string `json:"participantName"`
		Category        string `json:"category"`
		Text            string `json:"text"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	wish, err := s.planner.AddWish(r.Context(), service.WishInput{
		ParticipantID:   req.ParticipantID,
		ParticipantName: req.ParticipantName,
		Category:        req.Category,
		Text:            req.Text,
	})
	if err != nil {
		s.respondError(w, r, "add wish", err, "", "Failed to add wish")
		return
	}
	s.writeJSON(w, http.StatusCreated, wish)
}

// handleRemoveWish handles DELETE /api/wishes.
func (s *Server) handleRemoveWish(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.planner.RemoveWish(r.Context(), req.ID); err != nil {
		s.respondError(w, r, "remove wish", err, "", "Failed to remove wish")
		return
	}
	s.writeJSON(w, http.StatusOK, successBody{Success: true})
}
