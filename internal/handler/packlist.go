package handler

import (
	"net/http"

	"github.com/jmulder/weekend-planner/backend/internal/service"
)

// handleAddPackItem handles POST /api/packlist.
func (s *Server) handleAddPackItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Item    string `json:"item"`
		AddedBy string `json:"addedBy"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := s.planner.AddPackItem(r.Context(), service.PackItemInput{
		Item:    req.Item,
		AddedBy: req.AddedBy,
	})
	if err != nil {
		s.respondError(w, r, "add pack item", err, "", "Failed to add pack item")
		return
	}
	s.writeJSON(w, http.StatusCreated, item)
}

// handleUpdatePackItem handles PUT /api/packlist: a partial patch of
// assignment and checked state. Absent fields are left untouched, which is
// why the request uses pointers.
func (s *Server) handleUpdatePackItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID           string  `json:"id"`
		AssignedTo   *string `json:"assignedTo"`
		AssignedToID *string `json:"assignedToId"`
		Checked      *bool   `json:"checked"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	item, err := s.planner.UpdatePackItem(r.Context(), req.ID, service.PackItemPatch{
		AssignedTo:   req.AssignedTo,
		AssignedToID: req.AssignedToID,
		Checked:      req.Checked,
	})
	if err != nil {
		s.respondError(w, r, "update pack item", err, "Pack item not found", "Failed to update pack item")
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

// handleRemovePackItem handles DELETE /api/packlist.
func (s *Server) handleRemovePackItem(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.planner.RemovePackItem(r.Context(), req.ID); err != nil {
		s.respondError(w, r, "remove pack item", err, "", "Failed to remove pack item")
		return
	}
	s.writeJSON(w, http.StatusOK, successBody{Success: true})
}
