package handler

import (
	"net/http"

	"github.com/jmulder/weekend-planner/backend/internal/service"
)

// handleAddExpense handles POST /api/expenses.
// Amount arrives as integer cents; a pointer distinguishes "missing" from 0.
func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ParticipantID   string   `json:"participantId"`
		ParticipantName string   `json:"participantName"`
		Description     string   `json:"description"`
		Amount          *int64   `json:"amount"`
		SplitBetween    []string `json:"splitBetween"`
	}
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	expense, err := s.planner.AddExpense(r.Context(), service.ExpenseInput{
		ParticipantID:   req.ParticipantID,
		ParticipantName: req.ParticipantName,
		Description:     req.Description,
		Amount:          req.Amount,
		SplitBetween:    req.SplitBetween,
	})
	if err != nil {
		s.respondError(w, r, "add expense", err, "", "Failed to add expense")
		return
	}
	s.writeJSON(w, http.StatusCreated, expense)
}

// handleRemoveExpense handles DELETE /api/expenses.
func (s *Server) handleRemoveExpense(w http.ResponseWriter, r *http.Request) {
	var req idRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.planner.RemoveExpense(r.Context(), req.ID); err != nil {
		s.respondError(w, r, "remove expense", err, "", "Failed to remove expense")
		return
	}
	s.writeJSON(w, http.StatusOK, successBody{Success: true})
}
