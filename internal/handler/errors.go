package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// errorBody is the JSON shape of every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
}

// writeError writes an errorBody with the given status.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorBody{Error: message})
}

// respondError maps a service error onto the HTTP contract:
// domain.ErrValidation → 400 with the validation message,
// domain.ErrNotFound → 404 with notFoundMsg,
// anything else → 500 with failMsg, logged server-side under op.
// The caller supplies the messages because the handler is the layer that
// knows what the client was trying to do.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, op string, err error, notFoundMsg, failMsg string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		s.writeError(w, http.StatusBadRequest, validationMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		s.writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		s.log.ErrorContext(r.Context(), "operation failed", "op", op, "error", err)
		s.writeError(w, http.StatusInternalServerError, failMsg)
	}
}

// validationMessage extracts the human-readable part from a wrapped
// domain.ErrValidation, e.g.
// "validation error: name and emoji are required" → "name and emoji are required".
func validationMessage(err error) string {
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
