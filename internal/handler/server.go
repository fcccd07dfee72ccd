// Package handler implements the HTTP surface of the weekend planner API.
// All handlers are methods on Server, split into per-collection files but
// sharing one struct so they can access the same dependencies.
//
// Ids travel in request bodies (not URL paths) for every mutation, matching
// the wire contract the frontend speaks: POST creates, PUT updates, DELETE
// removes `{"id": ...}`.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
	"github.com/jmulder/weekend-planner/backend/internal/service"
	"github.com/jmulder/weekend-planner/backend/internal/settlement"
)

// PlannerServicer defines the business operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a failing double without touching the store.
type PlannerServicer interface {
	Data(ctx context.Context) (domain.WeekendData, error)
	Settlements(ctx context.Context) ([]settlement.Transfer, error)

	JoinParticipant(ctx context.Context, in service.ParticipantInput) (domain.Participant, bool, error)
	RemoveParticipant(ctx context.Context, id string) error

	AddWish(ctx context.Context, in service.WishInput) (domain.Wish, error)
	RemoveWish(ctx context.Context, id string) error

	AddActivity(ctx context.Context, in service.ActivityInput) (domain.Activity, error)
	ToggleVote(ctx context.Context, activityID, participantID string) (domain.Activity, error)
	RemoveActivity(ctx context.Context, id string) error

	AddPackItem(ctx context.Context, in service.PackItemInput) (domain.PackItem, error)
	UpdatePackItem(ctx context.Context, id string, patch service.PackItemPatch) (domain.PackItem, error)
	RemovePackItem(ctx context.Context, id string) error

	AddExpense(ctx context.Context, in service.ExpenseInput) (domain.Expense, error)
	RemoveExpense(ctx context.Context, id string) error

	AddScheduleItem(ctx context.Context, in service.ScheduleInput) (domain.ScheduleItem, error)
	RemoveScheduleItem(ctx context.Context, id string) error
}

// Server holds the handler dependencies. Wire it in main.go via Routes.
type Server struct {
	planner PlannerServicer
	log     *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(planner PlannerServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{planner: planner, log: log}
}

// Routes returns the router for the full API surface.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/data", s.handleGetData)
		r.Get("/settlements", s.handleGetSettlements)

		r.Post("/participants", s.handleJoinParticipant)
		r.Delete("/participants", s.handleRemoveParticipant)

		r.Post("/wishes", s.handleAddWish)
		r.Delete("/wishes", s.handleRemoveWish)

		r.Post("/activities", s.handleAddActivity)
		r.Put("/activities", s.handleToggleVote)
		r.Delete("/activities", s.handleRemoveActivity)

		r.Post("/packlist", s.handleAddPackItem)
		r.Put("/packlist", s.handleUpdatePackItem)
		r.Delete("/packlist", s.handleRemovePackItem)

		r.Post("/expenses", s.handleAddExpense)
		r.Delete("/expenses", s.handleRemoveExpense)

		r.Post("/schedule", s.handleAddScheduleItem)
		r.Delete("/schedule", s.handleRemoveScheduleItem)
	})

	return r
}

// writeJSON encodes v with the given status. Encoding failures at this point
// can only be logged — the status line is already on the wire.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", "error", err)
	}
}

// decode unmarshals the request body into dst.
func decode(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

// idRequest is the body shape shared by every DELETE endpoint.
type idRequest struct {
	ID string `json:"id"`
}

// successBody is the acknowledgement returned by every delete.
type successBody struct {
	Success bool `json:"success"`
}
