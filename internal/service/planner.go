// Package service contains the business logic for the weekend planner API.
// The Planner validates inputs, then performs a read-modify-write of the
// whole document against the store. No HTTP concerns live here — services
// depend on the store interface, not on any backend.
//
// Methods are split into per-collection files (participant.go, wish.go, …)
// but all operate on the same Planner struct.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
	"github.com/jmulder/weekend-planner/backend/internal/settlement"
	"github.com/jmulder/weekend-planner/backend/internal/store"
)

// Planner implements every mutation and query over the weekend document.
type Planner struct {
	store store.Store
}

// NewPlanner constructs a Planner backed by the provided store.
func NewPlanner(st store.Store) *Planner {
	return &Planner{store: st}
}

// Data returns the whole current document.
func (p *Planner) Data(ctx context.Context) (domain.WeekendData, error) {
	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.WeekendData{}, fmt.Errorf("service.Planner.Data: %w", err)
	}
	return data, nil
}

// Settlements computes the debt-minimizing transfers for the current
// expenses and participant list.
// Always returns a non-nil slice so callers can safely range over it.
func (p *Planner) Settlements(ctx context.Context) ([]settlement.Transfer, error) {
	data, err := p.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.Planner.Settlements: %w", err)
	}

	ids := make([]string, len(data.Participants))
	for i, participant := range data.Participants {
		ids[i] = participant.ID
	}

	transfers := settlement.Compute(data.Expenses, ids)
	if transfers == nil {
		transfers = []settlement.Transfer{}
	}
	return transfers, nil
}

// newID returns a fresh UUID string. Ids are assigned once at creation and
// never reused or reassigned.
func newID() string {
	return uuid.New().String()
}

// nowMillis returns the server-assigned creation timestamp in epoch
// milliseconds, the unit the persisted document uses.
func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// requireID validates the id carried by a delete or update request.
func requireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", domain.ErrValidation)
	}
	return nil
}
