package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// ParticipantInput carries the fields for joining the weekend.
// Email is optional; when present it acts as the idempotent login key.
type ParticipantInput struct {
	Name  string
	Email string
	Emoji string
}

// JoinParticipant adds a participant, or logs an existing one back in.
// When the submitted email matches an existing participant's email
// case-insensitively the existing entity is returned unchanged with
// created=false — no duplicate is created. Without an email every submission
// creates a distinct participant.
// Returns domain.ErrValidation when name or emoji is missing.
func (p *Planner) JoinParticipant(ctx context.Context, in ParticipantInput) (domain.Participant, bool, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Emoji) == "" {
		return domain.Participant{}, false, fmt.Errorf("%w: name and emoji are required", domain.ErrValidation)
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.Participant{}, false, fmt.Errorf("service.Planner.JoinParticipant: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" {
		for _, existing := range data.Participants {
			if existing.Email == email {
				return existing, false, nil // login path — nothing written
			}
		}
	}

	participant := domain.Participant{
		ID:       newID(),
		Name:     in.Name,
		Email:    email,
		Emoji:    in.Emoji,
		JoinedAt: nowMillis(),
	}
	data.Participants = append(data.Participants, participant)

	if err := p.store.Save(ctx, data); err != nil {
		return domain.Participant{}, false, fmt.Errorf("service.Planner.JoinParticipant: %w", err)
	}
	return participant, true, nil
}

// RemoveParticipant deletes a participant and cascades: their wishes,
// activities and expenses are removed entirely, and pack items assigned to
// them are un-assigned but kept. Removing an unknown id is a silent no-op
// success, keeping client-side deletes idempotent.
//
// Votes the removed participant cast on other activities are left in place;
// the vote toggle and the settlement engine both tolerate ids that no longer
// resolve to a participant.
func (p *Planner) RemoveParticipant(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.Planner.RemoveParticipant: %w", err)
	}

	participants := make([]domain.Participant, 0, len(data.Participants))
	for _, participant := range data.Participants {
		if participant.ID != id {
			participants = append(participants, participant)
		}
	}
	data.Participants = participants

	wishes := make([]domain.Wish, 0, len(data.Wishes))
	for _, wish := range data.Wishes {
		if wish.ParticipantID != id {
			wishes = append(wishes, wish)
		}
	}
	data.Wishes = wishes

	activities := make([]domain.Activity, 0, len(data.Activities))
	for _, activity := range data.Activities {
		if activity.ParticipantID != id {
			activities = append(activities, activity)
		}
	}
	data.Activities = activities

	for i, item := range data.PackList {
		if item.AssignedToID == id {
			item.AssignedTo = ""
			item.AssignedToID = ""
			data.PackList[i] = item
		}
	}

	expenses := make([]domain.Expense, 0, len(data.Expenses))
	for _, expense := range data.Expenses {
		if expense.ParticipantID != id {
			expenses = append(expenses, expense)
		}
	}
	data.Expenses = expenses

	if err := p.store.Save(ctx, data); err != nil {
		return fmt.Errorf("service.Planner.RemoveParticipant: %w", err)
	}
	return nil
}
