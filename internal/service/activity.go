package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// ActivityInput carries the fields for a new activity proposal.
// Description may be empty.
type ActivityInput struct {
	ParticipantID   string
	ParticipantName string
	Title           string
	Description     string
}

// AddActivity validates and appends an activity with an empty vote list.
func (p *Planner) AddActivity(ctx context.Context, in ActivityInput) (domain.Activity, error) {
	if in.ParticipantID == "" || in.ParticipantName == "" || strings.TrimSpace(in.Title) == "" {
		return domain.Activity{}, fmt.Errorf("%w: participantId, participantName and title are required", domain.ErrValidation)
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.Planner.AddActivity: %w", err)
	}

	activity := domain.Activity{
		ID:              newID(),
		ParticipantID:   in.ParticipantID,
		ParticipantName: in.ParticipantName,
		Title:           in.Title,
		Description:     in.Description,
		Votes:           []string{},
		CreatedAt:       nowMillis(),
	}
	data.Activities = append(data.Activities, activity)

	if err := p.store.Save(ctx, data); err != nil {
		return domain.Activity{}, fmt.Errorf("service.Planner.AddActivity: %w", err)
	}
	return activity, nil
}

// ToggleVote flips participantID's membership in the activity's vote list:
// present → removed, absent → appended at the end. The activity keeps its
// position in the collection and the order of the other voters is preserved,
// so toggling twice is its own inverse.
// Returns domain.ErrNotFound when no activity has the given id.
func (p *Planner) ToggleVote(ctx context.Context, activityID, participantID string) (domain.Activity, error) {
	if activityID == "" || participantID == "" {
		return domain.Activity{}, fmt.Errorf("%w: activityId and participantId are required", domain.ErrValidation)
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.Planner.ToggleVote: %w", err)
	}

	idx := -1
	for i, activity := range data.Activities {
		if activity.ID == activityID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Activity{}, fmt.Errorf("service.Planner.ToggleVote: %w", domain.ErrNotFound)
	}

	activity := data.Activities[idx]
	votes := make([]string, 0, len(activity.Votes)+1)
	voted := false
	for _, v := range activity.Votes {
		if v == participantID {
			voted = true
			continue
		}
		votes = append(votes, v)
	}
	if !voted {
		votes = append(votes, participantID)
	}
	activity.Votes = votes
	data.Activities[idx] = activity

	if err := p.store.Save(ctx, data); err != nil {
		return domain.Activity{}, fmt.Errorf("service.Planner.ToggleVote: %w", err)
	}
	return activity, nil
}

// RemoveActivity deletes an activity by id. Unknown ids are a no-op success.
func (p *Planner) RemoveActivity(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.Planner.RemoveActivity: %w", err)
	}

	activities := make([]domain.Activity, 0, len(data.Activities))
	for _, activity := range data.Activities {
		if activity.ID != id {
			activities = append(activities, activity)
		}
	}
	data.Activities = activities

	if err := p.store.Save(ctx, data); err != nil {
		return fmt.Errorf("service.Planner.RemoveActivity: %w", err)
	}
	return nil
}
