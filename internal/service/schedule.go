package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// ScheduleInput carries the fields for a new schedule row.
type ScheduleInput struct {
	Day      string
	Time     string
	Activity string
	AddedBy  string
}

// AddScheduleItem validates and appends a schedule row.
func (p *Planner) AddScheduleItem(ctx context.Context, in ScheduleInput) (domain.ScheduleItem, error) {
	if strings.TrimSpace(in.Day) == "" || strings.TrimSpace(in.Time) == "" ||
		strings.TrimSpace(in.Activity) == "" || strings.TrimSpace(in.AddedBy) == "" {
		return domain.ScheduleItem{}, fmt.Errorf("%w: day, time, activity and addedBy are required", domain.ErrValidation)
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.ScheduleItem{}, fmt.Errorf("service.Planner.AddScheduleItem: %w", err)
	}

	item := domain.ScheduleItem{
		ID:       newID(),
		Day:      in.Day,
		Time:     in.Time,
		Activity: in.Activity,
		AddedBy:  in.AddedBy,
	}
	data.Schedule = append(data.Schedule, item)

	if err := p.store.Save(ctx, data); err != nil {
		return domain.ScheduleItem{}, fmt.Errorf("service.Planner.AddScheduleItem: %w", err)
	}
	return item, nil
}

// RemoveScheduleItem deletes a schedule row by id. Unknown ids are a no-op
// success.
func (p *Planner) RemoveScheduleItem(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.Planner.RemoveScheduleItem: %w", err)
	}

	items := make([]domain.ScheduleItem, 0, len(data.Schedule))
	for _, item := range data.Schedule {
		if item.ID != id {
			items = append(items, item)
		}
	}
	data.Schedule = items

	if err := p.store.Save(ctx, data); err != nil {
		return fmt.Errorf("service.Planner.RemoveScheduleItem: %w", err)
	}
	return nil
}
