package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// PackItemInput carries the fields for a new packing list entry.
type PackItemInput struct {
	Item    string
	AddedBy string
}

// PackItemPatch carries the optional fields of a pack item update.
// Only non-nil fields are applied; everything else is left untouched.
type PackItemPatch struct {
	AssignedTo   *string
	AssignedToID *string
	Checked      *bool
}

// AddPackItem validates and appends an unassigned, unchecked pack item.
func (p *Planner) AddPackItem(ctx context.Context, in PackItemInput) (domain.PackItem, error) {
	if strings.TrimSpace(in.Item) == "" || strings.TrimSpace(in.AddedBy) == "" {
		return domain.PackItem{}, fmt.Errorf("%w: item and addedBy are required", domain.ErrValidation)
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.PackItem{}, fmt.Errorf("service.Planner.AddPackItem: %w", err)
	}

	item := domain.PackItem{
		ID:      newID(),
		Item:    in.Item,
		AddedBy: in.AddedBy,
	}
	data.PackList = append(data.PackList, item)

	if err := p.store.Save(ctx, data); err != nil {
		return domain.PackItem{}, fmt.Errorf("service.Planner.AddPackItem: %w", err)
	}
	return item, nil
}

// UpdatePackItem merges the patch into the pack item with the given id,
// keeping it at its original position.
// Returns domain.ErrNotFound when no item has that id.
func (p *Planner) UpdatePackItem(ctx context.Context, id string, patch PackItemPatch) (domain.PackItem, error) {
	if err := requireID(id); err != nil {
		return domain.PackItem{}, err
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.PackItem{}, fmt.Errorf("service.Planner.UpdatePackItem: %w", err)
	}

	idx := -1
	for i, item := range data.PackList {
		if item.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.PackItem{}, fmt.Errorf("service.Planner.UpdatePackItem: %w", domain.ErrNotFound)
	}

	item := data.PackList[idx]
	if patch.AssignedTo != nil {
		item.AssignedTo = *patch.AssignedTo
	}
	if patch.AssignedToID != nil {
		item.AssignedToID = *patch.AssignedToID
	}
	if patch.Checked != nil {
		item.Checked = *patch.Checked
	}
	data.PackList[idx] = item

	if err := p.store.Save(ctx, data); err != nil {
		return domain.PackItem{}, fmt.Errorf("service.Planner.UpdatePackItem: %w", err)
	}
	return item, nil
}

// RemovePackItem deletes a pack item by id. Unknown ids are a no-op success.
func (p *Planner) RemovePackItem(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.Planner.RemovePackItem: %w", err)
	}

	items := make([]domain.PackItem, 0, len(data.PackList))
	for _, item := range data.PackList {
		if item.ID != id {
			items = append(items, item)
		}
	}
	data.PackList = items

	if err := p.store.Save(ctx, data); err != nil {
		return fmt.Errorf("service.Planner.RemovePackItem: %w", err)
	}
	return nil
}
