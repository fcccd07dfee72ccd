package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// WishInput carries the fields for a new food/drink/misc wish.
type WishInput struct {
	ParticipantID   string
	ParticipantName string
	Category        string
	Text            string
}

// AddWish validates and appends a wish.
// Returns domain.ErrValidation when a field is missing or the category is
// not one of the enumerated values.
func (p *Planner) AddWish(ctx context.Context, in WishInput) (domain.Wish, error) {
	if in.ParticipantID == "" || in.ParticipantName == "" || in.Category == "" || strings.TrimSpace(in.Text) == "" {
		return domain.Wish{}, fmt.Errorf("%w: participantId, participantName, category and text are required", domain.ErrValidation)
	}
	if !domain.ValidCategory(in.Category) {
		return domain.Wish{}, fmt.Errorf("%w: category must be one of: %s, %s, %s",
			domain.ErrValidation, domain.CategoryEten, domain.CategoryDrinken, domain.CategoryOverig)
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.Wish{}, fmt.Errorf("service.Planner.AddWish: %w", err)
	}

	wish := domain.Wish{
		ID:              newID(),
		ParticipantID:   in.ParticipantID,
		ParticipantName: in.ParticipantName,
		Category:        in.Category,
		Text:            in.Text,
		CreatedAt:       nowMillis(),
	}
	data.Wishes = append(data.Wishes, wish)

	if err := p.store.Save(ctx, data); err != nil {
		return domain.Wish{}, fmt.Errorf("service.Planner.AddWish: %w", err)
	}
	return wish, nil
}

// RemoveWish deletes a wish by id. Unknown ids are a no-op success.
func (p *Planner) RemoveWish(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.Planner.RemoveWish: %w", err)
	}

	wishes := make([]domain.Wish, 0, len(data.Wishes))
	for _, wish := range data.Wishes {
		if wish.ID != id {
			wishes = append(wishes, wish)
		}
	}
	data.Wishes = wishes

	if err := p.store.Save(ctx, data); err != nil {
		return fmt.Errorf("service.Planner.RemoveWish: %w", err)
	}
	return nil
}
