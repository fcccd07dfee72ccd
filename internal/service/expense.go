package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
)

// ExpenseInput carries the fields for a new shared expense.
// Amount is a pointer so a missing field can be told apart from zero cents.
type ExpenseInput struct {
	ParticipantID   string
	ParticipantName string
	Description     string
	Amount          *int64 // cents
	SplitBetween    []string
}

// AddExpense validates and appends an expense.
// Returns domain.ErrValidation when a field is missing, the amount is
// negative, or the split set is empty.
func (p *Planner) AddExpense(ctx context.Context, in ExpenseInput) (domain.Expense, error) {
	if in.ParticipantID == "" || in.ParticipantName == "" || strings.TrimSpace(in.Description) == "" || in.Amount == nil || in.SplitBetween == nil {
		return domain.Expense{}, fmt.Errorf("%w: participantId, participantName, description, amount and splitBetween are required", domain.ErrValidation)
	}
	if *in.Amount < 0 {
		return domain.Expense{}, fmt.Errorf("%w: amount must be a non-negative number of cents", domain.ErrValidation)
	}
	if len(in.SplitBetween) == 0 {
		return domain.Expense{}, fmt.Errorf("%w: splitBetween must be a non-empty array", domain.ErrValidation)
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return domain.Expense{}, fmt.Errorf("service.Planner.AddExpense: %w", err)
	}

	expense := domain.Expense{
		ID:              newID(),
		ParticipantID:   in.ParticipantID,
		ParticipantName: in.ParticipantName,
		Description:     in.Description,
		Amount:          *in.Amount,
		SplitBetween:    in.SplitBetween,
		CreatedAt:       nowMillis(),
	}
	data.Expenses = append(data.Expenses, expense)

	if err := p.store.Save(ctx, data); err != nil {
		return domain.Expense{}, fmt.Errorf("service.Planner.AddExpense: %w", err)
	}
	return expense, nil
}

// RemoveExpense deletes an expense by id. Unknown ids are a no-op success.
func (p *Planner) RemoveExpense(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}

	data, err := p.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("service.Planner.RemoveExpense: %w", err)
	}

	expenses := make([]domain.Expense, 0, len(data.Expenses))
	for _, expense := range data.Expenses {
		if expense.ID != id {
			expenses = append(expenses, expense)
		}
	}
	data.Expenses = expenses

	if err := p.store.Save(ctx, data); err != nil {
		return fmt.Errorf("service.Planner.RemoveExpense: %w", err)
	}
	return nil
}
