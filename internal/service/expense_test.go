package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmulder/weekend-planner/backend/internal/domain"
	"github.com/jmulder/weekend-planner/backend/internal/service"
)

func validExpense() service.ExpenseInput {
	amount := int64(2500)
	return service.ExpenseInput{
		ParticipantID:   "p1",
		ParticipantName: "Jesse",
		Description:     "boodschappen",
		Amount:          &amount,
		SplitBetween:    []string{"p1", "p2"},
	}
}

func TestAddExpense(t *testing.T) {
	p, st := newTestPlanner(t)
	ctx := context.Background()

	expense, err := p.AddExpense(ctx, validExpense())

	require.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.EqualValues(t, 2500, expense.Amount)
	assert.Equal(t, []string{"p1", "p2"}, expense.SplitBetween)
	assert.Positive(t, expense.CreatedAt)

	data, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, data.Expenses, 1)
	assert.Equal(t, expense, data.Expenses[0])
}

func TestAddExpense_zeroAmountAllowed(t *testing.T) {
	p, _ := newTestPlanner(t)
	in := validExpense()
	zero := int64(0)
	in.Amount = &zero

	expense, err := p.AddExpense(context.Background(), in)

	require.NoError(t, err)
	assert.Zero(t, expense.Amount)
}

// TestAddExpense_validation pins both halves of the contract: every invalid
// input is rejected with the validation sentinel, and none of them reaches
// the store.
func TestAddExpense_validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *service.ExpenseInput)
	}{
		{name: "missing participantId", mutate: func(in *service.ExpenseInput) { in.ParticipantID = "" }},
		{name: "missing description", mutate: func(in *service.ExpenseInput) { in.Description = "  " }},
		{name: "missing amount", mutate: func(in *service.ExpenseInput) { in.Amount = nil }},
		{name: "negative amount", mutate: func(in *service.ExpenseInput) { n := int64(-5); in.Amount = &n }},
		{name: "missing splitBetween", mutate: func(in *service.ExpenseInput) { in.SplitBetween = nil }},
		{name: "empty splitBetween", mutate: func(in *service.ExpenseInput) { in.SplitBetween = []string{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spy := newSpyStore()
			p := service.NewPlanner(spy)
			in := validExpense()
			tt.mutate(&in)

			_, err := p.AddExpense(context.Background(), in)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			assert.Zero(t, spy.saves, "rejected input must not write")
		})
	}
}

func TestRemoveExpense(t *testing.T) {
	p, st := newTestPlanner(t)
	ctx := context.Background()

	expense, err := p.AddExpense(ctx, validExpense())
	require.NoError(t, err)

	require.NoError(t, p.RemoveExpense(ctx, expense.ID))
	require.NoError(t, p.RemoveExpense(ctx, expense.ID))

	data, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, data.Expenses)
}

func TestRemoveExpense_missingID(t *testing.T) {
	p, _ := newTestPlanner(t)

	err := p.RemoveExpense(context.Background(), "")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}
