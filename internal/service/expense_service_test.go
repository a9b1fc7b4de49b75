package service

import (
	"context"
	"testing"

	"github.com/SahniNitish/HCI-Project/internal/dto"
	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newExpenseService(store *fakeExpenseStore, gen *fakeGenerator) *ExpenseService {
	categorizer := NewCategorizer(gen, zap.NewNop())
	return NewExpenseService(store, categorizer, zap.NewNop())
}

func TestCreateWithExplicitCategory(t *testing.T) {
	store := &fakeExpenseStore{}
	gen := &fakeGenerator{response: "Food"}
	svc := newExpenseService(store, gen)

	exp, err := svc.Create(context.Background(), uuid.New(), &dto.CreateExpenseRequest{
		Amount:      15,
		Category:    "Transportation",
		Description: "bus ticket",
		Date:        "2024-06-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "Transportation", exp.Category)
	assert.False(t, exp.AICategorized)
	assert.Zero(t, gen.calls, "categorizer must not run for an explicit category")
}

func TestCreateCategoryPassThrough(t *testing.T) {
	// A supplied category is stored verbatim, valid or not
	store := &fakeExpenseStore{}
	svc := newExpenseService(store, &fakeGenerator{})

	exp, err := svc.Create(context.Background(), uuid.New(), &dto.CreateExpenseRequest{
		Amount:      5,
		Category:    "Groceries",
		Description: "milk",
		Date:        "2024-06-02",
	})
	require.NoError(t, err)
	assert.Equal(t, "Groceries", exp.Category)
	assert.False(t, exp.AICategorized)
}

func TestCreateWithAICategorization(t *testing.T) {
	store := &fakeExpenseStore{}
	gen := &fakeGenerator{response: "Entertainment"}
	svc := newExpenseService(store, gen)

	exp, err := svc.Create(context.Background(), uuid.New(), &dto.CreateExpenseRequest{
		Amount:      30,
		Description: "cinema tickets",
		Date:        "2024-06-03",
	})
	require.NoError(t, err)

	assert.Equal(t, "Entertainment", exp.Category)
	assert.True(t, exp.AICategorized)
	assert.Equal(t, 1, gen.calls)
}

func TestCreateSucceedsWhenBackendUnreachable(t *testing.T) {
	store := &fakeExpenseStore{}
	gen := &fakeGenerator{err: ErrLLMUnavailable}
	svc := newExpenseService(store, gen)

	exp, err := svc.Create(context.Background(), uuid.New(), &dto.CreateExpenseRequest{
		Amount:      8,
		Description: "mystery purchase",
		Date:        "2024-06-04",
	})
	require.NoError(t, err)
	assert.Equal(t, string(models.CategoryOther), exp.Category)
	assert.True(t, exp.AICategorized)
}

func TestDeleteIsOwnerScoped(t *testing.T) {
	owner := uuid.New()
	intruder := uuid.New()
	expenseID := uuid.New()
	store := &fakeExpenseStore{expenses: []*models.Expense{
		{ID: expenseID, UserID: owner, Amount: 10, Category: "Food", Date: "2024-06-05"},
	}}
	svc := newExpenseService(store, &fakeGenerator{})
	ctx := context.Background()

	// Another user's delete is NotFound and leaves the row intact
	err := svc.Delete(ctx, expenseID, intruder)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
	assert.Len(t, store.expenses, 1)

	err = svc.Delete(ctx, expenseID, owner)
	require.NoError(t, err)
	assert.Empty(t, store.expenses)

	// Deleting again is NotFound
	err = svc.Delete(ctx, expenseID, owner)
	assert.ErrorIs(t, err, ErrExpenseNotFound)
}
