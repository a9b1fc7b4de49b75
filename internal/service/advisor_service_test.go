package service

import (
	"context"
	"errors"
	"testing"

	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAdvisor(gen *fakeGenerator, expenses *fakeExpenseStore, budgets *fakeBudgetStore, insights *fakeInsightStore) *AdvisorService {
	return NewAdvisorService(gen, expenses, budgets, insights, zap.NewNop())
}

func TestAdviseNoExpenses(t *testing.T) {
	gen := &fakeGenerator{response: "should not be called"}
	insights := &fakeInsightStore{}
	adv := newAdvisor(gen, &fakeExpenseStore{}, &fakeBudgetStore{}, insights)

	advice := adv.Advise(context.Background(), uuid.New())

	assert.Equal(t, adviceFallbackNoExpenses, advice)
	assert.Zero(t, gen.calls, "backend must not be called without expenses")

	// Even the encouragement message is persisted
	require.Len(t, insights.insights, 1)
	assert.Equal(t, adviceFallbackNoExpenses, insights.insights[0].Content)
	assert.Equal(t, models.InsightTypeFinancialAdvice, insights.insights[0].InsightType)
}

func TestAdviseBackendFailure(t *testing.T) {
	userID := uuid.New()
	expenses := &fakeExpenseStore{expenses: []*models.Expense{
		{ID: uuid.New(), UserID: userID, Amount: 30, Category: "Food", Date: "2024-05-01"},
	}}
	gen := &fakeGenerator{err: errors.New("upstream down")}
	insights := &fakeInsightStore{}
	adv := newAdvisor(gen, expenses, &fakeBudgetStore{}, insights)

	advice := adv.Advise(context.Background(), userID)

	assert.Equal(t, adviceFallbackError, advice)
	require.Len(t, insights.insights, 1)
	assert.Equal(t, adviceFallbackError, insights.insights[0].Content)
}

func TestAdviseReturnsBackendResponseVerbatim(t *testing.T) {
	userID := uuid.New()
	expenses := &fakeExpenseStore{expenses: []*models.Expense{
		{ID: uuid.New(), UserID: userID, Amount: 120, Category: "Food", Date: "2024-05-01"},
		{ID: uuid.New(), UserID: userID, Amount: 60, Category: "Bills", Date: "2024-05-02"},
	}}
	budgets := &fakeBudgetStore{budgets: []*models.Budget{
		{ID: uuid.New(), UserID: userID, Category: "Food", Limit: 200, Month: 5, Year: 2024},
	}}
	gen := &fakeGenerator{response: "1. Cook at home more often.\n2. Review your bills."}
	insights := &fakeInsightStore{}
	adv := newAdvisor(gen, expenses, budgets, insights)

	advice := adv.Advise(context.Background(), userID)

	assert.Equal(t, gen.response, advice)
	require.Len(t, insights.insights, 1)
	assert.Equal(t, gen.response, insights.insights[0].Content)

	// The prompt carries the computed totals and the budget limits
	assert.Contains(t, gen.lastPrompt, "Total spent: $180.00")
	assert.Contains(t, gen.lastPrompt, "Number of transactions: 2")
	assert.Contains(t, gen.lastPrompt, `"Food"`)
	assert.Contains(t, gen.lastPrompt, "200")
}

func TestHistoryReturnsNewestFirstCapped(t *testing.T) {
	userID := uuid.New()
	insights := &fakeInsightStore{}
	adv := newAdvisor(&fakeGenerator{response: "tip"}, &fakeExpenseStore{}, &fakeBudgetStore{}, insights)

	for i := 0; i < 12; i++ {
		adv.Advise(context.Background(), userID)
	}

	history, err := adv.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, history, 10)
}
