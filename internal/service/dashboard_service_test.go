package service

import (
	"testing"

	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expense(amount float64, category, date string) *models.Expense {
	return &models.Expense{Amount: amount, Category: category, Date: date}
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := buildStats(nil)

	assert.Equal(t, 0.0, stats.TotalExpenses)
	assert.Equal(t, 0, stats.ExpenseCount)
	assert.Equal(t, "None", stats.TopCategory)
	assert.Empty(t, stats.MonthlyTrend)
	assert.Empty(t, stats.CategoryBreakdown)
}

func TestBuildStats(t *testing.T) {
	stats := buildStats([]*models.Expense{
		expense(10, "Food", "2024-01-15"),
		expense(5, "Food", "2024-02-01"),
		expense(20, "Shopping", "2024-02-10"),
	})

	assert.Equal(t, 35.0, stats.TotalExpenses)
	assert.Equal(t, 3, stats.ExpenseCount)
	assert.Equal(t, "Shopping", stats.TopCategory)

	require.Len(t, stats.CategoryBreakdown, 2)
	assert.Equal(t, "Shopping", stats.CategoryBreakdown[0].Category)
	assert.Equal(t, 20.0, stats.CategoryBreakdown[0].Amount)
	assert.Equal(t, "Food", stats.CategoryBreakdown[1].Category)
	assert.Equal(t, 15.0, stats.CategoryBreakdown[1].Amount)

	require.Len(t, stats.MonthlyTrend, 2)
	assert.Equal(t, "2024-01", stats.MonthlyTrend[0].Month)
	assert.Equal(t, 10.0, stats.MonthlyTrend[0].Amount)
	assert.Equal(t, "2024-02", stats.MonthlyTrend[1].Month)
	assert.Equal(t, 25.0, stats.MonthlyTrend[1].Amount)
}

func TestBuildStatsTieBreakIsAlphabetical(t *testing.T) {
	// Equal sums are ordered by category name so the breakdown is
	// deterministic regardless of insertion order.
	stats := buildStats([]*models.Expense{
		expense(10, "Shopping", "2024-03-01"),
		expense(10, "Food", "2024-03-02"),
		expense(10, "Bills", "2024-03-03"),
	})

	require.Len(t, stats.CategoryBreakdown, 3)
	assert.Equal(t, "Bills", stats.CategoryBreakdown[0].Category)
	assert.Equal(t, "Food", stats.CategoryBreakdown[1].Category)
	assert.Equal(t, "Shopping", stats.CategoryBreakdown[2].Category)
	assert.Equal(t, "Bills", stats.TopCategory)
}

func TestBuildStatsTrendKeepsLastSixMonths(t *testing.T) {
	expenses := []*models.Expense{
		expense(1, "Food", "2023-09-01"),
		expense(2, "Food", "2023-10-01"),
		expense(3, "Food", "2023-11-01"),
		expense(4, "Food", "2023-12-01"),
		expense(5, "Food", "2024-01-01"),
		expense(6, "Food", "2024-02-01"),
		expense(7, "Food", "2024-03-01"),
		expense(8, "Food", "2024-04-01"),
	}

	stats := buildStats(expenses)

	require.Len(t, stats.MonthlyTrend, 6)
	assert.Equal(t, "2023-11", stats.MonthlyTrend[0].Month)
	assert.Equal(t, "2024-04", stats.MonthlyTrend[5].Month)
}
