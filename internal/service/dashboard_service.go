package service

import (
	"context"
	"sort"

	"github.com/SahniNitish/HCI-Project/internal/dto"
	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DashboardService struct {
	expenseRepo expenseStore
	logger      *zap.Logger
}

func NewDashboardService(expenseRepo expenseStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (*dto.DashboardStats, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return buildStats(expenses), nil
}

// buildStats derives totals, the category breakdown and a 6-point monthly
// trend from a user's expenses. With zero expenses every field is an
// empty/zero default and the top category is the literal "None".
func buildStats(expenses []*models.Expense) *dto.DashboardStats {
	stats := &dto.DashboardStats{
		TopCategory:       "None",
		MonthlyTrend:      []dto.MonthAmount{},
		CategoryBreakdown: []dto.CategoryAmount{},
	}

	if len(expenses) == 0 {
		return stats
	}

	categoryTotals := make(map[string]float64)
	monthlyTotals := make(map[string]float64)

	for _, exp := range expenses {
		stats.TotalExpenses += exp.Amount
		categoryTotals[exp.Category] += exp.Amount

		if len(exp.Date) >= 7 {
			monthlyTotals[exp.Date[:7]] += exp.Amount
		}
	}
	stats.ExpenseCount = len(expenses)

	for category, amount := range categoryTotals {
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, dto.CategoryAmount{
			Category: category,
			Amount:   amount,
		})
	}
	// Descending by amount; equal sums are ordered alphabetically so the
	// breakdown is deterministic.
	sort.Slice(stats.CategoryBreakdown, func(i, j int) bool {
		a, b := stats.CategoryBreakdown[i], stats.CategoryBreakdown[j]
		if a.Amount != b.Amount {
			return a.Amount > b.Amount
		}
		return a.Category < b.Category
	})

	if len(stats.CategoryBreakdown) > 0 {
		stats.TopCategory = stats.CategoryBreakdown[0].Category
	}

	for month, amount := range monthlyTotals {
		stats.MonthlyTrend = append(stats.MonthlyTrend, dto.MonthAmount{
			Month:  month,
			Amount: amount,
		})
	}
	sort.Slice(stats.MonthlyTrend, func(i, j int) bool {
		return stats.MonthlyTrend[i].Month < stats.MonthlyTrend[j].Month
	})

	// Last 6 months chronologically
	if len(stats.MonthlyTrend) > 6 {
		stats.MonthlyTrend = stats.MonthlyTrend[len(stats.MonthlyTrend)-6:]
	}

	return stats
}
