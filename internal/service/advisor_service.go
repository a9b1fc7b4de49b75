package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	adviceFallbackNoExpenses = "Start tracking your expenses to get personalized financial advice!"
	adviceFallbackError      = "Unable to generate advice at this time. Please try again later."

	// How many of the most recent expenses feed the spending summary.
	adviceExpenseWindow = 100
)

type insightStore interface {
	Create(ctx context.Context, insight *models.AIInsight) error
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]*models.AIInsight, error)
}

// AdvisorService summarizes recent spending into natural-language tips via
// the text-generation backend. Backend failures never propagate: the caller
// always receives either the backend's response verbatim or a fixed
// fallback string.
type AdvisorService struct {
	generator   TextGenerator
	expenseRepo expenseStore
	budgetRepo  budgetStore
	insightRepo insightStore
	logger      *zap.Logger
}

func NewAdvisorService(
	generator TextGenerator,
	expenseRepo expenseStore,
	budgetRepo budgetStore,
	insightRepo insightStore,
	logger *zap.Logger,
) *AdvisorService {
	return &AdvisorService{
		generator:   generator,
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		insightRepo: insightRepo,
		logger:      logger,
	}
}

// Advise produces advice text and unconditionally records it as an
// AIInsight, fallback messages included, so insight history may contain
// non-substantive entries.
func (s *AdvisorService) Advise(ctx context.Context, userID uuid.UUID) string {
	advice := s.generateAdvice(ctx, userID)

	insight := &models.AIInsight{
		ID:          uuid.New(),
		UserID:      userID,
		InsightType: models.InsightTypeFinancialAdvice,
		Content:     advice,
		GeneratedAt: time.Now().UTC(),
	}
	if err := s.insightRepo.Create(ctx, insight); err != nil {
		s.logger.Error("Failed to persist insight", zap.Error(err))
	}

	return advice
}

func (s *AdvisorService) History(ctx context.Context, userID uuid.UUID) ([]*models.AIInsight, error) {
	return s.insightRepo.ListRecentByUser(ctx, userID, 10)
}

func (s *AdvisorService) generateAdvice(ctx context.Context, userID uuid.UUID) string {
	expenses, err := s.expenseRepo.ListRecentByUser(ctx, userID, adviceExpenseWindow)
	if err != nil {
		s.logger.Error("Financial advice generation failed", zap.Error(err))
		return adviceFallbackError
	}

	if len(expenses) == 0 {
		return adviceFallbackNoExpenses
	}

	budgets, err := s.budgetRepo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Financial advice generation failed", zap.Error(err))
		return adviceFallbackError
	}

	prompt := buildAdvicePrompt(expenses, budgets)

	response, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Financial advice generation failed", zap.Error(err))
		return adviceFallbackError
	}

	return response
}

func buildAdvicePrompt(expenses []*models.Expense, budgets []*models.Budget) string {
	categoryTotals := make(map[string]float64)
	var totalSpent float64
	for _, exp := range expenses {
		categoryTotals[exp.Category] += exp.Amount
		totalSpent += exp.Amount
	}

	type budgetLimit struct {
		Category string  `json:"category"`
		Limit    float64 `json:"limit"`
	}
	budgetLimits := make([]budgetLimit, 0, len(budgets))
	for _, b := range budgets {
		budgetLimits = append(budgetLimits, budgetLimit{Category: b.Category, Limit: b.Limit})
	}

	categoryJSON, _ := json.MarshalIndent(categoryTotals, "", "  ")
	budgetJSON, _ := json.MarshalIndent(budgetLimits, "", "  ")

	return fmt.Sprintf(`You are a personal financial advisor. Analyze the user's spending patterns and provide 3-4 actionable, personalized savings tips. Be encouraging and specific. Format your response as a list of tips.

User's spending data:
- Total spent: $%.2f
- Number of transactions: %d
- Spending by category: %s
- Budgets: %s`,
		totalSpent,
		len(expenses),
		categoryJSON,
		budgetJSON,
	)
}
