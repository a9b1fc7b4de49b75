package service

import (
	"context"
	"time"

	"github.com/SahniNitish/HCI-Project/internal/dto"
	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type budgetStore interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByKey(ctx context.Context, userID uuid.UUID, category string, month, year int) (*models.Budget, error)
	UpdateLimit(ctx context.Context, id uuid.UUID, limit float64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error)
}

type BudgetService struct {
	budgetRepo budgetStore
	logger     *zap.Logger
}

func NewBudgetService(budgetRepo budgetStore, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		logger:     logger,
	}
}

// Upsert is an idempotent-by-key write: an existing (user, category, month,
// year) row has only its limit replaced, created_at untouched. The
// read-then-write has a race window under concurrent identical requests;
// that duplicate-row possibility is an accepted limitation.
func (s *BudgetService) Upsert(ctx context.Context, userID uuid.UUID, req *dto.CreateBudgetRequest) (*models.Budget, error) {
	existing, err := s.budgetRepo.GetByKey(ctx, userID, req.Category, req.Month, req.Year)
	if err == nil && existing != nil {
		if err := s.budgetRepo.UpdateLimit(ctx, existing.ID, req.Limit); err != nil {
			return nil, err
		}
		existing.Limit = req.Limit
		return existing, nil
	}

	budget := &models.Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  req.Category,
		Limit:     req.Limit,
		Month:     req.Month,
		Year:      req.Year,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	return budget, nil
}

func (s *BudgetService) List(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error) {
	return s.budgetRepo.ListByUser(ctx, userID)
}
