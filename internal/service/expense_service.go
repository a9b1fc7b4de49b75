package service

import (
	"context"
	"time"

	"github.com/SahniNitish/HCI-Project/internal/dto"
	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type expenseStore interface {
	Create(ctx context.Context, expense *models.Expense) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error)
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]*models.Expense, error)
	Delete(ctx context.Context, expenseID, userID uuid.UUID) (int64, error)
}

type ExpenseService struct {
	expenseRepo expenseStore
	categorizer *Categorizer
	logger      *zap.Logger
}

func NewExpenseService(expenseRepo expenseStore, categorizer *Categorizer, logger *zap.Logger) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		categorizer: categorizer,
		logger:      logger,
	}
}

// Create stores a new expense. An omitted category defers to the AI
// categorizer, whose fallback guarantees this always succeeds even when the
// backend is unreachable. A supplied category is stored verbatim.
func (s *ExpenseService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*models.Expense, error) {
	category := req.Category
	aiCategorized := false

	if category == "" {
		category = s.categorizer.Classify(ctx, req.Description, req.Amount)
		aiCategorized = true
	}

	expense := &models.Expense{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        req.Amount,
		Category:      category,
		Description:   req.Description,
		Date:          req.Date,
		AICategorized: aiCategorized,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *ExpenseService) List(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error) {
	return s.expenseRepo.ListByUser(ctx, userID)
}

// Delete removes an expense owned by userID. A matching id owned by another
// user is ErrExpenseNotFound, never a cross-tenant deletion.
func (s *ExpenseService) Delete(ctx context.Context, expenseID, userID uuid.UUID) error {
	deleted, err := s.expenseRepo.Delete(ctx, expenseID, userID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrExpenseNotFound
	}

	s.logger.Info("Expense deleted",
		zap.String("expense_id", expenseID.String()),
		zap.String("user_id", userID.String()),
	)
	return nil
}
