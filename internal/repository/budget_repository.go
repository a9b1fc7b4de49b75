package repository

import (
	"context"

	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BudgetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewBudgetRepository(db *pgxpool.Pool, logger *zap.Logger) *BudgetRepository {
	return &BudgetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	query := squirrel.Insert("budgets").
		Columns("id", "user_id", "category", `"limit"`, "month", "year", "created_at").
		Values(budget.ID, budget.UserID, budget.Category, budget.Limit, budget.Month, budget.Year, budget.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByKey looks up a budget by its natural composite key.
func (r *BudgetRepository) GetByKey(ctx context.Context, userID uuid.UUID, category string, month, year int) (*models.Budget, error) {
	query := squirrel.Select("id", "user_id", "category", `"limit"`, "month", "year", "created_at").
		From("budgets").
		Where(squirrel.Eq{"user_id": userID, "category": category, "month": month, "year": year}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var budget models.Budget
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&budget.ID, &budget.UserID, &budget.Category, &budget.Limit, &budget.Month, &budget.Year, &budget.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &budget, nil
}

// UpdateLimit changes only the limit of an existing budget; created_at is
// left untouched.
func (r *BudgetRepository) UpdateLimit(ctx context.Context, id uuid.UUID, limit float64) error {
	query := squirrel.Update("budgets").
		Set(`"limit"`, limit).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *BudgetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Budget, error) {
	query := squirrel.Select("id", "user_id", "category", `"limit"`, "month", "year", "created_at").
		From("budgets").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var budgets []*models.Budget
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(
			&budget.ID, &budget.UserID, &budget.Category, &budget.Limit, &budget.Month, &budget.Year, &budget.CreatedAt,
		); err != nil {
			return nil, err
		}
		budgets = append(budgets, &budget)
	}

	return budgets, rows.Err()
}
