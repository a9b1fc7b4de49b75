package repository

import (
	"context"

	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *ExpenseRepository {
	return &ExpenseRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns("id", "user_id", "amount", "category", "description", "date", "ai_categorized", "created_at").
		Values(expense.ID, expense.UserID, expense.Amount, expense.Category, expense.Description, expense.Date, expense.AICategorized, expense.CreatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns the user's expenses ordered by date descending. Order
// among equal dates is not specified.
func (r *ExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Expense, error) {
	query := squirrel.Select("id", "user_id", "amount", "category", "description", "date", "ai_categorized", "created_at").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.queryExpenses(ctx, query)
}

// ListRecentByUser returns up to limit expenses ordered by creation time
// descending, for the advisor's spending summary.
func (r *ExpenseRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]*models.Expense, error) {
	query := squirrel.Select("id", "user_id", "amount", "category", "description", "date", "ai_categorized", "created_at").
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.queryExpenses(ctx, query)
}

// Delete removes the expense only when it is owned by userID. Returns the
// number of rows deleted so callers can distinguish a miss from a delete.
func (r *ExpenseRepository) Delete(ctx context.Context, expenseID, userID uuid.UUID) (int64, error) {
	query := squirrel.Delete("expenses").
		Where(squirrel.Eq{"id": expenseID, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (r *ExpenseRepository) queryExpenses(ctx context.Context, query squirrel.SelectBuilder) ([]*models.Expense, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(
			&exp.ID, &exp.UserID, &exp.Amount, &exp.Category, &exp.Description, &exp.Date, &exp.AICategorized, &exp.CreatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, &exp)
	}

	return expenses, rows.Err()
}
