package repository

import (
	"context"

	"github.com/SahniNitish/HCI-Project/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type InsightRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewInsightRepository(db *pgxpool.Pool, logger *zap.Logger) *InsightRepository {
	return &InsightRepository{
		db:     db,
		logger: logger,
	}
}

func (r *InsightRepository) Create(ctx context.Context, insight *models.AIInsight) error {
	query := squirrel.Insert("ai_insights").
		Columns("id", "user_id", "insight_type", "content", "generated_at", "month", "year").
		Values(insight.ID, insight.UserID, insight.InsightType, insight.Content, insight.GeneratedAt, insight.Month, insight.Year).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListRecentByUser returns the user's newest insights first.
func (r *InsightRepository) ListRecentByUser(ctx context.Context, userID uuid.UUID, limit uint64) ([]*models.AIInsight, error) {
	query := squirrel.Select("id", "user_id", "insight_type", "content", "generated_at", "month", "year").
		From("ai_insights").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("generated_at DESC").
		Limit(limit).
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

	var insights []*models.AIInsight
	for rows.Next() {
		var insight models.AIInsight
		if err := rows.Scan(
			&insight.ID, &insight.UserID, &insight.InsightType, &insight.Content, &insight.GeneratedAt, &insight.Month, &insight.Year,
		); err != nil {
			return nil, err
		}
		insights = append(insights, &insight)
	}

	return insights, rows.Err()
}
