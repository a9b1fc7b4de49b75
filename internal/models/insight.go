package models

import (
	"time"

	"github.com/google/uuid"
)

const InsightTypeFinancialAdvice = "financial_advice"

// AIInsight is an append-only log of generated advice, fallback messages
// included.
type AIInsight struct {
	ID          uuid.UUID `db:"id"`
	UserID      uuid.UUID `db:"user_id"`
	InsightType string    `db:"insight_type"`
	Content     string    `db:"content"`
	GeneratedAt time.Time `db:"generated_at"`
	Month       *int      `db:"month"`
	Year        *int      `db:"year"`
}
