package models

import (
	"time"

	"github.com/google/uuid"
)

// Budget is unique per (user, category, month, year); a repeated submission
// updates Limit in place instead of creating a duplicate.
type Budget struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Category  string    `db:"category"`
	Limit     float64   `db:"limit"`
	Month     int       `db:"month"`
	Year      int       `db:"year"`
	CreatedAt time.Time `db:"created_at"`
}
