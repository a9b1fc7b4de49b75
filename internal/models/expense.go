package models

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBills          Category = "Bills"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryOther          Category = "Other"
)

// Categories lists every valid expense category. CategoryOther doubles as
// the fallback when automatic classification cannot produce a valid answer.
var Categories = []Category{
	CategoryFood,
	CategoryTransportation,
	CategoryShopping,
	CategoryEntertainment,
	CategoryBills,
	CategoryHealthcare,
	CategoryEducation,
	CategoryOther,
}

func IsValidCategory(s string) bool {
	for _, c := range Categories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Expense is immutable after creation except for deletion. Date is kept as
// its ISO "YYYY-MM-DD" string; the monthly trend groups on its first seven
// characters.
type Expense struct {
	ID            uuid.UUID `db:"id"`
	UserID        uuid.UUID `db:"user_id"`
	Amount        float64   `db:"amount"`
	Category      string    `db:"category"`
	Description   string    `db:"description"`
	Date          string    `db:"date"`
	AICategorized bool      `db:"ai_categorized"`
	CreatedAt     time.Time `db:"created_at"`
}
