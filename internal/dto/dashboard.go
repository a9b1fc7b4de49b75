package dto

type CategoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type MonthAmount struct {
	Month  string  `json:"month"` // YYYY-MM
	Amount float64 `json:"amount"`
}

type DashboardStats struct {
	TotalExpenses     float64          `json:"total_expenses"`
	ExpenseCount      int              `json:"expense_count"`
	TopCategory       string           `json:"top_category"`
	MonthlyTrend      []MonthAmount    `json:"monthly_trend"`
	CategoryBreakdown []CategoryAmount `json:"category_breakdown"`
}
