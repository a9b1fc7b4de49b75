package dto

type CreateBudgetRequest struct {
	Category string  `json:"category"`
	Limit    float64 `json:"limit"`
	Month    int     `json:"month"`
	Year     int     `json:"year"`
}

type BudgetResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Month     int     `json:"month"`
	Year      int     `json:"year"`
	CreatedAt string  `json:"created_at"`
}
