package dto

type AdviceResponse struct {
	Advice string `json:"advice"`
}

type InsightResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	InsightType string `json:"insight_type"`
	Content     string `json:"content"`
	GeneratedAt string `json:"generated_at"`
	Month       *int   `json:"month,omitempty"`
	Year        *int   `json:"year,omitempty"`
}
