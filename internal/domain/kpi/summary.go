package kpi

// CardStatus tags a summary card for coloring and alerting.
type CardStatus string

const (
	StatusExcellent      CardStatus = "excellent"
	StatusGood           CardStatus = "good"
	StatusNeedsAttention CardStatus = "needs-attention"
	StatusNoData         CardStatus = "no-data"
)

// ClassifyScore maps a KPI value onto a card status.
func ClassifyScore(value int) CardStatus {
	switch {
	case value >= 90:
		return StatusExcellent
	case value >= 75:
		return StatusGood
	default:
		return StatusNeedsAttention
	}
}

// Card is one category's latest score, status-tagged for the dashboard.
type Card struct {
	Category      Category   `json:"category"`
	Status        CardStatus `json:"status"`
	KPIValue      *int       `json:"kpi_value,omitempty"`
	MonthlyTarget *int       `json:"monthly_target,omitempty"`
	MonthKey      *string    `json:"month_key,omitempty"`
}

// SummaryResponse carries all category cards for one team.
type SummaryResponse struct {
	TeamID string `json:"team_id"`
	Cards  []Card `json:"cards"`
}

// HistoryPoint is one month's score for the dashboard charts.
type HistoryPoint struct {
	MonthKey      string `json:"month_key"`
	KPIValue      int    `json:"kpi_value"`
	MonthlyTarget int    `json:"monthly_target"`
}

// HistoryResponse is a category's recent scores, newest first.
type HistoryResponse struct {
	TeamID   string         `json:"team_id"`
	Category Category       `json:"category"`
	Points   []HistoryPoint `json:"points"`
}
