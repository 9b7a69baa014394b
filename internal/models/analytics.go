package models

type DashboardMetrics struct {
	ActiveCount     int     `json:"active_count"`
	StaleCount      int     `json:"stale_count"`
	FailedCount     int     `json:"failed_count"`
	AtRiskUSD       float64 `json:"at_risk_usd"`
	CashOutRate     float64 `json:"cash_out_rate"`
	AvgCashOutHours float64 `json:"avg_cash_out_hours"`
}

type CashoutTrendPoint struct {
	DayLabel       string `json:"day_label"`
	CompletedCount int    `json:"completed_count"`
	FailedCount    int    `json:"failed_count"`
}

type BankPerformance struct {
	FundingSourceID string  `json:"funding_source_id"`
	BankName        string  `json:"bank_name"`
	Last4           string  `json:"last4"`
	TotalCount      int     `json:"total_count"`
	CompletedCount  int     `json:"completed_count"`
	FailedCount     int     `json:"failed_count"`
	SuccessRate     float64 `json:"success_rate"`
}
