package models

type PriorityBand string

const (
	BandLow      PriorityBand = "low"
	BandMedium   PriorityBand = "medium"
	BandHigh     PriorityBand = "high"
	BandCritical PriorityBand = "critical"
)

// RiskBreakdown is derived from a payment against a reference instant.
// It is recomputed on every evaluation and never cached across time.
type RiskBreakdown struct {
	HoursStale   float64      `json:"hours_stale"`
	TimeFactor   float64      `json:"time_factor"`
	StatusWeight float64      `json:"status_weight"`
	RiskScore    float64      `json:"risk_score"`
	PriorityBand PriorityBand `json:"priority_band"`
}

// PriorityItem pairs a payment with its risk breakdown for queue ranking.
type PriorityItem struct {
	Payment Payment       `json:"payment"`
	Risk    RiskBreakdown `json:"risk"`
}
