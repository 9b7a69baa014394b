package analytics

import (
	"sort"
	"time"

	"github.com/claimspulse/recovery-service/internal/models"
	"github.com/claimspulse/recovery-service/internal/risk"
)

func toPercent(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return (numerator / denominator) * 100
}

// DashboardMetrics aggregates the headline numbers for the recovery
// dashboard. atRiskUsd sums failed and stale-awaiting payments; under the
// status model those conditions are disjoint, so nothing double counts.
func DashboardMetrics(payments []models.Payment, now time.Time) models.DashboardMetrics {
	var metrics models.DashboardMetrics
	var completedCount, nonCancelledCount int
	var completedHours float64

	for _, payment := range payments {
		if risk.IsActiveNonFailed(payment) {
			metrics.ActiveCount++
		}
		if risk.IsStaleAwaiting(payment, now) {
			metrics.StaleCount++
			metrics.AtRiskUSD += payment.AmountUSD
		}
		if payment.Status == models.StatusFailed {
			metrics.FailedCount++
			metrics.AtRiskUSD += payment.AmountUSD
		}
		if payment.Status != models.StatusCancelled {
			nonCancelledCount++
		}
		if payment.Status == models.StatusCompleted {
			completedCount++
			completedHours += risk.HoursSince(payment.CreatedAt, payment.UpdatedAt)
		}
	}

	metrics.CashOutRate = toPercent(float64(completedCount), float64(nonCancelledCount))
	if completedCount > 0 {
		metrics.AvgCashOutHours = completedHours / float64(completedCount)
	}

	return metrics
}

// PriorityQueue ranks actionable payments by risk score, highest first.
// Superseded payments and payments with a zero status weight are dropped.
// The sort is stable, so ties keep their original relative order.
func PriorityQueue(payments []models.Payment, now time.Time) []models.PriorityItem {
	items := make([]models.PriorityItem, 0, len(payments))
	for _, payment := range payments {
		breakdown := risk.Breakdown(payment, now)
		if payment.Superseded() || breakdown.StatusWeight == 0 {
			continue
		}
		items = append(items, models.PriorityItem{Payment: payment, Risk: breakdown})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Risk.RiskScore > items[j].Risk.RiskScore
	})

	return items
}

// CashoutTrend produces one point per calendar day, oldest first, ending at
// the day containing now. A payment is attributed to exactly one day by its
// UpdatedAt timestamp, never by CreatedAt.
func CashoutTrend(payments []models.Payment, days int, now time.Time) []models.CashoutTrendPoint {
	points := make([]models.CashoutTrendPoint, 0, days)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	for idx := days - 1; idx >= 0; idx-- {
		dayStart := midnight.AddDate(0, 0, -idx)
		dayEnd := dayStart.AddDate(0, 0, 1)

		point := models.CashoutTrendPoint{DayLabel: dayStart.Format("Mon")}
		for _, payment := range payments {
			if payment.UpdatedAt.Before(dayStart) || !payment.UpdatedAt.Before(dayEnd) {
				continue
			}
			switch payment.Status {
			case models.StatusCompleted:
				point.CompletedCount++
			case models.StatusFailed:
				point.FailedCount++
			}
		}

		points = append(points, point)
	}

	return points
}

// BankPerformance groups payments by funding source and computes per-source
// completion rates, ordered by success rate descending. Payments referencing
// an unknown funding source are skipped. The max(1, …) denominator guard
// yields 0% for sources with only in-flight payments.
func BankPerformance(payments []models.Payment, fundingSources []models.FundingSource) []models.BankPerformance {
	sourceByID := make(map[string]models.FundingSource, len(fundingSources))
	for _, source := range fundingSources {
		sourceByID[source.ID] = source
	}

	grouped := make(map[string]*models.BankPerformance)
	order := make([]string, 0, len(fundingSources))

	for _, payment := range payments {
		source, ok := sourceByID[payment.FundingSourceID]
		if !ok {
			continue
		}

		perf, ok := grouped[source.ID]
		if !ok {
			perf = &models.BankPerformance{
				FundingSourceID: source.ID,
				BankName:        source.BankName,
				Last4:           source.Last4,
			}
			grouped[source.ID] = perf
			order = append(order, source.ID)
		}

		perf.TotalCount++
		if payment.Status == models.StatusCompleted {
			perf.CompletedCount++
		}
		if payment.Status == models.StatusFailed {
			perf.FailedCount++
		}
	}

	results := make([]models.BankPerformance, 0, len(order))
	for _, id := range order {
		perf := grouped[id]
		denominator := perf.CompletedCount + perf.FailedCount
		if denominator < 1 {
			denominator = 1
		}
		perf.SuccessRate = toPercent(float64(perf.CompletedCount), float64(denominator))
		results = append(results, *perf)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].SuccessRate > results[j].SuccessRate
	})

	return results
}

// FailedInLastDays returns failed payments whose last update is on or after
// now minus the given number of days. The lower bound is inclusive.
func FailedInLastDays(payments []models.Payment, days int, now time.Time) []models.Payment {
	cutoff := now.AddDate(0, 0, -days)

	failed := make([]models.Payment, 0)
	for _, payment := range payments {
		if payment.Status == models.StatusFailed && !payment.UpdatedAt.Before(cutoff) {
			failed = append(failed, payment)
		}
	}

	return failed
}
