package analytics_test

import (
	"testing"
	"time"

	"github.com/claimspulse/recovery-service/internal/analytics"
	"github.com/claimspulse/recovery-service/internal/models"
	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func payment(id string, status models.PaymentStatus, amount float64, createdHoursAgo, updatedHoursAgo float64) models.Payment {
	return models.Payment{
		ID:              id,
		ClaimID:         "CLM-" + id,
		AmountUSD:       amount,
		Status:          status,
		FundingSourceID: "fs-001",
		CreatedAt:       baseTime.Add(-time.Duration(createdHoursAgo * float64(time.Hour))),
		UpdatedAt:       baseTime.Add(-time.Duration(updatedHoursAgo * float64(time.Hour))),
	}
}

func TestDashboardMetrics_MixedSnapshot(t *testing.T) {
	payments := []models.Payment{
		payment("PAY-1", models.StatusAwaitingCashOut, 5000, 72, 72),
		payment("PAY-2", models.StatusFailed, 3000, 10, 4),
		payment("PAY-3", models.StatusCompleted, 7000, 42, 20),
		payment("PAY-4", models.StatusCancelled, 9000, 120, 115),
	}

	metrics := analytics.DashboardMetrics(payments, baseTime)

	assert.Equal(t, 1, metrics.ActiveCount)
	assert.Equal(t, 1, metrics.StaleCount)
	assert.Equal(t, 1, metrics.FailedCount)
	assert.Equal(t, 8000.0, metrics.AtRiskUSD)
	assert.InDelta(t, 100.0/3.0, metrics.CashOutRate, 0.001)
	assert.Equal(t, 22.0, metrics.AvgCashOutHours)
}

func TestDashboardMetrics_EmptySnapshot(t *testing.T) {
	metrics := analytics.DashboardMetrics(nil, baseTime)

	assert.Equal(t, 0, metrics.ActiveCount)
	assert.Equal(t, 0.0, metrics.CashOutRate)
	assert.Equal(t, 0.0, metrics.AvgCashOutHours)
}

func TestPriorityQueue_OrdersByRiskScoreDescending(t *testing.T) {
	payments := []models.Payment{
		payment("PAY-1", models.StatusAwaitingCashOut, 800, 49, 49),
		payment("PAY-2", models.StatusAwaitingCashOut, 52000, 80, 80),
		payment("PAY-3", models.StatusFailed, 2100, 8, 4),
	}

	items := analytics.PriorityQueue(payments, baseTime)

	assert.Len(t, items, 3)
	assert.Equal(t, "PAY-2", items[0].Payment.ID)
	assert.Equal(t, "PAY-3", items[1].Payment.ID)
	assert.Equal(t, "PAY-1", items[2].Payment.ID)
}

func TestPriorityQueue_ExcludesSupersededPayments(t *testing.T) {
	superseded := payment("PAY-1", models.StatusAwaitingCashOut, 52000, 80, 80)
	superseded.SupersededByPaymentID = "PAY-2"

	items := analytics.PriorityQueue([]models.Payment{
		superseded,
		payment("PAY-2", models.StatusAwaitingCashOut, 52000, 1, 1),
	}, baseTime)

	assert.Len(t, items, 1)
	assert.Equal(t, "PAY-2", items[0].Payment.ID)
}

func TestPriorityQueue_ExcludesZeroWeightStatuses(t *testing.T) {
	items := analytics.PriorityQueue([]models.Payment{
		payment("PAY-1", models.StatusCompleted, 90000, 100, 100),
		payment("PAY-2", models.StatusCancelled, 90000, 100, 100),
	}, baseTime)

	assert.Empty(t, items)
}

func TestPriorityQueue_StableOrderOnTies(t *testing.T) {
	payments := []models.Payment{
		payment("PAY-1", models.StatusAwaitingCashOut, 1000, 5, 5),
		payment("PAY-2", models.StatusAwaitingCashOut, 1000, 5, 5),
		payment("PAY-3", models.StatusAwaitingCashOut, 1000, 5, 5),
	}

	items := analytics.PriorityQueue(payments, baseTime)

	assert.Equal(t, "PAY-1", items[0].Payment.ID)
	assert.Equal(t, "PAY-2", items[1].Payment.ID)
	assert.Equal(t, "PAY-3", items[2].Payment.ID)
}

func TestCashoutTrend_AttributesByUpdatedAtDay(t *testing.T) {
	payments := []models.Payment{
		payment("PAY-1", models.StatusCompleted, 1000, 30, 2),
		payment("PAY-2", models.StatusCompleted, 1000, 60, 30),
		payment("PAY-3", models.StatusFailed, 1000, 30, 26),
		// created recently but completed long ago: must not appear
		payment("PAY-4", models.StatusCompleted, 1000, 2, 24*10),
	}

	points := analytics.CashoutTrend(payments, 7, baseTime)

	assert.Len(t, points, 7)
	today := points[6]
	yesterday := points[5]
	assert.Equal(t, 1, today.CompletedCount)
	assert.Equal(t, 0, today.FailedCount)
	assert.Equal(t, 1, yesterday.CompletedCount)
	assert.Equal(t, 1, yesterday.FailedCount)
}

func TestCashoutTrend_DayLabelsOldestFirst(t *testing.T) {
	points := analytics.CashoutTrend(nil, 3, baseTime)

	// 2024-03-15 is a Friday
	assert.Equal(t, "Wed", points[0].DayLabel)
	assert.Equal(t, "Thu", points[1].DayLabel)
	assert.Equal(t, "Fri", points[2].DayLabel)
}

func TestBankPerformance_GroupsAndRanksBySuccessRate(t *testing.T) {
	sources := []models.FundingSource{
		{ID: "fs-001", BankName: "Chase", Last4: "4521", Status: models.FundingSourceActive},
		{ID: "fs-002", BankName: "Bank of America", Last4: "8890", Status: models.FundingSourceActive},
	}

	first := payment("PAY-1", models.StatusCompleted, 1000, 10, 5)
	second := payment("PAY-2", models.StatusFailed, 1000, 10, 5)
	second.FundingSourceID = "fs-002"
	third := payment("PAY-3", models.StatusCompleted, 1000, 10, 5)
	third.FundingSourceID = "fs-002"
	fourth := payment("PAY-4", models.StatusCompleted, 1000, 10, 5)

	results := analytics.BankPerformance([]models.Payment{first, second, third, fourth}, sources)

	assert.Len(t, results, 2)
	assert.Equal(t, "fs-001", results[0].FundingSourceID)
	assert.Equal(t, 100.0, results[0].SuccessRate)
	assert.Equal(t, "fs-002", results[1].FundingSourceID)
	assert.Equal(t, 50.0, results[1].SuccessRate)
	assert.Equal(t, 2, results[1].TotalCount)
}

func TestBankPerformance_OnlyInFlightPaymentsYieldZeroRate(t *testing.T) {
	sources := []models.FundingSource{
		{ID: "fs-001", BankName: "Chase", Last4: "4521", Status: models.FundingSourceActive},
	}

	results := analytics.BankPerformance([]models.Payment{
		payment("PAY-1", models.StatusInTransit, 1000, 5, 2),
	}, sources)

	assert.Len(t, results, 1)
	assert.Equal(t, 0.0, results[0].SuccessRate)
	assert.Equal(t, 1, results[0].TotalCount)
}

func TestBankPerformance_SkipsUnknownFundingSources(t *testing.T) {
	dangling := payment("PAY-1", models.StatusCompleted, 1000, 10, 5)
	dangling.FundingSourceID = "fs-unknown"

	results := analytics.BankPerformance([]models.Payment{dangling}, nil)

	assert.Empty(t, results)
}

func TestFailedInLastDays_InclusiveLowerBound(t *testing.T) {
	atCutoff := payment("PAY-1", models.StatusFailed, 1000, 200, 0)
	atCutoff.UpdatedAt = baseTime.AddDate(0, 0, -7)
	older := payment("PAY-2", models.StatusFailed, 1000, 200, 0)
	older.UpdatedAt = baseTime.AddDate(0, 0, -7).Add(-time.Minute)
	fresh := payment("PAY-3", models.StatusFailed, 1000, 10, 4)
	notFailed := payment("PAY-4", models.StatusAwaitingCashOut, 1000, 10, 4)

	failed := analytics.FailedInLastDays([]models.Payment{atCutoff, older, fresh, notFailed}, 7, baseTime)

	assert.Len(t, failed, 2)
	assert.Equal(t, "PAY-1", failed[0].ID)
	assert.Equal(t, "PAY-3", failed[1].ID)
}
