package database

import (
	"time"

	"github.com/claimspulse/recovery-service/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func hoursAgo(now time.Time, hours float64) time.Time {
	return now.Add(-time.Duration(hours * float64(time.Hour)))
}

// DemoPayments returns the demo snapshot used when the payments table is
// empty, with timestamps anchored to now so staleness stays realistic.
func DemoPayments(now time.Time) []models.Payment {
	opened := hoursAgo(now, 48)

	return []models.Payment{
		{ID: "PAY-1042", ClaimID: "CLM-4521", RecipientEmail: "nina.hart@example.com", AmountUSD: 52000, Status: models.StatusAwaitingCashOut, FundingSourceID: "fs-001", CreatedAt: hoursAgo(now, 80), UpdatedAt: hoursAgo(now, 80)},
		{ID: "PAY-1043", ClaimID: "CLM-9087", RecipientEmail: "leo.gray@example.com", AmountUSD: 2100, Status: models.StatusFailed, FundingSourceID: "fs-002", CreatedAt: hoursAgo(now, 8), UpdatedAt: hoursAgo(now, 4), AchReturnCode: "R03"},
		{ID: "PAY-1044", ClaimID: "CLM-6634", RecipientEmail: "maya.wells@example.com", AmountUSD: 800, Status: models.StatusAwaitingCashOut, FundingSourceID: "fs-001", CreatedAt: hoursAgo(now, 49), UpdatedAt: hoursAgo(now, 49), OpenedAt: &opened},
		{ID: "PAY-1045", ClaimID: "CLM-1022", RecipientEmail: "omar.stone@example.com", AmountUSD: 16000, Status: models.StatusAwaitingCashOut, FundingSourceID: "fs-003", CreatedAt: hoursAgo(now, 26), UpdatedAt: hoursAgo(now, 26)},
		{ID: "PAY-1046", ClaimID: "CLM-7751", RecipientEmail: "ava.moon@example.com", AmountUSD: 1200, Status: models.StatusInTransit, FundingSourceID: "fs-001", CreatedAt: hoursAgo(now, 6), UpdatedAt: hoursAgo(now, 2)},
		{ID: "PAY-1047", ClaimID: "CLM-3366", RecipientEmail: "erin.lane@example.com", AmountUSD: 4200, Status: models.StatusLock, FundingSourceID: "fs-002", CreatedAt: hoursAgo(now, 18), UpdatedAt: hoursAgo(now, 10)},
		{ID: "PAY-1048", ClaimID: "CLM-2208", RecipientEmail: "cory.park@example.com", AmountUSD: 6800, Status: models.StatusCompleted, FundingSourceID: "fs-001", CreatedAt: hoursAgo(now, 42), UpdatedAt: hoursAgo(now, 20)},
		{ID: "PAY-1049", ClaimID: "CLM-9188", RecipientEmail: "lena.brooks@example.com", AmountUSD: 950, Status: models.StatusCompleted, FundingSourceID: "fs-003", CreatedAt: hoursAgo(now, 30), UpdatedAt: hoursAgo(now, 14)},
		{ID: "PAY-1050", ClaimID: "CLM-8812", RecipientEmail: "ravi.singh@example.com", AmountUSD: 3400, Status: models.StatusFailed, FundingSourceID: "fs-002", CreatedAt: hoursAgo(now, 20), UpdatedAt: hoursAgo(now, 16), AchReturnCode: "R01"},
		{ID: "PAY-1051", ClaimID: "CLM-7743", RecipientEmail: "jane.turner@example.com", AmountUSD: 14000, Status: models.StatusAwaitingCashOut, FundingSourceID: "fs-003", CreatedAt: hoursAgo(now, 9), UpdatedAt: hoursAgo(now, 9)},
		{ID: "PAY-1052", ClaimID: "CLM-1215", RecipientEmail: "victor.reed@example.com", AmountUSD: 2600, Status: models.StatusCancelled, FundingSourceID: "fs-003", CreatedAt: hoursAgo(now, 120), UpdatedAt: hoursAgo(now, 115)},
		{ID: "PAY-1053", ClaimID: "CLM-3871", RecipientEmail: "nora.kent@example.com", AmountUSD: 4300, Status: models.StatusCompleted, FundingSourceID: "fs-002", CreatedAt: hoursAgo(now, 55), UpdatedAt: hoursAgo(now, 5)},
	}
}

// DemoFundingSources returns the demo funding sources.
func DemoFundingSources() []models.FundingSource {
	return []models.FundingSource{
		{ID: "fs-001", BankName: "Chase", Last4: "4521", Status: models.FundingSourceActive},
		{ID: "fs-002", BankName: "Bank of America", Last4: "8890", Status: models.FundingSourceActive},
		{ID: "fs-003", BankName: "Wells Fargo", Last4: "1274", Status: models.FundingSourceActive},
		{ID: "fs-004", BankName: "Citi", Last4: "6633", Status: models.FundingSourceInactive},
	}
}

// SeedDemoData inserts the demo payments and funding sources when their
// tables are empty.
func SeedDemoData(db *gorm.DB, now time.Time) error {
	for _, payment := range DemoPayments(now) {
		result := db.Where(models.Payment{ID: payment.ID}).FirstOrCreate(&payment)
		if result.Error != nil {
			return result.Error
		}
	}

	for _, source := range DemoFundingSources() {
		result := db.Where(models.FundingSource{ID: source.ID}).FirstOrCreate(&source)
		if result.Error != nil {
			return result.Error
		}
	}

	logrus.Info("Demo payments and funding sources seeded successfully")
	return nil
}
