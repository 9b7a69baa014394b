package recovery_test

import (
	"testing"
	"time"

	"github.com/claimspulse/recovery-service/internal/models"
	"github.com/claimspulse/recovery-service/internal/recovery"
	"github.com/stretchr/testify/assert"
)

var baseTime = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func snapshot() []models.Payment {
	return []models.Payment{
		{
			ID:              "PAY-1042",
			ClaimID:         "CLM-4521",
			RecipientEmail:  "nina.hart@example.com",
			AmountUSD:       52000,
			Status:          models.StatusAwaitingCashOut,
			FundingSourceID: "fs-001",
			CreatedAt:       baseTime.Add(-80 * time.Hour),
			UpdatedAt:       baseTime.Add(-80 * time.Hour),
		},
		{
			ID:              "PAY-1043",
			ClaimID:         "CLM-9087",
			RecipientEmail:  "leo.gray@example.com",
			AmountUSD:       2100,
			Status:          models.StatusFailed,
			FundingSourceID: "fs-002",
			CreatedAt:       baseTime.Add(-8 * time.Hour),
			UpdatedAt:       baseTime.Add(-4 * time.Hour),
			AchReturnCode:   "R03",
		},
		{
			ID:              "PAY-1048",
			ClaimID:         "CLM-2208",
			RecipientEmail:  "cory.park@example.com",
			AmountUSD:       6800,
			Status:          models.StatusCompleted,
			FundingSourceID: "fs-001",
			CreatedAt:       baseTime.Add(-42 * time.Hour),
			UpdatedAt:       baseTime.Add(-20 * time.Hour),
		},
	}
}

func fundingSources() []models.FundingSource {
	return []models.FundingSource{
		{ID: "fs-001", BankName: "Chase", Last4: "4521", Status: models.FundingSourceActive},
		{ID: "fs-002", BankName: "Bank of America", Last4: "8890", Status: models.FundingSourceActive},
		{ID: "fs-004", BankName: "Citi", Last4: "6633", Status: models.FundingSourceInactive},
	}
}

func TestResendLink_CreatesReplacementAndSupersedesOriginal(t *testing.T) {
	payments := snapshot()

	result := recovery.ResendLink(payments, "PAY-1042", baseTime)

	assert.True(t, result.OK)
	assert.NotNil(t, result.NewPayment)
	assert.Equal(t, "PAY-1049", result.NewPayment.ID)
	assert.Equal(t, models.StatusAwaitingCashOut, result.NewPayment.Status)
	assert.Equal(t, "CLM-4521", result.NewPayment.ClaimID)
	assert.Equal(t, "fs-001", result.NewPayment.FundingSourceID)
	assert.Equal(t, baseTime, result.NewPayment.CreatedAt)
	assert.Nil(t, result.NewPayment.OpenedAt)

	assert.Len(t, result.Payments, 4)
	assert.Equal(t, "PAY-1049", result.Payments[0].ID)

	var original models.Payment
	for _, p := range result.Payments {
		if p.ID == "PAY-1042" {
			original = p
		}
	}
	assert.Equal(t, "PAY-1049", original.SupersededByPaymentID)
	assert.Equal(t, baseTime, original.UpdatedAt)
}

func TestResendLink_DoesNotMutateInput(t *testing.T) {
	payments := snapshot()

	_ = recovery.ResendLink(payments, "PAY-1042", baseTime)

	assert.Len(t, payments, 3)
	assert.Empty(t, payments[0].SupersededByPaymentID)
	assert.Equal(t, baseTime.Add(-80*time.Hour), payments[0].UpdatedAt)
}

func TestResendLink_SecondAttemptOnSupersededIsRejected(t *testing.T) {
	first := recovery.ResendLink(snapshot(), "PAY-1042", baseTime)
	assert.True(t, first.OK)

	second := recovery.ResendLink(first.Payments, "PAY-1042", baseTime)

	assert.False(t, second.OK)
	assert.Equal(t, "Payment was already superseded by PAY-1049.", second.Message)
	assert.Equal(t, first.Payments, second.Payments)
}

func TestResendLink_CaseInsensitiveLookup(t *testing.T) {
	result := recovery.ResendLink(snapshot(), "pay-1042", baseTime)

	assert.True(t, result.OK)
}

func TestResendLink_NotFound(t *testing.T) {
	payments := snapshot()

	result := recovery.ResendLink(payments, "PAY-9999", baseTime)

	assert.False(t, result.OK)
	assert.Equal(t, "Payment PAY-9999 was not found.", result.Message)
	assert.Equal(t, payments, result.Payments)
}

func TestResendLink_CompletedPaymentRejected(t *testing.T) {
	result := recovery.ResendLink(snapshot(), "PAY-1048", baseTime)

	assert.False(t, result.OK)
	assert.Equal(t, "Payment is already completed. Creating a replacement is blocked.", result.Message)
}

func TestResendLink_CancelledPaymentRejected(t *testing.T) {
	payments := snapshot()
	payments[0].Status = models.StatusCancelled

	result := recovery.ResendLink(payments, "PAY-1042", baseTime)

	assert.False(t, result.OK)
	assert.Equal(t, "Payment is cancelled and no longer actionable.", result.Message)
}

func TestResendLink_NonNumericIDsUseFloor(t *testing.T) {
	payments := []models.Payment{
		{
			ID:              "LEGACY-A",
			ClaimID:         "CLM-1",
			AmountUSD:       100,
			Status:          models.StatusAwaitingCashOut,
			FundingSourceID: "fs-001",
			CreatedAt:       baseTime.Add(-30 * time.Hour),
			UpdatedAt:       baseTime.Add(-30 * time.Hour),
		},
	}

	result := recovery.ResendLink(payments, "LEGACY-A", baseTime)

	assert.True(t, result.OK)
	assert.Equal(t, "PAY-1001", result.NewPayment.ID)
}

func TestSwitchBankAndResend_PicksAlternateActiveSource(t *testing.T) {
	result := recovery.SwitchBankAndResend(snapshot(), fundingSources(), "PAY-1043", baseTime)

	assert.True(t, result.OK)
	assert.Equal(t, "fs-001", result.NewPayment.FundingSourceID)
	assert.Equal(t, "Switched to Chase ****4521 and created PAY-1049.", result.Message)
}

func TestSwitchBankAndResend_NoAlternateActiveSource(t *testing.T) {
	payments := snapshot()
	onlySource := []models.FundingSource{
		{ID: "fs-001", BankName: "Chase", Last4: "4521", Status: models.FundingSourceActive},
	}

	result := recovery.SwitchBankAndResend(payments, onlySource, "PAY-1042", baseTime)

	assert.False(t, result.OK)
	assert.Equal(t, "No alternate active funding source is available.", result.Message)
	assert.Equal(t, payments, result.Payments)
}

func TestSwitchBankAndResend_InactiveSourcesNotEligible(t *testing.T) {
	sources := []models.FundingSource{
		{ID: "fs-001", BankName: "Chase", Last4: "4521", Status: models.FundingSourceActive},
		{ID: "fs-004", BankName: "Citi", Last4: "6633", Status: models.FundingSourceInactive},
	}

	result := recovery.SwitchBankAndResend(snapshot(), sources, "PAY-1042", baseTime)

	assert.False(t, result.OK)
	assert.Equal(t, "No alternate active funding source is available.", result.Message)
}

func TestSwitchBankAndResend_GuardAppliesBeforeSourceSelection(t *testing.T) {
	result := recovery.SwitchBankAndResend(snapshot(), fundingSources(), "PAY-1048", baseTime)

	assert.False(t, result.OK)
	assert.Equal(t, "Payment is already completed. Creating a replacement is blocked.", result.Message)
}

func TestCreateReplacementPayment_KeepsFundingSource(t *testing.T) {
	result := recovery.CreateReplacementPayment(snapshot(), "PAY-1043", baseTime)

	assert.True(t, result.OK)
	assert.Equal(t, "fs-002", result.NewPayment.FundingSourceID)
	assert.Equal(t, "Created replacement payment PAY-1049 for failed payment PAY-1043.", result.Message)
	assert.Empty(t, result.NewPayment.AchReturnCode)
}

func TestCreateReplacementPayment_ReplacementStartsClean(t *testing.T) {
	result := recovery.CreateReplacementPayment(snapshot(), "PAY-1043", baseTime)

	assert.Equal(t, models.StatusAwaitingCashOut, result.NewPayment.Status)
	assert.Nil(t, result.NewPayment.OpenedAt)
	assert.Empty(t, result.NewPayment.SupersededByPaymentID)
}

func TestRecoveryActions_IDsStayMonotonic(t *testing.T) {
	first := recovery.ResendLink(snapshot(), "PAY-1042", baseTime)
	assert.Equal(t, "PAY-1049", first.NewPayment.ID)

	second := recovery.CreateReplacementPayment(first.Payments, "PAY-1043", baseTime)
	assert.Equal(t, "PAY-1050", second.NewPayment.ID)
}
