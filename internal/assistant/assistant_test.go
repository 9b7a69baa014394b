package assistant_test

import (
	"testing"
	"time"

	"github.com/claimspulse/recovery-service/internal/assistant"
	"github.com/claimspulse/recovery-service/internal/models"
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
		{ID: "fs-004", BankName: "Citi", Last4: "6633", Status: models.FundingSourceInactive},
		{ID: "fs-001", BankName: "Chase", Last4: "4521", Status: models.FundingSourceActive},
	}
}

func TestParseIntent_SendPayment(t *testing.T) {
	intent, ok := assistant.ParseIntent("send $1,250.50 to Nina.Hart@example.com for claim clm-4521")

	assert.True(t, ok)
	assert.Equal(t, assistant.IntentSendPaymentRequest, intent.Type)
	assert.Equal(t, 1250.50, intent.AmountUSD)
	assert.Equal(t, "nina.hart@example.com", intent.RecipientEmail)
	assert.Equal(t, "CLM-4521", intent.ClaimID)
}

func TestParseIntent_FailureReason(t *testing.T) {
	intent, ok := assistant.ParseIntent("Why did payment PAY-1043 fail?")

	assert.True(t, ok)
	assert.Equal(t, assistant.IntentFailureReason, intent.Type)
	assert.Equal(t, "PAY-1043", intent.PaymentID)
}

func TestParseIntent_AttentionNow(t *testing.T) {
	intent, ok := assistant.ParseIntent("which payments need attention right now")

	assert.True(t, ok)
	assert.Equal(t, assistant.IntentAttentionNow, intent.Type)
}

func TestParseIntent_CashoutRate(t *testing.T) {
	intent, ok := assistant.ParseIntent("what is our cash-out rate this week")

	assert.True(t, ok)
	assert.Equal(t, assistant.IntentCashoutRateWeek, intent.Type)
}

func TestParseIntent_FailedLast7Days(t *testing.T) {
	intent, ok := assistant.ParseIntent("show failed payments from the last 7 days")

	assert.True(t, ok)
	assert.Equal(t, assistant.IntentFailedLast7Days, intent.Type)
}

func TestParseIntent_EmptyAndUnknownInput(t *testing.T) {
	_, ok := assistant.ParseIntent("   ")
	assert.False(t, ok)

	_, ok = assistant.ParseIntent("tell me a joke")
	assert.False(t, ok)
}

func TestParseIntent_ZeroAmountRejected(t *testing.T) {
	_, ok := assistant.ParseIntent("send $0 to a@b.com for claim CLM-1")

	assert.False(t, ok)
}

func TestBuildResponse_AttentionNow(t *testing.T) {
	response := assistant.BuildResponse(assistant.Intent{Type: assistant.IntentAttentionNow}, snapshot(), fundingSources(), baseTime)

	assert.Contains(t, response, "Top priority payments total $54,100")
	assert.Contains(t, response, "1) PAY-1042 (CLM-4521) $52,000 - awaiting-cash-out")
	assert.Contains(t, response, "2) PAY-1043 (CLM-9087) $2,100 - failed")
}

func TestBuildResponse_AttentionNowEmptyQueue(t *testing.T) {
	response := assistant.BuildResponse(assistant.Intent{Type: assistant.IntentAttentionNow}, nil, nil, baseTime)

	assert.Equal(t, "No active high-risk payments right now. Monitoring queue is clear.", response)
}

func TestBuildResponse_FailureReason(t *testing.T) {
	intent := assistant.Intent{Type: assistant.IntentFailureReason, PaymentID: "pay-1043"}

	response := assistant.BuildResponse(intent, snapshot(), fundingSources(), baseTime)

	assert.Contains(t, response, "Payment PAY-1043 failed with code R03.")
	assert.Contains(t, response, "Account could not be located")
}

func TestBuildResponse_FailureReasonNotFailed(t *testing.T) {
	intent := assistant.Intent{Type: assistant.IntentFailureReason, PaymentID: "PAY-1042"}

	response := assistant.BuildResponse(intent, snapshot(), fundingSources(), baseTime)

	assert.Equal(t, "Payment PAY-1042 is currently awaiting-cash-out, not failed.", response)
}

func TestBuildResponse_FailureReasonNotFound(t *testing.T) {
	intent := assistant.Intent{Type: assistant.IntentFailureReason, PaymentID: "PAY-9999"}

	response := assistant.BuildResponse(intent, snapshot(), fundingSources(), baseTime)

	assert.Equal(t, "Payment PAY-9999 was not found in the current queue.", response)
}

func TestBuildResponse_CashoutRate(t *testing.T) {
	response := assistant.BuildResponse(assistant.Intent{Type: assistant.IntentCashoutRateWeek}, snapshot(), fundingSources(), baseTime)

	assert.Contains(t, response, "Cash-out rate is 33.3%")
	assert.Contains(t, response, "average completion time 22.0 hours")
}

func TestBuildResponse_FailedLast7Days(t *testing.T) {
	response := assistant.BuildResponse(assistant.Intent{Type: assistant.IntentFailedLast7Days}, snapshot(), fundingSources(), baseTime)

	assert.Contains(t, response, "1 failed payments in last 7 days totaling $2,100.")
	assert.Contains(t, response, "IDs: PAY-1043.")
}

func TestBuildResponse_FailedLast7DaysEmpty(t *testing.T) {
	response := assistant.BuildResponse(assistant.Intent{Type: assistant.IntentFailedLast7Days}, nil, nil, baseTime)

	assert.Equal(t, "No failed payments in the last 7 days.", response)
}

func TestBuildResponse_SendPaymentPreviewPrefersActiveSource(t *testing.T) {
	intent := assistant.Intent{
		Type:           assistant.IntentSendPaymentRequest,
		AmountUSD:      1250,
		RecipientEmail: "nina.hart@example.com",
		ClaimID:        "CLM-4521",
	}

	response := assistant.BuildResponse(intent, snapshot(), fundingSources(), baseTime)

	assert.Contains(t, response, "Preview: send $1,250 to nina.hart@example.com for claim CLM-4521")
	assert.Contains(t, response, "Chase ****4521")
}

func TestBuildResponse_SendPaymentPreviewNoSources(t *testing.T) {
	intent := assistant.Intent{
		Type:           assistant.IntentSendPaymentRequest,
		AmountUSD:      1250,
		RecipientEmail: "nina.hart@example.com",
		ClaimID:        "CLM-4521",
	}

	response := assistant.BuildResponse(intent, snapshot(), nil, baseTime)

	assert.Contains(t, response, "default funding source")
}

func TestBuildResponse_UnknownIntentReturnsHelp(t *testing.T) {
	response := assistant.BuildResponse(assistant.Intent{}, snapshot(), fundingSources(), baseTime)

	assert.Contains(t, response, "I can help with")
}
