package assistant

import (
	"fmt"
	"strings"
	"time"

	"github.com/claimspulse/recovery-service/internal/analytics"
	"github.com/claimspulse/recovery-service/internal/models"
	"github.com/claimspulse/recovery-service/internal/triage"
)

const helpText = "I can help with payment attention, failure reasons, cash-out rate, failed last 7 days, and send-payment previews."

// formatUSD renders a whole-dollar amount with thousands separators.
func formatUSD(value float64) string {
	rounded := int64(value + 0.5)
	negative := rounded < 0
	if negative {
		rounded = -rounded
	}

	digits := fmt.Sprintf("%d", rounded)
	var grouped strings.Builder
	for idx, r := range digits {
		if idx > 0 && (len(digits)-idx)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(r)
	}

	if negative {
		return "-$" + grouped.String()
	}
	return "$" + grouped.String()
}

// BuildResponse answers a structured intent against the current snapshot.
// Responses are plain deterministic text; any wording enhancement happens
// downstream and never changes the facts stated here.
func BuildResponse(intent Intent, payments []models.Payment, fundingSources []models.FundingSource, now time.Time) string {
	switch intent.Type {
	case IntentAttentionNow:
		items := analytics.PriorityQueue(payments, now)
		if len(items) > 3 {
			items = items[:3]
		}
		if len(items) == 0 {
			return "No active high-risk payments right now. Monitoring queue is clear."
		}

		var total float64
		lines := make([]string, 0, len(items))
		for idx, item := range items {
			total += item.Payment.AmountUSD
			lines = append(lines, fmt.Sprintf(
				"%d) %s (%s) %s - %s",
				idx+1, item.Payment.ID, item.Payment.ClaimID, formatUSD(item.Payment.AmountUSD), item.Payment.Status,
			))
		}

		return fmt.Sprintf("Top priority payments total %s:\n%s", formatUSD(total), strings.Join(lines, "\n"))

	case IntentFailureReason:
		var payment *models.Payment
		for idx := range payments {
			if strings.EqualFold(payments[idx].ID, intent.PaymentID) {
				payment = &payments[idx]
				break
			}
		}
		if payment == nil {
			return fmt.Sprintf("Payment %s was not found in the current queue.", intent.PaymentID)
		}
		if payment.Status != models.StatusFailed {
			return fmt.Sprintf("Payment %s is currently %s, not failed.", payment.ID, payment.Status)
		}

		code := payment.AchReturnCode
		if code == "" {
			code = "unknown"
		}
		return fmt.Sprintf("Payment %s failed with code %s. %s", payment.ID, code, triage.ExplainAchReturnCode(payment.AchReturnCode))

	case IntentCashoutRateWeek:
		metrics := analytics.DashboardMetrics(payments, now)
		return fmt.Sprintf(
			"Cash-out rate is %.1f%% with average completion time %.1f hours.",
			metrics.CashOutRate, metrics.AvgCashOutHours,
		)

	case IntentFailedLast7Days:
		failed := analytics.FailedInLastDays(payments, 7, now)
		if len(failed) == 0 {
			return "No failed payments in the last 7 days."
		}

		var amount float64
		ids := make([]string, 0, 5)
		for idx, payment := range failed {
			amount += payment.AmountUSD
			if idx < 5 {
				ids = append(ids, payment.ID)
			}
		}

		return fmt.Sprintf(
			"%d failed payments in last 7 days totaling %s. IDs: %s.",
			len(failed), formatUSD(amount), strings.Join(ids, ", "),
		)

	case IntentSendPaymentRequest:
		sourceLabel := "default funding source"
		for _, source := range fundingSources {
			if source.Status == models.FundingSourceActive {
				sourceLabel = fmt.Sprintf("%s ****%s", source.BankName, source.Last4)
				break
			}
		}
		if sourceLabel == "default funding source" && len(fundingSources) > 0 {
			sourceLabel = fmt.Sprintf("%s ****%s", fundingSources[0].BankName, fundingSources[0].Last4)
		}

		return fmt.Sprintf(
			"Preview: send %s to %s for claim %s using %s. Confirm in priority queue before execution.",
			formatUSD(intent.AmountUSD), intent.RecipientEmail, intent.ClaimID, sourceLabel,
		)

	default:
		return helpText
	}
}
