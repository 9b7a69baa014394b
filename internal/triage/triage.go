package triage

import (
	"fmt"

	"github.com/claimspulse/recovery-service/internal/models"
)

// returnCodeGuidance maps ACH return codes to operator-facing guidance.
// Codes outside this table degrade to a generic explanation, never an error.
var returnCodeGuidance = map[string]string{
	"R01": "Sender funding source may be short on funds. Verify balance or retry later.",
	"R02": "Recipient account appears closed. Ask recipient to re-enter banking details.",
	"R03": "Account could not be located. Re-send as pending so recipient can re-enter details.",
	"R04": "Invalid account number likely entered. Send a corrected pending link.",
	"R08": "Payment was stopped by recipient. Contact them to confirm intent.",
	"R10": "Recipient reported unauthorized debit. Verify identity before retry.",
	"R29": "Corporate authorization issue. Request company-level authorization update.",
}

func defaultDrafts(payment models.Payment) (sms, email string) {
	sms = fmt.Sprintf(
		"Hi, this is your claims team. We still have a payment for claim %s. Reply if you want us to resend your secure payout link.",
		payment.ClaimID,
	)
	email = fmt.Sprintf(
		"Subject: Action needed to receive your claim payment\n\nHi,\n\nWe noticed your payment for claim %s still needs your confirmation. We can resend a secure payout link right away.\n\nReply to this email or contact your adjuster and we will help you complete it.\n\nThanks,\nClaims Team",
		payment.ClaimID,
	)
	return sms, email
}

// BuildSuggestion evaluates the triage rules in order, first match wins:
// failed, high-value long-stale, stale, lock, in-transit, then monitor.
func BuildSuggestion(payment models.Payment, breakdown models.RiskBreakdown) models.TriageSuggestion {
	sms, email := defaultDrafts(payment)

	if payment.Status == models.StatusFailed {
		return failedSuggestion(payment)
	}

	if payment.Status == models.StatusAwaitingCashOut && breakdown.HoursStale > 72 && payment.AmountUSD >= 10_000 {
		return models.TriageSuggestion{
			PaymentID:         payment.ID,
			Title:             fmt.Sprintf("High-value stale payment %s", payment.ID),
			Rationale:         "Large payout has been awaiting cash-out for over 72 hours. Direct outreach is likely faster than repeated email reminders.",
			RecommendedAction: models.ActionContactRecipient,
			SMSDraft:          sms,
			EmailDraft:        email,
		}
	}

	if payment.Status == models.StatusAwaitingCashOut && breakdown.HoursStale > 24 {
		return models.TriageSuggestion{
			PaymentID:         payment.ID,
			Title:             fmt.Sprintf("Stale payment %s", payment.ID),
			Rationale:         "Payment has been awaiting action for more than 24 hours. Resend reminder and confirm recipient trust signals.",
			RecommendedAction: models.ActionResend,
			SMSDraft:          sms,
			EmailDraft:        email,
		}
	}

	if payment.Status == models.StatusLock {
		return models.TriageSuggestion{
			PaymentID:         payment.ID,
			Title:             fmt.Sprintf("Processing delay %s", payment.ID),
			Rationale:         "Payment is in lock/processing state. Continue monitoring for transition before retrying.",
			RecommendedAction: models.ActionMonitor,
			SMSDraft:          sms,
			EmailDraft:        email,
		}
	}

	if payment.Status == models.StatusInTransit {
		return models.TriageSuggestion{
			PaymentID:         payment.ID,
			Title:             fmt.Sprintf("Payment moving %s", payment.ID),
			Rationale:         "Funds are in transit. No immediate intervention required unless status stalls.",
			RecommendedAction: models.ActionMonitor,
			SMSDraft:          sms,
			EmailDraft:        email,
		}
	}

	return models.TriageSuggestion{
		PaymentID:         payment.ID,
		Title:             fmt.Sprintf("Monitor payment %s", payment.ID),
		Rationale:         "No immediate intervention needed.",
		RecommendedAction: models.ActionMonitor,
		SMSDraft:          sms,
		EmailDraft:        email,
	}
}

func failedSuggestion(payment models.Payment) models.TriageSuggestion {
	rationale := "Payment failed without a return code. Create a replacement payment and confirm recipient details."
	emailGuidance := "We can retry as soon as we confirm your details."
	if guidance, ok := returnCodeGuidance[payment.AchReturnCode]; ok {
		rationale = guidance
		emailGuidance = guidance
	}

	// R03/R04 are data-entry class failures best fixed by a clean resend.
	action := models.ActionSwitchBank
	if payment.AchReturnCode == "R03" || payment.AchReturnCode == "R04" {
		action = models.ActionRetry
	}

	smsCode := payment.AchReturnCode
	if smsCode == "" {
		smsCode = "unknown reason"
	}
	emailCode := payment.AchReturnCode
	if emailCode == "" {
		emailCode = "no return code"
	}

	return models.TriageSuggestion{
		PaymentID:         payment.ID,
		Title:             fmt.Sprintf("Failed payment %s", payment.ID),
		Rationale:         rationale,
		RecommendedAction: action,
		SMSDraft: fmt.Sprintf(
			"We attempted your claim payment for %s, but it failed (%s). We can send a fresh secure link now.",
			payment.ClaimID, smsCode,
		),
		EmailDraft: fmt.Sprintf(
			"Subject: We need to retry your claim payment\n\nHi,\n\nYour recent payment for claim %s did not complete (%s). %s\n\nReply to this message and we will resend the payment link.\n\nThanks,\nClaims Team",
			payment.ClaimID, emailCode, emailGuidance,
		),
	}
}

// ExplainAchReturnCode returns the guidance table entry for a code, a
// no-code message when the code is absent, and a not-recognized message when
// present but unmapped.
func ExplainAchReturnCode(code string) string {
	if code == "" {
		return "No ACH return code was attached to this payment."
	}
	if guidance, ok := returnCodeGuidance[code]; ok {
		return guidance
	}
	return fmt.Sprintf("Return code %s is not in the configured guidance list.", code)
}
