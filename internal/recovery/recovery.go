package recovery

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/claimspulse/recovery-service/internal/models"
)

const paymentIDPrefix = "PAY-"

// nextPaymentID scans the snapshot for the maximum numeric suffix across all
// identifiers and returns one greater, with a floor of 1000. Safe only under
// the single-writer snapshot contract.
func nextPaymentID(payments []models.Payment) string {
	maxNumeric := 1000
	for _, payment := range payments {
		var digits strings.Builder
		for _, r := range payment.ID {
			if unicode.IsDigit(r) {
				digits.WriteRune(r)
			}
		}
		if digits.Len() == 0 {
			continue
		}

		parsed, err := strconv.Atoi(digits.String())
		if err != nil {
			continue
		}
		if parsed > maxNumeric {
			maxNumeric = parsed
		}
	}

	return fmt.Sprintf("%s%d", paymentIDPrefix, maxNumeric+1)
}

func findPayment(payments []models.Payment, paymentID string) (models.Payment, bool) {
	for _, payment := range payments {
		if strings.EqualFold(payment.ID, paymentID) {
			return payment, true
		}
	}
	return models.Payment{}, false
}

// canCreateFollowUp guards every recovery action: completed, cancelled and
// already-superseded payments are terminal and must never be re-targeted.
func canCreateFollowUp(payment models.Payment) (bool, string) {
	if payment.Status == models.StatusCompleted {
		return false, "Payment is already completed. Creating a replacement is blocked."
	}
	if payment.Status == models.StatusCancelled {
		return false, "Payment is cancelled and no longer actionable."
	}
	if payment.Superseded() {
		return false, fmt.Sprintf("Payment was already superseded by %s.", payment.SupersededByPaymentID)
	}
	return true, ""
}

func buildReplacementPayment(payment models.Payment, fundingSourceID string, now time.Time) models.Payment {
	return models.Payment{
		ClaimID:         payment.ClaimID,
		RecipientEmail:  payment.RecipientEmail,
		AmountUSD:       payment.AmountUSD,
		Status:          models.StatusAwaitingCashOut,
		FundingSourceID: fundingSourceID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// supersede returns a fresh collection with the replacement prepended and
// the original marked as superseded. The input slice is never mutated.
func supersede(payments []models.Payment, original models.Payment, replacement models.Payment, now time.Time) []models.Payment {
	next := make([]models.Payment, 0, len(payments)+1)
	next = append(next, replacement)
	for _, payment := range payments {
		if payment.ID == original.ID {
			payment.SupersededByPaymentID = replacement.ID
			payment.UpdatedAt = now
		}
		next = append(next, payment)
	}
	return next
}

// ResendLink supersedes a stalled payment with a fresh awaiting-cash-out
// replacement on the same funding source.
func ResendLink(payments []models.Payment, paymentID string, now time.Time) models.RecoveryResult {
	payment, found := findPayment(payments, paymentID)
	if !found {
		return models.RecoveryResult{Message: fmt.Sprintf("Payment %s was not found.", paymentID), Payments: payments}
	}

	if ok, reason := canCreateFollowUp(payment); !ok {
		return models.RecoveryResult{Message: reason, Payments: payments}
	}

	replacement := buildReplacementPayment(payment, payment.FundingSourceID, now)
	replacement.ID = nextPaymentID(payments)

	return models.RecoveryResult{
		OK:         true,
		Message:    fmt.Sprintf("Created replacement %s for %s.", replacement.ID, payment.ID),
		Payments:   supersede(payments, payment, replacement, now),
		NewPayment: &replacement,
	}
}

// SwitchBankAndResend is ResendLink on an alternate active funding source.
// It fails without touching the snapshot when no alternate exists.
func SwitchBankAndResend(payments []models.Payment, fundingSources []models.FundingSource, paymentID string, now time.Time) models.RecoveryResult {
	payment, found := findPayment(payments, paymentID)
	if !found {
		return models.RecoveryResult{Message: fmt.Sprintf("Payment %s was not found.", paymentID), Payments: payments}
	}

	if ok, reason := canCreateFollowUp(payment); !ok {
		return models.RecoveryResult{Message: reason, Payments: payments}
	}

	var alternate *models.FundingSource
	for idx := range fundingSources {
		source := fundingSources[idx]
		if source.Status == models.FundingSourceActive && source.ID != payment.FundingSourceID {
			alternate = &source
			break
		}
	}
	if alternate == nil {
		return models.RecoveryResult{Message: "No alternate active funding source is available.", Payments: payments}
	}

	replacement := buildReplacementPayment(payment, alternate.ID, now)
	replacement.ID = nextPaymentID(payments)

	return models.RecoveryResult{
		OK:         true,
		Message:    fmt.Sprintf("Switched to %s ****%s and created %s.", alternate.BankName, alternate.Last4, replacement.ID),
		Payments:   supersede(payments, payment, replacement, now),
		NewPayment: &replacement,
	}
}

// CreateReplacementPayment has the same mechanics as ResendLink and exists
// for the failed-payment retry path, with its own message wording.
func CreateReplacementPayment(payments []models.Payment, paymentID string, now time.Time) models.RecoveryResult {
	payment, found := findPayment(payments, paymentID)
	if !found {
		return models.RecoveryResult{Message: fmt.Sprintf("Payment %s was not found.", paymentID), Payments: payments}
	}

	if ok, reason := canCreateFollowUp(payment); !ok {
		return models.RecoveryResult{Message: reason, Payments: payments}
	}

	replacement := buildReplacementPayment(payment, payment.FundingSourceID, now)
	replacement.ID = nextPaymentID(payments)

	return models.RecoveryResult{
		OK:         true,
		Message:    fmt.Sprintf("Created replacement payment %s for failed payment %s.", replacement.ID, payment.ID),
		Payments:   supersede(payments, payment, replacement, now),
		NewPayment: &replacement,
	}
}
