package assistant

import (
	"regexp"
	"strconv"
	"strings"
)

type IntentType string

const (
	IntentAttentionNow       IntentType = "attention_now"
	IntentFailureReason      IntentType = "failure_reason"
	IntentCashoutRateWeek    IntentType = "cashout_rate_week"
	IntentFailedLast7Days    IntentType = "failed_last_7_days"
	IntentSendPaymentRequest IntentType = "send_payment_request"
)

// Intent is a structured query produced from a free-text operator command.
// Only the fields relevant to the intent type are populated.
type Intent struct {
	Type           IntentType
	PaymentID      string
	AmountUSD      float64
	RecipientEmail string
	ClaimID        string
}

var (
	sendPaymentRegex   = regexp.MustCompile(`(?i)send\s+\$?([\d,]+(?:\.\d{1,2})?)\s+to\s+(\S+)\s+for\s+claim\s+([\w-]+)`)
	failureReasonRegex = regexp.MustCompile(`(?i)why\s+did\s+payment\s+([\w-]+)\s+fail\??`)
	attentionRegex     = regexp.MustCompile(`(?i)need\s+attention|attention\s+right\s+now|priority`)
	cashoutRateRegex   = regexp.MustCompile(`(?i)cash-?out\s+rate|cashout\s+rate`)
	failedWeekRegex    = regexp.MustCompile(`(?i)failed\s+payments?.*(last\s+7\s+days|7\s+days)`)
)

// ParseIntent maps free text onto the fixed intent set. It returns false
// when no intent matches; the caller decides how to answer unparsed input.
func ParseIntent(input string) (Intent, bool) {
	normalized := strings.TrimSpace(input)
	if normalized == "" {
		return Intent{}, false
	}

	if match := sendPaymentRegex.FindStringSubmatch(normalized); match != nil {
		amount, err := strconv.ParseFloat(strings.ReplaceAll(match[1], ",", ""), 64)
		if err != nil || amount <= 0 {
			return Intent{}, false
		}

		return Intent{
			Type:           IntentSendPaymentRequest,
			AmountUSD:      amount,
			RecipientEmail: strings.ToLower(match[2]),
			ClaimID:        strings.ToUpper(match[3]),
		}, true
	}

	if match := failureReasonRegex.FindStringSubmatch(normalized); match != nil {
		return Intent{Type: IntentFailureReason, PaymentID: match[1]}, true
	}

	if attentionRegex.MatchString(normalized) {
		return Intent{Type: IntentAttentionNow}, true
	}

	if cashoutRateRegex.MatchString(normalized) {
		return Intent{Type: IntentCashoutRateWeek}, true
	}

	if failedWeekRegex.MatchString(normalized) {
		return Intent{Type: IntentFailedLast7Days}, true
	}

	return Intent{}, false
}
