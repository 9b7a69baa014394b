package models

import "time"

const (
	PaymentRecoveredTopic = "payments.recovered"
	PaymentsDLQTopic      = "payments.dlq"
)

type RecoveryActionName string

const (
	RecoveryActionResend     RecoveryActionName = "resend-link"
	RecoveryActionSwitchBank RecoveryActionName = "switch-bank-and-resend"
	RecoveryActionReplace    RecoveryActionName = "create-replacement"
)

// PaymentRecoveredEvent is published after a recovery action succeeds, so
// downstream consumers can observe the supersession without polling.
type PaymentRecoveredEvent struct {
	Action            RecoveryActionName `json:"action"`
	OriginalPaymentID string             `json:"original_payment_id"`
	NewPaymentID      string             `json:"new_payment_id"`
	ClaimID           string             `json:"claim_id"`
	FundingSourceID   string             `json:"funding_source_id"`
	AmountUSD         float64            `json:"amount_usd"`
	TraceID           string             `json:"trace_id"`
	RecoveredAt       time.Time          `json:"recovered_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}
