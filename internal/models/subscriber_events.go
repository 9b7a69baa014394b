package models

import "time"

const PaymentStatusTopic = "payments.status.updated"

// PaymentStatusChangedEvent arrives from the upstream payout processor when
// a payment transitions status (cash-out completed, ACH return, etc).
type PaymentStatusChangedEvent struct {
	PaymentID     string        `json:"payment_id"`
	Status        PaymentStatus `json:"status"`
	AchReturnCode string        `json:"ach_return_code,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at"`
	TraceID       string        `json:"trace_id"`
}
