package models

import (
	"fmt"
	"time"
)

type PaymentStatus string
type FundingSourceStatus string

const (
	StatusAwaitingCashOut PaymentStatus = "awaiting-cash-out"
	StatusLock            PaymentStatus = "lock"
	StatusInTransit       PaymentStatus = "in-transit"
	StatusCompleted       PaymentStatus = "completed"
	StatusFailed          PaymentStatus = "failed"
	StatusCancelled       PaymentStatus = "cancelled"

	FundingSourceActive   FundingSourceStatus = "active"
	FundingSourceInactive FundingSourceStatus = "inactive"
)

// Payment is a single payout attempt toward a claim recipient.
// Payments are never deleted: a recovery action creates a replacement and
// links the original to it through SupersededByPaymentID, so the history of
// attempts forms an append-only chain.
type Payment struct {
	ID                    string        `json:"id" gorm:"primaryKey"`
	ClaimID               string        `json:"claim_id"`
	RecipientEmail        string        `json:"recipient_email"`
	AmountUSD             float64       `json:"amount_usd"`
	Status                PaymentStatus `json:"status"`
	FundingSourceID       string        `json:"funding_source_id"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
	AchReturnCode         string        `json:"ach_return_code,omitempty"`
	OpenedAt              *time.Time    `json:"opened_at,omitempty"`
	SupersededByPaymentID string        `json:"superseded_by_payment_id,omitempty"`
}

// FundingSource is a bank-account-like payout origin. Sources are supplied
// externally and treated as immutable for the lifetime of a session.
type FundingSource struct {
	ID       string              `json:"id" gorm:"primaryKey"`
	BankName string              `json:"bank_name"`
	Last4    string              `json:"last4"`
	Status   FundingSourceStatus `json:"status"`
}

func (p *Payment) Validate() error {
	if !p.Status.IsValid() {
		return fmt.Errorf("invalid payment status: %s", p.Status)
	}
	if p.AmountUSD < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if p.ClaimID == "" {
		return fmt.Errorf("claim ID is required")
	}
	if p.FundingSourceID == "" {
		return fmt.Errorf("funding source ID is required")
	}

	return nil
}

// Superseded reports whether a replacement payment already points back at
// this one. Superseded payments are terminal for recovery purposes.
func (p *Payment) Superseded() bool {
	return p.SupersededByPaymentID != ""
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusAwaitingCashOut, StatusLock, StatusInTransit, StatusCompleted, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s FundingSourceStatus) IsValid() bool {
	switch s {
	case FundingSourceActive, FundingSourceInactive:
		return true
	default:
		return false
	}
}
