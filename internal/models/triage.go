package models

type RecommendedAction string

const (
	ActionResend           RecommendedAction = "resend"
	ActionSwitchBank       RecommendedAction = "switch-bank"
	ActionRetry            RecommendedAction = "retry"
	ActionContactRecipient RecommendedAction = "contact-recipient"
	ActionMonitor          RecommendedAction = "monitor"
)

// TriageSuggestion is the recommended next action for a payment, with a
// human-readable rationale and outreach drafts ready to send.
type TriageSuggestion struct {
	PaymentID         string            `json:"payment_id"`
	Title             string            `json:"title"`
	Rationale         string            `json:"rationale"`
	RecommendedAction RecommendedAction `json:"recommended_action"`
	SMSDraft          string            `json:"sms_draft"`
	EmailDraft        string            `json:"email_draft"`
}

func (a RecommendedAction) IsValid() bool {
	switch a {
	case ActionResend, ActionSwitchBank, ActionRetry, ActionContactRecipient, ActionMonitor:
		return true
	default:
		return false
	}
}
