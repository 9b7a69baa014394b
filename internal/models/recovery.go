package models

// RecoveryResult is the outcome of a recovery action. Failure is a normal
// return value: OK is false and Message explains why, with the input
// collection passed back unchanged. The caller owns the authoritative
// snapshot and must replace it with Payments on success.
type RecoveryResult struct {
	OK         bool      `json:"ok"`
	Message    string    `json:"message"`
	Payments   []Payment `json:"payments"`
	NewPayment *Payment  `json:"new_payment,omitempty"`
}
