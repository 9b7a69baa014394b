package risk

import (
	"time"

	"github.com/claimspulse/recovery-service/internal/models"
)

// HoursSince returns the elapsed hours between ts and now, clamped at zero
// so a skewed clock never produces a negative staleness.
func HoursSince(ts, now time.Time) float64 {
	hours := now.Sub(ts).Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// TimeFactor maps staleness to a severity multiplier. Brackets are
// inclusive-lower/exclusive-upper: exactly 24h lands in the [24,48) bracket.
func TimeFactor(hoursStale float64) float64 {
	switch {
	case hoursStale < 12:
		return 1.0
	case hoursStale < 24:
		return 1.5
	case hoursStale < 48:
		return 2.5
	case hoursStale < 72:
		return 4.0
	default:
		return 6.0
	}
}

// StatusWeight maps a payment status to its severity. A weight of zero marks
// the status as non-actionable.
func StatusWeight(status models.PaymentStatus) float64 {
	switch status {
	case models.StatusAwaitingCashOut:
		return 1.0
	case models.StatusFailed:
		return 5.0
	case models.StatusLock:
		return 0.5
	case models.StatusInTransit:
		return 0.2
	case models.StatusCompleted, models.StatusCancelled:
		return 0
	default:
		return 0
	}
}

// PriorityBand classifies a risk score. Thresholds are strict less-than, so
// a score of exactly 3000 is medium.
func PriorityBand(riskScore float64) models.PriorityBand {
	switch {
	case riskScore < 3_000:
		return models.BandLow
	case riskScore < 15_000:
		return models.BandMedium
	case riskScore < 60_000:
		return models.BandHigh
	default:
		return models.BandCritical
	}
}

// Breakdown computes the full risk breakdown for a payment against the
// reference instant now.
func Breakdown(payment models.Payment, now time.Time) models.RiskBreakdown {
	hoursStale := HoursSince(payment.UpdatedAt, now)
	timeFactor := TimeFactor(hoursStale)
	statusWeight := StatusWeight(payment.Status)
	riskScore := payment.AmountUSD * timeFactor * statusWeight

	return models.RiskBreakdown{
		HoursStale:   hoursStale,
		TimeFactor:   timeFactor,
		StatusWeight: statusWeight,
		RiskScore:    riskScore,
		PriorityBand: PriorityBand(riskScore),
	}
}

// IsStaleAwaiting reports whether an awaiting-cash-out payment has gone more
// than 24 hours without an update. Exactly 24h is not stale.
func IsStaleAwaiting(payment models.Payment, now time.Time) bool {
	return payment.Status == models.StatusAwaitingCashOut && HoursSince(payment.UpdatedAt, now) > 24
}

func IsTerminal(payment models.Payment) bool {
	return payment.Status == models.StatusCompleted || payment.Status == models.StatusCancelled
}

func IsActiveNonFailed(payment models.Payment) bool {
	switch payment.Status {
	case models.StatusAwaitingCashOut, models.StatusLock, models.StatusInTransit:
		return true
	default:
		return false
	}
}
