package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/claimspulse/recovery-service/internal/analytics"
	"github.com/claimspulse/recovery-service/internal/assistant"
	"github.com/claimspulse/recovery-service/internal/metrics"
	"github.com/claimspulse/recovery-service/internal/models"
	"github.com/claimspulse/recovery-service/internal/recovery"
	"github.com/claimspulse/recovery-service/internal/risk"
	"github.com/claimspulse/recovery-service/internal/triage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// SnapshotRepo defines the persistence operations the snapshot lifecycle
// needs. The engine itself never touches storage; the repo only mirrors the
// authoritative in-memory snapshot.
type SnapshotRepo interface {
	Create(ctx context.Context, payment *models.Payment) error
	Update(ctx context.Context, payment *models.Payment, id string) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Enhancer rewrites assistant wording. Implementations must be treated as
// cosmetic: any error means the deterministic text is used unchanged.
type Enhancer interface {
	Enhance(ctx context.Context, baseText string) (string, error)
}

// RecoveryService is the orchestrator around the pure engine. It owns the
// authoritative payment/funding-source snapshot, recomputes aggregations on
// demand against its clock, and serializes recovery actions so the
// single-writer contract of ID assignment and supersession linking holds.
type RecoveryService struct {
	mu             sync.RWMutex
	payments       []models.Payment
	fundingSources []models.FundingSource

	Repo      SnapshotRepo
	Publisher Publisher
	Enhancer  Enhancer
	Clock     func() time.Time
}

// NewRecoveryService creates the orchestrator over an initial snapshot.
// Enhancer may be nil; assistant responses then stay deterministic.
func NewRecoveryService(repo SnapshotRepo, publisher Publisher, enhancer Enhancer, payments []models.Payment, fundingSources []models.FundingSource) *RecoveryService {
	s := &RecoveryService{
		payments:       payments,
		fundingSources: fundingSources,
		Repo:           repo,
		Publisher:      publisher,
		Enhancer:       enhancer,
		Clock:          time.Now,
	}
	s.observeQueueDepth()
	return s
}

// Snapshot returns copies of the current collections.
func (s *RecoveryService) Snapshot() ([]models.Payment, []models.FundingSource) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payments := make([]models.Payment, len(s.payments))
	copy(payments, s.payments)
	sources := make([]models.FundingSource, len(s.fundingSources))
	copy(sources, s.fundingSources)

	return payments, sources
}

func (s *RecoveryService) Dashboard() models.DashboardMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.DashboardMetrics(s.payments, s.Clock())
}

// PriorityQueue returns the ranked actionable payments, truncated to limit
// when limit is positive.
func (s *RecoveryService) PriorityQueue(limit int) []models.PriorityItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := analytics.PriorityQueue(s.payments, s.Clock())
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func (s *RecoveryService) CashoutTrend(days int) []models.CashoutTrendPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.CashoutTrend(s.payments, days, s.Clock())
}

func (s *RecoveryService) BankPerformance() []models.BankPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.BankPerformance(s.payments, s.fundingSources)
}

func (s *RecoveryService) FailedInLastDays(days int) []models.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return analytics.FailedInLastDays(s.payments, days, s.Clock())
}

// Triage builds the suggestion for a single payment. The second return is
// false when the payment is not in the snapshot.
func (s *RecoveryService) Triage(paymentID string) (models.TriageSuggestion, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.Clock()
	for _, payment := range s.payments {
		if strings.EqualFold(payment.ID, paymentID) {
			return triage.BuildSuggestion(payment, risk.Breakdown(payment, now)), true
		}
	}
	return models.TriageSuggestion{}, false
}

// ResendLink executes the resend recovery action against the snapshot.
// The returned error reports infrastructure trouble only; action-level
// failure travels inside the RecoveryResult.
func (s *RecoveryService) ResendLink(ctx context.Context, paymentID string) (models.RecoveryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := recovery.ResendLink(s.payments, paymentID, s.Clock())
	err := s.applyResult(ctx, models.RecoveryActionResend, result)
	return result, err
}

// SwitchBankAndResend executes the bank-switch recovery action.
func (s *RecoveryService) SwitchBankAndResend(ctx context.Context, paymentID string) (models.RecoveryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := recovery.SwitchBankAndResend(s.payments, s.fundingSources, paymentID, s.Clock())
	err := s.applyResult(ctx, models.RecoveryActionSwitchBank, result)
	return result, err
}

// CreateReplacementPayment executes the failed-payment replacement action.
func (s *RecoveryService) CreateReplacementPayment(ctx context.Context, paymentID string) (models.RecoveryResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := recovery.CreateReplacementPayment(s.payments, paymentID, s.Clock())
	err := s.applyResult(ctx, models.RecoveryActionReplace, result)
	return result, err
}

// applyResult swaps the snapshot on success, mirrors the change into the
// repository and publishes the recovered event. Caller must hold the write
// lock.
func (s *RecoveryService) applyResult(ctx context.Context, action models.RecoveryActionName, result models.RecoveryResult) error {
	if !result.OK {
		metrics.RecoveryActionsTotal.WithLabelValues(string(action), "rejected").Inc()
		return nil
	}

	s.payments = result.Payments
	s.observeQueueDepth()
	metrics.RecoveryActionsTotal.WithLabelValues(string(action), "ok").Inc()

	newPayment := result.NewPayment
	if newPayment == nil {
		return fmt.Errorf("recovery action %s succeeded without a new payment", action)
	}

	var original *models.Payment
	for idx := range s.payments {
		if s.payments[idx].SupersededByPaymentID == newPayment.ID {
			original = &s.payments[idx]
			break
		}
	}

	if s.Repo != nil {
		if err := s.Repo.Create(ctx, newPayment); err != nil {
			return fmt.Errorf("error persisting replacement payment %s: %w", newPayment.ID, err)
		}
		if original != nil {
			if err := s.Repo.Update(ctx, original, original.ID); err != nil {
				return fmt.Errorf("error persisting superseded payment %s: %w", original.ID, err)
			}
		}
	}

	if s.Publisher != nil {
		event := models.PaymentRecoveredEvent{
			Action:          action,
			NewPaymentID:    newPayment.ID,
			ClaimID:         newPayment.ClaimID,
			FundingSourceID: newPayment.FundingSourceID,
			AmountUSD:       newPayment.AmountUSD,
			TraceID:         uuid.New().String(),
			RecoveredAt:     s.Clock(),
		}
		if original != nil {
			event.OriginalPaymentID = original.ID
		}

		if err := s.Publisher.Publish(ctx, models.PaymentRecoveredTopic, event); err != nil {
			return fmt.Errorf("error publishing recovered event for %s: %w", newPayment.ID, err)
		}
	}

	return nil
}

// ApplyStatusUpdate folds an upstream status change into the snapshot. The
// update is immutable: a new collection replaces the old one.
func (s *RecoveryService) ApplyStatusUpdate(ctx context.Context, event models.PaymentStatusChangedEvent) error {
	if !event.Status.IsValid() {
		return fmt.Errorf("invalid payment status in event: %s", event.Status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var updated *models.Payment
	next := make([]models.Payment, len(s.payments))
	for idx, payment := range s.payments {
		if strings.EqualFold(payment.ID, event.PaymentID) {
			payment.Status = event.Status
			payment.UpdatedAt = event.UpdatedAt
			if event.AchReturnCode != "" {
				payment.AchReturnCode = event.AchReturnCode
			}
			updated = &payment
		}
		next[idx] = payment
	}

	if updated == nil {
		return fmt.Errorf("payment %s not found for status update", event.PaymentID)
	}

	s.payments = next
	s.observeQueueDepth()
	metrics.StatusUpdatesTotal.WithLabelValues(string(event.Status)).Inc()

	if s.Repo != nil {
		if err := s.Repo.Update(ctx, updated, updated.ID); err != nil {
			return fmt.Errorf("error persisting status update for %s: %w", updated.ID, err)
		}
	}

	return nil
}

// Ask answers a free-text operator query. Parsing failures fall through to
// the help text; enhancer failures fall back to the deterministic answer.
func (s *RecoveryService) Ask(ctx context.Context, input string) string {
	intent, ok := assistant.ParseIntent(input)
	label := "unparsed"
	if ok {
		label = string(intent.Type)
	}
	metrics.AssistantQueriesTotal.WithLabelValues(label).Inc()

	s.mu.RLock()
	base := assistant.BuildResponse(intent, s.payments, s.fundingSources, s.Clock())
	s.mu.RUnlock()

	if s.Enhancer == nil {
		return base
	}

	enhanced, err := s.Enhancer.Enhance(ctx, base)
	if err != nil {
		logrus.Errorf("Error enhancing assistant wording, using deterministic text: %s", err.Error())
		return base
	}

	return enhanced
}

func (s *RecoveryService) observeQueueDepth() {
	metrics.PriorityQueueDepth.Set(float64(len(analytics.PriorityQueue(s.payments, s.Clock()))))
}
