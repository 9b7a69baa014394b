package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/claimspulse/recovery-service/internal/models"
	"github.com/claimspulse/recovery-service/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	defaultQueueLimit = 8
	defaultTrendDays  = 7
)

// RecoveryServiceIn is the orchestrator surface the HTTP layer consumes.
type RecoveryServiceIn interface {
	Dashboard() models.DashboardMetrics
	PriorityQueue(limit int) []models.PriorityItem
	CashoutTrend(days int) []models.CashoutTrendPoint
	BankPerformance() []models.BankPerformance
	FailedInLastDays(days int) []models.Payment
	Triage(paymentID string) (models.TriageSuggestion, bool)
	ResendLink(ctx context.Context, paymentID string) (models.RecoveryResult, error)
	SwitchBankAndResend(ctx context.Context, paymentID string) (models.RecoveryResult, error)
	CreateReplacementPayment(ctx context.Context, paymentID string) (models.RecoveryResult, error)
	ApplyStatusUpdate(ctx context.Context, event models.PaymentStatusChangedEvent) error
	Ask(ctx context.Context, input string) string
}

type RecoveryHandler struct {
	Service RecoveryServiceIn
}

func NewRecoveryHandler(s RecoveryServiceIn) *RecoveryHandler {
	return &RecoveryHandler{Service: s}
}

// GET /dashboard/metrics
func (h *RecoveryHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Dashboard())
}

// GET /payments/priority
func (h *RecoveryHandler) GetPriorityQueue(c *gin.Context) {
	limit := queryInt(c, "limit", defaultQueueLimit)
	c.JSON(http.StatusOK, h.Service.PriorityQueue(limit))
}

// GET /payments/:id/triage
func (h *RecoveryHandler) GetTriage(c *gin.Context) {
	suggestion, found := h.Service.Triage(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("payment %s not found", c.Param("id"))})
		return
	}
	c.JSON(http.StatusOK, suggestion)
}

// GET /analytics/cashout-trend
func (h *RecoveryHandler) GetCashoutTrend(c *gin.Context) {
	days := queryInt(c, "days", defaultTrendDays)
	c.JSON(http.StatusOK, h.Service.CashoutTrend(days))
}

// GET /analytics/bank-performance
func (h *RecoveryHandler) GetBankPerformance(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.BankPerformance())
}

// GET /analytics/failed
func (h *RecoveryHandler) GetFailedPayments(c *gin.Context) {
	days := queryInt(c, "days", defaultTrendDays)
	c.JSON(http.StatusOK, h.Service.FailedInLastDays(days))
}

// POST /payments/:id/resend
//
// Action-level rejection (guard, not-found, no alternate source) is a normal
// 200 response carrying ok=false; only infrastructure trouble is a 500.
func (h *RecoveryHandler) PostResendLink(c *gin.Context) {
	h.runRecovery(c, h.Service.ResendLink)
}

// POST /payments/:id/switch-bank
func (h *RecoveryHandler) PostSwitchBank(c *gin.Context) {
	h.runRecovery(c, h.Service.SwitchBankAndResend)
}

// POST /payments/:id/replace
func (h *RecoveryHandler) PostReplacement(c *gin.Context) {
	h.runRecovery(c, h.Service.CreateReplacementPayment)
}

func (h *RecoveryHandler) runRecovery(c *gin.Context, action func(ctx context.Context, paymentID string) (models.RecoveryResult, error)) {
	result, err := action(c.Request.Context(), c.Param("id"))
	if err != nil {
		logrus.Errorf("Error applying recovery action: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /assistant/query
func (h *RecoveryHandler) PostAssistantQuery(c *gin.Context) {
	var req dto.AssistantQuery
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	req.Sanitize()

	answer := h.Service.Ask(c.Request.Context(), req.Text)
	c.JSON(http.StatusOK, dto.AssistantAnswer{Text: answer})
}

// HandleEvents routes subscribed Kafka messages into the snapshot.
func (h *RecoveryHandler) HandleEvents(ctx context.Context, topic string, value []byte) error {
	switch topic {
	case models.PaymentStatusTopic:
		var event models.PaymentStatusChangedEvent
		if err := json.Unmarshal(value, &event); err != nil {
			logrus.Errorf("Error parsing payment status event %s", err.Error())
			return fmt.Errorf("error parsing payment status event %w", err)
		}

		if err := h.Service.ApplyStatusUpdate(ctx, event); err != nil {
			return fmt.Errorf("error applying status update %w", err)
		}
		return nil
	default:
		logrus.Errorf("topic not allowed %s", topic)
		return fmt.Errorf("topic not allowed %s", topic)
	}
}

func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
