package app

import (
	"github.com/claimspulse/recovery-service/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (a *App) RegisterRoutes(h *handlers.RecoveryHandler) {
	a.Router.GET("/dashboard/metrics", h.GetDashboard)

	payments := a.Router.Group("/payments")
	payments.GET("/priority", h.GetPriorityQueue)
	payments.GET("/:id/triage", h.GetTriage)
	payments.POST("/:id/resend", h.PostResendLink)
	payments.POST("/:id/switch-bank", h.PostSwitchBank)
	payments.POST("/:id/replace", h.PostReplacement)

	analytics := a.Router.Group("/analytics")
	analytics.GET("/cashout-trend", h.GetCashoutTrend)
	analytics.GET("/bank-performance", h.GetBankPerformance)
	analytics.GET("/failed", h.GetFailedPayments)

	a.Router.POST("/assistant/query", h.PostAssistantQuery)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
