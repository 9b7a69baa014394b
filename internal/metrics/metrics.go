package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RecoveryActionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recovery_actions_total",
			Help: "Recovery actions executed, by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	AssistantQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_queries_total",
			Help: "Assistant queries answered, by parsed intent",
		},
		[]string{"intent"},
	)

	PriorityQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "priority_queue_depth",
			Help: "Actionable payments currently in the priority queue",
		},
	)

	StatusUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "payment_status_updates_total",
			Help: "Status change events applied to the snapshot, by status",
		},
		[]string{"status"},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		RecoveryActionsTotal,
		AssistantQueriesTotal,
		PriorityQueueDepth,
		StatusUpdatesTotal,
	)
}
