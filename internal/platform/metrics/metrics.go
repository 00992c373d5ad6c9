package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the console's Prometheus collectors.
type Metrics struct {
	BackendRequests *prometheus.CounterVec
	BackendLatency  *prometheus.HistogramVec

	ReportsGenerated *prometheus.CounterVec
	ReviewDecisions  *prometheus.CounterVec
	RecordActions    *prometheus.CounterVec
	NotificationAcks *prometheus.CounterVec
}

// New creates and registers all console metrics against the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers collectors against reg; tests pass a fresh registry.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		BackendRequests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "console_backend_requests_total",
			Help: "Backend API calls labeled by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		BackendLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "console_backend_latency_seconds",
			Help:    "Latency of backend API calls in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		ReportsGenerated: f.NewCounterVec(prometheus.CounterOpts{
			Name: "console_reports_generated_total",
			Help: "Report exports labeled by format and outcome",
		}, []string{"format", "outcome"}),
		ReviewDecisions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "console_review_decisions_total",
			Help: "Decisions submitted from the review wizard, labeled by action",
		}, []string{"action"}),
		RecordActions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "console_record_actions_total",
			Help: "Approve/decline/revoke actions labeled by record kind and action",
		}, []string{"kind", "action"}),
		NotificationAcks: f.NewCounterVec(prometheus.CounterOpts{
			Name: "console_notification_acks_total",
			Help: "Notification mark-as-read calls labeled by outcome",
		}, []string{"outcome"}),
	}
}

func (m *Metrics) ObserveBackendCall(endpoint, outcome string, durationSeconds float64) {
	if m == nil {
		return
	}
	m.BackendRequests.WithLabelValues(endpoint, outcome).Inc()
	m.BackendLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}

func (m *Metrics) IncrementReport(format, outcome string) {
	if m == nil {
		return
	}
	m.ReportsGenerated.WithLabelValues(format, outcome).Inc()
}

func (m *Metrics) IncrementReviewDecision(action string) {
	if m == nil {
		return
	}
	m.ReviewDecisions.WithLabelValues(action).Inc()
}

func (m *Metrics) IncrementRecordAction(kind, action string) {
	if m == nil {
		return
	}
	m.RecordActions.WithLabelValues(kind, action).Inc()
}

func (m *Metrics) IncrementNotificationAck(outcome string) {
	if m == nil {
		return
	}
	m.NotificationAcks.WithLabelValues(outcome).Inc()
}
