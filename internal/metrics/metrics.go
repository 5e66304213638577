// Package metrics defines Prometheus metrics for the Telegram gateway.
//
// Metric naming follows Prometheus conventions:
//   - restobot_ prefix for all custom metrics
//   - _total suffix for counters
//   - _seconds suffix for duration histograms
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values shared by the counters below.
const (
	OutcomeOK      = "ok"
	OutcomeAPI     = "api_error"
	OutcomeNetwork = "transport_error"
	OutcomeDecode  = "decode_error"
	OutcomeFailed  = "failed"
	OutcomeSkipped = "skipped"
)

var (
	// TelegramRequestsTotal counts Bot API calls by method and outcome.
	TelegramRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restobot_telegram_requests_total",
			Help: "Total number of Telegram Bot API calls by method and outcome.",
		},
		[]string{"method", "outcome"},
	)

	// TelegramRequestDurationSeconds is a histogram of Bot API call latency.
	TelegramRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "restobot_telegram_request_duration_seconds",
			Help:    "Duration of Telegram Bot API calls in seconds.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method"},
	)

	// WebhookUpdatesTotal counts inbound updates by classified kind and outcome.
	WebhookUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restobot_webhook_updates_total",
			Help: "Total number of inbound Telegram updates by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	// DeliveriesTotal counts per-recipient publisher deliveries by outcome.
	DeliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restobot_publisher_deliveries_total",
			Help: "Total number of per-recipient content deliveries by outcome.",
		},
		[]string{"outcome"},
	)

	// SetupRunsTotal counts bot provisioning runs by result.
	SetupRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "restobot_setup_runs_total",
			Help: "Total number of bot setup runs by result (ok, degraded, failed).",
		},
		[]string{"result"},
	)
)

// Register adds every collector to reg.
func Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		TelegramRequestsTotal,
		TelegramRequestDurationSeconds,
		WebhookUpdatesTotal,
		DeliveriesTotal,
		SetupRunsTotal,
	} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// RecordTelegramRequest records one Bot API call.
func RecordTelegramRequest(method, outcome string, duration time.Duration) {
	TelegramRequestsTotal.WithLabelValues(method, outcome).Inc()
	TelegramRequestDurationSeconds.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordWebhookUpdate records one dispatched update.
func RecordWebhookUpdate(kind, outcome string) {
	WebhookUpdatesTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordDelivery records one recipient delivery.
func RecordDelivery(outcome string) {
	DeliveriesTotal.WithLabelValues(outcome).Inc()
}

// RecordSetupRun records one orchestrator run.
func RecordSetupRun(result string) {
	SetupRunsTotal.WithLabelValues(result).Inc()
}
