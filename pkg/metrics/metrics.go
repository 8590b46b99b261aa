package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for send counters.
const (
	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeRejected  = "rejected" // request never reached the provider
)

// Metrics holds the Prometheus collectors for the notification gateway.
type Metrics struct {
	SendsTotal           *prometheus.CounterVec
	MulticastTokensTotal *prometheus.CounterVec
	SuppressedTokens     prometheus.Counter
	ProviderDurationSecs prometheus.Histogram

	registry *prometheus.Registry
}

// New creates a Metrics instance with its own registry.
func New() *Metrics {
	m := &Metrics{
		SendsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_gateway_sends_total",
			Help: "Total send requests by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		MulticastTokensTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_gateway_multicast_tokens_total",
			Help: "Total multicast target tokens by delivery result",
		}, []string{"result"}),
		SuppressedTokens: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "notification_gateway_suppressed_tokens_total",
			Help: "Total tokens skipped because the provider reported them dead",
		}),
		ProviderDurationSecs: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "notification_gateway_provider_duration_seconds",
			Help:    "Duration of provider send calls in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		}),
	}

	m.registry = prometheus.NewRegistry()
	m.registry.MustRegister(
		m.SendsTotal,
		m.MulticastTokensTotal,
		m.SuppressedTokens,
		m.ProviderDurationSecs,
	)
	return m
}

// RecordSend records the outcome of a send request.
func (m *Metrics) RecordSend(endpoint, outcome string) {
	if m == nil {
		return
	}
	m.SendsTotal.WithLabelValues(endpoint, outcome).Inc()
}

// RecordMulticastTokens records per-token multicast results.
func (m *Metrics) RecordMulticastTokens(delivered, failed int) {
	if m == nil {
		return
	}
	m.MulticastTokensTotal.WithLabelValues(OutcomeDelivered).Add(float64(delivered))
	m.MulticastTokensTotal.WithLabelValues(OutcomeFailed).Add(float64(failed))
}

// RecordSuppressed records tokens skipped by the suppression cache.
func (m *Metrics) RecordSuppressed(count int) {
	if m == nil {
		return
	}
	m.SuppressedTokens.Add(float64(count))
}

// RecordProviderCall records the duration of one provider call.
func (m *Metrics) RecordProviderCall(duration time.Duration) {
	if m == nil {
		return
	}
	m.ProviderDurationSecs.Observe(duration.Seconds())
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
