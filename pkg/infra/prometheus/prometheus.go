package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// Latency buckets in milliseconds; classifier calls are network bound
	latencyBuckets = []float64{
		10, 25, 50,
		100, 250, 500,
		1000, 2500, 5000,
		10000, 30000,
	}

	RequestsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustmoderation_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"route", "status"},
	)

	DecisionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustmoderation_decisions_total",
			Help: "Moderation decisions by content type",
		},
		[]string{"content_type", "decision"},
	)

	ClassifierLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "trustmoderation_classifier_latency_ms",
			Help:    "External classifier latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"classifier", "outcome"},
	)

	// 0 closed, 1 half-open, 2 open
	BreakerState = promauto.With(registerer).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "trustmoderation_classifier_breaker_state",
			Help: "Circuit breaker state per classifier",
		},
		[]string{"classifier"},
	)

	AuditFailuresTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "trustmoderation_audit_failures_total",
			Help: "Audit log operations that failed",
		},
		[]string{"operation"},
	)
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeCached  = "cached"
)

func Initialize() {
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Registry exposes the private registry to tests and the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
