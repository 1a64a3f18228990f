package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce        sync.Once
	apiRequestsTotal    *prometheus.CounterVec
	apiLatencySeconds   *prometheus.HistogramVec
	apiErrorsTotal      *prometheus.CounterVec
	domainOpsTotal      *prometheus.CounterVec
	eventsPublishedFail *prometheus.CounterVec
)

// RegisterMetrics initialises the Prometheus collectors used by the API.
func RegisterMetrics() {
	registerOnce.Do(func() {
		apiRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edumanage_requests_total",
			Help: "Total number of API requests served.",
		}, []string{"method", "route", "status"})

		apiLatencySeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "edumanage_latency_seconds",
			Help:    "Latency distribution for API requests.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"method", "route"})

		apiErrorsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edumanage_errors_total",
			Help: "Total number of error responses returned by the API.",
		}, []string{"method", "route", "status"})

		domainOpsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edumanage_domain_operations_total",
			Help: "Domain state transitions by operation and outcome.",
		}, []string{"operation", "outcome"})

		eventsPublishedFail = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "edumanage_event_publish_failures_total",
			Help: "Domain events that could not be handed to the broker.",
		}, []string{"type"})

		prometheus.MustRegister(apiRequestsTotal, apiLatencySeconds, apiErrorsTotal, domainOpsTotal, eventsPublishedFail)
	})
}

// APIRequests exposes the request counter.
func APIRequests() *prometheus.CounterVec {
	RegisterMetrics()
	return apiRequestsTotal
}

// APILatency exposes the latency histogram.
func APILatency() *prometheus.HistogramVec {
	RegisterMetrics()
	return apiLatencySeconds
}

// APIErrors exposes the error response counter.
func APIErrors() *prometheus.CounterVec {
	RegisterMetrics()
	return apiErrorsTotal
}

// DomainOperations exposes the per-operation outcome counter.
func DomainOperations() *prometheus.CounterVec {
	RegisterMetrics()
	return domainOpsTotal
}

// EventPublishFailures exposes the failed event publication counter.
func EventPublishFailures() *prometheus.CounterVec {
	RegisterMetrics()
	return eventsPublishedFail
}
