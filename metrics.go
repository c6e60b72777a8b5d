package microhttp

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the request lifecycle.
// It is safe for concurrent use and may be shared between clients.
type MetricsCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errorsTotal     *prometheus.CounterVec
}

// NewMetricsCollector creates a collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a collector using the supplied
// registerer.
func NewMetricsCollectorWithRegistry(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "microhttp_requests_total",
				Help: "Total number of HTTP requests dispatched",
			},
			[]string{"method", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "microhttp_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		errorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "microhttp_errors_total",
				Help: "Total number of normalized request failures",
			},
			[]string{"kind"},
		),
	}
}

// RecordRequest records one dispatched request and its duration.
func (mc *MetricsCollector) RecordRequest(method string, statusCode int, duration time.Duration) {
	if mc == nil {
		return
	}
	mc.requestsTotal.WithLabelValues(method, strconv.Itoa(statusCode)).Inc()
	mc.requestDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordError records one normalized failure by kind (transport, status,
// decode, validation).
func (mc *MetricsCollector) RecordError(kind string) {
	if mc == nil {
		return
	}
	mc.errorsTotal.WithLabelValues(kind).Inc()
}
