package lark

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics records per-route request counts and latencies.
type PrometheusMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusMetrics creates unregistered collectors. An empty namespace
// defaults to "lark_client".
func NewPrometheusMetrics(namespace string) *PrometheusMetrics {
	if namespace == "" {
		namespace = "lark_client"
	}

	return &PrometheusMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: namespace + "_requests_total",
			Help: "Total number of API requests by method, route and status",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    namespace + "_request_duration_seconds",
			Help:    "Time spent on API requests in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}
}

// Collectors returns the underlying collectors.
func (m *PrometheusMetrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requestsTotal, m.requestDuration}
}

// Register registers the collectors on reg.
func (m *PrometheusMetrics) Register(reg prometheus.Registerer) error {
	for _, collector := range m.Collectors() {
		err := reg.Register(collector)
		if err != nil {
			return fmt.Errorf("registering lark client metrics: %w", err)
		}
	}

	return nil
}

// Observe records one request. A zero status means the request never got a response.
func (m *PrometheusMetrics) Observe(method, route string, status int, elapsed time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}

	m.requestsTotal.WithLabelValues(method, route, label).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
