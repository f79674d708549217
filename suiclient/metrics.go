package suiclient

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects per-method request counters and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the RPC collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "obsdk",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "JSON-RPC requests sent to the Sui node.",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "obsdk",
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "JSON-RPC request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
	}
	if reg != nil {
		reg.MustRegister(m.requests, m.duration)
	}
	return m
}

const (
	statusOK             = "ok"
	statusRPCError       = "rpc_error"
	statusTransportError = "transport_error"
)

func (m *Metrics) observe(method, status string, started time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method, status).Inc()
	m.duration.WithLabelValues(method).Observe(time.Since(started).Seconds())
}
