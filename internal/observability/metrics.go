package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK    = "ok"
	ResultError = "error"
)

var (
	registerOnce sync.Once

	decodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "irdecode",
			Subsystem: "decode",
			Name:      "total",
			Help:      "Decoded transmissions by outcome.",
		},
		[]string{"result", "code"},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "irdecode",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "irdecode",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(decodes, httpRequests, httpDuration)
	})
}

// RecordDecode counts one decode attempt. An empty code means success.
func RecordDecode(code string) {
	RegisterMetrics()
	if code == "" {
		decodes.WithLabelValues(ResultOK, "").Inc()
		return
	}
	decodes.WithLabelValues(ResultError, code).Inc()
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}
