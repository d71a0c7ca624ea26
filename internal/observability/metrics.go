package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glidectl",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests served by the panel.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "glidectl",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	flagWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "glidectl",
			Subsystem: "panel",
			Name:      "flag_writes_total",
			Help:      "Control-flag writes issued by panel handlers.",
		},
		[]string{"flag"},
	)
	controlTicks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "glidectl",
			Subsystem: "control",
			Name:      "ticks_total",
			Help:      "Control-task poll ticks.",
		},
	)
	calibrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "glidectl",
			Subsystem: "control",
			Name:      "calibrations_total",
			Help:      "Sensor-zeroing requests consumed by the control task.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, flagWrites, controlTicks, calibrations)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

func RecordFlagWrite(flag string) {
	RegisterMetrics()
	flagWrites.WithLabelValues(flag).Inc()
}

func RecordControlTick() {
	RegisterMetrics()
	controlTicks.Inc()
}

func RecordCalibration() {
	RegisterMetrics()
	calibrations.Inc()
}
