package host

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics is the reference shell's bounded-cardinality instrumentation,
// grounded on fight-club-go's internal/api/observability.go — same
// histogram/gauge/counter shapes, narrowed to this shell's own
// concerns (tick timing, WS fan-out, HTTP traffic) since THE CORE
// itself has no metrics surface (spec.md §7: no logging, no
// observability inside the deterministic core).
type metrics struct {
	tickDuration  prometheus.Histogram
	wsConnActive  prometheus.Gauge
	wsMessagesOut prometheus.Counter
	httpRequests  *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		tickDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "houndfall_tick_duration_seconds",
			Help:    "Wall-clock time spent inside one Core.Update call.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.002, 0.004, 0.008, 0.016, 0.033},
		}),
		wsConnActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "houndfall_ws_connections_active",
			Help: "Currently open WebSocket connections to the reference shell.",
		}),
		wsMessagesOut: factory.NewCounter(prometheus.CounterOpts{
			Name: "houndfall_ws_messages_sent_total",
			Help: "Total snapshot broadcasts sent over WebSocket.",
		}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "houndfall_http_requests_total",
			Help: "HTTP requests served by the reference shell, by route and status.",
		}, []string{"route", "status"}),
	}
}

// recordTick reports how long a single Core.Update call took.
func (m *metrics) recordTick(d time.Duration) { m.tickDuration.Observe(d.Seconds()) }

// instrument wraps a handler to record request counts by route pattern
// (never by raw URL, to keep the label space bounded).
func (m *metrics) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next(sw, r)
		m.httpRequests.WithLabelValues(route, http.StatusText(sw.status)).Inc()
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
