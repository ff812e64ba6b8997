// Package observability exposes Prometheus metrics for the chat service.
package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ippt-coach/internal/domain"
)

var (
	chatTurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ippt_chat_turns_total",
			Help: "Total number of chat turns by dispatch route",
		},
		[]string{"route"},
	)

	chatTurnDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ippt_chat_turn_duration_seconds",
			Help:    "Chat turn duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	activeFlowTurnsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ippt_active_flow_turns_total",
			Help: "Turns that left a multi-step check open, by flow",
		},
		[]string{"flow"},
	)

	chatEndsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "ippt_chat_ends_total",
			Help: "Total number of conversations ended by the user",
		},
	)

	chatErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ippt_chat_errors_total",
			Help: "Total number of failed chat requests by reason",
		},
		[]string{"reason"},
	)

	initOnce sync.Once
)

// InitMetrics registers the collectors with the default registry.
func InitMetrics() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			chatTurnsTotal,
			chatTurnDuration,
			activeFlowTurnsTotal,
			chatEndsTotal,
			chatErrorsTotal,
		)
	})
}

// Handler returns the Prometheus scrape handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Recorder records chat turns into the package collectors.
type Recorder struct{}

// NewRecorder registers the collectors and returns a Recorder.
func NewRecorder() Recorder {
	InitMetrics()
	return Recorder{}
}

func (Recorder) ObserveTurn(route string, flow domain.FlowKind, endChat bool, elapsed time.Duration) {
	chatTurnsTotal.WithLabelValues(route).Inc()
	chatTurnDuration.WithLabelValues(route).Observe(elapsed.Seconds())
	if flow != domain.FlowIdle {
		activeFlowTurnsTotal.WithLabelValues(string(flow)).Inc()
	}
	if endChat {
		chatEndsTotal.Inc()
	}
}

func (Recorder) ObserveError(reason string) {
	chatErrorsTotal.WithLabelValues(reason).Inc()
}
