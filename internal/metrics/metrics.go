// Package metrics exposes prometheus counters for backtest runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rxtech-lab/argo-algorithm/internal/types"
)

const namespace = "argo_algorithm"

// Run outcomes.
const (
	RunStatusSucceeded = "succeeded"
	RunStatusFailed    = "failed"
	RunStatusCancelled = "cancelled"
)

// Metrics holds the engine collectors. Each engine owns its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	bars        prometheus.Counter
	slices      prometheus.Counter
	orders      *prometheus.CounterVec
	runs        *prometheus.CounterVec
	runDuration prometheus.Histogram
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		bars: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bars_processed_total",
			Help:      "Raw market data bars replayed.",
		}),
		slices: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slices_processed_total",
			Help:      "Slices delivered to algorithms.",
		}),
		orders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_total",
			Help:      "Orders processed, by side and status.",
		}, []string{"side", "status"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Backtest runs, by outcome.",
		}, []string{"status"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall clock duration of backtest runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 8),
		}),
	}

	m.registry.MustRegister(m.bars, m.slices, m.orders, m.runs, m.runDuration)

	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveBar counts a replayed raw bar. Observe methods are no-ops on a nil *Metrics.
func (m *Metrics) ObserveBar() {
	if m == nil {
		return
	}

	m.bars.Inc()
}

func (m *Metrics) ObserveSlice() {
	if m == nil {
		return
	}

	m.slices.Inc()
}

func (m *Metrics) ObserveOrder(order types.Order) {
	if m == nil {
		return
	}

	m.orders.WithLabelValues(string(order.Side), string(order.Status)).Inc()
}

// ObserveRun records the outcome and duration of a finished run.
func (m *Metrics) ObserveRun(status string, duration time.Duration) {
	if m == nil {
		return
	}

	m.runs.WithLabelValues(status).Inc()
	m.runDuration.Observe(duration.Seconds())
}

// WriteTextfile writes the current values in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
