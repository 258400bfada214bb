package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sweep outcomes
const (
	SweepRan     = "ran"
	SweepSkipped = "skipped"
	SweepFailed  = "failed"
)

// Metrics holds the Prometheus collectors of the daemon. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	// Tab transitions
	TabsSuspended   prometheus.Counter
	TabsUnsuspended prometheus.Counter
	TabsDiscarded   prometheus.Counter
	CaptureFailures prometheus.Counter

	// Auto suspend loop
	SweepRuns     *prometheus.CounterVec
	SweepDuration prometheus.Histogram

	// Action API
	Actions         *prometheus.CounterVec
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics creates collectors on a private registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		TabsSuspended: factory.NewCounter(prometheus.CounterOpts{
			Name: "tabrest_tabs_suspended_total",
			Help: "Tabs replaced by a placeholder page",
		}),
		TabsUnsuspended: factory.NewCounter(prometheus.CounterOpts{
			Name: "tabrest_tabs_unsuspended_total",
			Help: "Tabs restored from a placeholder page",
		}),
		TabsDiscarded: factory.NewCounter(prometheus.CounterOpts{
			Name: "tabrest_tabs_discarded_total",
			Help: "Tabs discarded by the browser instead of suspended",
		}),
		CaptureFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "tabrest_capture_failures_total",
			Help: "Suspensions deferred because page state could not be read",
		}),

		SweepRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tabrest_sweep_runs_total",
			Help: "Auto suspend sweeps by outcome",
		}, []string{"result"}),
		SweepDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "tabrest_sweep_duration_seconds",
			Help:    "Duration of auto suspend sweeps",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		}),

		Actions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tabrest_actions_total",
			Help: "Dispatched actions by name and outcome",
		}, []string{"action", "success"}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tabrest_http_requests_total",
			Help: "HTTP requests served",
		}, []string{"method", "path", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tabrest_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		}, []string{"method", "path"}),
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) TabSuspended() {
	if m != nil {
		m.TabsSuspended.Inc()
	}
}

func (m *Metrics) TabUnsuspended() {
	if m != nil {
		m.TabsUnsuspended.Inc()
	}
}

func (m *Metrics) TabDiscarded() {
	if m != nil {
		m.TabsDiscarded.Inc()
	}
}

func (m *Metrics) CaptureFailed() {
	if m != nil {
		m.CaptureFailures.Inc()
	}
}

// Sweep records one auto suspend run
func (m *Metrics) Sweep(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.SweepRuns.WithLabelValues(result).Inc()
	if result == SweepRan {
		m.SweepDuration.Observe(elapsed.Seconds())
	}
}

// Action records one dispatched action
func (m *Metrics) Action(name string, success bool) {
	if m == nil {
		return
	}
	label := "false"
	if success {
		label = "true"
	}
	m.Actions.WithLabelValues(name, label).Inc()
}

// Request records one served HTTP request
func (m *Metrics) Request(method, path, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
