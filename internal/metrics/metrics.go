// Package metrics exposes Prometheus collectors for hook dispatch.
//
// All recording methods are safe to call on a nil *Metrics, which disables
// metrics without guarding every call site.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "simevents"

// Handler outcome labels.
const (
	StatusOK    = "ok"
	StatusError = "error"
	StatusPanic = "panic"
)

// Metrics holds the dispatch collectors and the registry they belong to.
type Metrics struct {
	registry *prometheus.Registry

	dispatches      *prometheus.CounterVec   // by hook
	handlerCalls    *prometheus.CounterVec   // by hook and status
	handlerDuration *prometheus.HistogramVec // by hook
	counted         *prometheus.CounterVec   // by counter name and hook
	events          prometheus.Counter
}

// New creates the collectors and registers them with reg.
// A nil reg gets a fresh registry.
func New(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: reg,

		dispatches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "dispatches_total",
			Help:      "Total number of hook dispatches",
		}, []string{"hook"}),

		handlerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "handler_calls_total",
			Help:      "Total number of handler calls by outcome",
		}, []string{"hook", "status"}),

		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "handler_duration_seconds",
			Help:      "Handler execution time in seconds",
			Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		}, []string{"hook"}),

		counted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "action",
			Name:      "count_total",
			Help:      "Hook occurrences recorded by count actions",
		}, []string{"counter", "hook"}),

		events: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "sim",
			Name:      "events_processed_total",
			Help:      "Total number of scheduler events processed",
		}),
	}

	collectors := []prometheus.Collector{
		m.dispatches,
		m.handlerCalls,
		m.handlerDuration,
		m.counted,
		m.events,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RecordDispatch counts one dispatch of hook.
func (m *Metrics) RecordDispatch(hook string) {
	if m == nil {
		return
	}
	m.dispatches.WithLabelValues(hook).Inc()
}

// RecordHandler records one handler call.
func (m *Metrics) RecordHandler(hook, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.handlerCalls.WithLabelValues(hook, status).Inc()
	m.handlerDuration.WithLabelValues(hook).Observe(d.Seconds())
}

// RecordCount increments the named counter for hook.
func (m *Metrics) RecordCount(counter, hook string) {
	if m == nil {
		return
	}
	m.counted.WithLabelValues(counter, hook).Inc()
}

// RecordEvent counts one processed scheduler event.
func (m *Metrics) RecordEvent() {
	if m == nil {
		return
	}
	m.events.Inc()
}

// WriteText writes every metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	if m == nil {
		return nil
	}
	families, err := m.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
