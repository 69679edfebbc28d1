// SPDX-License-Identifier: MIT

// Package metrics exposes Prometheus collectors for circuit execution.
// All methods are nil-safe so callers can hold a nil *Metrics when metrics are
// disabled.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for circuit runs.
type Metrics struct {
	// Gate applications by gate name
	GatesApplied *prometheus.CounterVec

	// Measurement outcomes by qubit and result ("0" or "1")
	Measurements *prometheus.CounterVec

	// Rejected operations by OperationError kind
	OperationErrors *prometheus.CounterVec

	// Apply latency by gate name
	ApplyLatency *prometheus.HistogramVec

	// Completed runs (one per shot)
	Runs prometheus.Counter
}

// New registers the collectors on reg. Passing prometheus.DefaultRegisterer
// exposes them on the default /metrics handler; tests pass a fresh registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		GatesApplied: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qsim_gates_applied_total",
			Help: "Total gate applications by gate name",
		}, []string{"gate"}),

		Measurements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qsim_measurements_total",
			Help: "Total single-qubit measurements by qubit and outcome",
		}, []string{"qubit", "outcome"}),

		OperationErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "qsim_operation_errors_total",
			Help: "Total rejected operations by error kind",
		}, []string{"kind"}),

		ApplyLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "qsim_apply_duration_seconds",
			Help:    "Duration of a single operation application",
			Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1},
		}, []string{"gate"}),

		Runs: f.NewCounter(prometheus.CounterOpts{
			Name: "qsim_runs_total",
			Help: "Total completed circuit runs",
		}),
	}
}

// ObserveApply records one successful gate application.
func (m *Metrics) ObserveApply(gate string, d time.Duration) {
	if m != nil {
		m.GatesApplied.WithLabelValues(gate).Inc()
		m.ApplyLatency.WithLabelValues(gate).Observe(d.Seconds())
	}
}

// IncrementMeasurement records a measurement outcome.
func (m *Metrics) IncrementMeasurement(qubit string, outcome bool) {
	if m != nil {
		o := "0"
		if outcome {
			o = "1"
		}
		m.Measurements.WithLabelValues(qubit, o).Inc()
	}
}

// IncrementError records a rejected operation.
func (m *Metrics) IncrementError(kind string) {
	if m != nil {
		m.OperationErrors.WithLabelValues(kind).Inc()
	}
}

// IncrementRuns records a completed run.
func (m *Metrics) IncrementRuns() {
	if m != nil {
		m.Runs.Inc()
	}
}
