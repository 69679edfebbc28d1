package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/qsim/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveApply("hadamard", time.Millisecond)
	m.ObserveApply("hadamard", time.Millisecond)
	m.ObserveApply("cnot", time.Microsecond)
	m.IncrementMeasurement("0", true)
	m.IncrementMeasurement("0", false)
	m.IncrementMeasurement("0", true)
	m.IncrementError("InvalidTarget")
	m.IncrementRuns()

	require.Equal(t, 2.0, testutil.ToFloat64(m.GatesApplied.WithLabelValues("hadamard")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.GatesApplied.WithLabelValues("cnot")))
	require.Equal(t, 2.0, testutil.ToFloat64(m.Measurements.WithLabelValues("0", "1")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Measurements.WithLabelValues("0", "0")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.OperationErrors.WithLabelValues("InvalidTarget")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Runs))
	require.Equal(t, 2, testutil.CollectAndCount(m.ApplyLatency))
}

func TestExposition(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.IncrementRuns()

	expected := `
# HELP qsim_runs_total Total completed circuit runs
# TYPE qsim_runs_total counter
qsim_runs_total 1
`
	require.NoError(t, testutil.CollectAndCompare(m.Runs, strings.NewReader(expected), "qsim_runs_total"))
}

func TestNilSafe(t *testing.T) {
	var m *metrics.Metrics
	require.NotPanics(t, func() {
		m.ObserveApply("not", time.Second)
		m.IncrementMeasurement("1", false)
		m.IncrementError("NoTargets")
		m.IncrementRuns()
	})
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	require.Panics(t, func() { metrics.New(reg) })
}
