package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/cohort/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	solveDuration *prometheus.HistogramVec
	solveTotal    *prometheus.CounterVec
	objective     *prometheus.GaugeVec
	modelCols     *prometheus.GaugeVec
	modelRows     *prometheus.GaugeVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "cohort" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "cohort"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Wall-clock duration of backend solve calls by operation.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15, 60, 300},
		}, []string{"op"})

		p.solveTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Total backend solve calls by operation and termination status.",
		}, []string{"op", "status"})

		p.objective = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "objective_value",
			Help:      "Objective value of the most recent solution by operation.",
		}, []string{"op"})

		p.modelCols = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "model",
			Name:      "variables",
			Help:      "Decision variable count of the most recent model by operation.",
		}, []string{"op"})

		p.modelRows = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "model",
			Name:      "constraints",
			Help:      "Linear constraint count of the most recent model by operation.",
		}, []string{"op"})

		p.reg.MustRegister(p.solveDuration, p.solveTotal, p.objective, p.modelCols, p.modelRows)
	})
}

// RecordSolveDuration records the wall-clock time of one backend call.
func (p *PrometheusCollector) RecordSolveDuration(op string, seconds float64) {
	p.ensureRegistered()
	p.solveDuration.WithLabelValues(op).Observe(seconds)
}

// RecordSolveStatus records the termination status of one backend call.
func (p *PrometheusCollector) RecordSolveStatus(op string, status types.Status) {
	p.ensureRegistered()
	p.solveTotal.WithLabelValues(op, status.String()).Inc()
}

// RecordObjective records the objective value of the returned solution.
func (p *PrometheusCollector) RecordObjective(op string, value float64) {
	p.ensureRegistered()
	p.objective.WithLabelValues(op).Set(value)
}

// RecordModelSize sets the column/row counts of the last formulated model.
func (p *PrometheusCollector) RecordModelSize(op string, cols, rows int) {
	p.ensureRegistered()
	p.modelCols.WithLabelValues(op).Set(float64(cols))
	p.modelRows.WithLabelValues(op).Set(float64(rows))
}
