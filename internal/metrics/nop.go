// Package metrics provides MetricsCollector implementations for the cohort
// library.
package metrics

import "github.com/arloliu/cohort/types"

// NopMetrics is a no-op metrics collector that discards all measurements.
//
// It is the default when no collector is injected.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSolveDuration discards the measurement.
func (n *NopMetrics) RecordSolveDuration(_ string, _ float64) {}

// RecordSolveStatus discards the measurement.
func (n *NopMetrics) RecordSolveStatus(_ string, _ types.Status) {}

// RecordObjective discards the measurement.
func (n *NopMetrics) RecordObjective(_ string, _ float64) {}

// RecordModelSize discards the measurement.
func (n *NopMetrics) RecordModelSize(_ string, _, _ int) {}
