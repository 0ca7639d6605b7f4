package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The planner calls these synchronously around each solve, so they must be
// cheap; Prometheus and no-op implementations are provided in internal/metrics.
type MetricsCollector interface {
	SolveMetrics
	ModelMetrics
}

// SolveMetrics defines metrics for solver backend invocations.
type SolveMetrics interface {
	// RecordSolveDuration records the wall-clock time of one backend call.
	//
	// Parameters:
	//   - op: Operation name ("partition" or "assign")
	//   - seconds: Time taken in seconds
	RecordSolveDuration(op string, seconds float64)

	// RecordSolveStatus records the termination status of one backend call.
	//
	// Parameters:
	//   - op: Operation name ("partition" or "assign")
	//   - status: Backend termination status
	RecordSolveStatus(op string, status Status)

	// RecordObjective records the objective value of the returned solution.
	//
	// Parameters:
	//   - op: Operation name ("partition" or "assign")
	//   - value: Scalar objective value (minimized)
	RecordObjective(op string, value float64)
}

// ModelMetrics defines metrics describing the formulated model.
type ModelMetrics interface {
	// RecordModelSize sets the column/row counts of the last formulated model.
	//
	// Parameters:
	//   - op: Operation name ("partition" or "assign")
	//   - cols: Number of decision variables
	//   - rows: Number of linear constraints
	RecordModelSize(op string, cols, rows int)
}
