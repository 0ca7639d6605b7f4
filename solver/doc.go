// Package solver defines the abstract optimization model consumed by the
// cohort planners and the Backend interface that concrete solvers implement.
//
// A Model is a plain columnar description of a mixed-integer linear program:
// decision variables with bounds and objective coefficients, sparse linear
// rows with lower/upper bounds, and one-hot "choice" blocks expressing
// exactly-one-of constraints over binary variables. The objective is always
// minimized.
//
// Backends are injected into the planner as a strategy; the planners assume
// nothing about solver internals beyond the termination status and per-column
// values. The production backend lives in solver/highs; a deterministic
// pure-Go backend for small instances lives in internal/enumerate.
package solver
