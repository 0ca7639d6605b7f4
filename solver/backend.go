package solver

import (
	"context"
	"time"

	"github.com/arloliu/cohort/types"
)

// Attr is one backend-specific tuning attribute, passed through uninterpreted.
//
// Attributes are validated by the backend, not by the planner; unknown names
// should be surfaced as errors by backends that cannot apply them.
type Attr struct {
	Name  string
	Value any
}

// Options controls a single Optimize call.
type Options struct {
	// Silent suppresses backend log output when true.
	Silent bool

	// TimeLimit is the wall-clock budget; zero means no limit. Backends
	// return the best incumbent found when the budget expires (best-effort,
	// not a hard cancellation).
	TimeLimit time.Duration

	// Tuning is an open list of backend-specific attributes.
	Tuning []Attr
}

// Result is the outcome of one Optimize call.
type Result struct {
	// Status is the termination status.
	Status types.Status

	// Values holds the raw (possibly fractional, tolerance-bounded) value of
	// every variable, indexed by Var. Nil when no incumbent exists.
	Values []float64

	// Objective is the objective value of Values.
	Objective float64

	// Gap is the relative optimality gap of the incumbent, when known.
	// Only meaningful if HasGap is true; typically reported for
	// time-limited runs.
	Gap float64

	// HasGap reports whether Gap carries a value.
	HasGap bool
}

// Value returns the raw value of v, or 0 when no incumbent exists.
func (r *Result) Value(v Var) float64 {
	if r.Values == nil {
		return 0
	}

	return r.Values[v]
}

// Selected reports whether binary variable v is considered chosen.
//
// A binary indicator is "selected" when its raw value exceeds 0.5; the
// extractor must not assume exact integrality.
func (r *Result) Selected(v Var) bool {
	return r.Value(v) > 0.5
}

// Backend solves models. Implementations are injected into the planner as a
// strategy and must treat the model as read-only.
//
// Optimize blocks until the model is solved, the time budget expires, or ctx
// is canceled. A non-optimal status is not an error: the backend returns the
// best solution it has together with that status. Errors are reserved for
// outright failures (misconfiguration, solver crash).
type Backend interface {
	Optimize(ctx context.Context, m *Model, opts Options) (*Result, error)
}
