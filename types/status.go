package types

// Status is the termination status reported by a solver backend.
//
// It is produced once per solve call and consumed immediately by the caller;
// a non-optimal status is a diagnostic, not a failure, and the best available
// solution is still extracted.
type Status int

const (
	// StatusOptimal indicates the backend proved optimality.
	StatusOptimal Status = iota

	// StatusTimeLimit indicates the wall-clock budget was exhausted; the
	// result holds the best incumbent found so far.
	StatusTimeLimit

	// StatusInfeasible indicates the model has no feasible solution.
	StatusInfeasible

	// StatusOther covers any backend outcome outside the canonical set.
	StatusOther
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusTimeLimit:
		return "TimeLimit"
	case StatusInfeasible:
		return "Infeasible"
	case StatusOther:
		return "Other"
	default:
		return "Unknown"
	}
}
