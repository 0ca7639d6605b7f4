package cohort

import "github.com/arloliu/cohort/types"

// Sentinel errors returned by the Planner, re-exported from the types
// package so callers can check them with errors.Is without the extra import.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrBackendRequired is returned when the solver backend is nil.
	ErrBackendRequired = types.ErrBackendRequired

	// ErrNoPartners is returned when the partition input contains no people.
	ErrNoPartners = types.ErrNoPartners

	// ErrNoStudents is returned when the immersion input contains no people.
	ErrNoStudents = types.ErrNoStudents

	// ErrGroupCount is returned when the requested group count is invalid.
	ErrGroupCount = types.ErrGroupCount

	// ErrSolveFailed is returned when the backend fails outright.
	ErrSolveFailed = types.ErrSolveFailed

	// ErrShapeMismatch is returned when a preference matrix's dimensions do
	// not match the entity list.
	ErrShapeMismatch = types.ErrShapeMismatch

	// ErrNonPositivePreference is returned when a non-sentinel week contains
	// an entry that is not strictly positive.
	ErrNonPositivePreference = types.ErrNonPositivePreference

	// ErrOptionOutOfRange is returned when a stored assignment refers to an
	// option index outside the week's option range.
	ErrOptionOutOfRange = types.ErrOptionOutOfRange
)
