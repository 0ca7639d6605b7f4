package types

import "errors"

// Sentinel errors for the cohort library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).

// Planner errors - Public API errors returned by the Planner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrBackendRequired is returned when the solver backend is nil.
	ErrBackendRequired = errors.New("solver backend is required")

	// ErrNoPartners is returned when the partition input contains no people.
	ErrNoPartners = errors.New("no partners to assign")

	// ErrNoStudents is returned when the immersion input contains no people.
	ErrNoStudents = errors.New("no students to assign")

	// ErrGroupCount is returned when the requested group count is not positive
	// or exceeds the number of people.
	ErrGroupCount = errors.New("invalid group count")

	// ErrSolveFailed is returned when the backend fails outright (as opposed
	// to terminating with a non-optimal status).
	ErrSolveFailed = errors.New("solve failed")
)

// Input validation errors - rejected before any model is constructed.
var (
	// ErrShapeMismatch is returned when a preference matrix's dimensions do
	// not match the entity list, or week shapes are inconsistent.
	ErrShapeMismatch = errors.New("preference matrix shape mismatch")

	// ErrNonPositivePreference is returned when a non-sentinel week contains
	// an entry that is not strictly positive.
	ErrNonPositivePreference = errors.New("non-positive preference entry")

	// ErrOptionOutOfRange is returned when a stored assignment refers to an
	// option index outside [1, options-for-that-week].
	ErrOptionOutOfRange = errors.New("assigned option out of range")
)
