package cohort

import "github.com/arloliu/cohort/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases, so internal packages can depend on `types`
// without importing the root cohort package while users still get a
// convenient `cohort.Student`, `cohort.Logger`, etc.
type (
	Partner = types.Partner
	Student = types.Student
	Status  = types.Status
)

// Re-export interfaces from the internal types package for convenience.
type (
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)

// Re-export Status constants from the internal types package.
const (
	StatusOptimal    = types.StatusOptimal
	StatusTimeLimit  = types.StatusTimeLimit
	StatusInfeasible = types.StatusInfeasible
	StatusOther      = types.StatusOther
)

// NotParticipating is the sentinel option index for a week a student sits out.
const NotParticipating = types.NotParticipating
