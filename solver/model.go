package solver

import "math"

// VarType describes the domain of a decision variable.
type VarType int

const (
	// Continuous variables take any value within their bounds.
	Continuous VarType = iota

	// Integer variables take integral values within their bounds.
	Integer
)

// Var is the index of a decision variable (column) in a Model.
type Var int

// Term is one coefficient of a linear row.
type Term struct {
	Var  Var
	Coef float64
}

// Row is a linear constraint: Lower <= sum(Terms) <= Upper.
type Row struct {
	Lower float64
	Upper float64
	Terms []Term
}

// Model is a columnar mixed-integer linear program, always minimized.
//
// Models are built incrementally by the planners and handed to a Backend.
// A Model is not safe for concurrent mutation, matching the library's
// single-threaded pipeline.
type Model struct {
	// Types holds the domain of each variable.
	Types []VarType

	// Lower and Upper hold per-variable bounds.
	Lower []float64
	Upper []float64

	// Objective holds per-variable objective coefficients (minimized).
	Objective []float64

	// Rows holds the linear constraints.
	Rows []Row

	// Choices holds one-hot blocks: within each block exactly one of the
	// listed binary variables must be 1. Backends translate each block into
	// an equality row over the block's variables.
	Choices [][]Var
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{}
}

// NumVars returns the number of decision variables.
func (m *Model) NumVars() int {
	return len(m.Types)
}

// NumRows returns the number of linear constraints, counting each choice
// block as one row.
func (m *Model) NumRows() int {
	return len(m.Rows) + len(m.Choices)
}

// AddVar appends a variable with the given type and bounds, returning its index.
func (m *Model) AddVar(t VarType, lower, upper float64) Var {
	m.Types = append(m.Types, t)
	m.Lower = append(m.Lower, lower)
	m.Upper = append(m.Upper, upper)
	m.Objective = append(m.Objective, 0)

	return Var(len(m.Types) - 1)
}

// AddBinary appends a binary variable (integer in [0, 1]).
func (m *Model) AddBinary() Var {
	return m.AddVar(Integer, 0, 1)
}

// AddContinuous appends a continuous variable with the given bounds.
func (m *Model) AddContinuous(lower, upper float64) Var {
	return m.AddVar(Continuous, lower, upper)
}

// AddObjective adds coef to the objective coefficient of v.
func (m *Model) AddObjective(v Var, coef float64) {
	m.Objective[v] += coef
}

// AddRow appends the linear constraint lower <= sum(terms) <= upper.
func (m *Model) AddRow(lower float64, terms []Term, upper float64) {
	m.Rows = append(m.Rows, Row{Lower: lower, Upper: upper, Terms: terms})
}

// AddRowLE appends sum(terms) <= upper.
func (m *Model) AddRowLE(terms []Term, upper float64) {
	m.AddRow(math.Inf(-1), terms, upper)
}

// AddRowGE appends sum(terms) >= lower.
func (m *Model) AddRowGE(lower float64, terms []Term) {
	m.AddRow(lower, terms, math.Inf(1))
}

// AddChoice appends a one-hot block: exactly one of vars must be 1.
//
// All listed variables must be binary.
func (m *Model) AddChoice(vars ...Var) {
	m.Choices = append(m.Choices, vars)
}

// Fix pins a variable to a constant value by collapsing its bounds.
//
// Used to honor pre-existing assignments without re-optimizing them.
func (m *Model) Fix(v Var, value float64) {
	m.Lower[v] = value
	m.Upper[v] = value
}

// Fixed reports whether v has collapsed bounds.
func (m *Model) Fixed(v Var) bool {
	return m.Lower[v] == m.Upper[v]
}
