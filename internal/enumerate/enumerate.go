// Package enumerate provides an exact, deterministic solver.Backend that
// searches the one-hot choice space directly.
//
// It exists for small instances and for the test suite, where reproducible
// optima matter more than scale. The search is a depth-first enumeration of
// the choice blocks with admissible objective-bound pruning and an optional
// wall-clock budget; when the budget expires the best incumbent found so far
// is returned with StatusTimeLimit.
//
// The backend requires models whose non-choice variables form a triangular
// dependency order: every row that determines an auxiliary variable may only
// reference choice variables, fixed variables, or auxiliaries with a smaller
// index. Both model builders in this module satisfy that shape. Rows are
// re-checked in full at every leaf, so a model violating the assumption
// yields StatusInfeasible rather than a silently wrong answer.
package enumerate

import (
	"context"
	"math"
	"time"

	"github.com/arloliu/cohort/solver"
	"github.com/arloliu/cohort/types"
)

const eps = 1e-6

// Backend is an exact enumeration backend.
type Backend struct{}

var _ solver.Backend = (*Backend)(nil)

// New creates an enumeration backend.
func New() *Backend {
	return &Backend{}
}

// Optimize exhaustively searches m's choice space.
func (b *Backend) Optimize(ctx context.Context, m *solver.Model, opts solver.Options) (*solver.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e := newEngine(ctx, m, opts)
	e.search(0, e.fixedCost())

	res := &solver.Result{}
	switch {
	case e.expired:
		res.Status = types.StatusTimeLimit
		if e.best != nil {
			res.Values = e.best
			res.Objective = e.bestObj
			res.Gap = relativeGap(e.bestObj, e.rootBound)
			res.HasGap = true
		}
	case e.best == nil:
		res.Status = types.StatusInfeasible
	default:
		res.Status = types.StatusOptimal
		res.Values = e.best
		res.Objective = e.bestObj
	}

	return res, nil
}

// engine holds the search state for one Optimize call.
type engine struct {
	ctx   context.Context
	model *solver.Model

	// blocks holds the candidate variables of each undecided choice block,
	// after removing candidates fixed to 0 and dropping blocks decided by a
	// candidate fixed to 1.
	blocks [][]solver.Var

	// blockMin is the smallest objective coefficient among each block's
	// candidates, used for the admissible bound.
	blockMin []float64

	// derived lists non-choice, non-fixed variables in ascending index
	// order; they are resolved greedily after every full block assignment.
	derived []solver.Var

	// derivedBound is the optimistic total objective contribution of all
	// derived and fixed variables.
	derivedBound float64

	// varRows indexes, per variable, the rows referencing it.
	varRows [][]int

	values  []float64
	decided []bool

	best      []float64
	bestObj   float64
	rootBound float64

	useDeadline bool
	deadline    time.Time
	expired     bool
	leaves      uint64
}

func newEngine(ctx context.Context, m *solver.Model, opts solver.Options) *engine {
	e := &engine{
		ctx:     ctx,
		model:   m,
		values:  make([]float64, m.NumVars()),
		decided: make([]bool, m.NumVars()),
		bestObj: math.Inf(1),
	}

	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}

	inChoice := make([]bool, m.NumVars())
	for _, block := range m.Choices {
		for _, v := range block {
			inChoice[v] = true
		}
	}

	// Seed fixed variables, including choice candidates pinned by Fix.
	for v := range m.NumVars() {
		if m.Fixed(solver.Var(v)) {
			e.values[v] = m.Lower[v]
			e.decided[v] = true
		}
	}

	for _, block := range m.Choices {
		decided := false
		var open []solver.Var
		for _, v := range block {
			if !e.decided[v] {
				open = append(open, v)
				continue
			}
			if e.values[v] > 0.5 {
				decided = true
			}
		}
		if decided {
			// A pinned candidate closes the block: the rest must be 0.
			for _, v := range open {
				e.values[v] = 0
				e.decided[v] = true
			}
			continue
		}
		e.blocks = append(e.blocks, open)

		low := math.Inf(1)
		for _, v := range open {
			low = math.Min(low, m.Objective[v])
		}
		e.blockMin = append(e.blockMin, low)
	}

	for v := range m.NumVars() {
		if inChoice[v] || e.decided[v] {
			continue
		}
		e.derived = append(e.derived, solver.Var(v))
	}

	e.varRows = make([][]int, m.NumVars())
	for i, r := range m.Rows {
		for _, t := range r.Terms {
			e.varRows[t.Var] = append(e.varRows[t.Var], i)
		}
	}

	// Optimistic contribution of derived variables: each can do no better
	// than the cheaper of its bounds.
	for _, v := range e.derived {
		if c := m.Objective[v]; c >= 0 {
			e.derivedBound += c * m.Lower[v]
		} else {
			e.derivedBound += c * m.Upper[v]
		}
	}

	e.rootBound = e.fixedCost() + e.derivedBound
	for _, low := range e.blockMin {
		e.rootBound += low
	}

	return e
}

// fixedCost returns the objective contribution of variables pinned by Fix.
func (e *engine) fixedCost() float64 {
	total := 0.0
	for v := range e.model.NumVars() {
		if e.model.Fixed(solver.Var(v)) {
			total += e.model.Objective[v] * e.values[v]
		}
	}

	return total
}

// search assigns choice blocks depth-first. partial is the objective
// contribution of everything decided so far (fixed plus chosen candidates).
func (e *engine) search(depth int, partial float64) {
	if e.expired {
		return
	}

	// Admissible bound: decided cost plus the best any undecided block and
	// any derived variable could contribute.
	bound := partial + e.derivedBound
	for i := depth; i < len(e.blocks); i++ {
		bound += e.blockMin[i]
	}
	if bound >= e.bestObj-eps {
		return
	}

	if depth == len(e.blocks) {
		e.leaf(partial)
		return
	}

	block := e.blocks[depth]
	for pick, chosen := range block {
		for j, v := range block {
			e.values[v] = 0
			if j == pick {
				e.values[v] = 1
			}
			e.decided[v] = true
		}
		e.search(depth+1, partial+e.model.Objective[chosen])
		if e.expired {
			break
		}
	}
	for _, v := range block {
		e.decided[v] = false
	}
}

// leaf resolves derived variables, verifies every row, and updates the
// incumbent.
func (e *engine) leaf(partial float64) {
	e.leaves++
	if e.useDeadline && time.Now().After(e.deadline) {
		e.expired = true
		return
	}
	if e.ctx.Err() != nil {
		e.expired = true
		return
	}

	obj := partial
	for _, v := range e.derived {
		val, ok := e.resolve(v)
		if !ok {
			e.clearDerived()
			return
		}
		e.values[v] = val
		e.decided[v] = true
		obj += e.model.Objective[v] * val
	}

	feasible := e.check()
	e.clearDerived()
	if !feasible {
		return
	}

	if obj < e.bestObj-eps {
		e.bestObj = obj
		e.best = append(e.best[:0], e.values...)
	}
}

// resolve computes the optimal value of a derived variable given everything
// decided so far: the tightest implied lower bound when its objective
// coefficient is non-negative, the tightest implied upper bound otherwise.
func (e *engine) resolve(v solver.Var) (float64, bool) {
	m := e.model
	minimize := m.Objective[v] >= 0

	val := m.Lower[v]
	if !minimize {
		val = m.Upper[v]
	}

	for _, ri := range e.varRows[v] {
		row := m.Rows[ri]
		coef, rest, ready := e.rowRest(row, v)
		if !ready || coef == 0 {
			continue
		}

		if minimize {
			// Tightest v >= ... implied by either row side.
			if coef > 0 && !math.IsInf(row.Lower, -1) {
				val = math.Max(val, (row.Lower-rest)/coef)
			}
			if coef < 0 && !math.IsInf(row.Upper, 1) {
				val = math.Max(val, (row.Upper-rest)/coef)
			}
		} else {
			if coef > 0 && !math.IsInf(row.Upper, 1) {
				val = math.Min(val, (row.Upper-rest)/coef)
			}
			if coef < 0 && !math.IsInf(row.Lower, -1) {
				val = math.Min(val, (row.Lower-rest)/coef)
			}
		}
	}

	if m.Types[v] == solver.Integer {
		if minimize {
			val = math.Ceil(val - eps)
		} else {
			val = math.Floor(val + eps)
		}
	}

	if val > m.Upper[v]+eps || val < m.Lower[v]-eps {
		return 0, false
	}

	return val, true
}

// rowRest sums the decided portion of a row, returning v's coefficient and
// whether every other referenced variable is decided.
func (e *engine) rowRest(row solver.Row, v solver.Var) (coef, rest float64, ready bool) {
	for _, t := range row.Terms {
		if t.Var == v {
			coef += t.Coef
			continue
		}
		if !e.decided[t.Var] {
			return 0, 0, false
		}
		rest += t.Coef * e.values[t.Var]
	}

	return coef, rest, true
}

// check verifies every row at the current point.
func (e *engine) check() bool {
	for _, row := range e.model.Rows {
		sum := 0.0
		for _, t := range row.Terms {
			sum += t.Coef * e.values[t.Var]
		}
		if sum < row.Lower-eps || sum > row.Upper+eps {
			return false
		}
	}

	return true
}

func (e *engine) clearDerived() {
	for _, v := range e.derived {
		e.decided[v] = false
	}
}

// relativeGap returns the relative distance between the incumbent objective
// and a valid lower bound.
func relativeGap(incumbent, bound float64) float64 {
	denom := math.Max(math.Abs(incumbent), eps)
	return (incumbent - bound) / denom
}
