// Package highs provides a solver.Backend backed by the HiGHS optimizer via
// the github.com/lanl/highs bindings.
//
// This is the production backend for realistic problem sizes. The bindings
// expose HiGHS's columnar model form directly, so translation from a
// solver.Model is a straight re-indexing: choice blocks become equality rows
// and everything else maps one-to-one.
package highs

import (
	"context"
	"fmt"
	"strings"

	lhighs "github.com/lanl/highs"

	"github.com/arloliu/cohort/solver"
	"github.com/arloliu/cohort/types"
)

// Backend solves models with HiGHS.
type Backend struct{}

var _ solver.Backend = (*Backend)(nil)

// New creates a HiGHS-backed solver backend.
func New() *Backend {
	return &Backend{}
}

// Optimize translates m into the bindings' columnar form and solves it.
//
// The wall-clock budget in opts is advisory for this backend: the underlying
// cgo call cannot be interrupted, so HiGHS runs to completion and the status
// it reports is returned as-is. Tuning attributes are rejected because the
// bindings expose no option plumbing.
func (b *Backend) Optimize(ctx context.Context, m *solver.Model, opts solver.Options) (*solver.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(opts.Tuning) > 0 {
		return nil, fmt.Errorf("highs backend cannot apply tuning attribute %q", opts.Tuning[0].Name)
	}

	lp := new(lhighs.Model)
	ncols := m.NumVars()

	lp.VarTypes = make([]lhighs.VariableType, ncols)
	lp.ColLower = make([]float64, ncols)
	lp.ColUpper = make([]float64, ncols)
	lp.ColCosts = make([]float64, ncols)

	for j := range ncols {
		if m.Types[j] == solver.Integer {
			lp.VarTypes[j] = lhighs.IntegerType
		}
		lp.ColLower[j] = m.Lower[j]
		lp.ColUpper[j] = m.Upper[j]
		lp.ColCosts[j] = m.Objective[j]
	}

	row := 0
	for _, r := range m.Rows {
		for _, t := range r.Terms {
			lp.ConstMatrix = append(lp.ConstMatrix, lhighs.Nonzero{Row: row, Col: int(t.Var), Val: t.Coef})
		}
		lp.RowLower = append(lp.RowLower, r.Lower)
		lp.RowUpper = append(lp.RowUpper, r.Upper)
		row++
	}

	// One-hot blocks become sum(x) == 1 rows.
	for _, block := range m.Choices {
		for _, v := range block {
			lp.ConstMatrix = append(lp.ConstMatrix, lhighs.Nonzero{Row: row, Col: int(v), Val: 1})
		}
		lp.RowLower = append(lp.RowLower, 1)
		lp.RowUpper = append(lp.RowUpper, 1)
		row++
	}

	sol, err := lp.Solve()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrSolveFailed, err)
	}

	res := &solver.Result{
		Status:    classify(sol.Status),
		Objective: sol.Objective,
	}
	if len(sol.ColumnPrimal) >= ncols {
		res.Values = sol.ColumnPrimal[:ncols]
	}

	return res, nil
}

// classify maps the bindings' model status onto the canonical status enum.
//
// Only optimality has a stable constant in the bindings; the remaining states
// are classified from the status text.
func classify(s lhighs.ModelStatus) types.Status {
	if s == lhighs.Optimal {
		return types.StatusOptimal
	}

	text := strings.ToLower(s.String())
	switch {
	case strings.Contains(text, "infeasible"):
		return types.StatusInfeasible
	case strings.Contains(text, "time"):
		return types.StatusTimeLimit
	default:
		return types.StatusOther
	}
}
