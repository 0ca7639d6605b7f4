package cohort

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/cohort/solver"
	"github.com/arloliu/cohort/types"
)

// Grouping is the result of a partner partition.
//
// Groups holds the people of each group in insertion order; the ordering
// carries no meaning. Status is the backend's termination status for the
// solve that produced the grouping.
type Grouping struct {
	Groups [][]*types.Partner
	Status types.Status
}

// Partition splits partners into ngroups balanced groups, honoring pairwise
// partner bonuses.
//
// Hard constraints: every person lands in exactly one group, and each group's
// size stays within [floor(n/g), ceil(n/g)], never relaxed. The objective
// balances each group's total score against the global per-group mean (an
// L1 epigraph term) and adds prefs[i,j] for every co-assigned pair, so a
// negative entry rewards putting i and j together: a large magnitude
// dominates balance and forces the pairing, a small one concedes to balance.
//
// prefs may be nil for a fully neutral matrix. The input partners are never
// mutated; a non-optimal solve is logged and the best available grouping is
// still returned with its status.
//
// Parameters:
//   - ctx: Context for cancellation
//   - partners: People to partition
//   - prefs: Symmetric n×n bonus matrix (nil means all-neutral)
//   - ngroups: Number of groups to form
//
// Returns:
//   - *Grouping: Groups plus the backend termination status
//   - error: Validation or backend failure; nil for non-optimal statuses
func (p *Planner) Partition(ctx context.Context, partners []*types.Partner, prefs *mat.SymDense, ngroups int) (*Grouping, error) {
	n := len(partners)
	if n == 0 {
		return nil, ErrNoPartners
	}
	if ngroups < 1 || ngroups > n {
		return nil, fmt.Errorf("%w: %d groups for %d people", ErrGroupCount, ngroups, n)
	}
	if prefs != nil {
		if r := prefs.SymmetricDim(); r != n {
			return nil, fmt.Errorf("%w: preference matrix is %dx%d, want %dx%d", ErrShapeMismatch, r, r, n, n)
		}
	}

	m, vars := buildPartitionModel(partners, prefs, ngroups)

	res, err := p.solve(ctx, opPartition, m)
	if err != nil {
		return nil, err
	}
	if res.Status == types.StatusTimeLimit {
		keysAndValues := []any{
			"hint", "increase the time budget or strengthen the partner bonus magnitudes",
		}
		if res.HasGap {
			keysAndValues = append(keysAndValues, "relativeGap", res.Gap)
		}
		p.logger.Error("partition hit the time limit", keysAndValues...)
	}

	grouping := &Grouping{
		Groups: make([][]*types.Partner, ngroups),
		Status: res.Status,
	}
	if res.Values == nil {
		return grouping, nil
	}

	for i, person := range partners {
		for g := range ngroups {
			if res.Selected(vars[i][g]) {
				grouping.Groups[g] = append(grouping.Groups[g], person)
				break
			}
		}
	}

	return grouping, nil
}

// buildPartitionModel formulates the balanced-partition-with-bonuses MILP.
func buildPartitionModel(partners []*types.Partner, prefs *mat.SymDense, ngroups int) (*solver.Model, [][]solver.Var) {
	n := len(partners)
	m := solver.NewModel()

	// One binary indicator per (person, group); exactly one group per person.
	vars := make([][]solver.Var, n)
	for i := range n {
		vars[i] = make([]solver.Var, ngroups)
		for g := range ngroups {
			vars[i][g] = m.AddBinary()
		}
		m.AddChoice(vars[i]...)
	}

	// Group sizes bounded by the balanced range, as hard rows.
	low := float64(n / ngroups)
	high := low
	if n%ngroups != 0 {
		high++
	}
	for g := range ngroups {
		terms := make([]solver.Term, n)
		for i := range n {
			terms[i] = solver.Term{Var: vars[i][g], Coef: 1}
		}
		m.AddRow(low, terms, high)
	}

	// L1 balance term: spread_g >= |group score - target|, t >= sum(spread),
	// minimize t. The epigraph form avoids biasing the sign of deviations.
	total := 0.0
	for _, person := range partners {
		total += person.Score
	}
	target := total / float64(ngroups)

	spreads := make([]solver.Var, ngroups)
	for g := range ngroups {
		spread := m.AddContinuous(0, inf)
		spreads[g] = spread

		over := make([]solver.Term, 0, n+1)
		under := make([]solver.Term, 0, n+1)
		over = append(over, solver.Term{Var: spread, Coef: 1})
		under = append(under, solver.Term{Var: spread, Coef: 1})
		for i, person := range partners {
			over = append(over, solver.Term{Var: vars[i][g], Coef: -person.Score})
			under = append(under, solver.Term{Var: vars[i][g], Coef: person.Score})
		}
		m.AddRowGE(-target, over)
		m.AddRowGE(target, under)
	}

	t := m.AddContinuous(0, inf)
	envelope := make([]solver.Term, 0, ngroups+1)
	envelope = append(envelope, solver.Term{Var: t, Coef: 1})
	for _, spread := range spreads {
		envelope = append(envelope, solver.Term{Var: spread, Coef: -1})
	}
	m.AddRowGE(0, envelope)
	m.AddObjective(t, 1)

	if prefs == nil {
		return m, vars
	}

	// Pairing term: a co-assignment indicator per nonzero pair and group,
	// priced at the pair's preference value. The linking row depends on the
	// sign: a reward needs a cap so the minimizer cannot claim it for free,
	// a penalty needs a floor so the minimizer cannot dodge it.
	for i := range n {
		for j := i + 1; j < n; j++ {
			bonus := prefs.At(i, j)
			if bonus == 0 {
				continue
			}
			for g := range ngroups {
				co := m.AddBinary()
				if bonus < 0 {
					m.AddRowLE([]solver.Term{
						{Var: co, Coef: 1},
						{Var: vars[i][g], Coef: -0.5},
						{Var: vars[j][g], Coef: -0.5},
					}, 0)
				} else {
					m.AddRowGE(-1, []solver.Term{
						{Var: co, Coef: 1},
						{Var: vars[i][g], Coef: -1},
						{Var: vars[j][g], Coef: -1},
					})
				}
				m.AddObjective(co, bonus)
			}
		}
	}

	return m, vars
}
