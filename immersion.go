package cohort

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/cohort/solver"
	"github.com/arloliu/cohort/types"
)

// Assign extends every student's assignment sequence by one option per
// remaining week, minimizing the weighted sum of preference cost, per-week
// size imbalance, same-program co-occurrences, and cross-week repeated
// pairings.
//
// prefs holds one n×options matrix per week. Every entry of a week must be
// strictly positive (lower is better) unless the whole week is zero, which
// marks a sentinel week: its choices are externally supplied and contribute
// nothing to the preference cost.
//
// Already-populated Assigned entries are fixed in the model, never
// re-optimized; only the remaining weeks are free. If every student already
// carries a full assignment the call is a no-op: a warning is logged and the
// backend is never contacted. Students are mutated in place through the
// caller's pointers; Unassign is the sanctioned reset.
//
// Parameters:
//   - ctx: Context for cancellation
//   - students: People to assign (mutated in place)
//   - prefs: One preference matrix per week, each n×options[w]
//
// Returns:
//   - types.Status: Backend termination status (StatusOptimal for a no-op)
//   - error: Validation or backend failure; nil for non-optimal statuses
func (p *Planner) Assign(ctx context.Context, students []*types.Student, prefs []*mat.Dense) (types.Status, error) {
	if len(students) == 0 {
		return types.StatusOther, ErrNoStudents
	}
	weeks, err := checkWeeks(students, prefs)
	if err != nil {
		return types.StatusOther, err
	}

	if allAssigned(students, len(prefs)) {
		p.logger.Warn("all students already assigned, nothing to solve",
			"students", len(students),
			"weeks", len(prefs),
		)
		return types.StatusOptimal, nil
	}

	m, vars := p.buildImmersionModel(students, weeks)

	res, err := p.solve(ctx, opAssign, m)
	if err != nil {
		return types.StatusOther, err
	}
	if res.Values == nil {
		p.logger.Error("no solution available to extract", "status", res.Status)
		return res.Status, nil
	}

	// Append one 1-based option per free week, in week order. Fixed weeks
	// are never touched.
	for i, student := range students {
		for w := len(student.Assigned); w < len(weeks); w++ {
			for o := range weeks[w].options {
				if res.Selected(vars[i][weeks[w].offset+o]) {
					student.Assign(o + 1)
					break
				}
			}
		}
	}

	return res.Status, nil
}

// week is the validated shape of one assignment round.
type week struct {
	prefs    *mat.Dense
	options  int
	offset   int // start of this week's range in the concatenated option space
	sentinel bool
}

// checkWeeks validates shapes and domains before any model is constructed.
func checkWeeks(students []*types.Student, prefs []*mat.Dense) ([]week, error) {
	n := len(students)
	weeks := make([]week, len(prefs))

	offset := 0
	for w, pm := range prefs {
		rows, cols := pm.Dims()
		if rows != n {
			return nil, fmt.Errorf("%w: week %d has %d rows, want %d", ErrShapeMismatch, w+1, rows, n)
		}

		sentinel := true
		positive := true
		for i := range rows {
			for o := range cols {
				v := pm.At(i, o)
				if v != 0 {
					sentinel = false
				}
				if v <= 0 {
					positive = false
				}
			}
		}
		if !sentinel && !positive {
			return nil, fmt.Errorf("%w: week %d must be strictly positive or entirely zero", ErrNonPositivePreference, w+1)
		}

		weeks[w] = week{prefs: pm, options: cols, offset: offset, sentinel: sentinel}
		offset += cols
	}

	for _, student := range students {
		if len(student.Assigned) > len(prefs) {
			return nil, fmt.Errorf("%w: %s has %d assignments for %d weeks",
				ErrShapeMismatch, student.Name(), len(student.Assigned), len(prefs))
		}
		for w, chosen := range student.Assigned {
			if chosen == types.NotParticipating {
				continue
			}
			if chosen < 1 || chosen > weeks[w].options {
				return nil, fmt.Errorf("%w: %s week %d option %d, want 1..%d",
					ErrOptionOutOfRange, student.Name(), w+1, chosen, weeks[w].options)
			}
		}
	}

	return weeks, nil
}

// allAssigned reports whether every student already has a full assignment.
func allAssigned(students []*types.Student, nweeks int) bool {
	for _, student := range students {
		if len(student.Assigned) < nweeks {
			return false
		}
	}

	return true
}

// buildImmersionModel formulates the multi-week assignment MILP.
//
// vars[i] spans the concatenated option space: one binary indicator per
// (student, week, option), with pre-assigned weeks pinned by Fix.
func (p *Planner) buildImmersionModel(students []*types.Student, weeks []week) (*solver.Model, [][]solver.Var) {
	n := len(students)
	m := solver.NewModel()
	weights := p.cfg.Weights

	total := 0
	for _, wk := range weeks {
		total += wk.options
	}

	vars := make([][]solver.Var, n)
	for i, student := range students {
		vars[i] = make([]solver.Var, total)
		for w, wk := range weeks {
			for o := range wk.options {
				v := m.AddBinary()
				vars[i][wk.offset+o] = v
				if !wk.sentinel && weights.Preference > 0 {
					m.AddObjective(v, weights.Preference*wk.prefs.At(i, o))
				}
			}

			block := vars[i][wk.offset : wk.offset+wk.options]
			switch {
			case w < len(student.Assigned):
				// Pre-assigned week: hard equality, not re-optimized.
				chosen := student.Assigned[w]
				for o, v := range block {
					if o+1 == chosen {
						m.Fix(v, 1)
					} else {
						m.Fix(v, 0)
					}
				}
			default:
				// Free week: exactly one option.
				m.AddChoice(block...)
			}
		}
	}

	if weights.Imbalance > 0 {
		p.addImbalanceTerm(m, vars, weeks, n)
	}
	if weights.Affiliation > 0 {
		p.addAffiliationTerm(m, vars, students, weeks)
	}
	if weights.Repeat > 0 {
		p.addRepeatTerm(m, vars, total, n)
	}

	return m, vars
}

// addImbalanceTerm adds, per week, the difference between the largest and
// smallest option occupancy via two continuous epigraph variables.
func (p *Planner) addImbalanceTerm(m *solver.Model, vars [][]solver.Var, weeks []week, n int) {
	for _, wk := range weeks {
		if wk.sentinel && !p.cfg.SentinelImbalance {
			continue
		}

		most := m.AddContinuous(0, float64(n))
		least := m.AddContinuous(0, float64(n))
		for o := range wk.options {
			over := make([]solver.Term, 0, n+1)
			under := make([]solver.Term, 0, n+1)
			over = append(over, solver.Term{Var: most, Coef: 1})
			under = append(under, solver.Term{Var: least, Coef: 1})
			for i := range vars {
				over = append(over, solver.Term{Var: vars[i][wk.offset+o], Coef: -1})
				under = append(under, solver.Term{Var: vars[i][wk.offset+o], Coef: -1})
			}
			m.AddRowGE(0, over)  // most >= occupancy
			m.AddRowLE(under, 0) // least <= occupancy
		}
		m.AddObjective(most, p.cfg.Weights.Imbalance)
		m.AddObjective(least, -p.cfg.Weights.Imbalance)
	}
}

// addAffiliationTerm adds, per (week, option, program), an auxiliary bounded
// below by the extra same-program co-occurrences in that cell.
func (p *Planner) addAffiliationTerm(m *solver.Model, vars [][]solver.Var, students []*types.Student, weeks []week) {
	byProgram := make(map[string][]int)
	for i, student := range students {
		byProgram[student.Program] = append(byProgram[student.Program], i)
	}

	for _, wk := range weeks {
		for o := range wk.options {
			for _, members := range byProgram {
				if len(members) < 2 {
					continue
				}

				extra := m.AddContinuous(0, inf)
				terms := make([]solver.Term, 0, len(members)+1)
				terms = append(terms, solver.Term{Var: extra, Coef: 1})
				for _, i := range members {
					terms = append(terms, solver.Term{Var: vars[i][wk.offset+o], Coef: -1})
				}
				m.AddRowGE(-1, terms) // extra >= count - 1
				m.AddObjective(extra, p.cfg.Weights.Affiliation)
			}
		}
	}
}

// addRepeatTerm adds, per unordered pair, a co-assignment indicator per
// option and an auxiliary bounded below by the pair's extra shared weeks.
func (p *Planner) addRepeatTerm(m *solver.Model, vars [][]solver.Var, total, n int) {
	for i := range n {
		for j := i + 1; j < n; j++ {
			together := make([]solver.Term, 0, total+1)
			for t := range total {
				co := m.AddBinary()
				m.AddRowGE(-1, []solver.Term{
					{Var: co, Coef: 1},
					{Var: vars[i][t], Coef: -1},
					{Var: vars[j][t], Coef: -1},
				}) // co >= x_i + x_j - 1
				together = append(together, solver.Term{Var: co, Coef: -1})
			}

			extra := m.AddContinuous(0, inf)
			together = append(together, solver.Term{Var: extra, Coef: 1})
			m.AddRowGE(-1, together) // extra >= shared weeks - 1
			m.AddObjective(extra, p.cfg.Weights.Repeat)
		}
	}
}
