package enumerate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cohort/solver"
	"github.com/arloliu/cohort/types"
)

func TestBackend_Optimize(t *testing.T) {
	t.Run("picks the cheapest candidate of each block", func(t *testing.T) {
		m := solver.NewModel()
		a, b := m.AddBinary(), m.AddBinary()
		c, d := m.AddBinary(), m.AddBinary()
		m.AddChoice(a, b)
		m.AddChoice(c, d)
		m.AddObjective(a, 3)
		m.AddObjective(b, 1)
		m.AddObjective(c, 2)
		m.AddObjective(d, 5)

		res, err := New().Optimize(context.Background(), m, solver.Options{})

		require.NoError(t, err)
		require.Equal(t, types.StatusOptimal, res.Status)
		require.InDelta(t, 3, res.Objective, 1e-9)
		require.False(t, res.Selected(a))
		require.True(t, res.Selected(b))
		require.True(t, res.Selected(c))
		require.False(t, res.Selected(d))
	})

	t.Run("honors linear rows over choice variables", func(t *testing.T) {
		// Two people, two groups, at most one person per group, cheap
		// option saturated: the second person must take the dear one.
		m := solver.NewModel()
		a1, a2 := m.AddBinary(), m.AddBinary()
		b1, b2 := m.AddBinary(), m.AddBinary()
		m.AddChoice(a1, a2)
		m.AddChoice(b1, b2)
		m.AddObjective(a1, 1)
		m.AddObjective(a2, 10)
		m.AddObjective(b1, 1)
		m.AddObjective(b2, 10)
		m.AddRowLE([]solver.Term{{Var: a1, Coef: 1}, {Var: b1, Coef: 1}}, 1)

		res, err := New().Optimize(context.Background(), m, solver.Options{})

		require.NoError(t, err)
		require.Equal(t, types.StatusOptimal, res.Status)
		require.InDelta(t, 11, res.Objective, 1e-9)
	})

	t.Run("respects fixed variables", func(t *testing.T) {
		m := solver.NewModel()
		a, b := m.AddBinary(), m.AddBinary()
		m.AddChoice(a, b)
		m.AddObjective(a, 1)
		m.AddObjective(b, 100)
		m.Fix(b, 1) // pin the dear candidate

		res, err := New().Optimize(context.Background(), m, solver.Options{})

		require.NoError(t, err)
		require.Equal(t, types.StatusOptimal, res.Status)
		require.True(t, res.Selected(b))
		require.False(t, res.Selected(a))
		require.InDelta(t, 100, res.Objective, 1e-9)
	})

	t.Run("resolves epigraph auxiliaries", func(t *testing.T) {
		// Minimize t with t >= 4 - 2x for a lone choice between x=1 and
		// its complement: choosing x=1 yields t=2.
		m := solver.NewModel()
		x, y := m.AddBinary(), m.AddBinary()
		m.AddChoice(x, y)
		tv := m.AddContinuous(0, inf())
		m.AddRowGE(4, []solver.Term{{Var: tv, Coef: 1}, {Var: x, Coef: 2}})
		m.AddObjective(tv, 1)

		res, err := New().Optimize(context.Background(), m, solver.Options{})

		require.NoError(t, err)
		require.Equal(t, types.StatusOptimal, res.Status)
		require.True(t, res.Selected(x))
		require.InDelta(t, 2, res.Objective, 1e-9)
		require.InDelta(t, 2, res.Value(tv), 1e-9)
	})

	t.Run("reports infeasibility", func(t *testing.T) {
		m := solver.NewModel()
		a, b := m.AddBinary(), m.AddBinary()
		m.AddChoice(a, b)
		m.AddRowLE([]solver.Term{{Var: a, Coef: 1}, {Var: b, Coef: 1}}, 0)

		res, err := New().Optimize(context.Background(), m, solver.Options{})

		require.NoError(t, err)
		require.Equal(t, types.StatusInfeasible, res.Status)
		require.Nil(t, res.Values)
	})

	t.Run("returns time limit status when the budget is exhausted", func(t *testing.T) {
		m := solver.NewModel()
		a, b := m.AddBinary(), m.AddBinary()
		m.AddChoice(a, b)
		m.AddObjective(a, 1)

		res, err := New().Optimize(context.Background(), m, solver.Options{TimeLimit: time.Nanosecond})

		require.NoError(t, err)
		require.Equal(t, types.StatusTimeLimit, res.Status)
	})

	t.Run("propagates context cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		m := solver.NewModel()
		a, b := m.AddBinary(), m.AddBinary()
		m.AddChoice(a, b)

		_, err := New().Optimize(ctx, m, solver.Options{})

		require.ErrorIs(t, err, context.Canceled)
	})
}

func inf() float64 {
	return 1e30
}
