package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestModel_AddVar(t *testing.T) {
	t.Run("assigns sequential indices", func(t *testing.T) {
		m := NewModel()

		a := m.AddBinary()
		b := m.AddContinuous(0, 5)
		c := m.AddVar(Integer, -2, 2)

		require.Equal(t, Var(0), a)
		require.Equal(t, Var(1), b)
		require.Equal(t, Var(2), c)
		require.Equal(t, 3, m.NumVars())
	})

	t.Run("binary variables are integer in [0,1]", func(t *testing.T) {
		m := NewModel()
		v := m.AddBinary()

		require.Equal(t, Integer, m.Types[v])
		require.Equal(t, 0.0, m.Lower[v])
		require.Equal(t, 1.0, m.Upper[v])
	})
}

func TestModel_Objective(t *testing.T) {
	m := NewModel()
	v := m.AddBinary()

	m.AddObjective(v, 2)
	m.AddObjective(v, 0.5)

	require.Equal(t, 2.5, m.Objective[v])
}

func TestModel_Rows(t *testing.T) {
	t.Run("one-sided rows use infinite bounds", func(t *testing.T) {
		m := NewModel()
		v := m.AddBinary()

		m.AddRowGE(1, []Term{{Var: v, Coef: 1}})
		m.AddRowLE([]Term{{Var: v, Coef: 1}}, 3)

		require.True(t, math.IsInf(m.Rows[0].Upper, 1))
		require.True(t, math.IsInf(m.Rows[1].Lower, -1))
	})

	t.Run("choice blocks count as rows", func(t *testing.T) {
		m := NewModel()
		a, b := m.AddBinary(), m.AddBinary()
		m.AddChoice(a, b)
		m.AddRowLE([]Term{{Var: a, Coef: 1}}, 1)

		require.Equal(t, 2, m.NumRows())
	})
}

func TestModel_Fix(t *testing.T) {
	m := NewModel()
	v := m.AddBinary()

	require.False(t, m.Fixed(v))

	m.Fix(v, 1)

	require.True(t, m.Fixed(v))
	require.Equal(t, 1.0, m.Lower[v])
	require.Equal(t, 1.0, m.Upper[v])
}

func TestResult_Selected(t *testing.T) {
	t.Run("thresholds at one half", func(t *testing.T) {
		r := &Result{Values: []float64{0.999, 0.499, 0.501}}

		require.True(t, r.Selected(0))
		require.False(t, r.Selected(1))
		require.True(t, r.Selected(2))
	})

	t.Run("nil values select nothing", func(t *testing.T) {
		r := &Result{}

		require.False(t, r.Selected(0))
		require.Equal(t, 0.0, r.Value(0))
	})
}
