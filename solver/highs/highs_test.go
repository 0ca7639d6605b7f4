package highs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cohort/solver"
)

func TestOptimize_RejectsTuning(t *testing.T) {
	m := solver.NewModel()
	m.AddBinary()

	_, err := New().Optimize(context.Background(), m, solver.Options{
		Tuning: []solver.Attr{{Name: "mip_rel_gap", Value: "0.05"}},
	})

	require.Error(t, err)
	require.Contains(t, err.Error(), "mip_rel_gap")
}

func TestOptimize_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Optimize(ctx, solver.NewModel(), solver.Options{})

	require.ErrorIs(t, err, context.Canceled)
}
