package cohort

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/cohort/internal/logger"
	"github.com/arloliu/cohort/solver"
	"github.com/arloliu/cohort/types"
)

func testPartners() []*types.Partner {
	return []*types.Partner{
		{FirstName: "Ada", LastName: "Lovelace", Score: 1},
		{FirstName: "Grace", LastName: "Hopper", Score: 2},
		{FirstName: "Alan", LastName: "Turing", Score: 3},
		{FirstName: "Edsger", LastName: "Dijkstra", Score: 1},
		{FirstName: "Barbara", LastName: "Liskov", Score: 2},
		{FirstName: "Donald", LastName: "Knuth", Score: 3},
	}
}

// groupScore sums the scores of one group.
func groupScore(group []*types.Partner) float64 {
	total := 0.0
	for _, p := range group {
		total += p.Score
	}

	return total
}

func groupOf(t *testing.T, grouping *Grouping, person *types.Partner) int {
	t.Helper()

	for g, group := range grouping.Groups {
		for _, member := range group {
			if member.Same(person) {
				return g
			}
		}
	}
	t.Fatalf("%s not assigned to any group", person.LastName)

	return -1
}

func TestPartition(t *testing.T) {
	t.Run("balances group scores without preferences", func(t *testing.T) {
		pl := newTestPlanner(t, nil)
		partners := testPartners()

		grouping, err := pl.Partition(context.Background(), partners, nil, 2)

		require.NoError(t, err)
		require.Equal(t, types.StatusOptimal, grouping.Status)
		require.Len(t, grouping.Groups, 2)
		for _, group := range grouping.Groups {
			require.Len(t, group, 3)
			require.InDelta(t, 6.0, groupScore(group), 1e-9)
		}
	})

	t.Run("balances three groups of two", func(t *testing.T) {
		pl := newTestPlanner(t, nil)
		partners := testPartners()

		grouping, err := pl.Partition(context.Background(), partners, nil, 3)

		require.NoError(t, err)
		require.Equal(t, types.StatusOptimal, grouping.Status)
		for _, group := range grouping.Groups {
			require.Len(t, group, 2)
			require.InDelta(t, 4.0, groupScore(group), 1e-9)
		}
	})

	t.Run("strong bonus overrides balance", func(t *testing.T) {
		pl := newTestPlanner(t, nil)
		partners := testPartners()

		// Pairing the two highest scorers makes a perfectly balanced split
		// impossible, so only a dominant bonus should force it.
		prefs := mat.NewSymDense(len(partners), nil)
		prefs.SetSym(2, 5, -1000)

		grouping, err := pl.Partition(context.Background(), partners, prefs, 2)

		require.NoError(t, err)
		require.Equal(t, types.StatusOptimal, grouping.Status)
		require.Equal(t, groupOf(t, grouping, partners[2]), groupOf(t, grouping, partners[5]))
	})

	t.Run("weak bonus concedes to balance", func(t *testing.T) {
		pl := newTestPlanner(t, nil)
		partners := testPartners()

		prefs := mat.NewSymDense(len(partners), nil)
		prefs.SetSym(2, 5, -0.1)

		grouping, err := pl.Partition(context.Background(), partners, prefs, 2)

		require.NoError(t, err)
		require.NotEqual(t, groupOf(t, grouping, partners[2]), groupOf(t, grouping, partners[5]))
		for _, group := range grouping.Groups {
			require.InDelta(t, 6.0, groupScore(group), 1e-9)
		}
	})

	t.Run("penalty keeps a pair apart", func(t *testing.T) {
		pl := newTestPlanner(t, nil)
		partners := testPartners()

		// Splitting partners 0 and 3 (both score 1) keeps the groups balanced,
		// so the penalty costs nothing to honor.
		prefs := mat.NewSymDense(len(partners), nil)
		prefs.SetSym(0, 3, 1000)

		grouping, err := pl.Partition(context.Background(), partners, prefs, 2)

		require.NoError(t, err)
		require.NotEqual(t, groupOf(t, grouping, partners[0]), groupOf(t, grouping, partners[3]))
	})

	t.Run("every person lands in exactly one group", func(t *testing.T) {
		pl := newTestPlanner(t, nil)
		partners := testPartners()

		grouping, err := pl.Partition(context.Background(), partners, nil, 4)

		require.NoError(t, err)
		total := 0
		for _, group := range grouping.Groups {
			total += len(group)
			require.GreaterOrEqual(t, len(group), 1)
			require.LessOrEqual(t, len(group), 2)
		}
		require.Equal(t, len(partners), total)
	})

	t.Run("validates inputs", func(t *testing.T) {
		pl := newTestPlanner(t, nil)
		partners := testPartners()

		_, err := pl.Partition(context.Background(), nil, nil, 2)
		require.ErrorIs(t, err, ErrNoPartners)

		_, err = pl.Partition(context.Background(), partners, nil, 0)
		require.ErrorIs(t, err, ErrGroupCount)

		_, err = pl.Partition(context.Background(), partners, nil, len(partners)+1)
		require.ErrorIs(t, err, ErrGroupCount)

		_, err = pl.Partition(context.Background(), partners, mat.NewSymDense(3, nil), 2)
		require.ErrorIs(t, err, ErrShapeMismatch)
	})

	t.Run("logs a remediation hint on time limit", func(t *testing.T) {
		backend := &spyBackend{canned: &solver.Result{
			Status: types.StatusTimeLimit,
			HasGap: true,
			Gap:    0.25,
		}}
		log := logger.NewTest(t)
		pl, err := NewPlanner(nil, backend, WithLogger(log))
		require.NoError(t, err)

		grouping, err := pl.Partition(context.Background(), testPartners(), nil, 2)

		require.NoError(t, err)
		require.Equal(t, types.StatusTimeLimit, grouping.Status)
		require.True(t, log.Contains("ERROR", "time limit"))
	})
}
