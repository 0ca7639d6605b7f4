package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusOptimal, "Optimal"},
		{StatusTimeLimit, "TimeLimit"},
		{StatusInfeasible, "Infeasible"},
		{StatusOther, "Other"},
		{Status(42), "Unknown"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.want, tc.status.String())
	}
}
