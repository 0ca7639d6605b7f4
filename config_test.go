package cohort

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, Weights{Preference: 1, Imbalance: 1, Affiliation: 1, Repeat: 1}, cfg.Weights)
	require.Zero(t, cfg.TimeLimit)
	require.True(t, cfg.Silent)
	require.True(t, cfg.SentinelImbalance)
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, 10*time.Second, cfg.TimeLimit)
}

func TestConfigValidate(t *testing.T) {
	t.Run("zero weights are valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Weights = Weights{}

		require.NoError(t, cfg.Validate())
	})

	t.Run("negative weight", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Weights.Affiliation = -0.5

		err := cfg.Validate()

		require.Error(t, err)
		require.Contains(t, err.Error(), "affiliation")
	})

	t.Run("negative time limit", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.TimeLimit = -time.Second

		err := cfg.Validate()

		require.Error(t, err)
		require.Contains(t, err.Error(), "TimeLimit")
	})
}
