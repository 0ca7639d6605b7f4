package cohort

import (
	"fmt"
	"time"

	"github.com/arloliu/cohort/solver"
)

// Weights are the objective coefficients of the immersion assignment model.
//
// Each term is minimized independently scaled by its weight; a weight of 0
// disables the term entirely. All weights must be non-negative.
type Weights struct {
	// Preference scales the summed preference cost of chosen options.
	Preference float64 `yaml:"preference"`

	// Imbalance scales the per-week max-minus-min option occupancy spread.
	Imbalance float64 `yaml:"imbalance"`

	// Affiliation scales extra same-program co-occurrences within an option.
	Affiliation float64 `yaml:"affiliation"`

	// Repeat scales extra cross-week repeated pairings beyond the first
	// shared week.
	Repeat float64 `yaml:"repeat"`
}

// Config is the configuration for the Planner.
//
// All duration fields accept standard Go duration strings like "30s", "5m".
type Config struct {
	// Weights holds the immersion objective term weights.
	// The partner partition model is unaffected: its balance and pairing
	// terms trade off directly through the preference magnitudes.
	Weights Weights `yaml:"weights"`

	// TimeLimit is the wall-clock budget per solve; 0 means no limit.
	// Backends return the best incumbent found when the budget expires.
	TimeLimit time.Duration `yaml:"timeLimit"`

	// Silent suppresses backend log output when true.
	Silent bool `yaml:"silent"`

	// SentinelImbalance controls whether weeks with an all-zero preference
	// matrix (externally decided weeks) still count toward the occupancy
	// imbalance term. Preference cost always excludes such weeks.
	SentinelImbalance bool `yaml:"sentinelImbalance"`

	// Tuning is an open list of backend-specific attributes, passed through
	// uninterpreted and validated only by the backend.
	Tuning []solver.Attr `yaml:"-"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Preference:  1,
			Imbalance:   1,
			Affiliation: 1,
			Repeat:      1,
		},
		TimeLimit:         0,
		Silent:            true,
		SentinelImbalance: true,
	}
}

// TestConfig returns a configuration suited for fast, quiet test runs.
//
// Returns:
//   - Config: Configuration with test-friendly values
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.TimeLimit = 10 * time.Second

	return cfg
}

// Validate checks configuration constraints and returns an error for invalid
// values.
//
// Rules:
//   - All weights must be >= 0 (0 disables a term)
//   - TimeLimit must be >= 0
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	weights := []struct {
		name  string
		value float64
	}{
		{"preference", cfg.Weights.Preference},
		{"imbalance", cfg.Weights.Imbalance},
		{"affiliation", cfg.Weights.Affiliation},
		{"repeat", cfg.Weights.Repeat},
	}
	for _, w := range weights {
		if w.value < 0 {
			return fmt.Errorf("weight %q must be >= 0, got %v", w.name, w.value)
		}
	}

	if cfg.TimeLimit < 0 {
		return fmt.Errorf("TimeLimit must be >= 0, got %v", cfg.TimeLimit)
	}

	return nil
}
