package cohort

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/arloliu/cohort/internal/logger"
	"github.com/arloliu/cohort/internal/metrics"
	"github.com/arloliu/cohort/solver"
	"github.com/arloliu/cohort/types"
)

// Operation names used for logging and metrics labels.
const (
	opPartition = "partition"
	opAssign    = "assign"
)

var inf = math.Inf(1)

// Planner formulates group-assignment models and turns solver output into
// discrete assignments.
//
// The pipeline is single-threaded and synchronous: build model, block on the
// backend, extract, optionally analyze. A Planner is safe to reuse across
// calls but not for concurrent calls; the library processes one batch at a
// time.
type Planner struct {
	cfg     Config
	backend solver.Backend
	logger  Logger
	metrics MetricsCollector
}

// NewPlanner creates a Planner with the given configuration and solver
// backend.
//
// The backend is a required dependency: the planner assumes nothing about
// solver internals beyond the termination status and per-column values, so
// any competent mixed-integer solver can be injected.
//
// Parameters:
//   - cfg: Planner configuration (nil uses DefaultConfig)
//   - backend: Solver backend implementation
//   - opts: Optional dependencies (logger, metrics)
//
// Returns:
//   - *Planner: Initialized planner
//   - error: ErrBackendRequired or ErrInvalidConfig
func NewPlanner(cfg *Config, backend solver.Backend, opts ...Option) (*Planner, error) {
	if backend == nil {
		return nil, ErrBackendRequired
	}

	config := DefaultConfig()
	if cfg != nil {
		config = *cfg
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}
	if options.logger == nil {
		options.logger = logger.NewNop()
	}
	if options.metrics == nil {
		options.metrics = metrics.NewNop()
	}

	return &Planner{
		cfg:     config,
		backend: backend,
		logger:  options.logger,
		metrics: options.metrics,
	}, nil
}

// solve runs one blocking backend call with instrumentation and the shared
// best-effort failure policy: a non-optimal status is logged as a diagnostic
// and the best available solution is still returned.
func (p *Planner) solve(ctx context.Context, op string, m *solver.Model) (*solver.Result, error) {
	p.metrics.RecordModelSize(op, m.NumVars(), m.NumRows())
	p.logger.Debug("solving model", "op", op, "variables", m.NumVars(), "constraints", m.NumRows())

	opts := solver.Options{
		Silent:    p.cfg.Silent,
		TimeLimit: p.cfg.TimeLimit,
		Tuning:    p.cfg.Tuning,
	}

	start := time.Now()
	res, err := p.backend.Optimize(ctx, m, opts)
	elapsed := time.Since(start)

	p.metrics.RecordSolveDuration(op, elapsed.Seconds())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolveFailed, err)
	}

	p.metrics.RecordSolveStatus(op, res.Status)
	if res.Values != nil {
		p.metrics.RecordObjective(op, res.Objective)
	}

	if res.Status != types.StatusOptimal {
		p.logger.Error("solver terminated without proving optimality",
			"op", op,
			"status", res.Status,
			"elapsed", elapsed,
		)
	} else {
		p.logger.Info("solve complete", "op", op, "objective", res.Objective, "elapsed", elapsed)
	}

	return res, nil
}
