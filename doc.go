// Package cohort assigns people to discrete groups across one or more
// rounds, optimizing a weighted combination of preference satisfaction,
// group-size balance, affiliation diversity, and partner-repetition
// avoidance.
//
// Two related problem variants are supported: a single-round partition that
// balances a continuous per-person score across equally-sized groups while
// honoring pairwise partner bonuses (Planner.Partition), and a multi-week
// assignment that minimizes summed preference cost subject to per-week
// group-size balance, same-affiliation penalties, and cross-week
// repeat-partner penalties (Planner.Assign).
//
// # Quick Start
//
//	pl, err := cohort.NewPlanner(nil, highs.New())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	status, err := pl.Assign(ctx, students, weeklyPrefs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := cohort.Analyze(students, weeklyPrefs)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(report.Render())
//
// # Key Features
//
//   - Solver-agnostic: models are plain variable/constraint descriptions
//     handed to an injected solver.Backend; a HiGHS-backed implementation
//     ships in solver/highs
//   - Pre-assignment aware: already-populated weeks become hard equalities,
//     enabling incremental solve-inspect-solve workflows
//   - Best-effort by policy: a time-limited or otherwise non-optimal solve
//     is logged as a diagnostic and the best incumbent is still extracted
//   - Pure post-hoc analysis: Analyze computes preference means, occupancy
//     imbalance, and collision maps from finalized assignments alone
//
// The pipeline is synchronous and single-threaded; the only blocking call is
// the solver itself, bounded by Config.TimeLimit.
package cohort
