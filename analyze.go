package cohort

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/arloliu/cohort/types"
)

// Cell identifies one (week, option, program) location in an assignment.
// Week and Option are 1-based, matching Student.Assigned semantics.
type Cell struct {
	Week    int
	Option  int
	Program string
}

// Report holds aggregate statistics computed from a finalized assignment.
//
// The maps only carry entries for locations where a collision actually
// occurred; lookups of absent keys yield zero.
type Report struct {
	// MeanPreference is the average preference value of the chosen options
	// over all (student, non-sentinel week) pairs.
	MeanPreference float64

	// MaxImbalance is the largest per-week spread between the most and
	// least occupied option.
	MaxImbalance int

	// StudentCollisions counts, per unordered pair of students, the weeks
	// in which both share the same option. Keys come from PairKey.
	StudentCollisions map[string]int

	// ProgramCollisions counts, per (week, option, program) cell with two
	// or more same-program students, the extra co-occurrences beyond the
	// first (the optimizer's own penalty semantics).
	ProgramCollisions map[Cell]int
}

// PairKey returns the stable, order-independent key identifying an unordered
// pair of students in Report.StudentCollisions.
//
// The key joins both "Last, First" names lexicographically, so PairKey(a, b)
// and PairKey(b, a) are identical.
func PairKey(a, b *types.Student) string {
	x, y := a.Name(), b.Name()
	if x > y {
		x, y = y, x
	}

	return x + "|" + y
}

// Analyze computes assignment statistics from finalized assignments.
//
// It is a pure function over the students' Assigned sequences and the
// preference matrices; the solver is never consulted. Weeks with an all-zero
// preference matrix are excluded from the preference mean but still counted
// for occupancy and collisions.
//
// Parameters:
//   - students: People with (possibly partial) assignments
//   - prefs: One preference matrix per week, each n×options[w]
//
// Returns:
//   - *Report: Aggregate statistics
//   - error: Shape or option-range violation
func Analyze(students []*types.Student, prefs []*mat.Dense) (*Report, error) {
	if len(students) == 0 {
		return nil, ErrNoStudents
	}
	weeks, err := checkWeeks(students, prefs)
	if err != nil {
		return nil, err
	}

	report := &Report{
		StudentCollisions: make(map[string]int),
		ProgramCollisions: make(map[Cell]int),
	}

	prefSum := 0.0
	prefCount := 0

	for w, wk := range weeks {
		occupancy := make([]int, wk.options)
		programs := make(map[Cell]int)

		for i, student := range students {
			if w >= len(student.Assigned) {
				continue
			}
			chosen := student.Assigned[w]
			if chosen == types.NotParticipating {
				continue
			}

			occupancy[chosen-1]++
			programs[Cell{Week: w + 1, Option: chosen, Program: student.Program}]++
			if !wk.sentinel {
				prefSum += wk.prefs.At(i, chosen-1)
				prefCount++
			}

			for j := i + 1; j < len(students); j++ {
				other := students[j]
				if w < len(other.Assigned) && other.Assigned[w] == chosen {
					report.StudentCollisions[PairKey(student, other)]++
				}
			}
		}

		if s := spread(occupancy); s > report.MaxImbalance {
			report.MaxImbalance = s
		}
		for cell, count := range programs {
			if count >= 2 {
				report.ProgramCollisions[cell] = count - 1
			}
		}
	}

	if prefCount > 0 {
		report.MeanPreference = prefSum / float64(prefCount)
	}

	return report, nil
}

// spread returns max - min occupancy, counting empty options.
func spread(occupancy []int) int {
	if len(occupancy) == 0 {
		return 0
	}

	most, least := occupancy[0], occupancy[0]
	for _, c := range occupancy[1:] {
		if c > most {
			most = c
		}
		if c < least {
			least = c
		}
	}

	return most - least
}

// TotalProgramCollisions returns the summed extra same-program co-occurrences
// across all cells.
func (r *Report) TotalProgramCollisions() int {
	total := 0
	for _, c := range r.ProgramCollisions {
		total += c
	}

	return total
}

// MaxProgramCollisions returns the largest extra same-program count in any
// single cell.
func (r *Report) MaxProgramCollisions() int {
	most := 0
	for _, c := range r.ProgramCollisions {
		if c > most {
			most = c
		}
	}

	return most
}

// TotalStudentCollisions returns the summed shared-week counts across all
// pairs.
func (r *Report) TotalStudentCollisions() int {
	total := 0
	for _, c := range r.StudentCollisions {
		total += c
	}

	return total
}

// MaxStudentCollisions returns the largest shared-week count for any single
// pair.
func (r *Report) MaxStudentCollisions() int {
	most := 0
	for _, c := range r.StudentCollisions {
		if c > most {
			most = c
		}
	}

	return most
}

// Render formats the report with the fixed wording expected by downstream
// consumers. Do not reword these lines.
func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Mean preference score: %g\n", r.MeanPreference)
	fmt.Fprintf(&b, "Maximum imbalance in group size: %d\n", r.MaxImbalance)
	fmt.Fprintf(&b, "Total number of program collisions: %d\n", r.TotalProgramCollisions())
	fmt.Fprintf(&b, "Maximum number of collisions in a single group: %d\n", r.MaxProgramCollisions())
	fmt.Fprintf(&b, "Total number of student collisions: %d\n", r.TotalStudentCollisions())
	fmt.Fprintf(&b, "Maximum number of collisions for a single pair: %d\n", r.MaxStudentCollisions())

	return b.String()
}
