package types

// Partner represents a person in the single-round partition problem.
//
// Score is an external performance measure used purely for group-balance
// optimization. The planner never mutates it.
type Partner struct {
	// FirstName is the person's given name.
	FirstName string `yaml:"firstName" json:"firstName"`

	// LastName is the person's family name.
	LastName string `yaml:"lastName" json:"lastName"`

	// Score is the balance measure (e.g., an exam or performance score).
	Score float64 `yaml:"score" json:"score"`
}

// Same reports whether two partners refer to the same person.
//
// Equality is by name only; Score is not considered.
func (p *Partner) Same(q *Partner) bool {
	return p.FirstName == q.FirstName && p.LastName == q.LastName
}

// NotParticipating is the sentinel option index stored in Student.Assigned for
// a week the student sits out. Valid option indices are 1-based.
const NotParticipating = 0

// Student represents a person in the multi-week assignment problem.
//
// Assigned grows by one entry per solved week; Assigned[w] is the 1-based
// option index chosen for week w, or NotParticipating. Planners mutate
// Assigned in place through the caller's pointer, which enables incremental
// workflows (solve week 1, inspect, solve the rest later). Unassign is the
// only sanctioned way to reset accumulated state.
type Student struct {
	// FirstName is the student's given name.
	FirstName string `yaml:"firstName" json:"firstName"`

	// LastName is the student's family name.
	LastName string `yaml:"lastName" json:"lastName"`

	// Program is the affiliation label used for diversity penalties.
	Program string `yaml:"program" json:"program"`

	// Assigned holds one 1-based option index per already-solved week.
	Assigned []int `yaml:"assigned" json:"assigned"`
}

// Same reports whether two students refer to the same person.
//
// Equality is by name only; Program and Assigned are not considered.
func (s *Student) Same(q *Student) bool {
	return s.FirstName == q.FirstName && s.LastName == q.LastName
}

// Assign appends the chosen 1-based option index for the next week.
func (s *Student) Assign(option int) {
	s.Assigned = append(s.Assigned, option)
}

// Unassign clears the whole assignment sequence unconditionally.
func (s *Student) Unassign() {
	s.Assigned = s.Assigned[:0]
}

// Name returns the student's display name in "Last, First" form.
func (s *Student) Name() string {
	return s.LastName + ", " + s.FirstName
}
