package sat

// watcher is a clause attached to one of literal l's watch slots, where l is
// the opposite of one of the clause's two watched literals (i.e. the clause
// must be re-examined whenever l becomes true).
type watcher struct {
	clause *Clause

	// guard is one of the clause's other literals. If it is already true,
	// the clause is satisfied and does not need to be re-examined. This is
	// an optimization only: dropping it would not change the invariants in
	// section 3 of the spec, only the amount of work Propagate does.
	guard Literal
}

// watch registers clause c to be re-examined when l is assigned true.
func (s *Solver) watch(c *Clause, l Literal, guard Literal) {
	s.watchers[l] = append(s.watchers[l], watcher{clause: c, guard: guard})
}
