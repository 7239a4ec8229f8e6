package sat

// addClause installs a single already-preprocessed clause (init, per the
// spec's clause-store contract). Clauses of length 1 are not stored: they are
// enqueued directly as root-level facts. It reports false if the unit literal
// is already falsified, i.e. the formula is unsatisfiable at the root.
func (s *Solver) addClause(lits []Literal) bool {
	if len(lits) == 1 {
		return s.enqueue(lits[0], 0, nil)
	}

	c := newClause(lits)
	s.constraints = append(s.constraints, c)
	s.watch(c, c.literals[0].Opposite(), c.literals[1])
	s.watch(c, c.literals[1].Opposite(), c.literals[0])
	return true
}

// addLearned installs a clause derived by conflict analysis (add_learned, per
// the spec's clause-store contract). The first literal is always the clause's
// new watch 0; watch 1 is the first later literal that is unassigned or true
// at learn time, falling back to the clause's second literal. A learned unit
// clause is not stored or watched: its literal is enqueued directly at level 0.
func (s *Solver) addLearned(lits []Literal) {
	if len(lits) == 1 {
		s.enqueue(lits[0], 0, nil)
		return
	}

	c := newClause(lits)

	w1 := 1
	for i := 2; i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			w1 = i
			break
		}
	}
	c.literals[1], c.literals[w1] = c.literals[w1], c.literals[1]

	s.learnts = append(s.learnts, c)
	s.watch(c, c.literals[0].Opposite(), c.literals[1])
	s.watch(c, c.literals[1].Opposite(), c.literals[0])
}
