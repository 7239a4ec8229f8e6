package sat

// Check reports whether model satisfies every clause in clauses, i.e.
// whether every clause has at least one literal that is true under model.
// model is indexed by (0-indexed) variable.
//
// This is used both by tests, to confirm a claimed SAT result against the
// original formula, and by Solve as an internal sanity check before
// returning a SAT result.
func Check(clauses [][]Literal, model []bool) bool {
clauses:
	for _, c := range clauses {
		for _, l := range c {
			v := l.VarID()
			if l.IsPositive() == model[v] {
				continue clauses
			}
		}
		return false
	}
	return true
}
