package sat

// nextUnassigned returns the positive literal of the lowest-indexed
// unassigned variable, and false if every variable is already assigned.
//
// Per the spec's explicit non-goal, there is no variable-activity (VSIDS)
// heuristic and no phase saving here: the decision order is always the fixed
// variable order, lowest index first, trying the positive polarity before
// the negative one.
func (s *Solver) nextUnassigned() (Literal, bool) {
	for v := 0; v < s.numVars; v++ {
		if s.VarValue(v) == Unknown {
			return PositiveLiteral(v), true
		}
	}
	return 0, false
}
