package sat

// DPLLRecursive runs the recursive chronological-backtracking DPLL search:
// pick the lowest-indexed unassigned variable, try it true then false,
// recursing on whichever propagates cleanly, and unassigning on backtrack.
// It reports the total assignment on success.
//
// Grounded directly on the reference implementation's dpll_recursive: at
// each unassigned variable it tries both polarities in turn, propagating and
// recursing on success, undoing exactly what that branch assigned when the
// recursive call reports UNSAT.
func (s *Solver) DPLLRecursive() ([]bool, bool) {
	if s.unsat {
		return nil, false
	}
	return s.dpllRecursive(0)
}

func (s *Solver) dpllRecursive(level int) ([]bool, bool) {
	if s.shouldStop() {
		return nil, false
	}

	next, ok := s.nextUnassigned()
	if !ok {
		return s.model(), true
	}

	for _, lit := range [2]Literal{next, next.Opposite()} {
		res := s.Propagate(lit, level+1, nil)
		if res.Conflict != nil {
			continue
		}
		if model, ok := s.dpllRecursive(level + 1); ok {
			return model, true
		}
		s.undo(res.Implied)
	}

	return nil, false
}

// dpllFrame records a decision's untried alternative polarity and the trail
// length at the time the decision was made, so DPLLIterative can roll back
// to exactly that point on backtrack.
type dpllFrame struct {
	alt  Literal
	mark int
}

// DPLLIterative runs the same search as DPLLRecursive using an explicit
// decision stack instead of the call stack. Both forms must (and do) produce
// the same SAT/UNSAT verdict on every input.
func (s *Solver) DPLLIterative() ([]bool, bool) {
	if s.unsat {
		return nil, false
	}

	first, ok := s.nextUnassigned()
	if !ok {
		return s.model(), true
	}

	stack := []dpllFrame{{alt: first.Opposite(), mark: 0}}
	assigned := make([]Literal, 0, s.numVars)
	next := first
	level := 1

	for {
		if s.shouldStop() {
			return nil, false
		}

		res := s.Propagate(next, level, nil)

		if res.Conflict == nil {
			assigned = append(assigned, res.Implied...)

			if len(assigned) == s.numVars {
				return s.model(), true
			}

			nl, ok := s.nextUnassigned()
			if !ok {
				return s.model(), true
			}
			stack = append(stack, dpllFrame{alt: nl.Opposite(), mark: len(assigned)})
			next = nl
			level++
			continue
		}

		if len(stack) == 0 {
			return nil, false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s.undo(assigned[top.mark:])
		assigned = assigned[:top.mark]
		next = top.alt
		level = len(stack) + 1
	}
}
