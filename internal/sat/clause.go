package sat

import "strings"

// Clause is a disjunction of literals. Its first two literals are its
// watched literals: Propagate only re-examines a clause when one of them is
// assigned, relying on the watch index (see watch.go) to find it.
//
// Clauses are immutable in content once built; only the order of their
// literals changes as watches move (a new watch is swapped into slot 0 or 1).
type Clause struct {
	literals []Literal
}

// newClause builds a watched clause from lits, which must already be
// preprocessed (deduplicated, non-tautological, non-empty) and have at least
// two literals. Single-literal clauses are handled by the caller via enqueue
// and never reach here (see Solver.addClause and Solver.addLearned). Whether
// a clause is original or learned is tracked by which of Solver's two clause
// slices holds it, not by the clause itself.
func newClause(lits []Literal) *Clause {
	return &Clause{literals: append([]Literal(nil), lits...)}
}

// propagate is called whenever watched literal l (i.e. l.Opposite() is one of
// the clause's watched literals) is assigned true. It restores the watched-
// literal invariant and, if the clause has become unit, enqueues the forced
// literal. It returns false only when enqueue reports a conflict.
func (c *Clause) propagate(s *Solver, l Literal, level int) bool {
	opp := l.Opposite()

	// Make sure the literal that just became false is in slot 1, so slot 0
	// is always the candidate to become unit.
	if c.literals[0] == opp {
		c.literals[0], c.literals[1] = c.literals[1], opp
	}

	if s.LitValue(c.literals[0]) == True {
		// Clause already satisfied; keep watching l, guarded by the true
		// literal so Propagate can skip it cheaply.
		s.watch(c, l, c.literals[0])
		return true
	}

	// Search for a replacement for the literal that just became false:
	// the first literal after the two watch slots, in the clause's current
	// order, that is unassigned or true.
	for i := 2; i < len(c.literals); i++ {
		if s.LitValue(c.literals[i]) != False {
			c.literals[1], c.literals[i] = c.literals[i], opp
			s.watch(c, c.literals[1].Opposite(), c.literals[0])
			return true
		}
	}

	// No replacement: the clause is unit (or conflicting) on c.literals[0].
	s.watch(c, l, c.literals[0])
	return s.enqueue(c.literals[0], level, c.reasonFor(s))
}

// reasonFor returns the variables of the clause's non-asserted literals, used
// as the implication-graph reason when literals[0] is forced true.
func (c *Clause) reasonFor(s *Solver) []int {
	if len(c.literals) == 1 {
		return nil
	}
	reason := make([]int, 0, len(c.literals)-1)
	for _, lit := range c.literals[1:] {
		reason = append(reason, lit.VarID())
	}
	return reason
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
