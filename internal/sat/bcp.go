package sat

// PropResult is the outcome of a single Propagate call: either the list of
// literals it assigned (in assignment order, including the seed literal), or
// the clause that conflicted.
type PropResult struct {
	Implied  []Literal
	Conflict *Clause
}

// Propagate assumes lit true at the given decision level and propagates all
// of its forced consequences (boolean constraint propagation) until a
// fixpoint or a conflict is reached. reason is the implication-graph reason
// to record for lit: nil for a decision, the antecedent variables for a
// chained propagation.
//
// lit must not already be assigned; callers only ever propagate a decision
// on a variable verified unassigned, or a unit literal discovered by a
// clause that has not yet been enqueued.
//
// Unlike an incremental BCP that maintains one persistent trail across the
// whole search, Propagate here is self-contained: on conflict it unassigns
// every literal it assigned during this call, including lit itself, and
// removes their implication-graph nodes, before returning. On success, the
// assigned literals remain assigned; it is the driver's responsibility to
// unassign them later (via undo) if the branch they belong to fails.
func (s *Solver) Propagate(lit Literal, level int, reason []int) PropResult {
	mark := len(s.trail)

	if s.LitValue(lit) != Unknown {
		panic("sat: Propagate called with an already-assigned literal")
	}
	s.enqueue(lit, level, reason)

	if conflict := s.drain(level); conflict != nil {
		s.unassignSince(mark)
		return PropResult{Conflict: conflict}
	}

	implied := append([]Literal(nil), s.trail[mark:]...)
	return PropResult{Implied: implied}
}

// drain runs BCP to a fixpoint, returning the first conflicting clause (or
// nil if none arises) and leaving the propagation queue empty either way.
func (s *Solver) drain(level int) *Clause {
	for s.propQueue.Size() > 0 {
		l := s.propQueue.Pop()

		s.tmpWatchers = append(s.tmpWatchers[:0], s.watchers[l]...)
		s.watchers[l] = s.watchers[l][:0]

		for i, w := range s.tmpWatchers {
			// A true guard means the clause is already satisfied; no need
			// to load and re-examine it. This does not affect correctness,
			// only how quickly Propagate converges.
			if s.LitValue(w.guard) == True {
				s.watchers[l] = append(s.watchers[l], w)
				continue
			}

			if w.clause.propagate(s, l, level) {
				continue
			}

			// Conflict: restore the remaining snapshot to l's watch list.
			s.watchers[l] = append(s.watchers[l], s.tmpWatchers[i+1:]...)
			s.propQueue.Clear()
			return w.clause
		}
	}
	return nil
}

// enqueue records l as true at the given level with the given reason (nil
// for a decision literal). It reports false if l was already false, which
// callers treat as a conflict.
func (s *Solver) enqueue(l Literal, level int, reason []int) bool {
	switch s.LitValue(l) {
	case False:
		return false
	case True:
		return true
	default:
		v := l.VarID()
		s.assigns[l] = True
		s.assigns[l.Opposite()] = False
		s.level[v] = level
		s.reason[v] = reason
		s.hasNode[v] = true
		s.trail = append(s.trail, l)
		s.propQueue.Push(l)
		return true
	}
}

// unassignSince unassigns every literal on the trail from index mark to the
// end, removing their implication-graph nodes, and truncates the trail.
func (s *Solver) unassignSince(mark int) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		s.undoLiteral(s.trail[i])
	}
	s.trail = s.trail[:mark]
}

func (s *Solver) undoLiteral(l Literal) {
	v := l.VarID()
	s.assigns[l] = Unknown
	s.assigns[l.Opposite()] = Unknown
	s.reason[v] = nil
	s.level[v] = -1
	s.hasNode[v] = false
}
