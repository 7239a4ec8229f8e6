// Package sat implements the search core of a CNF SAT solver: boolean
// constraint propagation on watched literals, chronological-backtracking
// DPLL (recursive and iterative), and a CDCL extension with an implication
// graph and clause learning.
package sat

import (
	"context"
	"fmt"
)

// Solver owns every data structure the search algorithms mutate: the clause
// database, the watch index, the current assignment, the trail, and (for
// CDCL) the implication graph. A Solver is built once from a preprocessed
// formula and discarded at the end of the search; it is not safe for
// concurrent use.
type Solver struct {
	numVars int

	// Clause database. constraints holds the original (preprocessed)
	// clauses; learnts holds clauses derived by conflict analysis. The
	// store grows monotonically: there is no deletion policy.
	constraints []*Clause
	learnts     []*Clause

	// Watch index: watchers[l] is the set of clauses currently watching the
	// assignment of literal l becoming true.
	watchers [][]watcher

	// Value of each literal, indexed the same way as watchers (2*varID for
	// the positive literal, 2*varID+1 for the negative one).
	assigns []LBool

	// Trail of assigned literals in assignment order, and the propagation
	// queue used while draining BCP's fixpoint.
	trail     []Literal
	propQueue *Queue[Literal]

	// Implication graph, flattened into parallel arrays indexed by variable:
	// level is the decision level at assignment time, reason is the (possibly
	// empty) list of antecedent variables, and hasNode reports whether the
	// variable currently has a node (i.e. is assigned).
	level   []int
	reason  [][]int
	hasNode []bool

	// seenVar is reused by conflict analysis to mark variables already
	// absorbed into the fringe/cut without reallocating between conflicts.
	seenVar *ResetSet

	// tmpWatchers is reused by Propagate to snapshot a variable's watch list
	// before rebuilding it, avoiding an allocation per propagated literal.
	tmpWatchers []watcher

	unsat bool

	// ctx is checked once per decision (not once per propagated literal) by
	// the search drivers. A canceled context never flips a SAT/UNSAT verdict:
	// it only makes the driver give up early, which NewSolver's caller (the
	// facade) surfaces as an error instead of a Result.
	ctx     context.Context
	stopped bool
}

// NewSolver returns a Solver for a formula with the given number of variables
// over the given preprocessed clauses (see Preprocess). It reports false if
// the clauses are unsatisfiable at the root level (e.g. two unit clauses on
// opposite polarities of the same variable).
func NewSolver(ctx context.Context, numVars int, clauses [][]Literal) (*Solver, bool) {
	s := &Solver{
		numVars:   numVars,
		watchers:  make([][]watcher, numVars*2),
		assigns:   make([]LBool, numVars*2),
		level:     make([]int, numVars),
		reason:    make([][]int, numVars),
		hasNode:   make([]bool, numVars),
		propQueue: NewQueue[Literal](128),
		seenVar:   &ResetSet{},
		ctx:       ctx,
	}
	for i := range s.level {
		s.level[i] = -1
	}
	s.seenVar.addedAt = make([]uint16, numVars)

	for _, c := range clauses {
		if !s.addClause(c) {
			s.unsat = true
			return s, false
		}
	}
	if conflict := s.drain(0); conflict != nil {
		s.unsat = true
		return s, false
	}

	return s, true
}

// shouldStop reports whether the search should give up because its context
// has been canceled. Checked once per decision by the search drivers; a
// true result also latches s.stopped so the caller can tell a canceled
// search apart from a genuine UNSAT result.
func (s *Solver) shouldStop() bool {
	if s.ctx != nil && s.ctx.Err() != nil {
		s.stopped = true
	}
	return s.stopped
}

// PositiveLiteral returns the positive literal of variable v (0-indexed).
func (s *Solver) PositiveLiteral(v int) Literal { return PositiveLiteral(v) }

// NegativeLiteral returns the negative literal of variable v (0-indexed).
func (s *Solver) NegativeLiteral(v int) Literal { return NegativeLiteral(v) }

// NumVariables returns the number of variables the solver was built with.
func (s *Solver) NumVariables() int { return s.numVars }

// NumAssigns returns the number of currently assigned variables.
func (s *Solver) NumAssigns() int { return len(s.trail) }

// VarValue returns the current value of variable v.
func (s *Solver) VarValue(v int) LBool { return s.assigns[PositiveLiteral(v)] }

// LitValue returns the current truth value of literal l under the current
// assignment.
func (s *Solver) LitValue(l Literal) LBool { return s.assigns[l] }

// undo unassigns exactly the literals in lits, which must be the current
// trailing suffix of the trail (true of every list handed back by
// Propagate's Implied field, as long as nothing deeper was left assigned).
func (s *Solver) undo(lits []Literal) {
	for i := len(lits) - 1; i >= 0; i-- {
		s.undoLiteral(lits[i])
	}
	s.trail = s.trail[:len(s.trail)-len(lits)]
}

// model returns the current total assignment as a []bool indexed by
// variable. It panics if any variable is unassigned, since that is always a
// programmer error: it is only ever called once every variable has a value.
func (s *Solver) model() []bool {
	m := make([]bool, s.numVars)
	for v := 0; v < s.numVars; v++ {
		lb := s.VarValue(v)
		if lb == Unknown {
			panic(fmt.Sprintf("sat: variable %d unassigned while extracting model", v))
		}
		m[v] = lb == True
	}
	return m
}
