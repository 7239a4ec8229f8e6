// Package oracle implements the "try all assignments" brute-force SAT
// solver. It is not part of the search core: spec.md §1 retains it only as
// an oracle for tests (and, per §6, as the CLI's "simple" algorithm choice).
//
// Grounded on original_source/src/algorithm/simple.rs: assign each variable
// in index order, pruning a branch as soon as any clause is already falsified
// by the partial assignment, and backtrack otherwise.
package oracle

import "github.com/ngrantham/watchsat/internal/sat"

// Solve tries every total assignment over numVars variables in order,
// returning the first one that satisfies every clause.
func Solve(numVars int, clauses [][]sat.Literal) (model []bool, ok bool) {
	assignment := make([]sat.LBool, numVars)
	if !search(clauses, assignment, 0) {
		return nil, false
	}
	model = make([]bool, numVars)
	for i, a := range assignment {
		model[i] = a == sat.True
	}
	return model, true
}

func search(clauses [][]sat.Literal, assignment []sat.LBool, v int) bool {
	if v >= len(assignment) {
		return true
	}

	for _, value := range [2]sat.LBool{sat.True, sat.False} {
		assignment[v] = value
		if !hasFalseClause(clauses, assignment) && search(clauses, assignment, v+1) {
			return true
		}
	}

	assignment[v] = sat.Unknown
	return false
}

// hasFalseClause reports whether any clause is already falsified by the
// (possibly partial) assignment. A clause with an unassigned literal is
// never considered falsified, so pruning only kicks in once every literal in
// a clause has a concrete value.
func hasFalseClause(clauses [][]sat.Literal, assignment []sat.LBool) bool {
	for _, c := range clauses {
		if isFalseClause(c, assignment) {
			return true
		}
	}
	return false
}

func isFalseClause(clause []sat.Literal, assignment []sat.LBool) bool {
	for _, l := range clause {
		v := l.VarID()
		if v >= len(assignment) || assignment[v] == sat.Unknown {
			return false // not yet decided, so not yet falsified
		}
		isTrue := (l.IsPositive() && assignment[v] == sat.True) ||
			(!l.IsPositive() && assignment[v] == sat.False)
		if isTrue {
			return false
		}
	}
	return true
}
