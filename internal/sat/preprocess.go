package sat

import "errors"

// ErrEmptyFormulaIsUnsat is returned by Preprocess when the input contains an
// explicit empty clause, i.e. a clause with no literals at all. An empty
// clause can never be satisfied, so the formula is unconditionally UNSAT.
//
// This is distinct from a cleaned clause *set* that ends up empty (e.g.
// every input clause was a tautology): that denotes a trivially SAT
// instance, not an error.
var ErrEmptyFormulaIsUnsat = errors.New("sat: formula contains an explicit empty clause")

// Preprocess cleans a raw clause sequence before it is handed to NewSolver:
// clauses containing both a literal and its negation (tautologies) are
// dropped, duplicate literals within a clause are removed, and an empty
// clause makes it return ErrEmptyFormulaIsUnsat. The relative order of surviving clauses,
// and of literals within them, is preserved, so the result is deterministic
// for a given input.
func Preprocess(clauses [][]Literal) ([][]Literal, error) {
	cleaned := make([][]Literal, 0, len(clauses))
	for _, c := range clauses {
		if len(c) == 0 {
			return nil, ErrEmptyFormulaIsUnsat
		}

		lits, tautology := dedupClause(c)
		if tautology {
			continue
		}
		if len(lits) == 0 {
			return nil, ErrEmptyFormulaIsUnsat
		}
		cleaned = append(cleaned, lits)
	}
	return cleaned, nil
}

// dedupClause returns the distinct literals of c in their first-occurrence
// order, or reports tautology if c contains both a literal and its negation.
func dedupClause(c []Literal) (lits []Literal, tautology bool) {
	seen := make(map[Literal]bool, len(c))
	lits = make([]Literal, 0, len(c))
	for _, l := range c {
		if seen[l.Opposite()] {
			return nil, true
		}
		if seen[l] {
			continue
		}
		seen[l] = true
		lits = append(lits, l)
	}
	return lits, false
}
