package sat

import (
	"context"
	"fmt"
)

// Algorithm selects which search procedure Solve runs. There is no runtime
// dispatch beyond this flat enum: algorithm choice is the only polymorphism
// that matters here (see spec's design notes).
type Algorithm int

const (
	// DPLL runs the iterative chronological-backtracking DPLL driver.
	DPLL Algorithm = iota
	// CDCL runs the recursive driver augmented with conflict-driven clause
	// learning.
	CDCL
)

// String returns the CLI spelling of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case DPLL:
		return "dpll"
	case CDCL:
		return "cdcl"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm parses the CLI spelling of an algorithm. The brute-force
// "simple" oracle is intentionally not an Algorithm: it lives in the
// internal/oracle package, outside the CORE's scope, and is wired directly
// by the CLI rather than through this facade.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "dpll":
		return DPLL, nil
	case "cdcl":
		return CDCL, nil
	default:
		return 0, fmt.Errorf("unsupported algorithm %q: supported algorithms are dpll, cdcl", s)
	}
}

// Result is the outcome of a Solve call.
type Result struct {
	SAT   bool
	Model []bool
}

// Solve preprocesses the given formula and runs the selected algorithm
// against it, returning the SAT/UNSAT verdict and, on SAT, a satisfying
// total assignment. The returned model (when SAT is true) always passes
// Check against the original, unpreprocessed clauses.
//
// ctx is checked cooperatively, once per decision, by the search drivers. A
// canceled context never changes a SAT/UNSAT outcome that was already
// reached; it only gives the driver a chance to give up early, which is
// reported as ctx.Err() rather than a Result. Passing context.Background()
// (as the CLI does) disables this entirely.
func Solve(ctx context.Context, algorithm Algorithm, numVars int, clauses [][]Literal) (Result, error) {
	cleaned, err := Preprocess(clauses)
	if err != nil {
		if err == ErrEmptyFormulaIsUnsat {
			return Result{SAT: false}, nil
		}
		return Result{}, err
	}

	s, ok := NewSolver(ctx, numVars, cleaned)
	if !ok {
		if s.stopped {
			return Result{}, ctx.Err()
		}
		return Result{SAT: false}, nil
	}

	var model []bool
	var sat bool
	switch algorithm {
	case DPLL:
		model, sat = s.DPLLIterative()
	case CDCL:
		model, sat = s.CDCLRecursive()
	default:
		return Result{}, fmt.Errorf("unsupported algorithm %v", algorithm)
	}

	if s.stopped {
		return Result{}, ctx.Err()
	}

	if sat && !Check(clauses, model) {
		panic("sat: solver returned a model that does not satisfy the input formula")
	}

	return Result{SAT: sat, Model: model}, nil
}
