package oracle_test

import (
	"context"
	"testing"

	"github.com/ngrantham/watchsat/internal/oracle"
	"github.com/ngrantham/watchsat/internal/sat"
)

func lit(n int) sat.Literal {
	if n < 0 {
		return sat.NegativeLiteral(-n - 1)
	}
	return sat.PositiveLiteral(n - 1)
}

func cnf(rows ...[]int) [][]sat.Literal {
	clauses := make([][]sat.Literal, len(rows))
	for i, row := range rows {
		c := make([]sat.Literal, len(row))
		for j, n := range row {
			c[j] = lit(n)
		}
		clauses[i] = c
	}
	return clauses
}

func TestOracleAgreesWithDPLLAndCDCL(t *testing.T) {
	instances := []struct {
		name    string
		numVars int
		clauses [][]int
	}{
		{"S1 unit cascade", 3, [][]int{{1}, {-1, 2}, {-2, 3}}},
		{"S2 immediate conflict", 1, [][]int{{1}, {-1}}},
		{"S3 pure branching", 2, [][]int{{1, 2}, {-1, -2}}},
		{"S4 pigeonhole-2-into-1", 3, [][]int{
			{1, 2}, {-1, -2}, {1, 3}, {-1, -3}, {2, 3}, {-2, -3}, {1, 2, 3},
		}},
	}

	for _, inst := range instances {
		t.Run(inst.name, func(t *testing.T) {
			clauses := cnf(inst.clauses...)

			_, oracleSAT := oracle.Solve(inst.numVars, clauses)

			dpll, err := sat.Solve(context.Background(), sat.DPLL, inst.numVars, clauses)
			if err != nil {
				t.Fatalf("sat.Solve(DPLL) error: %v", err)
			}
			cdcl, err := sat.Solve(context.Background(), sat.CDCL, inst.numVars, clauses)
			if err != nil {
				t.Fatalf("sat.Solve(CDCL) error: %v", err)
			}

			if oracleSAT != dpll.SAT || oracleSAT != cdcl.SAT {
				t.Errorf("verdict mismatch: oracle=%v dpll=%v cdcl=%v", oracleSAT, dpll.SAT, cdcl.SAT)
			}
		})
	}
}

func TestOracleModelSatisfiesFormula(t *testing.T) {
	clauses := cnf([]int{1, 2}, []int{-1, 3}, []int{-2, -3})
	model, ok := oracle.Solve(3, clauses)
	if !ok {
		t.Fatal("oracle.Solve() = UNSAT, want SAT")
	}
	if !sat.Check(clauses, model) {
		t.Errorf("oracle.Solve() returned a model that does not satisfy the formula: %v", model)
	}
}
