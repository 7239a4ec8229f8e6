package sat

// lit converts a DIMACS-style signed, 1-indexed literal into this package's
// Literal encoding: positive n is the positive literal of variable n-1,
// negative n is the negative literal of variable -n-1.
func lit(n int) Literal {
	if n < 0 {
		return NegativeLiteral(-n - 1)
	}
	return PositiveLiteral(n - 1)
}

// cnf converts a sequence of DIMACS-style signed-integer clauses into the
// package's clause representation.
func cnf(rows ...[]int) [][]Literal {
	clauses := make([][]Literal, len(rows))
	for i, row := range rows {
		c := make([]Literal, len(row))
		for j, n := range row {
			c[j] = lit(n)
		}
		clauses[i] = c
	}
	return clauses
}
