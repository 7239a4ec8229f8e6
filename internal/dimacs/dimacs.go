// Package dimacs loads a CNF formula from a DIMACS file into the types the
// solver core works with. It wraps the external github.com/rhartert/dimacs
// parser rather than scanning DIMACS text itself.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	extdimacs "github.com/rhartert/dimacs"

	"github.com/ngrantham/watchsat/internal/sat"
)

// Instance is a CNF formula read from a DIMACS file, with literals already
// converted to the solver's 0-indexed, compact Literal encoding.
type Instance struct {
	NumVars int
	Clauses [][]sat.Literal
}

// ParseFile reads the DIMACS CNF file at filename. Files whose name ends in
// ".gz" are transparently gunzipped.
func ParseFile(filename string) (Instance, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Instance{}, fmt.Errorf("dimacs: opening %q: %w", filename, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Instance{}, fmt.Errorf("dimacs: gunzipping %q: %w", filename, err)
		}
		defer gz.Close()
		r = gz
	}

	b := &builder{}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return Instance{}, fmt.Errorf("dimacs: parsing %q: %w", filename, err)
	}
	if b.err != nil {
		return Instance{}, fmt.Errorf("dimacs: parsing %q: %w", filename, b.err)
	}
	return Instance{NumVars: b.numVars, Clauses: b.clauses}, nil
}

// builder implements extdimacs.Builder, converting DIMACS's 1-indexed signed
// integers directly into sat.Literal values as they arrive.
type builder struct {
	numVars int
	clauses [][]sat.Literal
	err     error
}

func (b *builder) Problem(nVars int, nClauses int) {
	b.numVars = nVars
	b.clauses = make([][]sat.Literal, 0, nClauses)
}

func (b *builder) Clause(tmpClause []int) {
	clause := make([]sat.Literal, len(tmpClause))
	for i, l := range tmpClause {
		if l == 0 {
			b.err = fmt.Errorf("clause contains literal 0")
			return
		}
		v := l
		if v < 0 {
			v = -v
		}
		if v > b.numVars {
			b.err = fmt.Errorf("literal %d refers to variable beyond declared count %d", l, b.numVars)
			return
		}
		if l < 0 {
			clause[i] = sat.NegativeLiteral(-l - 1)
		} else {
			clause[i] = sat.PositiveLiteral(l - 1)
		}
	}
	b.clauses = append(b.clauses, clause)
}

func (b *builder) Comment(_ string) {} // ignored
