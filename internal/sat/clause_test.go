package sat

import (
	"context"
	"testing"
)

// TestWatchInvariant checks property 5: between Propagate calls, a clause's
// two watched literals are never both FALSE.
func TestWatchInvariant(t *testing.T) {
	s := newTestSolver(t, 3, [][]int{{1, 2, 3}})
	c := s.constraints[0]

	res := s.Propagate(lit(-1), 1, nil)
	if res.Conflict != nil {
		t.Fatalf("Propagate() unexpected conflict")
	}
	if s.LitValue(c.literals[0]) == False && s.LitValue(c.literals[1]) == False {
		t.Fatalf("both watched literals are False after propagating -1: %v", c.literals[:2])
	}

	res2 := s.Propagate(lit(-2), 2, nil)
	if res2.Conflict != nil {
		t.Fatalf("Propagate() unexpected conflict")
	}
	if s.LitValue(c.literals[0]) == False && s.LitValue(c.literals[1]) == False {
		t.Fatalf("both watched literals are False after propagating -1 and -2: %v", c.literals[:2])
	}
	// The clause is now unit on literal 3: it must have been propagated.
	if s.VarValue(2) != True {
		t.Errorf("variable 2 = %v, want True (forced unit by the watched clause)", s.VarValue(2))
	}
}

func TestAddLearnedWatchesUnassignedOrTrueLiteral(t *testing.T) {
	s := newTestSolver(t, 4, nil)

	// Force variables 1 and 2 false, leaving 0 and 3 unassigned.
	s.Propagate(lit(-2), 1, nil)
	s.Propagate(lit(-3), 2, nil)

	// Learned clause (1 v 2 v 3 v 4): literal 1 is its first literal (kept as
	// watch 0); literals 2 and 3 are both False at learn time, so watch 1
	// must skip past them to literal 4 (index 3), the only other literal
	// that is not False.
	s.addLearned([]Literal{lit(1), lit(2), lit(3), lit(4)})

	learned := s.learnts[len(s.learnts)-1]
	if s.LitValue(learned.literals[1]) == False {
		t.Errorf("addLearned() chose a False literal for watch 1: %v", learned.literals[1])
	}
}

func TestAddLearnedUnitClauseEnqueuesDirectly(t *testing.T) {
	s := newTestSolver(t, 1, nil)
	before := len(s.learnts)

	s.addLearned([]Literal{lit(1)})

	if len(s.learnts) != before {
		t.Errorf("addLearned() with a unit clause appended to learnts, want direct enqueue")
	}
	if s.VarValue(0) != True {
		t.Errorf("variable 0 = %v after learning unit clause (1), want True", s.VarValue(0))
	}
}

func TestAddClauseRootUnitConflict(t *testing.T) {
	s, ok := NewSolver(context.Background(), 1, cnf([]int{1}))
	if !ok {
		t.Fatalf("NewSolver() = false, want true")
	}
	if ok := s.addClause([]Literal{lit(-1)}); ok {
		t.Error("addClause() with a unit clause contradicting the root assignment succeeded, want false")
	}
}
