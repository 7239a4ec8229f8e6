package sat

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		clauses [][]Literal
		model   []bool
		want    bool
	}{
		{
			name:    "satisfying model",
			clauses: cnf([]int{1, 2}, []int{-1, 3}),
			model:   []bool{true, false, true},
			want:    true,
		},
		{
			name:    "falsified clause",
			clauses: cnf([]int{1, 2}, []int{-1, -2}),
			model:   []bool{true, true},
			want:    false,
		},
		{
			name:    "empty clause set is trivially satisfied",
			clauses: [][]Literal{},
			model:   []bool{},
			want:    true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Check(tc.clauses, tc.model); got != tc.want {
				t.Errorf("Check() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	clauses := cnf([]int{1, 2, -3}, []int{-1, 3})
	model := []bool{false, true, true}

	first := Check(clauses, model)
	second := Check(clauses, model)
	if first != second {
		t.Errorf("Check() is not idempotent: got %v then %v", first, second)
	}
}
