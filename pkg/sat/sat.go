package sat

import (
	"fmt"
	"strings"
)

// Solution is a satisfying assignment expressed as signed literals: v means
// variable v is true, -v means it is false. A nil Solution stands for
// unsatisfiable.
type Solution []int64

// SAT is a propositional formula in conjunctive normal form. Variables are
// numbered from 1 up to Variables; a negative literal negates its variable.
type SAT struct {
	Variables uint64
	Clauses   [][]int64
}

// ToDIMACS serializes the instance into the DIMACS-CNF text format understood
// by the external solver binaries.
func (s SAT) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", s.Variables, len(s.Clauses))
	for _, clause := range s.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
