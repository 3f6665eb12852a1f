package sat

import (
	"fmt"

	gophersat "github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process solver backed by gophersat. It is
// the default backend: no external binary is required and results are
// deterministic for a fixed instance.
func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (solver *gophersatSolver) Solve(instance SAT) (Solution, error) {
	clauses := make([][]int, len(instance.Clauses))
	for i, clause := range instance.Clauses {
		clauses[i] = make([]int, len(clause))
		for j, literal := range clause {
			clauses[i][j] = int(literal)
		}
	}

	backend := gophersat.New(gophersat.ParseSlice(clauses))

	switch backend.Solve() {
	case gophersat.Sat:
		// The model only covers variables mentioned in clauses; absent ones
		// are reported false.
		model := backend.Model()
		solution := make(Solution, 0, instance.Variables)
		for variable := uint64(1); variable <= instance.Variables; variable++ {
			literal := int64(variable)
			if variable > uint64(len(model)) || !model[variable-1] {
				literal = -literal
			}
			solution = append(solution, literal)
		}
		return solution, nil
	case gophersat.Unsat:
		return nil, nil
	default:
		return nil, fmt.Errorf("gophersat stopped without a verdict")
	}
}
