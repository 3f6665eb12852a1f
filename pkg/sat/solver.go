package sat

// Solver solves a SAT instance. A nil Solution along with a nil error means
// the instance is unsatisfiable (both are valid outputs).
type Solver interface {
	Solve(SAT) (Solution, error)
}
