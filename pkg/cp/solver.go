package cp

// Status is the terminal verdict of a solve call.
type Status int

const (
	Unknown Status = iota
	ModelInvalid
	Infeasible
	Feasible
	Optimal
)

func (s Status) String() string {
	switch s {
	case Optimal:
		return "OPTIMAL"
	case Feasible:
		return "FEASIBLE"
	case Infeasible:
		return "INFEASIBLE"
	case ModelInvalid:
		return "MODEL_INVALID"
	default:
		return "UNKNOWN"
	}
}

// Response carries the solve verdict and, when the Status is Optimal or
// Feasible, a value for every declared variable.
type Response struct {
	Status Status

	intValues  []int64
	boolValues []bool
}

// Value returns the solved value of an integer variable. Only meaningful when
// the Status is Optimal or Feasible.
func (r Response) Value(v IntVar) int64 {
	return r.intValues[v.index]
}

// BoolValue returns the solved value of a boolean literal.
func (r Response) BoolValue(v BoolVar) bool {
	value := r.boolValues[v.index]
	if v.negated {
		return !value
	}
	return value
}

// Solver solves an accumulated model with no objective: any satisfying
// assignment terminates the search. The call blocks until a terminal status
// is reached.
type Solver interface {
	Solve(*Model) (Response, error)
}
