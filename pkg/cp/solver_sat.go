package cp

import (
	"timetableweaver/pkg/sat"

	"github.com/samber/lo"
)

type satSolver struct {
	backend sat.Solver
}

// NewSATSolver returns a Solver that compiles the model down to CNF and
// delegates the search to a sat backend.
func NewSATSolver(backend sat.Solver) Solver {
	return &satSolver{backend: backend}
}

func (solver *satSolver) Solve(model *Model) (Response, error) {
	if model.invalid != nil {
		return Response{Status: ModelInvalid}, nil
	}

	encoding := newEncoding(model)

	solution, err := solver.backend.Solve(encoding.compile())
	if err != nil {
		return Response{Status: Unknown}, err
	} else if solution == nil {
		return Response{Status: Infeasible}, nil
	}

	return encoding.decode(solution), nil
}

// encoding maps model variables onto SAT literals using a direct (one-hot)
// encoding: one literal per (integer variable, domain value) pair plus one
// literal per boolean variable.
type encoding struct {
	model     *Model
	intBase   []int64 // first literal of each integer variable's block
	boolBase  []int64
	variables uint64
}

func newEncoding(model *Model) *encoding {
	enc := &encoding{
		model:    model,
		intBase:  make([]int64, len(model.ints)),
		boolBase: make([]int64, len(model.bools)),
	}

	next := int64(1)
	for i, v := range model.ints {
		enc.intBase[i] = next
		next += v.hi - v.lo + 1
	}
	for i := range model.bools {
		enc.boolBase[i] = next
		next++
	}
	enc.variables = uint64(next - 1)

	return enc
}

// valueLiteral is the literal asserting that integer variable v takes value d.
func (enc *encoding) valueLiteral(v int, d int64) int64 {
	return enc.intBase[v] + d - enc.model.ints[v].lo
}

func (enc *encoding) literal(v BoolVar) int64 {
	literal := enc.boolBase[v.index]
	if v.negated {
		return -literal
	}
	return literal
}

func (enc *encoding) contains(v int, d int64) bool {
	return d >= enc.model.ints[v].lo && d <= enc.model.ints[v].hi
}

func (enc *encoding) compile() sat.SAT {
	instance := sat.SAT{
		Variables: enc.variables,
		Clauses:   [][]int64{},
	}

	//** Exactly one value per integer variable
	for i, v := range enc.model.ints {
		atLeastOne := make([]int64, 0, v.hi-v.lo+1)
		for d := v.lo; d <= v.hi; d++ {
			atLeastOne = append(atLeastOne, enc.valueLiteral(i, d))
		}
		instance.Clauses = append(instance.Clauses, atLeastOne)

		for d1 := v.lo; d1 <= v.hi; d1++ {
			for d2 := d1 + 1; d2 <= v.hi; d2++ {
				instance.Clauses = append(instance.Clauses, []int64{-enc.valueLiteral(i, d1), -enc.valueLiteral(i, d2)})
			}
		}
	}

	//** Posted constraints
	for _, c := range enc.model.constraints {
		instance.Clauses = append(instance.Clauses, enc.compileConstraint(c)...)
	}

	return instance
}

func (enc *encoding) compileConstraint(c constraint) [][]int64 {
	// A constraint carrying enforcement literals l1..ln turns each of its
	// clauses C into (-l1 v ... v -ln v C)
	prefix := lo.Map(c.enforce, func(literal BoolVar, _ int) int64 { return -enc.literal(literal) })

	clauses := [][]int64{}
	emit := func(literals ...int64) {
		clause := make([]int64, 0, len(prefix)+len(literals))
		clause = append(clause, prefix...)
		clause = append(clause, literals...)
		clauses = append(clauses, clause)
	}

	switch c.kind {
	case constraintEquality:
		a, b := enc.model.ints[c.a], enc.model.ints[c.b]
		for d := a.lo; d <= a.hi; d++ {
			if enc.contains(c.b, d) {
				emit(-enc.valueLiteral(c.a, d), enc.valueLiteral(c.b, d))
			} else {
				emit(-enc.valueLiteral(c.a, d))
			}
		}
		for d := b.lo; d <= b.hi; d++ {
			if enc.contains(c.a, d) {
				emit(-enc.valueLiteral(c.b, d), enc.valueLiteral(c.a, d))
			} else {
				emit(-enc.valueLiteral(c.b, d))
			}
		}

	case constraintInequality:
		a := enc.model.ints[c.a]
		for d := a.lo; d <= a.hi; d++ {
			if enc.contains(c.b, d) {
				emit(-enc.valueLiteral(c.a, d), -enc.valueLiteral(c.b, d))
			}
		}

	case constraintBoolOr:
		emit(lo.Map(c.literals, func(literal BoolVar, _ int) int64 { return enc.literal(literal) })...)

	case constraintElement:
		index := enc.model.ints[c.index]
		for d := index.lo; d <= index.hi; d++ {
			// An index outside the array can never be chosen
			if d < 0 || d >= int64(len(c.values)) {
				emit(-enc.valueLiteral(c.index, d))
				continue
			}
			value := c.values[d]
			if enc.contains(c.target, value) {
				emit(-enc.valueLiteral(c.index, d), enc.valueLiteral(c.target, value))
			} else {
				emit(-enc.valueLiteral(c.index, d))
			}
		}
	}

	return clauses
}

func (enc *encoding) decode(solution sat.Solution) Response {
	truth := make([]bool, enc.variables+1)
	for _, literal := range solution {
		if literal > 0 && literal <= int64(enc.variables) {
			truth[literal] = true
		}
	}

	response := Response{
		Status:     Feasible,
		intValues:  make([]int64, len(enc.model.ints)),
		boolValues: make([]bool, len(enc.model.bools)),
	}

	for i, v := range enc.model.ints {
		for d := v.lo; d <= v.hi; d++ {
			if truth[enc.valueLiteral(i, d)] {
				response.intValues[i] = d
				break
			}
		}
	}
	for i := range enc.model.bools {
		response.boolValues[i] = truth[enc.boolBase[i]]
	}

	return response
}
