// Package cp exposes a minimal constraint-programming capability: integer and
// boolean variables, (in)equality with enforcement literals, disjunctions and
// element constraints, solved for feasibility with no objective.
package cp

import "fmt"

// IntVar is a handle to an integer variable of a Model.
type IntVar struct {
	model *Model
	index int
}

// WithName attaches a diagnostic name to the variable.
func (v IntVar) WithName(name string) IntVar {
	v.model.ints[v.index].name = name
	return v
}

// Name returns the diagnostic name attached to the variable, if any.
func (v IntVar) Name() string {
	return v.model.ints[v.index].name
}

// BoolVar is a handle to a 0/1 variable of a Model, usable directly as a
// literal.
type BoolVar struct {
	model   *Model
	index   int
	negated bool
}

// Not returns the negated literal over the same variable.
func (v BoolVar) Not() BoolVar {
	v.negated = !v.negated
	return v
}

// WithName attaches a diagnostic name to the variable.
func (v BoolVar) WithName(name string) BoolVar {
	v.model.bools[v.index].name = name
	return v
}

type intVar struct {
	lo, hi int64
	name   string
}

type boolVar struct {
	name string
}

type constraintKind int

const (
	constraintEquality constraintKind = iota
	constraintInequality
	constraintBoolOr
	constraintElement
)

type constraint struct {
	kind constraintKind

	a, b     int       // integer operands of equality / inequality
	literals []BoolVar // disjunction operands
	enforce  []BoolVar // enforcement literals

	index  int     // element index variable
	values []int64 // element array
	target int     // element target variable
}

// Constraint is a handle to a posted constraint, used to attach enforcement
// literals.
type Constraint struct {
	model *Model
	index int
}

// OnlyEnforceIf restricts the constraint to hold only when every given
// literal is true.
func (c Constraint) OnlyEnforceIf(literals ...BoolVar) Constraint {
	posted := &c.model.constraints[c.index]
	posted.enforce = append(posted.enforce, literals...)
	return c
}

// Model accumulates variables and constraints for a single feasibility solve.
// A Model is built, solved once and discarded; it must not be shared across
// goroutines.
type Model struct {
	ints        []intVar
	bools       []boolVar
	constraints []constraint
	invalid     error
}

func NewModel() *Model {
	return &Model{}
}

// NewIntVar creates an integer variable with the inclusive domain [lo, hi].
func (m *Model) NewIntVar(lo, hi int64) IntVar {
	if lo > hi {
		m.setInvalid(fmt.Errorf("inverted domain [%d, %d]", lo, hi))
	}
	m.ints = append(m.ints, intVar{lo: lo, hi: hi})
	return IntVar{model: m, index: len(m.ints) - 1}
}

// NewBoolVar creates a 0/1 variable.
func (m *Model) NewBoolVar() BoolVar {
	m.bools = append(m.bools, boolVar{})
	return BoolVar{model: m, index: len(m.bools) - 1}
}

// AddEquality posts a == b.
func (m *Model) AddEquality(a, b IntVar) Constraint {
	return m.post(constraint{kind: constraintEquality, a: a.index, b: b.index})
}

// AddNotEqual posts a != b.
func (m *Model) AddNotEqual(a, b IntVar) Constraint {
	return m.post(constraint{kind: constraintInequality, a: a.index, b: b.index})
}

// AddBoolOr posts that at least one of the literals holds.
func (m *Model) AddBoolOr(literals ...BoolVar) Constraint {
	if len(literals) == 0 {
		m.setInvalid(fmt.Errorf("empty disjunction"))
	}
	return m.post(constraint{kind: constraintBoolOr, literals: literals})
}

// AddElement posts target == values[index].
func (m *Model) AddElement(index IntVar, values []int64, target IntVar) Constraint {
	if len(values) == 0 {
		m.setInvalid(fmt.Errorf("element constraint over an empty array"))
	}
	return m.post(constraint{kind: constraintElement, index: index.index, values: values, target: target.index})
}

func (m *Model) post(c constraint) Constraint {
	m.constraints = append(m.constraints, c)
	return Constraint{model: m, index: len(m.constraints) - 1}
}

func (m *Model) setInvalid(err error) {
	if m.invalid == nil {
		m.invalid = err
	}
}
