package cp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OPTIMAL", Optimal.String())
	assert.Equal(t, "FEASIBLE", Feasible.String())
	assert.Equal(t, "INFEASIBLE", Infeasible.String())
	assert.Equal(t, "MODEL_INVALID", ModelInvalid.String())
	assert.Equal(t, "UNKNOWN", Unknown.String())
}

func TestVariableNames(t *testing.T) {
	// Arrange
	model := NewModel()

	// Act
	x := model.NewIntVar(0, 4).WithName("lesson_0_day")

	// Assert
	assert.Equal(t, "lesson_0_day", x.Name())
}

func TestOnlyEnforceIfAccumulates(t *testing.T) {
	// Arrange
	model := NewModel()
	x := model.NewIntVar(0, 1)
	y := model.NewIntVar(0, 1)
	a := model.NewBoolVar()
	b := model.NewBoolVar()

	// Act
	model.AddEquality(x, y).OnlyEnforceIf(a).OnlyEnforceIf(b.Not())

	// Assert
	assert.Len(t, model.constraints[0].enforce, 2)
	assert.False(t, model.constraints[0].enforce[0].negated)
	assert.True(t, model.constraints[0].enforce[1].negated)
}

func TestLiteralNegationIsInvolutive(t *testing.T) {
	model := NewModel()
	b := model.NewBoolVar()

	assert.Equal(t, b, b.Not().Not())
	assert.NotEqual(t, b, b.Not())
}
