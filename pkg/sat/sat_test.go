package sat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDIMACS(t *testing.T) {
	// Arrange
	instance := SAT{
		Variables: 3,
		Clauses: [][]int64{
			{1, -2},
			{2, 3},
		},
	}

	// Act
	dimacs := instance.ToDIMACS()

	// Assert
	assert.Equal(t, "p cnf 3 2\n1 -2 0\n2 3 0\n", dimacs)
}

func TestParseSolution(t *testing.T) {
	t.Run("single value line", func(t *testing.T) {
		solution := ParseSolution("c comment\ns SATISFIABLE\nv 1 -2 3 0\n")
		assert.Equal(t, Solution{1, -2, 3}, solution)
	})

	t.Run("multiple value lines", func(t *testing.T) {
		solution := ParseSolution("s SATISFIABLE\nv 1 -2\nv 3 -4 0\n")
		assert.Equal(t, Solution{1, -2, 3, -4}, solution)
	})

	t.Run("no value line", func(t *testing.T) {
		solution := ParseSolution("s UNSATISFIABLE\n")
		assert.Nil(t, solution)
	})
}
