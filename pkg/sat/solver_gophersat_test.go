package sat

import (
	"log"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGophersatSatisfiable(t *testing.T) {
	solver := NewGophersatSolver()
	unsatisfiableCount := 0

	for range 20 {
		variables := uint64(rand.IntN(100) + 1)
		clauses := rand.IntN(200) + 1
		instance := GenerateInstance(variables, clauses)

		solution, err := solver.Solve(instance)
		if err != nil {
			t.Errorf("an error occurred while solving a SAT instance: %v", err)
		}

		if solution == nil {
			unsatisfiableCount++
			continue
		}

		if !AssertSolution(instance, solution) {
			t.Error("Wrong answer")
		}
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}

func TestGophersatUnsatisfiable(t *testing.T) {
	// Arrange
	solver := NewGophersatSolver()
	instance := SAT{
		Variables: 2,
		Clauses: [][]int64{
			{1, 2},
			{-1, 2},
			{1, -2},
			{-1, -2},
		},
	}

	// Act
	solution, err := solver.Solve(instance)

	// Assert
	assert.Nil(t, err)
	assert.Nil(t, solution)
}

func TestGophersatCoversAllVariables(t *testing.T) {
	// Arrange
	solver := NewGophersatSolver()
	instance := SAT{
		Variables: 5, // Variables 4 and 5 appear in no clause
		Clauses:   [][]int64{{1}, {-2, 3}},
	}

	// Act
	solution, err := solver.Solve(instance)

	// Assert
	assert.Nil(t, err)
	assert.Len(t, solution, 5)
	assert.True(t, AssertSolution(instance, solution))
}
