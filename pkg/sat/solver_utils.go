package sat

import (
	"log"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseSolution extracts a satisfying assignment from a DIMACS solver's
// output: "v" lines holding signed literals terminated by a lone 0. Returns
// nil when no value line is present.
func ParseSolution(solverOutput string) Solution {
	valueLines := lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
		return len(line) > 1 && line[0] == 'v'
	})

	if len(valueLines) == 0 {
		return nil
	}

	solution := make(Solution, 0)
	for _, line := range valueLines {
		for _, token := range strings.Fields(line[1:]) {
			literal, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			if literal == 0 {
				continue
			}
			solution = append(solution, literal)
		}
	}

	return solution
}
