package sat

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

const cryptominisatPath = "cryptominisat"

type cryptominisatSolver struct{}

// NewCryptominisatSolver returns a solver shelling out to the cryptominisat
// binary, feeding it DIMACS on standard input.
func NewCryptominisatSolver() Solver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(instance SAT) (Solution, error) {
	cmd := exec.Command(cryptominisatPath, "--verb", "0")
	cmd.Stdin = strings.NewReader(instance.ToDIMACS())

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	// Exit-code 10 stands for satisfiable and exit-code 20 for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return nil, fmt.Errorf("error during cryptominisat execution: %v : %v", err, stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return nil, nil
	}

	return ParseSolution(stdout.String()), nil
}
