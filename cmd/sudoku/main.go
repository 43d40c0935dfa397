package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/ports"
	"svw.info/sudoku-solver/internal/solver"
)

func main() {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Solve 9x9 Sudoku puzzles from strings, files, or over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSolveCommand(), newValidateCommand(), newServeCommand())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// pickSolver maps the --solver flag onto a backend.
func pickSolver(kind string) (ports.Solver, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", "rules":
		return solver.NewRuleSolver(), nil
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver(), nil
	case "sat":
		return solver.NewSATSolver(), nil
	}
	return nil, fmt.Errorf("unknown solver %q (rules|backtrack|sat)", kind)
}
