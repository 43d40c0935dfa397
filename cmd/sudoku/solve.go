package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-solver/internal/gridio"
	"svw.info/sudoku-solver/internal/validator"
)

func newSolveCommand() *cobra.Command {
	var (
		file    string
		backend string
		minimal bool
		stats   bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle given as an 81-character string or a puzzle file",
		Long: `Solve reads one puzzle from the command line or many from a text file
(--file) with "Grid NN" headers, runs the solver over each, and prints the
result. Blank cells are written as 0, '.', 'x', or 'X'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := pickSolver(backend)
			if err != nil {
				return err
			}

			var entries []gridio.Entry
			switch {
			case file != "":
				entries, err = gridio.ReadFile(file)
				if err != nil {
					return err
				}
			case len(args) == 1:
				b, err := gridio.Parse(args[0])
				if err != nil {
					return err
				}
				entries = []gridio.Entry{{Board: b}}
			default:
				return errors.New("pass an 81-character puzzle or --file")
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, e := range entries {
				if e.Name != "" {
					fmt.Fprintln(out, e.Name)
				}
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				solved, st, err := s.Solve(ctx, e.Board)
				cancel()
				if err != nil {
					failed++
					fmt.Fprintln(out, "Failed!")
					continue
				}
				if minimal {
					fmt.Fprintln(out, gridio.String(solved))
				} else {
					fmt.Fprint(out, gridio.Pretty(solved))
				}
				fmt.Fprintln(out, "Success!")
				if stats {
					fmt.Fprintf(out, "deduced=%d nodes=%d dur=%v\n", st.Deduced, st.Nodes, st.Duration.Round(time.Microsecond))
				}
			}
			if len(entries) > 1 {
				fmt.Fprintf(out, "Failed %d\n", failed)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d puzzles failed", failed, len(entries))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "puzzle file with Grid NN headers")
	cmd.Flags().StringVar(&backend, "solver", "rules", "solver backend: rules|backtrack|sat")
	cmd.Flags().BoolVar(&minimal, "minimal", false, "print solutions as 81-character strings")
	cmd.Flags().BoolVar(&stats, "stats", false, "print deduction and search statistics")
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "per-puzzle solve timeout")
	return cmd
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <puzzle>",
		Short: "Check an 81-character puzzle for row/column/box conflicts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := gridio.Parse(args[0])
			if err != nil {
				return err
			}
			ok, conflicts, err := validator.New().Validate(cmd.Context(), b)
			if err != nil {
				return err
			}
			if !ok {
				for _, cc := range conflicts {
					fmt.Fprintf(cmd.OutOrStdout(), "conflict at row %d, col %d\n", cc.Row+1, cc.Col+1)
				}
				return fmt.Errorf("%d conflicts", len(conflicts))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}
}
