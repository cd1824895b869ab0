package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonswain/sudsolve/internal/candidates"
	"github.com/jonswain/sudsolve/internal/loader"
	"github.com/jonswain/sudsolve/internal/render"
	"github.com/jonswain/sudsolve/internal/solver"
	"github.com/jonswain/sudsolve/internal/verifier"
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve <puzzle.csv>",
		Short: "Solve a puzzle read from a CSV file",
		Long: `Solve a puzzle stored as nine CSV rows of nine fields, each a digit
1-9 or X for an unknown cell.

Examples:
  sudsolve solve puzzle.csv
  sudsolve solve --log-level debug puzzle.csv`,
		Args: cobra.ExactArgs(1),
		RunE: runSolve,
	}
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	g, err := loader.FromFile(args[0])
	if err != nil {
		return fmt.Errorf("loading %s: %w", args[0], err)
	}

	out, rep, err := solver.NewPropagation().Solve(cmd.Context(), g)
	if err != nil {
		if errors.Is(err, candidates.ErrUnsatisfiable) {
			return fmt.Errorf("puzzle is contradictory: %w", err)
		}
		return err
	}
	log.WithFields(logrus.Fields{
		"state":    rep.State.String(),
		"rounds":   rep.Rounds,
		"unknowns": out.UnknownCount(),
		"dur":      rep.Duration,
	}).Debug("solve finished")

	if err := render.Write(os.Stdout, out); err != nil {
		return err
	}
	ok, _, err := verifier.New().Verify(cmd.Context(), out)
	if err != nil {
		return err
	}
	if ok {
		fmt.Printf("SOLVED! (in %d iterations)\n", rep.Rounds)
	} else {
		fmt.Printf("NOT SOLVED! (in %d iterations)\n", rep.Rounds)
	}
	return nil
}
