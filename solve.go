package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"slava0135/symcore/oracle"
)

var solveCmd = &cobra.Command{
	Use:   "solve FILE...",
	Short: "Decide satisfiability of SMT-LIB2 files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(cmd.OutOrStdout(), oracle.NewZ3(cfg.Oracle.Timeout), args)
	},
}

func runSolve(w io.Writer, o oracle.Oracle, paths []string) error {
	failed := 0
	for _, r := range oracle.SolveAll(o, paths) {
		if r.Err != nil {
			fmt.Fprintln(w, "::", r.Path, "> [ERROR]", r.Err)
			failed++
			continue
		}
		fmt.Fprintln(w, "::", r.Path, ">", r.Verdict)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d queries failed", failed, len(paths))
	}
	return nil
}
