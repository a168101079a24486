package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"slava0135/symcore/config"
	"slava0135/symcore/sym"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build and print the example value trees",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd.OutOrStdout())
	},
}

// scenario builds (10 + x) * (50 ^ y) over uint8.
func scenario() sym.Value[uint8] {
	a := sym.NewConcrete[uint8](10)
	b := sym.NewConcrete[uint8](50)
	c := sym.NewVariable[uint8]("x")
	d := sym.NewVariable[uint8]("y")

	e := sym.Add(a, c)
	f := sym.Xor(b, d)
	return sym.Mul(e, f)
}

func printValue[T sym.Scalar](w io.Writer, title string, v sym.Value[T]) error {
	fmt.Fprintln(w, "::", title)
	if cfg.Output == config.OutputYAML {
		s, err := sym.ToYAML(v)
		if err != nil {
			return err
		}
		fmt.Fprint(w, s)
		return nil
	}
	fmt.Fprintln(w, sym.Render(v))
	return nil
}

func runDemo(w io.Writer) error {
	if err := printValue(w, "(10 + x) * (50 ^ y)", scenario()); err != nil {
		return err
	}
	if err := printValue(w, "7 + 3", sym.Add(sym.NewConcrete[uint8](7), sym.NewConcrete[uint8](3))); err != nil {
		return err
	}

	q, err := sym.Div(sym.NewVariable[uint8]("x"), sym.NewConcrete[uint8](0))
	if err != nil {
		return err
	}
	if err := printValue(w, "x / 0", q); err != nil {
		return err
	}

	fmt.Fprintln(w, "::", "5 / 0")
	if _, err := sym.Div(sym.NewConcrete[uint8](5), sym.NewConcrete[uint8](0)); err != nil {
		fmt.Fprintln(w, "[ERROR]", err)
	}
	return nil
}
