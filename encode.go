package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"slava0135/symcore/oracle"
	"slava0135/symcore/smt"
	"slava0135/symcore/sym"
)

var (
	encodeCmd = &cobra.Command{
		Use:   "encode",
		Short: "Encode (10 + x) * (50 ^ y) REL N as an SMT-LIB2 query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rel, err := smt.ParseRelation(encodeRelation)
			if err != nil {
				return err
			}
			return runEncode(cmd.OutOrStdout(), rel, encodeValue, encodeOut, encodeCheck)
		},
	}

	encodeRelation string
	encodeValue    uint8
	encodeOut      string
	encodeCheck    bool
)

func init() {
	fl := encodeCmd.Flags()
	fl.StringVar(&encodeRelation, "rel", "==", "relation between the expression and the value")
	fl.Uint8Var(&encodeValue, "value", 0, "right hand side of the relation")
	fl.StringVar(&encodeOut, "out", "", "write the query to this file")
	fl.BoolVar(&encodeCheck, "check", false, "decide the query in process and through the file oracle")
}

func runEncode(w io.Writer, rel smt.Relation, value uint8, out string, check bool) error {
	enc := smt.NewEncoder[uint8]().Assert(rel, scenario(), sym.NewConcrete(value))
	q := enc.Query()
	fmt.Fprint(w, q)

	if out != "" {
		if err := q.WriteFile(out); err != nil {
			return err
		}
	}
	if !check {
		return nil
	}

	inProcess, err := smt.Check(enc.Assertions(), cfg.Oracle.Timeout)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "::", "in process >", inProcess)

	path := out
	if path == "" {
		dir, err := os.MkdirTemp("", "symcore")
		if err != nil {
			return errors.Wrap(err, "creating query directory")
		}
		defer os.RemoveAll(dir)
		path = filepath.Join(dir, "query.smt2")
		if err := q.WriteFile(path); err != nil {
			return err
		}
	}
	fromFile, err := oracle.NewZ3(cfg.Oracle.Timeout).Solve(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "::", "file oracle >", fromFile)
	if inProcess != fromFile {
		return errors.Errorf("oracles disagree: %s vs %s", inProcess, fromFile)
	}
	return nil
}
