package oracle

import (
	"fmt"

	"github.com/pkg/errors"
)

// Verdict is the tri-state answer of a satisfiability check.
type Verdict int

const (
	SAT Verdict = iota
	UNSAT
	UNDEF
)

func (v Verdict) String() string {
	switch v {
	case SAT:
		return "SAT"
	case UNSAT:
		return "UNSAT"
	case UNDEF:
		return "UNDEF"
	default:
		return fmt.Sprintf("Verdict(%d)", int(v))
	}
}

var (
	// ErrMalformedQuery is returned when the query file cannot be read or
	// parsed. It is never reported as UNDEF.
	ErrMalformedQuery = errors.New("malformed query")
	// ErrResourceAcquisition is returned when the solver configuration,
	// context or solver instance cannot be created.
	ErrResourceAcquisition = errors.New("solver resource acquisition failed")
)

// Oracle decides satisfiability of an SMT-LIB2 file. Implementations must
// not share solver state between calls.
type Oracle interface {
	Solve(path string) (Verdict, error)
}

type Result struct {
	Path    string
	Verdict Verdict
	Err     error
}

// SolveAll solves each file independently, in order. A failure on one file
// does not stop the others.
func SolveAll(o Oracle, paths []string) []Result {
	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		v, err := o.Solve(p)
		results = append(results, Result{Path: p, Verdict: v, Err: err})
	}
	return results
}

// lbool mirrors Z3_lbool.
type lbool int

const (
	lFalse lbool = -1
	lUndef lbool = 0
	lTrue  lbool = 1
)

func verdictOf(b lbool) Verdict {
	switch b {
	case lTrue:
		return SAT
	case lFalse:
		return UNSAT
	default:
		return UNDEF
	}
}
