package smt

import (
	"fmt"
	"math/big"

	"github.com/aclements/go-z3/z3"
	"github.com/pkg/errors"

	"slava0135/symcore/oracle"
	"slava0135/symcore/sym"
)

// EncodingContext builds z3 terms for values of one scalar type. Variables
// are declared on first use and shared by name afterwards.
type EncodingContext[T sym.Scalar] struct {
	*z3.Context

	sort    z3.Sort
	signed  bool
	timeout uint

	vars    map[string]z3.BV
	asserts []z3.Bool
}

// NewEncodingContext creates a context whose solvers give up after timeout
// milliseconds. Zero means no timeout.
func NewEncodingContext[T sym.Scalar](timeout uint) *EncodingContext[T] {
	var config *z3.Config
	if timeout > 0 {
		config = z3.NewContextConfig().SetUint("timeout", timeout)
	}
	ctx := z3.NewContext(config)
	return &EncodingContext[T]{
		Context: ctx,
		sort:    ctx.BVSort(sym.BitWidth[T]()),
		signed:  sym.Signed[T](),
		timeout: timeout,
		vars:    make(map[string]z3.BV),
	}
}

func (ctx *EncodingContext[T]) AddVar(v sym.Variable[T]) z3.BV {
	if bv, ok := ctx.vars[v.Name]; ok {
		return bv
	}
	bv := ctx.BVConst(v.Name, v.Width)
	ctx.vars[v.Name] = bv
	return bv
}

func (ctx *EncodingContext[T]) FromScalar(c T) z3.BV {
	return ctx.FromBigInt(new(big.Int).SetUint64(sym.Bits(c)), ctx.sort).(z3.BV)
}

func (ctx *EncodingContext[T]) Encode(v sym.Value[T]) z3.BV {
	switch v := v.(type) {
	case sym.Concrete[T]:
		return ctx.FromScalar(v.Value)
	case sym.Variable[T]:
		return ctx.AddVar(v)
	case sym.Equation[T]:
		left := ctx.Encode(v.Left())
		right := ctx.Encode(v.Right())
		switch v.Op {
		case sym.ADD:
			return left.Add(right)
		case sym.SUB:
			return left.Sub(right)
		case sym.MUL:
			return left.Mul(right)
		case sym.DIV:
			if ctx.signed {
				return left.SDiv(right)
			}
			return left.UDiv(right)
		case sym.AND:
			return left.And(right)
		case sym.OR:
			return left.Or(right)
		case sym.XOR:
			return left.Xor(right)
		default:
			panic(fmt.Sprintf("unknown operation '%s'", v.Op))
		}
	default:
		panic(fmt.Sprintf("unknown value %T", v))
	}
}

func (ctx *EncodingContext[T]) EncodeAssertion(a Assertion[T]) z3.Bool {
	left := ctx.Encode(a.Left)
	right := ctx.Encode(a.Right)
	switch a.Rel.predicate(ctx.signed) {
	case "=":
		return left.Eq(right)
	case "distinct":
		return left.NE(right)
	case "bvslt":
		return left.SLT(right)
	case "bvsle":
		return left.SLE(right)
	case "bvsgt":
		return left.SGT(right)
	case "bvsge":
		return left.SGE(right)
	case "bvult":
		return left.ULT(right)
	case "bvule":
		return left.ULE(right)
	case "bvugt":
		return left.UGT(right)
	case "bvuge":
		return left.UGE(right)
	}
	panic("unreachable")
}

func (ctx *EncodingContext[T]) Assert(a Assertion[T]) {
	ctx.asserts = append(ctx.asserts, ctx.EncodeAssertion(a))
}

// Check decides the collected assertions with a fresh solver.
func (ctx *EncodingContext[T]) Check() (oracle.Verdict, error) {
	solver := z3.NewSolver(ctx.Context)
	for _, a := range ctx.asserts {
		solver.Assert(a)
	}
	sat, err := solver.Check()
	if err != nil {
		var unknown *z3.ErrSatUnknown
		if errors.As(err, &unknown) {
			return oracle.UNDEF, nil
		}
		return oracle.UNDEF, errors.Wrap(err, "checking assertions")
	}
	if sat {
		return oracle.SAT, nil
	}
	return oracle.UNSAT, nil
}

// Check encodes the assertions in a new context and decides them in
// process, without going through an SMT-LIB2 file. The timeout is in
// milliseconds, as for the file oracle.
func Check[T sym.Scalar](assertions []Assertion[T], timeout uint) (oracle.Verdict, error) {
	ctx := NewEncodingContext[T](timeout)
	for _, a := range assertions {
		ctx.Assert(a)
	}
	return ctx.Check()
}
