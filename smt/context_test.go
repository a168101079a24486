package smt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slava0135/symcore/oracle"
	"slava0135/symcore/sym"
)

// solveFile runs the assertions through the file based oracle.
func solveFile[T sym.Scalar](t *testing.T, enc *Encoder[T]) oracle.Verdict {
	t.Helper()
	path := filepath.Join(t.TempDir(), "query.smt2")
	require.NoError(t, enc.Query().WriteFile(path))
	v, err := oracle.NewZ3(0).Solve(path)
	require.NoError(t, err)
	return v
}

func TestCheck_ScenarioSat(t *testing.T) {
	_, _, g := scenario()
	enc := NewEncoder[uint8]().Assert(EQ, g, sym.NewConcrete[uint8](0))

	v, err := Check(enc.Assertions(), 0)
	require.NoError(t, err)
	assert.Equal(t, oracle.SAT, v)
	assert.Equal(t, oracle.SAT, solveFile(t, enc))
}

func TestCheck_IncrementUnsat(t *testing.T) {
	x := sym.NewVariable[uint8]("x")
	enc := NewEncoder[uint8]().Assert(EQ, sym.Add(x, sym.NewConcrete[uint8](1)), x)

	v, err := Check(enc.Assertions(), 0)
	require.NoError(t, err)
	assert.Equal(t, oracle.UNSAT, v)
	assert.Equal(t, oracle.UNSAT, solveFile(t, enc))
}

func TestCheck_SignedOrdering(t *testing.T) {
	x := sym.NewVariable[int8]("x")
	// x < 0 && x >u 0x7f holds for every negative int8
	enc := NewEncoder[int8]().
		Assert(LT, x, sym.NewConcrete[int8](0)).
		Assert(UGT, x, sym.NewConcrete[int8](127))
	v, err := Check(enc.Assertions(), 0)
	require.NoError(t, err)
	assert.Equal(t, oracle.SAT, v)

	enc.Assert(GE, x, sym.NewConcrete[int8](0))
	v, err = Check(enc.Assertions(), 0)
	require.NoError(t, err)
	assert.Equal(t, oracle.UNSAT, v)
	assert.Equal(t, oracle.UNSAT, solveFile(t, enc))
}

func TestCheck_SymbolicDivisionByZero(t *testing.T) {
	x := sym.NewVariable[uint8]("x")
	q, err := sym.Div(x, sym.NewConcrete[uint8](0))
	require.NoError(t, err)
	// bvudiv by zero is all ones in SMT-LIB2
	enc := NewEncoder[uint8]().Assert(DISTINCT, q, sym.NewConcrete[uint8](255))

	v, err := Check(enc.Assertions(), 0)
	require.NoError(t, err)
	assert.Equal(t, oracle.UNSAT, v)
}

func TestEncodingContext_SharesVariables(t *testing.T) {
	ctx := NewEncodingContext[uint16](0)
	a := ctx.AddVar(sym.Variable[uint16]{Name: "a", Width: 16})
	b := ctx.AddVar(sym.Variable[uint16]{Name: "a", Width: 16})
	assert.Equal(t, a.String(), b.String())
	assert.Len(t, ctx.vars, 1)
}

func TestCheck_Timeout(t *testing.T) {
	ctx := NewEncodingContext[uint8](5000)
	assert.Equal(t, uint(5000), ctx.timeout)

	_, _, g := scenario()
	v, err := Check(NewEncoder[uint8]().Assert(EQ, g, sym.NewConcrete[uint8](0)).Assertions(), 5000)
	require.NoError(t, err)
	assert.Equal(t, oracle.SAT, v)
}

func TestCheck_EscapedNamesStayDistinct(t *testing.T) {
	pairs := [][2]string{{"p|q", "p_q"}, {`a\b`, "a_b"}, {"a#7cb", "a|b"}}
	for _, p := range pairs {
		a := sym.NewVariable[uint8](p[0])
		b := sym.NewVariable[uint8](p[1])
		enc := NewEncoder[uint8]().Assert(DISTINCT, a, b)

		assert.Len(t, enc.Query().Declarations, 2, p)
		v, err := Check(enc.Assertions(), 0)
		require.NoError(t, err)
		assert.Equal(t, oracle.SAT, v, p)
		assert.Equal(t, oracle.SAT, solveFile(t, enc), p)
	}
}
