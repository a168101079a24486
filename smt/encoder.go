package smt

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"

	"slava0135/symcore/sym"
)

const logic = "QF_BV"

// Assertion constrains two values with a relation.
type Assertion[T sym.Scalar] struct {
	Rel   Relation
	Left  sym.Value[T]
	Right sym.Value[T]
}

func (a Assertion[T]) String() string {
	return fmt.Sprintf("%s %s %s", a.Left, a.Rel, a.Right)
}

type Declaration struct {
	Name  string
	Width int
}

func (d Declaration) String() string {
	return fmt.Sprintf("(declare-const %s (_ BitVec %d))", symbol(d.Name), d.Width)
}

// Query is an SMT-LIB2 script: declarations, assertions and a check-sat.
type Query struct {
	Declarations []Declaration
	Assertions   []string
}

func (q Query) String() string {
	var sb strings.Builder
	sb.WriteString("(set-logic " + logic + ")\n")
	for _, d := range q.Declarations {
		sb.WriteString(d.String())
		sb.WriteByte('\n')
	}
	for _, a := range q.Assertions {
		sb.WriteString("(assert " + a + ")\n")
	}
	sb.WriteString("(check-sat)\n")
	return sb.String()
}

func (q Query) WriteFile(path string) error {
	if err := os.WriteFile(path, []byte(q.String()), 0o644); err != nil {
		return errors.Wrapf(err, "writing query to '%s'", path)
	}
	return nil
}

// Encoder collects assertions over values of one scalar type.
type Encoder[T sym.Scalar] struct {
	assertions []Assertion[T]
}

func NewEncoder[T sym.Scalar]() *Encoder[T] {
	return &Encoder[T]{}
}

func (e *Encoder[T]) Assert(rel Relation, left, right sym.Value[T]) *Encoder[T] {
	e.assertions = append(e.assertions, Assertion[T]{Rel: rel, Left: left, Right: right})
	return e
}

func (e *Encoder[T]) Assertions() []Assertion[T] {
	return append([]Assertion[T](nil), e.assertions...)
}

// Query declares every distinct variable once, in order of first
// appearance across the assertions.
func (e *Encoder[T]) Query() Query {
	var q Query
	seen := make(map[Declaration]struct{})
	for _, a := range e.assertions {
		for _, side := range []sym.Value[T]{a.Left, a.Right} {
			for _, v := range sym.Variables(side) {
				d := Declaration{Name: v.Name, Width: v.Width}
				if _, ok := seen[d]; ok {
					continue
				}
				seen[d] = struct{}{}
				q.Declarations = append(q.Declarations, d)
			}
		}
		q.Assertions = append(q.Assertions, EncodeAssertion(a))
	}
	return q
}

func EncodeAssertion[T sym.Scalar](a Assertion[T]) string {
	return fmt.Sprintf("(%s %s %s)", a.Rel.predicate(sym.Signed[T]()), Encode(a.Left), Encode(a.Right))
}

// Encode returns the bit-vector term of v.
func Encode[T sym.Scalar](v sym.Value[T]) string {
	var sb strings.Builder
	encode(&sb, v)
	return sb.String()
}

func encode[T sym.Scalar](sb *strings.Builder, v sym.Value[T]) {
	switch v := v.(type) {
	case sym.Concrete[T]:
		fmt.Fprintf(sb, "(_ bv%d %d)", sym.Bits(v.Value), sym.BitWidth[T]())
	case sym.Variable[T]:
		sb.WriteString(symbol(v.Name))
	case sym.Equation[T]:
		sb.WriteByte('(')
		sb.WriteString(function[T](v.Op))
		sb.WriteByte(' ')
		encode(sb, v.Left())
		sb.WriteByte(' ')
		encode(sb, v.Right())
		sb.WriteByte(')')
	default:
		panic(fmt.Sprintf("unknown value %T", v))
	}
}

func function[T sym.Scalar](op sym.Operation) string {
	switch op {
	case sym.ADD:
		return "bvadd"
	case sym.SUB:
		return "bvsub"
	case sym.MUL:
		return "bvmul"
	case sym.DIV:
		if sym.Signed[T]() {
			return "bvsdiv"
		}
		return "bvudiv"
	case sym.AND:
		return "bvand"
	case sym.OR:
		return "bvor"
	case sym.XOR:
		return "bvxor"
	default:
		panic(fmt.Sprintf("unknown operation '%s'", op))
	}
}

var reserved = map[string]bool{
	"_": true, "!": true, "as": true, "let": true, "exists": true, "forall": true, "match": true, "par": true,
	"assert": true, "check-sat": true, "declare-const": true, "declare-fun": true, "define-fun": true,
	"set-logic": true, "set-option": true, "push": true, "pop": true, "exit": true,
}

// quoted symbols cannot hold '|' or '\'. '#' is never part of a simple
// symbol, so escaped names cannot collide with unquoted ones.
var symbolEscaper = strings.NewReplacer("#", "#23", "|", "#7c", `\`, "#5c")

// symbol quotes name unless it is a simple, non-reserved SMT-LIB2 symbol.
func symbol(name string) string {
	if isSimpleSymbol(name) && !reserved[name] {
		return name
	}
	return "|" + symbolEscaper.Replace(name) + "|"
}

func isSimpleSymbol(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= '0' && name[0] <= '9' {
		return false
	}
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case strings.ContainsRune("~!@$%^&*_-+=<>.?/", c):
		default:
			return false
		}
	}
	return true
}
