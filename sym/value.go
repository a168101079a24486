// Package sym implements values that are concrete, symbolic or a binary
// equation over other values, folding constants where both sides are known.
package sym

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is either a Concrete scalar, a symbolic Variable or an Equation
// over two other values. Values are immutable.
type Value[T Scalar] interface {
	fmt.Stringer

	isValue(T)
}

type Concrete[T Scalar] struct {
	Value T
}

// Variable is a named unknown. Width is fixed by T at construction.
type Variable[T Scalar] struct {
	Name  string
	Width int
}

type Equation[T Scalar] struct {
	Op       Operation
	Operands [2]Value[T]
}

func NewConcrete[T Scalar](v T) Value[T] {
	return Concrete[T]{Value: v}
}

func NewVariable[T Scalar](name string) Value[T] {
	return Variable[T]{Name: name, Width: BitWidth[T]()}
}

func NewEquation[T Scalar](op Operation, left, right Value[T]) Value[T] {
	return Equation[T]{Op: op, Operands: [2]Value[T]{left, right}}
}

func (Concrete[T]) isValue(T) {}
func (Variable[T]) isValue(T) {}
func (Equation[T]) isValue(T) {}

func (c Concrete[T]) String() string {
	return fmt.Sprint(c.Value)
}

func (v Variable[T]) String() string {
	return "<" + v.Name + ":" + strconv.Itoa(v.Width) + ">"
}

func (e Equation[T]) String() string {
	var sb strings.Builder
	render[T](&sb, e)
	return sb.String()
}

func (e Equation[T]) Left() Value[T] {
	return e.Operands[0]
}

func (e Equation[T]) Right() Value[T] {
	return e.Operands[1]
}

// Render returns the canonical prefix form of v: scalars print natively,
// variables as <name:width> and equations as (TAG left right).
func Render[T Scalar](v Value[T]) string {
	var sb strings.Builder
	render(&sb, v)
	return sb.String()
}

func render[T Scalar](sb *strings.Builder, v Value[T]) {
	switch v := v.(type) {
	case Equation[T]:
		sb.WriteByte('(')
		sb.WriteString(v.Op.String())
		sb.WriteByte(' ')
		render(sb, v.Operands[0])
		sb.WriteByte(' ')
		render(sb, v.Operands[1])
		sb.WriteByte(')')
	case Concrete[T], Variable[T]:
		sb.WriteString(v.String())
	default:
		panic(fmt.Sprintf("unknown value %T", v))
	}
}

// Depth is 0 for leaves and 1 + the deeper operand for equations.
func Depth[T Scalar](v Value[T]) int {
	e, ok := v.(Equation[T])
	if !ok {
		return 0
	}
	return 1 + max(Depth(e.Operands[0]), Depth(e.Operands[1]))
}

// Variables returns the distinct variables of v, keyed by name and width,
// in order of first appearance from the left.
func Variables[T Scalar](v Value[T]) []Variable[T] {
	seen := make(map[Variable[T]]struct{})
	var vars []Variable[T]
	var walk func(Value[T])
	walk = func(v Value[T]) {
		switch v := v.(type) {
		case Variable[T]:
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				vars = append(vars, v)
			}
		case Equation[T]:
			walk(v.Operands[0])
			walk(v.Operands[1])
		}
	}
	walk(v)
	return vars
}
