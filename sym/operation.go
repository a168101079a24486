package sym

import (
	"fmt"

	"github.com/pkg/errors"
)

// Operation is the tag of a deferred binary computation.
type Operation int

const (
	ADD Operation = iota
	SUB
	MUL
	DIV
	AND
	OR
	XOR
)

var operationTags = [...]string{
	ADD: "ADD",
	SUB: "SUB",
	MUL: "MUL",
	DIV: "DIV",
	AND: "AND",
	OR:  "OR",
	XOR: "XOR",
}

// Operations lists every operation in declaration order.
func Operations() []Operation {
	return []Operation{ADD, SUB, MUL, DIV, AND, OR, XOR}
}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationTags) {
		return fmt.Sprintf("Operation(%d)", int(op))
	}
	return operationTags[op]
}

// Arity is 2 for every operation.
func (op Operation) Arity() int {
	return 2
}

// ParseOperation is the inverse of Operation.String.
func ParseOperation(tag string) (Operation, error) {
	for i, t := range operationTags {
		if t == tag {
			return Operation(i), nil
		}
	}
	return 0, errors.Errorf("unknown operation '%s'", tag)
}

// fold evaluates op over two concrete scalars.
func fold[T Scalar](op Operation, a, b T) (T, error) {
	switch op {
	case ADD:
		return a + b, nil
	case SUB:
		return a - b, nil
	case MUL:
		return a * b, nil
	case DIV:
		if b == 0 {
			return 0, &ArithmeticError{Op: op, Left: fmt.Sprint(a), Right: fmt.Sprint(b), Err: ErrDivisionByZero}
		}
		return a / b, nil
	case AND:
		return a & b, nil
	case OR:
		return a | b, nil
	case XOR:
		return a ^ b, nil
	default:
		panic(fmt.Sprintf("unknown operation '%s'", op))
	}
}
