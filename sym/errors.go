package sym

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrDivisionByZero = errors.New("division by zero")

// ArithmeticError is returned when constant folding hits an operation that
// is undefined for its concrete operands.
type ArithmeticError struct {
	Op    Operation
	Left  string
	Right string
	Err   error
}

func (e *ArithmeticError) Error() string {
	return fmt.Sprintf("folding (%s %s %s): %s", e.Op, e.Left, e.Right, e.Err)
}

func (e *ArithmeticError) Unwrap() error {
	return e.Err
}
