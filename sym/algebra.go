package sym

import "fmt"

// Combine applies op to left and right. Two concrete operands are folded
// into a new Concrete; any other pairing builds an Equation with the
// operands kept in the given order. Only folding can fail.
func Combine[T Scalar](op Operation, left, right Value[T]) (Value[T], error) {
	if l, ok := left.(Concrete[T]); ok {
		if r, ok := right.(Concrete[T]); ok {
			res, err := fold(op, l.Value, r.Value)
			if err != nil {
				return nil, err
			}
			return NewConcrete(res), nil
		}
	}
	checkOperand(left)
	checkOperand(right)
	return NewEquation(op, left, right), nil
}

func checkOperand[T Scalar](v Value[T]) {
	switch v.(type) {
	case Concrete[T], Variable[T], Equation[T]:
	default:
		panic(fmt.Sprintf("unknown value %T", v))
	}
}

func mustCombine[T Scalar](op Operation, left, right Value[T]) Value[T] {
	res, err := Combine(op, left, right)
	if err != nil {
		panic(err)
	}
	return res
}

func Add[T Scalar](left, right Value[T]) Value[T] {
	return mustCombine(ADD, left, right)
}

func Sub[T Scalar](left, right Value[T]) Value[T] {
	return mustCombine(SUB, left, right)
}

func Mul[T Scalar](left, right Value[T]) Value[T] {
	return mustCombine(MUL, left, right)
}

// Div fails with an *ArithmeticError only when both operands are concrete
// and the divisor is zero.
func Div[T Scalar](left, right Value[T]) (Value[T], error) {
	return Combine(DIV, left, right)
}

func And[T Scalar](left, right Value[T]) Value[T] {
	return mustCombine(AND, left, right)
}

func Or[T Scalar](left, right Value[T]) Value[T] {
	return mustCombine(OR, left, right)
}

func Xor[T Scalar](left, right Value[T]) Value[T] {
	return mustCombine(XOR, left, right)
}
