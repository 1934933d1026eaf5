package fracalc

import (
	"fmt"
	"strings"
)

// Operator is one of the four arithmetic operators accepted in an equation.
type Operator byte

const (
	Add Operator = '+'
	Sub Operator = '-'
	Mul Operator = '*'
	Div Operator = '/'
)

// ParseOperator returns the Operator spelled by s.
func ParseOperator(s string) (Operator, error) {
	if len(s) == 1 {
		switch op := Operator(s[0]); op {
		case Add, Sub, Mul, Div:
			return op, nil
		}
	}
	return 0, fmt.Errorf("operator %q: %w", s, ErrEquationParse)
}

// String returns the symbol of op.
func (op Operator) String() string {
	return string(rune(op))
}

// Equation is a single binary operation on two decoded operands.
type Equation struct {
	Left  float64
	Right float64
	Op    Operator
}

// ParseEquation parses an equation of the form "x op y", where x and y are
// numbers accepted by DecodeNumber and op is one of + - * /.
//
// Tokens are separated by one or more spaces. Exactly one operator is
// allowed; there is no precedence and there are no parentheses. ParseEquation
// returns ErrEquationParse for a bad token count or operator, and otherwise
// the error of the first operand that fails to decode.
func ParseEquation(s string) (Equation, error) {
	var left, op, right string
	for _, tok := range strings.Split(s, " ") {
		if tok == "" {
			continue
		}
		switch {
		case left == "":
			left = tok
		case op == "":
			op = tok
		case right == "":
			right = tok
		default:
			return Equation{}, fmt.Errorf("parsing %q: too many tokens: %w", s, ErrEquationParse)
		}
	}

	o, err := ParseOperator(op)
	if err != nil {
		return Equation{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	x, err := DecodeNumber(left)
	if err != nil {
		return Equation{}, fmt.Errorf("left operand: %w", err)
	}
	y, err := DecodeNumber(right)
	if err != nil {
		return Equation{}, fmt.Errorf("right operand: %w", err)
	}
	return Equation{Left: x, Right: y, Op: o}, nil
}

// Eval applies the operator of e to its operands.
// Eval returns ErrDivByZero when dividing by exactly zero.
func (e Equation) Eval() (float64, error) {
	switch e.Op {
	case Add:
		return e.Left + e.Right, nil
	case Sub:
		return e.Left - e.Right, nil
	case Mul:
		return e.Left * e.Right, nil
	case Div:
		if e.Right == 0 {
			return 0, ErrDivByZero
		}
		return e.Left / e.Right, nil
	default:
		return 0, fmt.Errorf("operator %q: %w", e.Op, ErrEquationParse)
	}
}
