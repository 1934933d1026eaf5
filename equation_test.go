package fracalc_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kbolino/fracalc"
)

func TestParseEquation(t *testing.T) {
	cases := []struct {
		Text string
		Eq   fracalc.Equation
		Err  error
	}{
		{"1 + 2", fracalc.Equation{Left: 1, Right: 2, Op: fracalc.Add}, nil},
		{"  1   -   2  ", fracalc.Equation{Left: 1, Right: 2, Op: fracalc.Sub}, nil},
		{"4 * 2_1/2", fracalc.Equation{Left: 4, Right: 2.5, Op: fracalc.Mul}, nil},
		{"-1/2 / +3", fracalc.Equation{Left: -0.5, Right: 3, Op: fracalc.Div}, nil},
		{"6 / 0", fracalc.Equation{Left: 6, Right: 0, Op: fracalc.Div}, nil},
		{"", fracalc.Equation{}, fracalc.ErrEquationParse},
		{"1", fracalc.Equation{}, fracalc.ErrEquationParse},
		{"1 + 2 + 3", fracalc.Equation{}, fracalc.ErrEquationParse},
		{"1 & 2", fracalc.Equation{}, fracalc.ErrEquationParse},
		{"1 ++ 2", fracalc.Equation{}, fracalc.ErrEquationParse},
		{"1+2", fracalc.Equation{}, fracalc.ErrEquationParse},
		{"1\t+\t2", fracalc.Equation{}, fracalc.ErrEquationParse},
		{"1 +", fracalc.Equation{}, fracalc.ErrNumberParse},
		{"1__2/3 + 1", fracalc.Equation{}, fracalc.ErrNumberParse},
		{"1 + 5/0", fracalc.Equation{}, fracalc.ErrNumberParse},
		{"99999999999999999999 * 2", fracalc.Equation{}, fracalc.ErrNumberOverflow},
		// the left operand is checked first
		{"x + 99999999999999999999", fracalc.Equation{}, fracalc.ErrNumberParse},
		{"99999999999999999999 + x", fracalc.Equation{}, fracalc.ErrNumberOverflow},
	}
	for _, c := range cases {
		t.Run(c.Text, func(t *testing.T) {
			eq, err := fracalc.ParseEquation(c.Text)
			if !errors.Is(err, c.Err) {
				t.Fatalf("got error %v, want %v", err, c.Err)
			}
			if eq != c.Eq {
				t.Errorf("got %+v, want %+v", eq, c.Eq)
			}
		})
	}
}

func TestEquation_Eval(t *testing.T) {
	cases := []struct {
		Eq    fracalc.Equation
		Value float64
		Err   error
	}{
		{fracalc.Equation{Left: 1, Right: 2, Op: fracalc.Add}, 3, nil},
		{fracalc.Equation{Left: 1, Right: 2, Op: fracalc.Sub}, -1, nil},
		{fracalc.Equation{Left: 4, Right: 2.5, Op: fracalc.Mul}, 10, nil},
		{fracalc.Equation{Left: 1, Right: 4, Op: fracalc.Div}, 0.25, nil},
		{fracalc.Equation{Left: 6, Right: 0, Op: fracalc.Div}, 0, fracalc.ErrDivByZero},
		{fracalc.Equation{Left: 0, Right: 0, Op: fracalc.Mul}, 0, nil},
		{fracalc.Equation{Left: 1, Right: 2, Op: '%'}, 0, fracalc.ErrEquationParse},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%g%s%g", c.Eq.Left, c.Eq.Op, c.Eq.Right), func(t *testing.T) {
			v, err := c.Eq.Eval()
			if !errors.Is(err, c.Err) {
				t.Fatalf("got error %v, want %v", err, c.Err)
			}
			if v != c.Value {
				t.Errorf("got %g, want %g", v, c.Value)
			}
		})
	}
}

func TestParseOperator(t *testing.T) {
	for _, s := range []string{"+", "-", "*", "/"} {
		op, err := fracalc.ParseOperator(s)
		if err != nil {
			t.Errorf("ParseOperator(%q): %v", s, err)
		} else if op.String() != s {
			t.Errorf("ParseOperator(%q) == %s", s, op)
		}
	}
	for _, s := range []string{"", "x", "+-", "÷"} {
		if _, err := fracalc.ParseOperator(s); !errors.Is(err, fracalc.ErrEquationParse) {
			t.Errorf("ParseOperator(%q): got error %v, want %v", s, err, fracalc.ErrEquationParse)
		}
	}
}
