// Package fracalc evaluates two-operand equations whose operands are written
// in mixed-number notation, such as "3_1/2" for three and a half or "1/3" for
// one third.
//
// DecodeNumber and EncodeNumber convert between that notation and float64.
// Encoding finds the continued-fraction convergent of the fractional part that
// lies within a fixed tolerance; see Approximator. ParseEquation splits an
// equation into operands and an operator, and Equation.Eval applies it.
package fracalc

import "errors"

// Common errors returned by functions in this package.
var (
	ErrEquationParse  = errors.New("malformed equation")
	ErrNumberParse    = errors.New("malformed number")
	ErrNumberOverflow = errors.New("number overflow")
	ErrDivByZero      = errors.New("division by zero")
	ErrOutOfRange     = errors.New("value out of approximation range")
	ErrDenInvalid     = errors.New("denominator is not positive")
	ErrNumInvalid     = errors.New("numerator is negative")
)

// ErrorKind classifies the errors returned by this package into the
// categories reported to a user.
type ErrorKind int

const (
	NoError ErrorKind = iota
	EquationParseError
	NumberParseError
	NumberOverflowError
	DivideByZeroError
)

// String returns the user-facing message for k.
func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "No error"
	case EquationParseError:
		return "Error parsing equation"
	case NumberParseError:
		return "Error parsing number"
	case NumberOverflowError:
		return "Number overflow error"
	case DivideByZeroError:
		return "Divide by zero error"
	default:
		return "Unknown error"
	}
}

// KindOf returns the ErrorKind of err. A nil err is NoError. Errors that did
// not originate in this package are reported as EquationParseError, the most
// general category.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return NoError
	case errors.Is(err, ErrDivByZero):
		return DivideByZeroError
	case errors.Is(err, ErrNumberOverflow), errors.Is(err, ErrOutOfRange):
		return NumberOverflowError
	case errors.Is(err, ErrNumberParse), errors.Is(err, ErrDenInvalid), errors.Is(err, ErrNumInvalid):
		return NumberParseError
	default:
		return EquationParseError
	}
}
