package fracalc

import (
	"fmt"
	"math/big"
)

// Fraction is a non-negative rational number with 64-bit numerator and
// denominator.
//
// Internally, the denominator is biased by 1, which means the zero value is
// equivalent to 0/1 and thus valid and equal to 0.
//
// Valid values are obtained in the following ways:
//   - the zero value of the type Fraction
//   - returned by the NewFraction function
//   - returned by Approximate or Approximator.Approximate
//   - copied from a valid value
//
// Fraction has proper value semantics. Two values in lowest terms can be
// compared using the == and != operators.
type Fraction struct {
	m int64
	n int64
}

// NewFraction creates a fraction with the given numerator and denominator,
// reduced to lowest terms. NewFraction returns an error if the numerator is
// negative or the denominator is not positive.
func NewFraction(num, den int64) (Fraction, error) {
	if den <= 0 {
		return Fraction{}, ErrDenInvalid
	}
	if num < 0 {
		return Fraction{}, ErrNumInvalid
	}
	return Fraction{num, den - 1}.reduce(), nil
}

// MustFraction is like NewFraction but panics if the fraction is invalid.
func MustFraction(num, den int64) Fraction {
	f, err := NewFraction(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// Num returns the numerator of f.
func (f Fraction) Num() int64 {
	return f.m
}

// Den returns the denominator of f.
func (f Fraction) Den() int64 {
	return f.n + 1
}

// IsZero returns true if f is equal to 0.
func (f Fraction) IsZero() bool {
	return f.m == 0
}

// IsReduced returns true if f is in lowest terms.
func (f Fraction) IsReduced() bool {
	return GCD(f.Num(), f.Den()) == 1
}

// Float64 returns the nearest floating-point value to f.
func (f Fraction) Float64() float64 {
	return float64(f.Num()) / float64(f.Den())
}

// BigRat converts f to a new big.Rat.
func (f Fraction) BigRat() *big.Rat {
	return big.NewRat(f.Num(), f.Den())
}

// String returns a string representation of f, as n/d.
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num(), f.Den())
}

// reduce returns f in lowest terms.
func (f Fraction) reduce() Fraction {
	if f.m == 0 {
		return Fraction{}
	}
	m, n := f.Num(), f.Den()
	d := GCD(m, n)
	return Fraction{m / d, (n / d) - 1}
}
