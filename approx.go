package fracalc

import (
	"fmt"
	"math"
	"math/bits"
)

// Defaults used by the zero value of Approximator.
const (
	DefaultEpsilon       = 1e-6
	DefaultMaxIterations = 256
)

// maxQuotient is the smallest float64 that does not fit in an int64.
const maxQuotient = 0x1p63

// Approximator finds low-denominator fractions close to a real number by
// expanding it as a continued fraction. The zero value uses DefaultEpsilon and
// DefaultMaxIterations.
type Approximator struct {
	// Epsilon is the tolerance of the approximation. Expansion stops at the
	// first convergent h/k whose residual is at most Epsilon*k*k.
	Epsilon float64

	// MaxIterations bounds the number of expansion steps. Inputs that need
	// more steps fail with ErrNumberOverflow instead of looping.
	MaxIterations int
}

// Approximate approximates x using the default Approximator.
func Approximate(x float64) (Fraction, error) {
	return Approximator{}.Approximate(x)
}

// Approximate returns the first continued-fraction convergent of x that lies
// within tolerance. x must be finite and non-negative; it is normally the
// fractional part of a value, in [0, 1).
//
// Convergents are always in lowest terms, so the result needs no reduction.
// Approximate returns ErrOutOfRange for negative or non-finite x, and
// ErrNumberOverflow if the expansion does not settle within MaxIterations
// steps or a convergent no longer fits in an int64.
func (ap Approximator) Approximate(x float64) (Fraction, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 {
		return Fraction{}, fmt.Errorf("approximating %g: %w", x, ErrOutOfRange)
	}
	if x >= maxQuotient {
		return Fraction{}, fmt.Errorf("approximating %g: %w", x, ErrNumberOverflow)
	}
	eps, limit := ap.epsilon(), ap.maxIterations()

	x0 := x
	a := math.Floor(x)
	h1, k1, h, k := int64(1), int64(0), int64(a), int64(1)
	for i := 0; x-a > eps*float64(k)*float64(k); i++ {
		if i == limit {
			return Fraction{}, fmt.Errorf("approximating %g: no convergent within %d steps: %w", x0, limit, ErrNumberOverflow)
		}
		x = 1 / (x - a)
		a = math.Floor(x)
		if a >= maxQuotient {
			return Fraction{}, fmt.Errorf("approximating %g: partial quotient %g: %w", x0, a, ErrNumberOverflow)
		}
		q := int64(a)
		hn, ok := mulAdd(q, h, h1)
		if !ok {
			return Fraction{}, fmt.Errorf("approximating %g: numerator: %w", x0, ErrNumberOverflow)
		}
		kn, ok := mulAdd(q, k, k1)
		if !ok {
			return Fraction{}, fmt.Errorf("approximating %g: denominator: %w", x0, ErrNumberOverflow)
		}
		h1, k1, h, k = h, k, hn, kn
	}
	return Fraction{h, k - 1}, nil
}

func (ap Approximator) epsilon() float64 {
	if ap.Epsilon <= 0 {
		return DefaultEpsilon
	}
	return ap.Epsilon
}

func (ap Approximator) maxIterations() int {
	if ap.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return ap.MaxIterations
}

// mulAdd returns a*b+c for non-negative operands, and false if the result
// does not fit in an int64.
func mulAdd(a, b, c int64) (int64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	sum, carry := bits.Add64(lo, uint64(c), 0)
	if hi != 0 || carry != 0 || sum > math.MaxInt64 {
		return 0, false
	}
	return int64(sum), true
}
