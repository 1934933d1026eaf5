package fracalc

// GCD returns the greatest common divisor (GCD) of m and n.
// The GCD is the largest integer that divides both m and n.
// n must not be zero.
//
// Convergents produced by Approximate are already in lowest terms, so GCD is
// only needed to reduce fractions built by hand.
func GCD(m, n int64) int64 {
	_, _, d := ExtGCD(m, n)
	return d
}

// ExtGCD returns the GCD of m and n along with the Bézout coefficients.
// That is, it returns a, b, d such that:
//
//	a*m + b*n == d == GCD(m, n)
func ExtGCD(m, n int64) (a, b, d int64) {
	// per Donald Knuth, TAOCP Vol 1 (3e), pp 13-14, Algorithm E
	var a0, b0 int64
	a0, a = 1, 0
	b0, b = 0, 1
	c := m
	d = n
	for {
		q, r := c/d, c%d
		if r == 0 {
			return a, b, d
		}
		c = d
		d = r
		a0, a = a, a0-q*a
		b0, b = b, b0-q*b
	}
}
