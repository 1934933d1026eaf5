package fracalc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Codec converts between float64 and mixed-number text. The zero value
// encodes with the default Approximator.
type Codec struct {
	Approximator Approximator
}

// DecodeNumber parses a number written in mixed-number notation.
// The string must be in one of the forms "N", "n/d" or "N_n/d", where N, n and
// d are unsigned integers in base 10, optionally preceded by a single "+" or
// "-" that applies to the whole number. d must not be zero. N must not
// overflow int64; n and d may be arbitrarily long as long as they are finite
// as float64.
//
// DecodeNumber returns ErrNumberParse for malformed text and
// ErrNumberOverflow for values that cannot be represented.
func DecodeNumber(s string) (float64, error) {
	return Codec{}.Decode(s)
}

// EncodeNumber formats v in mixed-number notation using the default Codec.
func EncodeNumber(v float64) (string, error) {
	return Codec{}.Encode(v)
}

// Decode is the same as DecodeNumber; decoding does not depend on the
// approximator.
func (Codec) Decode(s string) (float64, error) {
	body := s
	neg := false
	if strings.HasPrefix(body, "-") {
		neg = true
		body = body[1:]
	} else if strings.HasPrefix(body, "+") {
		body = body[1:]
	}

	underscores := strings.Count(body, "_")
	slashes := strings.Count(body, "/")
	if underscores > 1 || slashes > 1 {
		return 0, fmt.Errorf("decoding %q: too many separators: %w", s, ErrNumberParse)
	}

	var whole int64
	var frac float64
	var err error
	switch {
	case underscores == 0 && slashes == 0:
		whole, err = decodeInteger(body)
	case underscores == 0:
		frac, err = decodeFraction(body)
	default:
		parts := strings.Split(body, "_")
		if len(parts) != 2 {
			return 0, fmt.Errorf("decoding %q: %w", s, ErrNumberParse)
		}
		whole, err = decodeInteger(parts[0])
		if err == nil {
			frac, err = decodeFraction(parts[1])
		}
	}
	if err != nil {
		return 0, fmt.Errorf("decoding %q: %w", s, err)
	}

	v := float64(whole) + frac
	if neg {
		v = -v
	}
	return v, nil
}

// Encode formats v in mixed-number notation: "N" when v is a whole number and
// "N_n/d" otherwise, with a leading "-" when v is negative. The fraction n/d
// is the approximation of the fractional part of v, so the result decodes
// back to v within the approximator's tolerance. Negative zero encodes as
// "0".
//
// Encode returns ErrNumberOverflow if v is not finite, if its integer part
// does not fit in an int64, or if the fractional part cannot be approximated.
func (c Codec) Encode(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("encoding %g: %w", v, ErrNumberOverflow)
	}
	neg := v < 0
	mag := math.Abs(v)
	if mag >= maxQuotient {
		return "", fmt.Errorf("encoding %g: %w", v, ErrNumberOverflow)
	}
	whole := int64(math.Floor(mag))
	rem := math.Mod(mag, 1)

	var buf strings.Builder
	if neg {
		buf.WriteByte('-')
	}
	if rem == 0 {
		buf.WriteString(strconv.FormatInt(whole, 10))
		return buf.String(), nil
	}

	f, err := c.Approximator.Approximate(rem)
	if err != nil {
		return "", fmt.Errorf("encoding %g: %w", v, err)
	}
	// The tolerance can swallow the whole remainder or round it up to one.
	switch {
	case f.IsZero():
		if whole == 0 {
			return "0", nil
		}
		buf.WriteString(strconv.FormatInt(whole, 10))
	case f.Num() == f.Den():
		if whole == math.MaxInt64 {
			return "", fmt.Errorf("encoding %g: %w", v, ErrNumberOverflow)
		}
		buf.WriteString(strconv.FormatInt(whole+1, 10))
	default:
		buf.WriteString(strconv.FormatInt(whole, 10))
		buf.WriteByte('_')
		buf.WriteString(f.String())
	}
	return buf.String(), nil
}

// decodeInteger parses an unsigned base 10 integer segment.
func decodeInteger(s string) (int64, error) {
	if !isDigits(s) {
		return 0, ErrNumberParse
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("integer part: %w", ErrNumberOverflow)
		}
		return 0, fmt.Errorf("integer part: %w", ErrNumberParse)
	}
	return n, nil
}

// decodeFraction parses an "n/d" segment into the quotient n/d.
func decodeFraction(s string) (float64, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, ErrNumberParse
	}
	if !isDigits(parts[0]) || !isDigits(parts[1]) {
		return 0, ErrNumberParse
	}
	num, err := parseDigits(parts[0])
	if err != nil {
		return 0, fmt.Errorf("parsing numerator: %w", err)
	}
	den, err := parseDigits(parts[1])
	if err != nil {
		return 0, fmt.Errorf("parsing denominator: %w", err)
	}
	if den == 0 {
		return 0, fmt.Errorf("zero denominator: %w", ErrNumberParse)
	}
	return num / den, nil
}

// parseDigits converts an all-digit string to float64. Strings too long to be
// finite are reported as ErrNumberOverflow.
func parseDigits(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, ErrNumberOverflow
	}
	return v, nil
}

// isDigits reports whether s is a non-empty string of ASCII decimal digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
