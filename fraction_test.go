package fracalc_test

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/kbolino/fracalc"
)

func TestNewFraction(t *testing.T) {
	cases := []struct {
		Num, Den int64
		Str      string
		Err      error
	}{
		{0, 1, "0/1", nil},
		{0, 7, "0/1", nil},
		{1, 2, "1/2", nil},
		{2, 4, "1/2", nil},
		{6, 3, "2/1", nil},
		{P1 * P2, P2 * P3, fmt.Sprintf("%d/%d", P1, P3), nil},
		{1, 0, "", fracalc.ErrDenInvalid},
		{1, -2, "", fracalc.ErrDenInvalid},
		{-1, 2, "", fracalc.ErrNumInvalid},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d/%d", c.Num, c.Den), func(t *testing.T) {
			f, err := fracalc.NewFraction(c.Num, c.Den)
			if err != c.Err {
				t.Fatalf("got error %v, want %v", err, c.Err)
			}
			if c.Err == nil && f.String() != c.Str {
				t.Errorf("got %s, want %s", f, c.Str)
			}
		})
	}
}

func TestFraction_zeroValue(t *testing.T) {
	var f fracalc.Fraction
	if !f.IsZero() || f.Num() != 0 || f.Den() != 1 {
		t.Errorf("zero value is %s", f)
	}
	if !f.IsReduced() {
		t.Errorf("zero value not reduced")
	}
	if f != MustFraction(0, 3) {
		t.Errorf("zero value != 0/3")
	}
}

func TestFraction_Float64(t *testing.T) {
	if v := MustFraction(3, 4).Float64(); v != 0.75 {
		t.Errorf("got %g, want 0.75", v)
	}
	if r := MustFraction(16, 113).BigRat(); r.Cmp(big.NewRat(16, 113)) != 0 {
		t.Errorf("got %s, want 16/113", r)
	}
}

func TestMustFraction_panics(t *testing.T) {
	defer func() {
		if r := recover(); r != fracalc.ErrDenInvalid {
			t.Errorf("got panic %v, want %v", r, fracalc.ErrDenInvalid)
		}
	}()
	MustFraction(1, 0)
}
