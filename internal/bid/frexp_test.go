package bid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrexp10Zero(t *testing.T) {
	a := assert.New(t)
	sig, exp := Frexp10(D64, U128{}, 17, false)
	a.True(sig.IsZero())
	a.Equal(0, exp)
}

func TestFrexp10ScalesUpShortSignificand(t *testing.T) {
	a := assert.New(t)
	// decimal32 wants 7 digits; 12 has only 2, and there is ample exponent
	// room, so Frexp10 should scale to 1200000 and drop exp by 5.
	sig, exp := Frexp10(D32, U128From64(12), 0, false)
	a.Equal(uint64(1200000), mustUint64(sig))
	a.Equal(-5, exp)
}

func TestFrexp10ClampsScaleToExponentRoom(t *testing.T) {
	a := assert.New(t)
	// Only 2 units of exponent room remain before the format's minimum
	// exponent, Emin-(p-1); scaling must stop there even though the
	// significand could still hold more digits.
	minExp := D32.Emin() - (D32.Precision - 1)
	sig, exp := Frexp10(D32, U128From64(12), minExp+2, false)
	a.Equal(uint64(1200), mustUint64(sig))
	a.Equal(minExp, exp)
}

func TestFrexp10DropsExcessDigits(t *testing.T) {
	a := assert.New(t)
	// 8 digits into a 7-digit format: rounds away the last digit and
	// compensates the exponent.
	sig, exp := Frexp10(D32, U128From64(99999994), 0, false)
	a.Equal(uint64(9999999), mustUint64(sig))
	a.Equal(1, exp)
}

func TestFrexp10CarryOnRoundUp(t *testing.T) {
	a := assert.New(t)
	SetRoundingMode(ToNearestEven)
	// Dropping the last digit of 99999995 rounds up to 10000000, which has
	// one more digit than the format allows; Frexp10 must re-normalize.
	sig, exp := Frexp10(D32, U128From64(99999995), 0, false)
	a.Equal(uint64(1000000), mustUint64(sig))
	a.Equal(2, exp)
}

func TestLdexp10(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		exp, n             int
		overflow, underflow bool
	}{
		{0, 1, false, false},
		{D32.Emax - D32.Precision + 1, 1, true, false},
		{D32.Emin() - D32.Precision + 1, -1, false, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			newExp, overflow, underflow := Ldexp10(D32, U128From64(1), test.exp, test.n)
			a.Equal(test.overflow, overflow)
			a.Equal(test.underflow, underflow)
			if !overflow && !underflow {
				a.Equal(test.exp+test.n, newExp)
			}
		})
	}
}

func mustUint64(x U128) uint64 {
	lo, exact := x.Uint64()
	if !exact {
		panic("value does not fit in 64 bits")
	}
	return lo
}
