package decimal

import (
	"fmt"
	"testing"

	"github.com/corvidae/decimal754/internal/bid"
	"github.com/stretchr/testify/assert"
)

// TestRoundTripParseFormat exercises the round-trip parse-format property
// directly: format a finite value with General/-1, parse it back, and
// expect the same packed bits.
func TestRoundTripParseFormat(t *testing.T) {
	a := assert.New(t)
	// Full 7-digit, non-trailing-zero significands: these are the canonical
	// (maximal-precision) cohort member for their value, so General mode's
	// trailing-zero stripping on format never discards a digit that
	// buildFinite's construction couldn't recover losslessly on reparse.
	// A significand with fewer than 7 digits (or a trailing zero) is a
	// different, non-canonical cohort member of the same numeric value and
	// is not expected to round-trip bit-for-bit here, only in value.
	sigs := []uint64{1234567, 9999999, 1000003, 5000001, 9000001}
	exps := []int{-90, -6, -1, 0, 1, 6, 90}
	for _, sig := range sigs {
		for _, exp := range exps {
			for _, sign := range []bool{false, true} {
				d := NewDecimal32(sign, sig, exp)
				s := d.String()
				parsed, err := ParseDecimal32(s)
				if err == ResultOutOfRange {
					continue // saturated to inf/zero: not a round-trip case
				}
				a.NoError(err, "parsing %q back", s)
				a.Equal(d.Bits(), parsed.Bits(), "round trip of sign=%v sig=%d exp=%d via %q", sign, sig, exp, s)
			}
		}
	}
}

func TestRoundTripScientificAndFixedForced(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 1234567, 3)
	var buf [32]byte

	n, ec := d.AppendFormat(buf[:], Scientific, -1)
	a.Equal(OK, ec)
	parsed, err := ParseDecimal32(string(buf[:n]))
	a.NoError(err)
	a.Equal(d.Bits(), parsed.Bits())

	n, ec = d.AppendFormat(buf[:], Fixed, -1)
	a.Equal(OK, ec)
	parsed, err = ParseDecimal32(string(buf[:n]))
	a.NoError(err)
	a.Equal(d.Bits(), parsed.Bits())
}

func TestShortestFormHasNoShorterAlternative(t *testing.T) {
	a := assert.New(t)
	// For a round value like 100 at full precision, the shortest General
	// form must not carry redundant trailing zeros that a shorter string
	// parsing to the same bits could have dropped.
	d := NewDecimal32(false, 1, 2)
	s := d.String()
	a.Equal("100", s)
	for i := 1; i < len(s); i++ {
		shorter := s[:i]
		parsed, err := ParseDecimal32(shorter)
		if err == nil {
			a.NotEqual(d.Bits(), parsed.Bits(), "prefix %q of %q must not parse back to the same value", shorter, s)
		}
	}
}

func TestFrexp10IdempotentUnderReconstruction(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 1234567, 10)
	sign, sig, exp := d.Frexp10()
	reconstructed := NewDecimal32(sign, sig, exp)
	sign2, sig2, exp2 := reconstructed.Frexp10()
	a.Equal(sign, sign2)
	a.Equal(sig, sig2)
	a.Equal(exp, exp2)
}

func TestDigitCountOracleAgreesWithLog10(t *testing.T) {
	a := assert.New(t)
	for _, x := range []uint64{1, 9, 10, 99, 100, 999999, 1000000, 9999999999999999} {
		got := bid.NumDigits64(x)
		want := len(fmt.Sprintf("%d", x))
		a.Equal(want, got, "num digits of %d", x)
	}
}
