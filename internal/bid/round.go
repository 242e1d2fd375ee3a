package bid

import "sync/atomic"

// RoundingMode selects how a rounding engine disposes of digits dropped off
// the low end of a significand. It is the ambient, process-wide selector
// read at each rounding point. The process-wide storage and its query
// function (SetRoundingMode, CurrentRoundingMode) live in this file; the
// root decimal package re-exports them (see roundingmode.go), the way
// db47h/decimal keeps decimal.RoundingMode as a value type and stores the
// "current" one in a *Decimal/*Context field that's read at each round().
type RoundingMode int8

const (
	// ToNearestEven rounds to the nearest representable value; ties round
	// to the value whose last retained digit is even. This is the IEEE 754
	// default ("roundTiesToEven").
	ToNearestEven RoundingMode = iota
	// ToZero truncates: the dropped digits are simply discarded.
	ToZero
	// ToPositiveInf rounds toward positive infinity.
	ToPositiveInf
	// ToNegativeInf rounds toward negative infinity.
	ToNegativeInf
	// ToNearestAway rounds to the nearest representable value; ties round
	// away from zero.
	ToNearestAway
)

// String returns the canonical name of m.
func (m RoundingMode) String() string {
	switch m {
	case ToNearestEven:
		return "ToNearestEven"
	case ToZero:
		return "ToZero"
	case ToPositiveInf:
		return "ToPositiveInf"
	case ToNegativeInf:
		return "ToNegativeInf"
	case ToNearestAway:
		return "ToNearestAway"
	default:
		return "RoundingMode(?)"
	}
}

var currentMode int32 // atomic; one of the RoundingMode constants

// SetRoundingMode installs the process-wide ambient rounding mode, queried
// (never captured) by every subsequent rounding point until changed again.
func SetRoundingMode(m RoundingMode) {
	atomic.StoreInt32(&currentMode, int32(m))
}

// CurrentRoundingMode returns the ambient rounding mode installed by the
// most recent SetRoundingMode call (ToNearestEven if none yet).
func CurrentRoundingMode() RoundingMode {
	return RoundingMode(atomic.LoadInt32(&currentMode))
}

// maxPow10Index is the largest n for which Pow10u128(n) is tabulated.
// RoundDrop128 and splitLeadingDigit clamp every index to this bound:
// since no significand this package ever rounds has more than 38 digits
// (the parser's register cap), 10^maxPow10Index always exceeds it, so clamping a larger dropDigits down
// to maxPow10Index yields the same quotient (0) and the same remainder
// (sig itself) as using the true, unclamped power of ten would.
const maxPow10Index = 38

func clampPow10Index(n int) int {
	if n > maxPow10Index {
		return maxPow10Index
	}
	if n < 0 {
		return 0
	}
	return n
}

// RoundDrop128 removes dropDigits decimal digits from the low end of sig
// (dropDigits == 0 is a no-op) and returns the rounded quotient plus a
// carry flag. dropDigits may exceed sig's actual digit count: the excess
// then behaves as leading zeros ahead of sig's own digits, so the whole
// significand is either dropped to zero or rounded up to 1 depending on
// the rounding mode.
//
// carry is set when the increment causes the quotient to gain an extra
// digit (e.g. drop the last digit of 999 to get 99, but round-half-up
// makes it 100), used to bump the exponent if the rounded value becomes
// 10^p. On carry, the caller is expected to divide the result by 10 once
// more and increment its working exponent by one, which restores the
// original digit count (the carry quotient is always an exact power of
// ten).
func RoundDrop128(sig U128, dropDigits int, mode RoundingMode, neg bool) (rounded U128, carry bool) {
	if dropDigits <= 0 {
		return sig, false
	}
	divisor := Pow10u128(clampPow10Index(dropDigits))
	quot, rem := sig.QuoRem(divisor)
	if rem.IsZero() {
		return quot, false
	}

	firstDropped, sticky := splitLeadingDigit(rem, dropDigits)
	inc := decideIncrement(mode, neg, firstDropped, sticky, quot)

	if !inc {
		return quot, false
	}
	before := NumDigits128(quot)
	quot, of := quot.AddSmall(1)
	after := NumDigits128(quot)
	_ = of
	return quot, after > before
}

// splitLeadingDigit returns the most significant digit of rem (which has
// dropDigits decimal digits, possibly with leading zeros) and whether any
// of the remaining, less significant digits are nonzero.
func splitLeadingDigit(rem U128, dropDigits int) (first int, sticky bool) {
	div := Pow10u128(clampPow10Index(dropDigits - 1))
	q, r := rem.QuoRem(div)
	lo, _ := q.Uint64()
	return int(lo), !r.IsZero()
}

// decideIncrement examines the first dropped digit and the parity of the
// remaining significand for half-cases; trailing-zero runs beyond the
// first dropped digit do not matter except that a nonzero digit beyond the
// half-point breaks ties.
func decideIncrement(mode RoundingMode, neg bool, firstDropped int, sticky bool, quotient U128) bool {
	switch mode {
	case ToZero:
		return false
	case ToNegativeInf:
		return neg && (firstDropped != 0 || sticky)
	case ToPositiveInf:
		return !neg && (firstDropped != 0 || sticky)
	case ToNearestAway:
		return firstDropped >= 5
	case ToNearestEven:
		if firstDropped > 5 {
			return true
		}
		if firstDropped < 5 {
			return false
		}
		if sticky {
			return true
		}
		lo, _ := quotient.Uint64()
		return lo&1 != 0
	default:
		return false
	}
}
