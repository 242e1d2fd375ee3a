// Package bid implements the fixed-width arithmetic, digit-count oracle,
// rounding engine, and bit-packing shared by the three IEEE 754-2019
// decimal interchange formats (decimal32, decimal64, decimal128).
//
// The package is organized leaves-first, the way avdva-fixed organizes
// internal/mathutil: small, total, allocation-free helper functions with
// no dependency on the public Decimal types.
package bid

import "math/bits"

// U128 is an unsigned 128-bit integer, stored as two 64-bit halves. It is
// the working register for decimal32 and decimal64 significands (which fit
// comfortably in 64 bits) and for decimal128 significands (which need up to
// 113 bits).
type U128 struct {
	Hi, Lo uint64
}

// U128From64 returns the U128 value of x.
func U128From64(x uint64) U128 { return U128{Lo: x} }

// IsZero reports whether x == 0.
func (x U128) IsZero() bool { return x.Hi == 0 && x.Lo == 0 }

// Uint64 returns the low 64 bits of x and whether x fits in 64 bits.
func (x U128) Uint64() (uint64, bool) { return x.Lo, x.Hi == 0 }

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x U128) Cmp(y U128) int {
	switch {
	case x.Hi != y.Hi:
		if x.Hi < y.Hi {
			return -1
		}
		return 1
	case x.Lo != y.Lo:
		if x.Lo < y.Lo {
			return -1
		}
		return 1
	default:
		return 0
	}
}

// Add returns x+y. Overflow wraps silently (the core never lets a
// significand overflow 128 bits; callers that might must check beforehand).
func (x U128) Add(y U128) U128 {
	lo, carry := bits.Add64(x.Lo, y.Lo, 0)
	hi, _ := bits.Add64(x.Hi, y.Hi, carry)
	return U128{Hi: hi, Lo: lo}
}

// Sub returns x-y, wrapping on underflow.
func (x U128) Sub(y U128) U128 {
	lo, borrow := bits.Sub64(x.Lo, y.Lo, 0)
	hi, _ := bits.Sub64(x.Hi, y.Hi, borrow)
	return U128{Hi: hi, Lo: lo}
}

// AddSmall returns x+y for a small uint64 y, with carry-out.
func (x U128) AddSmall(y uint64) (U128, uint64) {
	lo, carry := bits.Add64(x.Lo, y, 0)
	hi, carry2 := bits.Add64(x.Hi, 0, carry)
	return U128{Hi: hi, Lo: lo}, carry2
}

// Mul returns the full 256-bit product of x and y. Schoolbook multiplication
// of two 128-bit numbers in base 2^64, the way emulated256.hpp's umul256
// composes four 64x64 products; see internal/bid/u256.go.
func (x U128) Mul(y U128) U256 {
	p00hi, p00lo := bits.Mul64(x.Lo, y.Lo)
	p01hi, p01lo := bits.Mul64(x.Lo, y.Hi)
	p10hi, p10lo := bits.Mul64(x.Hi, y.Lo)
	p11hi, p11lo := bits.Mul64(x.Hi, y.Hi)

	w0 := p00lo

	mid, c1 := bits.Add64(p00hi, p01lo, 0)
	mid, c2 := bits.Add64(mid, p10lo, 0)
	w1 := mid

	hi, c3 := bits.Add64(p01hi, p10hi, 0)
	hi, c4 := bits.Add64(hi, p11lo, 0)
	hi, c5 := bits.Add64(hi, c1, 0)
	hi, c6 := bits.Add64(hi, c2, 0)
	w2 := hi

	w3 := p11hi + c3 + c4 + c5 + c6

	return U256{W: [4]uint64{w0, w1, w2, w3}}
}

// Mul64 returns x * y where y is a small uint64 multiplier, as a U256-free
// 128-bit result plus a 64-bit overflow word (x*y never overflows 192 bits
// for the multipliers this package uses it with: powers of ten up to 10^19).
func (x U128) Mul64(y uint64) (hi2 uint64, r U128) {
	h0, l0 := bits.Mul64(x.Lo, y)
	h1, l1 := bits.Mul64(x.Hi, y)
	lo := l0
	mid, c := bits.Add64(h0, l1, 0)
	hi, _ := bits.Add64(h1, 0, c)
	return hi, U128{Hi: mid, Lo: lo}
}

// Lsh returns x<<n for 0 <= n < 128.
func (x U128) Lsh(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return U128{Hi: x.Hi<<n | x.Lo>>(64-n), Lo: x.Lo << n}
	case n < 128:
		return U128{Hi: x.Lo << (n - 64), Lo: 0}
	default:
		return U128{}
	}
}

// Rsh returns x>>n for 0 <= n < 128.
func (x U128) Rsh(n uint) U128 {
	switch {
	case n == 0:
		return x
	case n < 64:
		return U128{Hi: x.Hi >> n, Lo: x.Lo>>n | x.Hi<<(64-n)}
	case n < 128:
		return U128{Hi: 0, Lo: x.Hi >> (n - 64)}
	default:
		return U128{}
	}
}

// BitLen returns the number of bits required to represent x, 0 for x == 0.
func (x U128) BitLen() int {
	if x.Hi != 0 {
		return 64 + bits.Len64(x.Hi)
	}
	return bits.Len64(x.Lo)
}

// QuoRemSmall divides x by the small positive divisor d, returning quotient
// and remainder. d must be nonzero and fit in 64 bits; division by zero is
// undefined and the caller must never invoke it.
func (x U128) QuoRemSmall(d uint64) (q U128, rem uint64) {
	if x.Hi == 0 {
		ql, r := bits.Div64(0, x.Lo, d)
		return U128{Lo: ql}, r
	}
	qh, rh := bits.Div64(0, x.Hi, d)
	ql, rl := bits.Div64(rh, x.Lo, d)
	return U128{Hi: qh, Lo: ql}, rl
}

// QuoRem divides x by y (full 128-bit divisor), returning quotient and
// remainder. y must be nonzero.
func (x U128) QuoRem(y U128) (q, rem U128) {
	if y.Hi == 0 {
		qq, r := x.QuoRemSmall(y.Lo)
		return qq, U128From64(r)
	}
	// y needs the full 128 bits: binary long division, one step per bit of
	// quotient. The rounding engine reaches this path only when it divides
	// by a power of ten above 10^19 (dropping 20 or more digits); smaller
	// divisors take QuoRemSmall above.
	if x.Cmp(y) < 0 {
		return U128{}, x
	}
	shift := uint(x.BitLen() - y.BitLen())
	divisor := y.Lsh(shift)
	remain := x
	var quot U128
	for i := 0; i <= int(shift); i++ {
		quot = quot.Lsh(1)
		if remain.Cmp(divisor) >= 0 {
			remain = remain.Sub(divisor)
			quot.Lo |= 1
		}
		divisor = divisor.Rsh(1)
	}
	return quot, remain
}
