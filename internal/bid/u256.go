package bid

import "math/bits"

// U256 is an unsigned 256-bit integer stored as four 64-bit words, W[0]
// least significant. It exists purely to hold the intermediate result of a
// 128x128 multiplication for decimal128's paths; the core never needs a
// 256-bit value to persist across an operation boundary.
type U256 struct {
	W [4]uint64
}

// IsZero reports whether x == 0.
func (x U256) IsZero() bool {
	return x.W[0] == 0 && x.W[1] == 0 && x.W[2] == 0 && x.W[3] == 0
}

// Cmp returns -1, 0 or +1 as x is less than, equal to, or greater than y.
func (x U256) Cmp(y U256) int {
	for i := 3; i >= 0; i-- {
		if x.W[i] != y.W[i] {
			if x.W[i] < y.W[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Lo128 returns the low 128 bits of x, and whether the high 128 bits are
// zero (i.e. whether the truncation is exact).
func (x U256) Lo128() (U128, bool) {
	return U128{Hi: x.W[1], Lo: x.W[0]}, x.W[2] == 0 && x.W[3] == 0
}

// Rsh returns x>>n for 0 <= n < 256.
func (x U256) Rsh(n uint) U256 {
	if n == 0 {
		return x
	}
	if n >= 256 {
		return U256{}
	}
	var r U256
	words, bitsN := n/64, n%64
	for i := 0; i < 4; i++ {
		si := i + int(words)
		if si >= 4 {
			continue
		}
		v := x.W[si] >> bitsN
		if bitsN != 0 && si+1 < 4 {
			v |= x.W[si+1] << (64 - bitsN)
		}
		r.W[i] = v
	}
	return r
}

// QuoRemSmall divides x by the small positive divisor d (d != 0, d <= 1<<64-1),
// e.g. to scale a 128-bit-overflowing intermediate product back down by a
// power of ten; QuoRem128 below handles 128-bit divisors.
func (x U256) QuoRemSmall(d uint64) (q U256, rem uint64) {
	var r uint64
	var qw [4]uint64
	for i := 3; i >= 0; i-- {
		qw[i], r = bits.Div64(r, x.W[i], d)
	}
	return U256{W: qw}, r
}

// QuoRem128 divides x by the 128-bit divisor y, assuming the quotient fits
// in 128 bits (true whenever x is a product of a <=128-bit value by y);
// quotient bits above bit 127 are discarded. Binary long division, one bit of x at a time, MSB first;
// the remainder is bounded by y (< 2^128) throughout so it fits in U128
// plus one carry-out bit tracked by hand.
func (x U256) QuoRem128(y U128) (q U128, rem U128) {
	if y.IsZero() {
		panic("bid: division by zero")
	}
	var remain U128
	var remCarry uint64 // bit 128 of the shifted-in remainder, if any
	var quot U128
	for i := 255; i >= 0; i-- {
		remCarry = remCarry<<1 | remain.Hi>>63
		remain = remain.Lsh(1)
		if x.bit(uint(i)) {
			remain.Lo |= 1
		}
		if remCarry != 0 || remain.Cmp(y) >= 0 {
			remain = remain.Sub(y)
			remCarry = 0
			if i < 128 {
				quot = quot.setBit(uint(i))
			}
		}
	}
	return quot, remain
}

func (x U256) bit(i uint) bool {
	return x.W[i/64]>>(i%64)&1 != 0
}

func (x U128) setBit(i uint) U128 {
	if i < 64 {
		x.Lo |= 1 << i
	} else if i < 128 {
		x.Hi |= 1 << (i - 64)
	}
	return x
}
