package bid

import "math/bits"

// Pow10u64 holds 10^0 .. 10^19, the largest range of powers of ten that
// fits in a uint64 (10^19 fits, 10^20 does not).
var Pow10u64 = [20]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000,
	100000000000000000, 1000000000000000000, 10000000000000000000,
}

// pow10u128 holds 10^0 .. 10^38, the largest range of powers of ten that
// fits in a U128 (10^38 fits in 127 bits, 10^39 needs 130).
var pow10u128 = buildPow10u128()

func buildPow10u128() [39]U128 {
	var t [39]U128
	t[0] = U128From64(1)
	for i := 1; i < len(t); i++ {
		hi, lo := t[i-1].Mul64(10)
		if hi != 0 {
			panic("bid: pow10u128 overflow")
		}
		t[i] = lo
	}
	return t
}

// Pow10u128 returns 10^n as a U128 for 0 <= n <= 38.
func Pow10u128(n int) U128 {
	return pow10u128[n]
}

// pow10u256 holds 10^0 .. 10^77, the largest range of powers of ten that
// fits in a U256 (10^77 < 2^256 < 10^78).
var pow10u256 = buildPow10u256()

func buildPow10u256() [78]U256 {
	var t [78]U256
	t[0] = U256{W: [4]uint64{1, 0, 0, 0}}
	for i := 1; i < len(t); i++ {
		t[i] = mulSmallU256(t[i-1], 10)
	}
	return t
}

// mulSmallU256 returns x*m for a small multiplier m (used only to build the
// power-of-ten table above, always exact since 10^77 fits in 256 bits).
func mulSmallU256(x U256, m uint64) U256 {
	var r U256
	var carry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(x.W[i], m)
		lo, c := bits.Add64(lo, carry, 0)
		hi, _ = bits.Add64(hi, 0, c)
		r.W[i] = lo
		carry = hi
	}
	return r
}

// Pow10u256 returns 10^n as a U256 for 0 <= n <= 77.
func Pow10u256(n int) U256 {
	return pow10u256[n]
}
