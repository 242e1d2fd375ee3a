package decimal

import "github.com/corvidae/decimal754/internal/bid"

// This file holds the format-agnostic half of construction and extraction:
// every algorithm that is identical across decimal32/64/128 except for the
// Trait it is parameterized by. Decimal32, Decimal64 and Decimal128 are
// thin wrappers around their native storage width (uint32, uint64,
// bid.U128) that widen to bid.U128, call into here, and narrow back,
// routing the common algorithms through a small trait rather than
// duplicating the body three times.

// buildFinite packs (sign, significand, exp) into format t's encoding,
// applying IEEE 754-2019 §4.3's rounding-and-range rule: round the
// significand down to p digits if it has more, then clamp the resulting
// exponent to +-infinity (overflow) or to the minimum subnormal exponent
// (underflow), collapsing to signed zero if even that shifts the
// significand away.
func buildFinite(t bid.Trait, sign bool, sig bid.U128, exp int) bid.U128 {
	if sig.IsZero() {
		return bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindFinite})
	}

	if d := bid.NumDigits128(sig); d > t.Precision {
		drop := d - t.Precision
		rounded, carry := bid.RoundDrop128(sig, drop, CurrentRoundingMode(), sign)
		exp += drop
		if carry {
			rounded, _ = rounded.QuoRemSmall(10)
			exp++
		}
		sig = rounded
	}

	lo := t.Emin() - (t.Precision - 1)
	hi := t.Emax - (t.Precision - 1)
	switch {
	case exp > hi:
		return bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindInf})
	case exp < lo:
		shift := lo - exp
		if d := bid.NumDigits128(sig); shift >= d {
			return bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindFinite})
		}
		sig, _ = bid.RoundDrop128(sig, shift, CurrentRoundingMode(), sign)
		exp = lo
	}

	if sig.IsZero() {
		return bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindFinite})
	}
	return bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindFinite, Significand: sig, Exponent: exp})
}

// buildInf packs a signed infinity.
func buildInf(t bid.Trait, sign bool) bid.U128 {
	return bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindInf})
}

// buildNaN packs a (quiet or signaling) NaN carrying payload.
func buildNaN(t bid.Trait, sign, signaling bool, payload bid.U128) bid.U128 {
	return bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindNaN, Signaling: signaling, Payload: payload})
}

// flipSign toggles the sign bit of a packed word without otherwise
// disturbing it.
func flipSign(t bid.Trait, word bid.U128) bid.U128 {
	u := bid.Unpack(t, word)
	u.Sign = !u.Sign
	return bid.Pack(t, u)
}

// frexp10 normalizes the unpacked finite value behind word to the
// canonical (significand, exp) working form used by the formatter and by
// Frexp10/Ldexp10.
func frexp10(t bid.Trait, word bid.U128) (sign bool, sig bid.U128, exp int) {
	u := bid.Unpack(t, word)
	sig, exp = bid.Frexp10(t, u.Significand, u.Exponent, u.Sign)
	return u.Sign, sig, exp
}
