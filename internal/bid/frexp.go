package bid

// Frexp10 normalizes (sig, exp), a significand/exponent pair straight out
// of Unpack, to the canonical working form: exactly Precision decimal
// digits whenever the exponent range allows it (10^(p-1) <= significand <=
// 10^p-1), scaling up with trailing zeros and decrementing exp to
// compensate, or rounding down and incrementing exp if sig somehow carries
// more than Precision digits (only possible from a foreign, not
// self-constructed, bit pattern; Pack never produces one). Zero is
// returned unchanged with exp forced to 0.
//
// neg is the value's sign, needed only to pick a rounding direction in the
// (rare) too-many-digits branch; it does not otherwise affect the result.
func Frexp10(t Trait, sig U128, exp int, neg bool) (U128, int) {
	if sig.IsZero() {
		return sig, 0
	}

	d := NumDigits128(sig)
	switch {
	case d > t.Precision:
		drop := d - t.Precision
		rounded, carry := RoundDrop128(sig, drop, CurrentRoundingMode(), neg)
		exp += drop
		if carry {
			rounded, _ = rounded.QuoRemSmall(10)
			exp++
		}
		return rounded, exp
	case d < t.Precision:
		scale := t.Precision - d
		if room := exp - (t.Emin() - (t.Precision - 1)); room < scale {
			scale = room
		}
		if scale <= 0 {
			return sig, exp
		}
		scaled, _ := sig.Mul(Pow10u128(scale)).Lo128()
		return scaled, exp - scale
	default:
		return sig, exp
	}
}

// Ldexp10 scales (sig, exp) by 10^n by adjusting the stored exponent. The
// significand is untouched; only the exponent moves. overflow reports
// that the new exponent exceeds the
// format's representable range (the caller should saturate to +-infinity);
// underflow reports that it falls below the minimum subnormal exponent
// (the caller should saturate to zero).
func Ldexp10(t Trait, sig U128, exp, n int) (newExp int, overflow, underflow bool) {
	newExp = exp + n
	maxExp := t.Emax - (t.Precision - 1)
	minExp := t.Emin() - (t.Precision - 1)
	if newExp > maxExp {
		return newExp, true, false
	}
	if newExp < minExp {
		return newExp, false, true
	}
	return newExp, false, false
}
