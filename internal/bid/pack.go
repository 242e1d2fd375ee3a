package bid

// This file implements the construct/extract half of the BID (binary
// integer significand) interchange encoding of IEEE 754-2019 §3.5.2,
// generalized across decimal32/64/128 by Trait instead of being written out
// three times per format.
//
// The combination field's two encodings ("case A", used while the
// significand fits in TrailWidth+3 bits, and "case B", the implicit
// leading-"100" encoding used for the handful of significands that don't)
// are traditionally described digit-by-digit ("leading digit 0-7 stored as
// 3 bits" / "leading digit 8-9 stored as 1 bit with an implicit 100
// prefix"). That description is equivalent to a much plainer binary-
// threshold rule, which is what the MongoDB Go driver's decimal128 decoder
// (other_examples/mongodb-mongo-go-driver__decimal128.go) actually
// implements: case A is "exponent, then the whole significand, stored
// contiguously as one big binary integer"; case B is "a fixed '11' marker,
// then the exponent, then significand-minus-threshold". Boost's decimal32
// masks (original_source/src/decimal32.cpp: inf_flag, nan_flag, snan_flag)
// independently confirm the non-finite sentinel: the combination field's
// top 5 bits are 11110 for infinity and 11111 for NaN, regardless of
// format width.
type Kind int8

const (
	KindFinite Kind = iota
	KindInf
	KindNaN
)

// Unpacked is the working form of a decimal value: the bit-packed encoding
// pulled apart into a sign, a kind selector, and (depending on kind) either
// a significand and unbiased exponent or a NaN payload.
type Unpacked struct {
	Sign        bool
	Kind        Kind
	Signaling   bool // meaningful only when Kind == KindNaN
	Significand U128 // meaningful only when Kind == KindFinite
	Exponent    int  // unbiased; meaningful only when Kind == KindFinite
	Payload     U128 // meaningful only when Kind == KindNaN
}

func maskLow(n int) U128 {
	if n <= 0 {
		return U128{}
	}
	if n >= 128 {
		return U128{Hi: ^uint64(0), Lo: ^uint64(0)}
	}
	return U128From64(1).Lsh(uint(n)).Sub(U128From64(1))
}

func and(x, y U128) U128 {
	return U128{Hi: x.Hi & y.Hi, Lo: x.Lo & y.Lo}
}

// Bit reports whether bit i of x is set, 0 being the least significant.
func (x U128) Bit(i uint) bool {
	if i < 64 {
		return x.Lo>>i&1 != 0
	}
	if i < 128 {
		return x.Hi>>(i-64)&1 != 0
	}
	return false
}

// width returns the number of bits in the combination + trailing fields,
// i.e. everything but the sign bit.
func width(t Trait) int { return t.CombWidth + t.TrailWidth }

// threshold128 returns 2^(TrailWidth+3), the significand value at and above
// which the implicit-"100" case B encoding is required.
func threshold128(t Trait) U128 {
	return U128From64(1).Lsh(uint(t.TrailWidth + 3))
}

// Pack assembles the StorageWidth-bit encoding of u for format t, returned
// in the low StorageWidth bits of a U128 (the caller narrows to uint32 or
// uint64 for decimal32/decimal64; decimal128 keeps the full U128).
func Pack(t Trait, u Unpacked) U128 {
	var rest U128
	switch u.Kind {
	case KindInf:
		rest = U128From64(0b11110).Lsh(uint(width(t) - 5))
	case KindNaN:
		rest = packNaN(t, u.Signaling, u.Payload)
	default:
		rest = packFinite(t, u.Significand, u.Exponent)
	}
	if u.Sign {
		rest = rest.setBit(uint(width(t)))
	}
	return rest
}

func packNaN(t Trait, signaling bool, payload U128) U128 {
	rest := U128From64(0b11111).Lsh(uint(width(t) - 5))
	if signaling {
		rest = rest.setBit(uint(width(t) - 6))
	}
	return rest.Add(and(payload, maskLow(t.TrailWidth)))
}

func packFinite(t Trait, sig U128, exp int) U128 {
	biased := U128From64(uint64(exp + t.Bias))
	if sig.Cmp(threshold128(t)) < 0 {
		return biased.Lsh(uint(t.TrailWidth + 3)).Add(sig)
	}
	explicit := sig.Sub(threshold128(t))
	marker := U128From64(0b11).Lsh(uint(width(t) - 2))
	expPart := biased.Lsh(uint(t.TrailWidth + 1))
	return marker.Add(expPart).Add(explicit)
}

// Unpack disassembles the StorageWidth-bit encoding bits (in the low
// StorageWidth bits of the U128) of format t.
func Unpack(t Trait, bits U128) Unpacked {
	w := width(t)
	sign := bits.Bit(uint(w))
	rest := and(bits, maskLow(w))

	top2, _ := rest.Rsh(uint(w - 2)).Uint64()
	if top2&0b11 != 0b11 {
		return Unpacked{
			Sign:        sign,
			Kind:        KindFinite,
			Significand: and(rest, maskLow(t.TrailWidth+3)),
			Exponent:    biasedExp(rest.Rsh(uint(t.TrailWidth+3)), t),
		}
	}

	top5, _ := rest.Rsh(uint(w - 5)).Uint64()
	switch top5 & 0b11111 {
	case 0b11110:
		return Unpacked{Sign: sign, Kind: KindInf}
	case 0b11111:
		return Unpacked{
			Sign:      sign,
			Kind:      KindNaN,
			Signaling: rest.Bit(uint(w - 6)),
			Payload:   and(rest, maskLow(t.TrailWidth)),
		}
	default:
		explicit := and(rest, maskLow(t.TrailWidth+1))
		return Unpacked{
			Sign:        sign,
			Kind:        KindFinite,
			Significand: threshold128(t).Add(explicit),
			Exponent:    biasedExp(rest.Rsh(uint(t.TrailWidth+1)), t),
		}
	}
}

func biasedExp(shifted U128, t Trait) int {
	v, _ := and(shifted, maskLow(t.CombWidth-3)).Uint64()
	return int(v) - t.Bias
}
