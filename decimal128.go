package decimal

import "github.com/corvidae/decimal754/internal/bid"

// decimal128MaxChars mirrors bid.D128.MaxChars(): 41 bytes, the longest
// text any decimal128 value can produce in any presentation.
const decimal128MaxChars = 41

// Decimal128 is the IEEE 754-2019 decimal128 interchange format: 128
// bits, 34 decimal digits of precision, binary-integer-significand
// encoded. Its storage is wide enough that it carries its own bid.U128
// rather than a native Go integer type.
type Decimal128 struct {
	bits bid.U128
}

// Decimal128FromBits reinterprets a raw 128-bit word (high half, low
// half) as a Decimal128; any bit pattern is a legal encoding.
func Decimal128FromBits(hi, lo uint64) Decimal128 {
	return Decimal128{bits: bid.U128{Hi: hi, Lo: lo}}
}

// Bits returns d's raw packed encoding as (high half, low half).
func (d Decimal128) Bits() (hi, lo uint64) { return d.bits.Hi, d.bits.Lo }

func (d Decimal128) word() bid.U128 { return d.bits }

func decimal128FromWord(w bid.U128) Decimal128 { return Decimal128{bits: w} }

// NewDecimal128 constructs the nearest representable decimal128 for
// sign x sig x 10^exp, rounding per the ambient mode if sig carries more
// than 34 digits, and saturating to +-infinity on overflow or to signed
// zero on underflow.
func NewDecimal128(sign bool, sig bid.U128, exp int) Decimal128 {
	return decimal128FromWord(buildFinite(bid.D128, sign, sig, exp))
}

// Decimal128Inf returns signed infinity.
func Decimal128Inf(sign bool) Decimal128 { return decimal128FromWord(buildInf(bid.D128, sign)) }

// Decimal128NaN returns a quiet or signaling NaN.
func Decimal128NaN(sign, signaling bool) Decimal128 {
	return decimal128FromWord(buildNaN(bid.D128, sign, signaling, bid.U128{}))
}

func (d Decimal128) IsNaN() bool { return bid.Unpack(bid.D128, d.word()).Kind == bid.KindNaN }
func (d Decimal128) IsInf() bool { return bid.Unpack(bid.D128, d.word()).Kind == bid.KindInf }
func (d Decimal128) IsZero() bool {
	u := bid.Unpack(bid.D128, d.word())
	return u.Kind == bid.KindFinite && u.Significand.IsZero()
}
func (d Decimal128) Signbit() bool   { return bid.Unpack(bid.D128, d.word()).Sign }
func (d Decimal128) Neg() Decimal128 { return decimal128FromWord(flipSign(bid.D128, d.word())) }

// Frexp10 decomposes a finite, nonzero d into (sign, significand, exp)
// with significand holding exactly 34 digits of precision.
func (d Decimal128) Frexp10() (sign bool, significand bid.U128, exp int) {
	return frexp10(bid.D128, d.word())
}

// Ldexp10D128 returns d x 10^n, adjusting only the stored exponent.
func Ldexp10D128(d Decimal128, n int) Decimal128 {
	u := bid.Unpack(bid.D128, d.word())
	if u.Kind != bid.KindFinite || u.Significand.IsZero() {
		return d
	}
	newExp, overflow, underflow := bid.Ldexp10(bid.D128, u.Significand, u.Exponent, n)
	switch {
	case overflow:
		return Decimal128Inf(u.Sign)
	case underflow:
		return decimal128FromWord(bid.Pack(bid.D128, bid.Unpacked{Sign: u.Sign, Kind: bid.KindFinite}))
	default:
		return decimal128FromWord(bid.Pack(bid.D128, bid.Unpacked{Sign: u.Sign, Kind: bid.KindFinite, Significand: u.Significand, Exponent: newExp}))
	}
}

// AppendFormat writes d's text representation to dst, returning the
// number of bytes written and an ErrorCode.
func (d Decimal128) AppendFormat(dst []byte, format Format, precision int) (int, ErrorCode) {
	return toChars(bid.D128, d.word(), dst, format, precision)
}

// String returns d's shortest round-trip General-format text.
func (d Decimal128) String() string {
	var buf [decimal128MaxChars]byte
	n, ec := toChars(bid.D128, d.word(), buf[:], General, -1)
	if ec != OK {
		return "?"
	}
	return string(buf[:n])
}

// GoString implements fmt.GoStringer.
func (d Decimal128) GoString() string {
	return "decimal.Decimal128FromBits(0x" + hex64(d.bits.Hi) + ", 0x" + hex64(d.bits.Lo) + ") /* " + d.String() + " */"
}

// ParseDecimal128 parses s under the General grammar, requiring the
// entire string to be consumed.
func ParseDecimal128(s string) (Decimal128, error) {
	n, word, ec := fromChars(bid.D128, []byte(s), General)
	if ec == InvalidArgument || n != len(s) {
		return Decimal128{}, InvalidArgument
	}
	d := decimal128FromWord(word)
	if ec == ResultOutOfRange {
		return d, ResultOutOfRange
	}
	return d, nil
}
