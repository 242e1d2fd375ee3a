package decimal

import "github.com/corvidae/decimal754/internal/bid"

// decimal64MaxChars mirrors bid.D64.MaxChars(): 25 bytes, enough for any
// decimal64 value's shortest-form text.
const decimal64MaxChars = 25

// Decimal64 is the IEEE 754-2019 decimal64 interchange format: 64 bits,
// 16 decimal digits of precision, binary-integer-significand encoded.
type Decimal64 struct {
	bits uint64
}

// Decimal64FromBits reinterprets a raw 64-bit word as a Decimal64; any bit
// pattern is a legal encoding.
func Decimal64FromBits(bits uint64) Decimal64 { return Decimal64{bits: bits} }

// Bits returns d's raw packed encoding.
func (d Decimal64) Bits() uint64 { return d.bits }

func (d Decimal64) word() bid.U128 { return bid.U128From64(d.bits) }

func decimal64FromWord(w bid.U128) Decimal64 {
	lo, _ := w.Uint64()
	return Decimal64{bits: lo}
}

// NewDecimal64 constructs the nearest representable decimal64 for
// sign x sig x 10^exp, rounding per the ambient mode if sig carries more
// than 16 digits, and saturating to +-infinity on overflow or to signed
// zero on underflow.
func NewDecimal64(sign bool, sig uint64, exp int) Decimal64 {
	return decimal64FromWord(buildFinite(bid.D64, sign, bid.U128From64(sig), exp))
}

// Decimal64Inf returns signed infinity.
func Decimal64Inf(sign bool) Decimal64 { return decimal64FromWord(buildInf(bid.D64, sign)) }

// Decimal64NaN returns a quiet or signaling NaN.
func Decimal64NaN(sign, signaling bool) Decimal64 {
	return decimal64FromWord(buildNaN(bid.D64, sign, signaling, bid.U128{}))
}

func (d Decimal64) IsNaN() bool { return bid.Unpack(bid.D64, d.word()).Kind == bid.KindNaN }
func (d Decimal64) IsInf() bool { return bid.Unpack(bid.D64, d.word()).Kind == bid.KindInf }
func (d Decimal64) IsZero() bool {
	u := bid.Unpack(bid.D64, d.word())
	return u.Kind == bid.KindFinite && u.Significand.IsZero()
}
func (d Decimal64) Signbit() bool  { return bid.Unpack(bid.D64, d.word()).Sign }
func (d Decimal64) Neg() Decimal64 { return decimal64FromWord(flipSign(bid.D64, d.word())) }

// Frexp10 decomposes a finite, nonzero d into (sign, significand, exp)
// with significand holding exactly 16 digits of precision.
func (d Decimal64) Frexp10() (sign bool, significand uint64, exp int) {
	sign, sig, exp := frexp10(bid.D64, d.word())
	lo, _ := sig.Uint64()
	return sign, lo, exp
}

// Ldexp10D64 returns d x 10^n, adjusting only the stored exponent.
func Ldexp10D64(d Decimal64, n int) Decimal64 {
	u := bid.Unpack(bid.D64, d.word())
	if u.Kind != bid.KindFinite || u.Significand.IsZero() {
		return d
	}
	newExp, overflow, underflow := bid.Ldexp10(bid.D64, u.Significand, u.Exponent, n)
	switch {
	case overflow:
		return Decimal64Inf(u.Sign)
	case underflow:
		return decimal64FromWord(bid.Pack(bid.D64, bid.Unpacked{Sign: u.Sign, Kind: bid.KindFinite}))
	default:
		return decimal64FromWord(bid.Pack(bid.D64, bid.Unpacked{Sign: u.Sign, Kind: bid.KindFinite, Significand: u.Significand, Exponent: newExp}))
	}
}

// AppendFormat writes d's text representation to dst, returning the
// number of bytes written and an ErrorCode.
func (d Decimal64) AppendFormat(dst []byte, format Format, precision int) (int, ErrorCode) {
	return toChars(bid.D64, d.word(), dst, format, precision)
}

// String returns d's shortest round-trip General-format text.
func (d Decimal64) String() string {
	var buf [decimal64MaxChars]byte
	n, ec := toChars(bid.D64, d.word(), buf[:], General, -1)
	if ec != OK {
		return "?"
	}
	return string(buf[:n])
}

// GoString implements fmt.GoStringer.
func (d Decimal64) GoString() string {
	return "decimal.Decimal64FromBits(0x" + hex64(d.bits) + ") /* " + d.String() + " */"
}

// ParseDecimal64 parses s under the General grammar, requiring the entire
// string to be consumed.
func ParseDecimal64(s string) (Decimal64, error) {
	n, word, ec := fromChars(bid.D64, []byte(s), General)
	if ec == InvalidArgument || n != len(s) {
		return Decimal64{}, InvalidArgument
	}
	d := decimal64FromWord(word)
	if ec == ResultOutOfRange {
		return d, ResultOutOfRange
	}
	return d, nil
}

func hex64(v uint64) string {
	const digits = "0123456789abcdef"
	var buf [16]byte
	for i := 15; i >= 0; i-- {
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[:])
}
