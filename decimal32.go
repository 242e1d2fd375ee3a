package decimal

import "github.com/corvidae/decimal754/internal/bid"

// decimal32MaxChars mirrors bid.D32.MaxChars(); kept as a constant here so
// it can size a stack array: 15 bytes, enough for any decimal32 value's
// shortest-form text (sign, 7 digits, point, "e", exponent sign and up to
// 3 exponent digits).
const decimal32MaxChars = 15

// Decimal32 is the IEEE 754-2019 decimal32 interchange format: 32 bits,
// 7 decimal digits of precision, binary-integer-significand encoded.
type Decimal32 struct {
	bits uint32
}

// Decimal32FromBits reinterprets a raw 32-bit word as a Decimal32. Every
// bit pattern is a legal encoding; this performs no validation and
// cannot fail.
func Decimal32FromBits(bits uint32) Decimal32 { return Decimal32{bits: bits} }

// Bits returns d's raw packed encoding.
func (d Decimal32) Bits() uint32 { return d.bits }

func (d Decimal32) word() bid.U128 { return bid.U128From64(uint64(d.bits)) }

func decimal32FromWord(w bid.U128) Decimal32 {
	lo, _ := w.Uint64()
	return Decimal32{bits: uint32(lo)}
}

// NewDecimal32 constructs the nearest representable decimal32 for
// sign x sig x 10^exp, rounding per the ambient mode if sig carries more
// than 7 digits, and saturating to +-infinity on overflow or to signed
// zero on underflow.
func NewDecimal32(sign bool, sig uint64, exp int) Decimal32 {
	return decimal32FromWord(buildFinite(bid.D32, sign, bid.U128From64(sig), exp))
}

// Decimal32Inf returns signed infinity.
func Decimal32Inf(sign bool) Decimal32 { return decimal32FromWord(buildInf(bid.D32, sign)) }

// Decimal32NaN returns a quiet or signaling NaN.
func Decimal32NaN(sign, signaling bool) Decimal32 {
	return decimal32FromWord(buildNaN(bid.D32, sign, signaling, bid.U128{}))
}

// IsNaN reports whether d is a quiet or signaling NaN.
func (d Decimal32) IsNaN() bool { return bid.Unpack(bid.D32, d.word()).Kind == bid.KindNaN }

// IsInf reports whether d is +-infinity.
func (d Decimal32) IsInf() bool { return bid.Unpack(bid.D32, d.word()).Kind == bid.KindInf }

// IsZero reports whether d is signed zero.
func (d Decimal32) IsZero() bool {
	u := bid.Unpack(bid.D32, d.word())
	return u.Kind == bid.KindFinite && u.Significand.IsZero()
}

// Signbit reports the state of d's sign bit, regardless of class.
func (d Decimal32) Signbit() bool { return bid.Unpack(bid.D32, d.word()).Sign }

// Neg returns d with its sign bit flipped.
func (d Decimal32) Neg() Decimal32 { return decimal32FromWord(flipSign(bid.D32, d.word())) }

// Frexp10 decomposes a finite, nonzero d into (sign, significand, exp)
// such that d = sign x significand x 10^exp and significand has exactly
// the format's 7 digits of precision.
func (d Decimal32) Frexp10() (sign bool, significand uint64, exp int) {
	sign, sig, exp := frexp10(bid.D32, d.word())
	lo, _ := sig.Uint64()
	return sign, lo, exp
}

// Ldexp10 returns d x 10^n, adjusting only the stored exponent and
// saturating to infinity or signed zero if the new exponent falls
// outside the format's range.
func Ldexp10(d Decimal32, n int) Decimal32 {
	u := bid.Unpack(bid.D32, d.word())
	if u.Kind != bid.KindFinite || u.Significand.IsZero() {
		return d
	}
	newExp, overflow, underflow := bid.Ldexp10(bid.D32, u.Significand, u.Exponent, n)
	switch {
	case overflow:
		return Decimal32Inf(u.Sign)
	case underflow:
		return decimal32FromWord(bid.Pack(bid.D32, bid.Unpacked{Sign: u.Sign, Kind: bid.KindFinite}))
	default:
		return decimal32FromWord(bid.Pack(bid.D32, bid.Unpacked{Sign: u.Sign, Kind: bid.KindFinite, Significand: u.Significand, Exponent: newExp}))
	}
}

// AppendFormat writes d's text representation to dst, returning the
// number of bytes written and an ErrorCode.
func (d Decimal32) AppendFormat(dst []byte, format Format, precision int) (int, ErrorCode) {
	return toChars(bid.D32, d.word(), dst, format, precision)
}

// String returns d's shortest round-trip General-format text.
func (d Decimal32) String() string {
	var buf [decimal32MaxChars]byte
	n, ec := toChars(bid.D32, d.word(), buf[:], General, -1)
	if ec != OK {
		return "?"
	}
	return string(buf[:n])
}

// GoString implements fmt.GoStringer.
func (d Decimal32) GoString() string {
	return "decimal.Decimal32FromBits(0x" + hex32(d.bits) + ") /* " + d.String() + " */"
}

// ParseDecimal32 parses s under the General grammar, requiring the
// entire string to be consumed.
func ParseDecimal32(s string) (Decimal32, error) {
	n, word, ec := fromChars(bid.D32, []byte(s), General)
	if ec == InvalidArgument || n != len(s) {
		return Decimal32{}, InvalidArgument
	}
	d := decimal32FromWord(word)
	if ec == ResultOutOfRange {
		return d, ResultOutOfRange
	}
	return d, nil
}

func hex32(v uint32) string {
	const digits = "0123456789abcdef"
	var buf [8]byte
	for i := 7; i >= 0; i-- {
		buf[i] = digits[v&0xf]
		v >>= 4
	}
	return string(buf[:])
}
