package decimal

import "github.com/corvidae/decimal754/internal/bid"

// fromChars parses the grammar
//
//	number  := sign? (nan | inf | decimal | hexdecimal)
//	sign    := '+' | '-'
//	nan     := "nan" ( "(" [0-9A-Za-z_]* ")" )?
//	inf     := "inf" | "infinity"
//	decimal := (digits ('.' digits?)? | '.' digits) (('e'|'E') sign? digits)?
//	hexdec  := (hexdig ('.' hexdig?)? | '.' hexdig) (('p'|'P') sign? digits)?
//
// out of src[0:], restricted by format per the mode-selector rule, and
// packs the result directly into format t's encoding. It returns the
// number of bytes consumed and an ErrorCode. A recognized NaN token is
// packed here directly into the NaN word and reported as OK; NotSupported
// is never returned.
func fromChars(t bid.Trait, src []byte, format Format) (n int, word bid.U128, err ErrorCode) {
	i := 0
	sign := false
	if i < len(src) && (src[i] == '+' || src[i] == '-') {
		sign = src[i] == '-'
		i++
	}

	if matched, j := matchFold(src, i, "nan"); matched {
		i = j
		signaling := false
		var payload bid.U128
		if i < len(src) && src[i] == '(' {
			start := i + 1
			k := start
			for k < len(src) && isPayloadByte(src[k]) {
				k++
			}
			if k < len(src) && src[k] == ')' {
				token := src[start:k]
				signaling = payloadSignals(token)
				payload = payloadValue(token)
				i = k + 1
			}
		}
		return i, bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindNaN, Signaling: signaling, Payload: payload}), OK
	}

	if matched, j := matchFold(src, i, "infinity"); matched {
		return j, buildInf(t, sign), OK
	}
	if matched, j := matchFold(src, i, "inf"); matched {
		return j, buildInf(t, sign), OK
	}

	if format == Hex {
		return parseHexDecimal(t, src, i, sign)
	}
	return parseDecimal(t, src, i, sign, format)
}

func matchFold(src []byte, i int, lit string) (bool, int) {
	if i+len(lit) > len(src) {
		return false, i
	}
	for k := 0; k < len(lit); k++ {
		if foldByte(src[i+k]) != lit[k] {
			return false, i
		}
	}
	return true, i + len(lit)
}

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b - 'A' + 'a'
	}
	return b
}

func isPayloadByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9', b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
		return true
	default:
		return false
	}
}

// payloadSignals decides quiet vs signaling from a nan(...) payload token.
// An all-digit payload is nonzero-means-signaling, matching the "diagnostic
// information" convention IEEE 754-2019 §6.2.1 describes for NaN payloads.
// A non-numeric payload (the conventional spelling is "snan") signals
// whenever it is non-empty.
func payloadSignals(payload []byte) bool {
	if len(payload) == 0 {
		return false
	}
	allDigits := true
	nonzero := false
	for _, b := range payload {
		if b < '0' || b > '9' {
			allDigits = false
			break
		}
		if b != '0' {
			nonzero = true
		}
	}
	if allDigits {
		return nonzero
	}
	return true
}

// payloadValue carries an all-digit nan() payload through as the NaN's
// trailing-significand payload bits; a non-numeric token (e.g. "snan")
// carries no payload value of its own.
func payloadValue(token []byte) bid.U128 {
	for _, b := range token {
		if b < '0' || b > '9' {
			return bid.U128{}
		}
	}
	var v bid.U128
	for _, b := range token {
		_, v = v.Mul64(10)
		v, _ = v.AddSmall(uint64(b - '0'))
	}
	return v
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9', b >= 'a' && b <= 'f', b >= 'A' && b <= 'F':
		return true
	default:
		return false
	}
}

func hexVal(b byte) uint64 {
	switch {
	case b >= '0' && b <= '9':
		return uint64(b - '0')
	case b >= 'a' && b <= 'f':
		return uint64(b-'a') + 10
	default:
		return uint64(b-'A') + 10
	}
}

// maxParseDigits caps how many digits accumulate into the significand
// register; anything past it is consumed (so the parser still advances
// correctly) but no longer contributes to the value, which is harmless
// since no supported format has more than 34 digits of precision and this
// cap leaves a wide guard band for rounding.
const maxParseDigits = 38

func parseDecimal(t bid.Trait, src []byte, i int, sign bool, format Format) (int, bid.U128, ErrorCode) {
	start := i
	var sig bid.U128
	kept := 0
	sawDigit := false
	exp := 0

	for i < len(src) && isDigit(src[i]) {
		sawDigit = true
		if kept < maxParseDigits {
			_, sig = sig.Mul64(10)
			sig, _ = sig.AddSmall(uint64(src[i] - '0'))
			kept++
		} else {
			exp++ // low-order integer digit dropped past the guard band; its place value is preserved via exp
		}
		i++
	}

	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isDigit(src[i]) {
			sawDigit = true
			if kept < maxParseDigits {
				_, sig = sig.Mul64(10)
				sig, _ = sig.AddSmall(uint64(src[i] - '0'))
				kept++
				exp--
			}
			i++
		}
	}

	if !sawDigit {
		return start, bid.U128{}, InvalidArgument
	}

	hasExp := false
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		expSign := false
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			expSign = src[j] == '-'
			j++
		}
		digStart := j
		val := 0
		for j < len(src) && isDigit(src[j]) {
			if val < 1_000_000 {
				val = val*10 + int(src[j]-'0')
			}
			j++
		}
		if j > digStart {
			hasExp = true
			if expSign {
				exp -= val
			} else {
				exp += val
			}
			i = j
		}
	}

	if format == Scientific && !hasExp {
		return start, bid.U128{}, InvalidArgument
	}

	if sig.IsZero() {
		return i, bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindFinite}), OK
	}

	word := buildFinite(t, sign, sig, exp)
	if overflowedOrUnderflowed(t, word) {
		return i, word, ResultOutOfRange
	}
	return i, word, OK
}

func parseHexDecimal(t bid.Trait, src []byte, i int, sign bool) (int, bid.U128, ErrorCode) {
	start := i
	var sig bid.U128
	kept := 0
	sawDigit := false

	for i < len(src) && isHexDigit(src[i]) {
		sawDigit = true
		if kept < maxParseDigits {
			_, sig = sig.Mul64(16)
			sig, _ = sig.AddSmall(hexVal(src[i]))
			kept++
		}
		i++
	}

	exp := 0
	if i < len(src) && src[i] == '.' {
		i++
		for i < len(src) && isHexDigit(src[i]) {
			sawDigit = true
			if kept < maxParseDigits {
				_, sig = sig.Mul64(16)
				sig, _ = sig.AddSmall(hexVal(src[i]))
				kept++
				exp--
			}
			i++
		}
	}

	if !sawDigit {
		return start, bid.U128{}, InvalidArgument
	}

	if i < len(src) && (src[i] == 'p' || src[i] == 'P') {
		j := i + 1
		expSign := false
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			expSign = src[j] == '-'
			j++
		}
		digStart := j
		val := 0
		for j < len(src) && isDigit(src[j]) {
			if val < 1_000_000 {
				val = val*10 + int(src[j]-'0')
			}
			j++
		}
		if j > digStart {
			if expSign {
				exp -= val
			} else {
				exp += val
			}
			i = j
		}
	}

	if sig.IsZero() {
		return i, bid.Pack(t, bid.Unpacked{Sign: sign, Kind: bid.KindFinite}), OK
	}

	word := buildFinite(t, sign, sig, exp)
	if overflowedOrUnderflowed(t, word) {
		return i, word, ResultOutOfRange
	}
	return i, word, OK
}

// overflowedOrUnderflowed reports whether buildFinite had to saturate a
// genuinely nonzero parsed significand to +-infinity or to zero because
// the exponent fell outside the format's range; this is errors.go's
// ResultOutOfRange case.
func overflowedOrUnderflowed(t bid.Trait, word bid.U128) bool {
	u := bid.Unpack(t, word)
	return u.Kind == bid.KindInf || u.Significand.IsZero()
}
