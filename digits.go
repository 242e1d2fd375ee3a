package decimal

import "github.com/corvidae/decimal754/internal/bid"

// maxSigDigits is large enough to hold decimal128's 34-digit significand
// (and then some), as a fixed, stack-allocated array so digit extraction
// never touches the heap on the hot path.
const maxSigDigits = 40

// sigDigits writes the decimal digits of sig (most significant first, no
// leading zeros, "0" for zero) into out and returns the used prefix.
func sigDigits(sig bid.U128, out *[maxSigDigits]byte) []byte {
	n := bid.NumDigits128(sig)
	rem := sig
	for i := n - 1; i >= 0; i-- {
		var d uint64
		rem, d = rem.QuoRemSmall(10)
		out[i] = '0' + byte(d)
	}
	return out[:n]
}

func writeExponent(w *writer, marker byte, exp int) bool {
	if !w.byte(marker) {
		return false
	}
	neg := exp < 0
	if neg {
		exp = -exp
	}
	if !w.byte(signByte(neg)) {
		return false
	}
	var tmp [8]byte
	i := len(tmp)
	for exp > 0 {
		i--
		tmp[i] = '0' + byte(exp%10)
		exp /= 10
	}
	for len(tmp)-i < 2 {
		i--
		tmp[i] = '0'
	}
	return w.bytes(tmp[i:])
}

func signByte(neg bool) byte {
	if neg {
		return '-'
	}
	return '+'
}
