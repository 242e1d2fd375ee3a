package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/calebcase/oops"

	decimal "github.com/corvidae/decimal754"
)

// Sentinel errors for the flag/config validation boundary. Each use site
// wraps the sentinel with oops.Trace so a misconfigured --format or --round
// value carries a stack trace into the CLI's error output, the same
// sentinel-plus-Trace idiom calebcase/bsv uses around ErrInvalidOperation.
var (
	errUnknownFormat       = oops.New("unknown format")
	errUnknownRoundingMode = oops.New("unknown rounding mode")
	errUnsupportedWidth    = oops.New("unsupported width")
	errHexWordTooLong      = oops.New("hex word too long")
)

func parseFormat(s string) (decimal.Format, error) {
	switch strings.ToLower(s) {
	case "", "general", "g":
		return decimal.General, nil
	case "fixed", "f":
		return decimal.Fixed, nil
	case "scientific", "sci", "e":
		return decimal.Scientific, nil
	case "hex", "h":
		return decimal.Hex, nil
	default:
		return 0, fmt.Errorf("%w: %q (want general|fixed|scientific|hex)", oops.Trace(errUnknownFormat), s)
	}
}

func parseRoundingMode(s string) (decimal.RoundingMode, error) {
	switch strings.ToLower(s) {
	case "", "nearest-even", "ties-even":
		return decimal.ToNearestEven, nil
	case "nearest-away", "ties-away":
		return decimal.ToNearestAway, nil
	case "zero", "truncate":
		return decimal.ToZero, nil
	case "+inf", "ceiling":
		return decimal.ToPositiveInf, nil
	case "-inf", "floor":
		return decimal.ToNegativeInf, nil
	default:
		return 0, fmt.Errorf("%w: %q", oops.Trace(errUnknownRoundingMode), s)
	}
}

func parseWidth(n int) error {
	switch n {
	case 32, 64, 128:
		return nil
	default:
		return fmt.Errorf("%w: %d (want 32, 64 or 128)", oops.Trace(errUnsupportedWidth), n)
	}
}

// parseHexWord parses a 0x-prefixed or bare hex string into up to two
// 64-bit limbs, most-significant first, for decimal128's two-word storage.
func parseHexWord(s string) (hi, lo uint64, err error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) > 32 {
		return 0, 0, fmt.Errorf("%w: %d digits", oops.Trace(errHexWordTooLong), len(s))
	}
	if len(s) > 16 {
		hiStr := s[:len(s)-16]
		loStr := s[len(s)-16:]
		hi, err = strconv.ParseUint(hiStr, 16, 64)
		if err != nil {
			return 0, 0, err
		}
		lo, err = strconv.ParseUint(loStr, 16, 64)
		return hi, lo, err
	}
	lo, err = strconv.ParseUint(s, 16, 64)
	return 0, lo, err
}
