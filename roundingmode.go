package decimal

import "github.com/corvidae/decimal754/internal/bid"

// RoundingMode selects how the rounding engine disposes of digits dropped
// off the low end of a significand; see SetRoundingMode.
type RoundingMode = bid.RoundingMode

// The five rounding modes IEEE 754-2019 §4.3 defines.
const (
	ToNearestEven = bid.ToNearestEven
	ToZero        = bid.ToZero
	ToPositiveInf = bid.ToPositiveInf
	ToNegativeInf = bid.ToNegativeInf
	ToNearestAway = bid.ToNearestAway
)

// SetRoundingMode installs the process-wide ambient rounding mode used by
// every subsequent call into this package that drops digits: construction
// from an over-precise significand, to_chars with an explicit precision,
// and from_chars when the input carries more digits than the target format
// can hold. It is read, never captured: two goroutines may call the
// package concurrently, and a mode change made by one is visible to the
// other at its next rounding point, with no further synchronization
// required or provided.
func SetRoundingMode(m RoundingMode) { bid.SetRoundingMode(m) }

// CurrentRoundingMode returns the ambient rounding mode most recently
// installed by SetRoundingMode (ToNearestEven if none yet).
func CurrentRoundingMode() RoundingMode { return bid.CurrentRoundingMode() }
