package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundingModeQueryReflectsMostRecentSet(t *testing.T) {
	a := assert.New(t)
	defer SetRoundingMode(ToNearestEven)

	SetRoundingMode(ToZero)
	a.Equal(ToZero, CurrentRoundingMode())

	SetRoundingMode(ToNearestAway)
	a.Equal(ToNearestAway, CurrentRoundingMode())
}

func TestRoundingModeAffectsConstruction(t *testing.T) {
	a := assert.New(t)
	defer SetRoundingMode(ToNearestEven)

	SetRoundingMode(ToZero)
	truncated := NewDecimal32(false, 99999995, 0) // 8 digits, drop 1
	SetRoundingMode(ToNearestEven)
	rounded := NewDecimal32(false, 99999995, 0)

	_, truncSig, _ := truncated.Frexp10()
	_, roundSig, _ := rounded.Frexp10()
	a.NotEqual(truncSig, roundSig)
}

func TestRoundingModeDefaultIsToNearestEven(t *testing.T) {
	a := assert.New(t)
	// No prior SetRoundingMode call in this process would report the zero
	// value, which is ToNearestEven; guard against test order by resetting
	// explicitly and checking the reported mode matches.
	SetRoundingMode(ToNearestEven)
	a.Equal(ToNearestEven, CurrentRoundingMode())
}
