package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecimal32ConstructAndFrexp10(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 1234567, -3)
	sign, sig, exp := d.Frexp10()
	a.False(sign)
	a.Equal(uint64(1234567), sig)
	a.Equal(-3, exp)
}

func TestDecimal32NegativeSign(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(true, 5, 0)
	a.True(d.Signbit())
	a.False(d.IsNaN())
	a.False(d.IsInf())
}

func TestDecimal32ZeroClassification(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 0, 0)
	a.True(d.IsZero())
	a.False(d.IsNaN())
	a.False(d.IsInf())
}

func TestDecimal32InfAndNaN(t *testing.T) {
	a := assert.New(t)
	inf := Decimal32Inf(true)
	a.True(inf.IsInf())
	a.True(inf.Signbit())

	qnan := Decimal32NaN(false, false)
	a.True(qnan.IsNaN())

	snan := Decimal32NaN(false, true)
	a.True(snan.IsNaN())
}

func TestDecimal32Neg(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 42, 0)
	n := d.Neg()
	a.True(n.Signbit())
	a.False(d.Signbit())
}

func TestDecimal32BitsRoundTrip(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(true, 9999999, 90)
	same := Decimal32FromBits(d.Bits())
	a.Equal(d.Bits(), same.Bits())
}

func TestDecimal32StringShortestForm(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 1, 0)
	a.Equal("1", d.String())
}

func TestDecimal32StringNegativeZero(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(true, 0, 0)
	a.Equal("-0.0e+00", d.String())
}

func TestDecimal32ParseRoundTrip(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 1234567, 6)
	s := d.String()
	parsed, err := ParseDecimal32(s)
	a.NoError(err)
	a.Equal(d.Bits(), parsed.Bits())
}

func TestDecimal32ParseInvalid(t *testing.T) {
	a := assert.New(t)
	_, err := ParseDecimal32("")
	a.Equal(InvalidArgument, err)

	_, err = ParseDecimal32("abc")
	a.Equal(InvalidArgument, err)
}

func TestDecimal32ParseOverflowToInfinity(t *testing.T) {
	a := assert.New(t)
	d, err := ParseDecimal32("1e9999")
	a.Equal(ResultOutOfRange, err)
	a.True(d.IsInf())
	a.False(d.Signbit())
}

func TestDecimal32ParseNaNTokens(t *testing.T) {
	a := assert.New(t)
	d, err := ParseDecimal32("nan(snan)")
	a.NoError(err)
	a.True(d.IsNaN())

	d2, err2 := ParseDecimal32("nan")
	a.NoError(err2)
	a.True(d2.IsNaN())

	d3, err3 := ParseDecimal32("-inf")
	a.NoError(err3)
	a.True(d3.IsInf())
	a.True(d3.Signbit())
}

func TestDecimal32LdexpOverflowSaturatesToInfinity(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 9999999, 90)
	scaled := Ldexp10(d, 1000)
	a.True(scaled.IsInf())
}

func TestDecimal32LdexpUnderflowSaturatesToZero(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 1, -90)
	scaled := Ldexp10(d, -1000)
	a.True(scaled.IsZero())
}

func TestDecimal32GoString(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 1, 0)
	gs := d.GoString()
	a.Contains(gs, "Decimal32FromBits")
	a.Contains(gs, "1")
}
