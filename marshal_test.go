package decimal

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/corvidae/decimal754/internal/bid"
	"github.com/stretchr/testify/assert"
)

func TestDecimal32TextMarshalRoundTrip(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(false, 1234567, -3)
	text, err := d.MarshalText()
	a.NoError(err)

	var got Decimal32
	a.NoError(got.UnmarshalText(text))
	a.Equal(d.Bits(), got.Bits()) // already full 7-digit precision: no cohort shift across the round trip
}

func TestDecimal32JSONRoundTrip(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal32(true, 42, 1)
	data, err := json.Marshal(d)
	a.NoError(err)
	a.Equal(`"-420"`, string(data))

	var got Decimal32
	a.NoError(json.Unmarshal(data, &got))
	a.Equal("-420", got.String()) // same cohort member is not guaranteed across a non-full-precision round trip
}

func TestDecimal32JSONUnmarshalRejectsUnquoted(t *testing.T) {
	a := assert.New(t)
	var got Decimal32
	err := got.UnmarshalJSON([]byte("42"))
	a.Error(err)
}

func TestDecimal32ScanViaSscan(t *testing.T) {
	a := assert.New(t)
	var got Decimal32
	n, err := fmt.Sscan("123.5", &got)
	a.NoError(err)
	a.Equal(1, n)
	a.Equal("123.5", got.String())
}

func TestDecimal64TextMarshalRoundTrip(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal64(true, 9876543210123456, -2) // full 16-digit precision
	text, err := d.MarshalText()
	a.NoError(err)
	var got Decimal64
	a.NoError(got.UnmarshalText(text))
	a.Equal(d.Bits(), got.Bits())
}

func TestDecimal128TextMarshalRoundTrip(t *testing.T) {
	a := assert.New(t)
	d := NewDecimal128(false, bid.U128From64(987654321), -2)
	text, err := d.MarshalText()
	a.NoError(err)
	var got Decimal128
	a.NoError(got.UnmarshalText(text))
	a.Equal(d.String(), got.String())
}
