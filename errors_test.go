package decimal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodeStringAndError(t *testing.T) {
	a := assert.New(t)
	cases := []struct {
		code ErrorCode
		want string
	}{
		{OK, "OK"},
		{InvalidArgument, "InvalidArgument"},
		{ValueTooLarge, "ValueTooLarge"},
		{ResultOutOfRange, "ResultOutOfRange"},
		{NotSupported, "NotSupported"},
	}
	for _, c := range cases {
		a.Equal(c.want, c.code.String())
		a.Equal(c.want, c.code.Error())
	}
}

func TestErrorCodeUnknownValue(t *testing.T) {
	a := assert.New(t)
	var c ErrorCode = 99
	a.Contains(c.String(), "ErrorCode")
}

func TestFormatString(t *testing.T) {
	a := assert.New(t)
	a.Equal("General", General.String())
	a.Equal("Fixed", Fixed.String())
	a.Equal("Scientific", Scientific.String())
	a.Equal("Hex", Hex.String())
}
