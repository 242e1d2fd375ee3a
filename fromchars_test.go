package decimal

import (
	"testing"

	"github.com/corvidae/decimal754/internal/bid"
	"github.com/stretchr/testify/assert"
)

func TestFromCharsBasicDecimal(t *testing.T) {
	a := assert.New(t)
	n, word, ec := fromChars(bid.D32, []byte("123.45"), General)
	a.Equal(OK, ec)
	a.Equal(6, n)
	u := bid.Unpack(bid.D32, word)
	a.Equal(bid.KindFinite, u.Kind)
}

func TestFromCharsLeadingZerosDoNotConsumePrecision(t *testing.T) {
	a := assert.New(t)
	_, word1, _ := fromChars(bid.D32, []byte("007"), General)
	_, word2, _ := fromChars(bid.D32, []byte("7"), General)
	a.Equal(word1, word2)
}

func TestFromCharsEmptyIsInvalidArgument(t *testing.T) {
	a := assert.New(t)
	n, _, ec := fromChars(bid.D32, []byte(""), General)
	a.Equal(InvalidArgument, ec)
	a.Equal(0, n)
}

func TestFromCharsNoDigitBeforeExponentIsInvalid(t *testing.T) {
	a := assert.New(t)
	n, _, ec := fromChars(bid.D32, []byte("e10"), General)
	a.Equal(InvalidArgument, ec)
	a.Equal(0, n)
}

func TestFromCharsScientificRequiresExponent(t *testing.T) {
	a := assert.New(t)
	_, _, ec := fromChars(bid.D32, []byte("123"), Scientific)
	a.Equal(InvalidArgument, ec)

	_, _, ec2 := fromChars(bid.D32, []byte("123e5"), Scientific)
	a.Equal(OK, ec2)
}

func TestFromCharsExponentOverflowToInfinity(t *testing.T) {
	a := assert.New(t)
	_, word, ec := fromChars(bid.D32, []byte("1e9999"), General)
	a.Equal(ResultOutOfRange, ec)
	u := bid.Unpack(bid.D32, word)
	a.Equal(bid.KindInf, u.Kind)
	a.False(u.Sign)
}

func TestFromCharsExponentUnderflowToZero(t *testing.T) {
	a := assert.New(t)
	_, word, ec := fromChars(bid.D32, []byte("1e-9999"), General)
	a.Equal(ResultOutOfRange, ec)
	u := bid.Unpack(bid.D32, word)
	a.Equal(bid.KindFinite, u.Kind)
	a.True(u.Significand.IsZero())
}

func TestFromCharsSignalingNaN(t *testing.T) {
	a := assert.New(t)
	_, word, ec := fromChars(bid.D32, []byte("nan(snan)"), General)
	a.Equal(OK, ec)
	u := bid.Unpack(bid.D32, word)
	a.Equal(bid.KindNaN, u.Kind)
	a.True(u.Signaling)
}

func TestFromCharsQuietNaNWithNumericPayload(t *testing.T) {
	a := assert.New(t)
	_, word, _ := fromChars(bid.D32, []byte("nan(0)"), General)
	u := bid.Unpack(bid.D32, word)
	a.Equal(bid.KindNaN, u.Kind)
	a.False(u.Signaling)

	_, word2, _ := fromChars(bid.D32, []byte("nan(123)"), General)
	u2 := bid.Unpack(bid.D32, word2)
	a.True(u2.Signaling) // nonzero numeric payload => signaling
}

func TestFromCharsInfinityTokens(t *testing.T) {
	a := assert.New(t)
	n, word, ec := fromChars(bid.D32, []byte("infinity"), General)
	a.Equal(OK, ec)
	a.Equal(8, n)
	u := bid.Unpack(bid.D32, word)
	a.Equal(bid.KindInf, u.Kind)

	n2, word2, ec2 := fromChars(bid.D32, []byte("-INF"), General)
	a.Equal(OK, ec2)
	a.Equal(4, n2)
	u2 := bid.Unpack(bid.D32, word2)
	a.Equal(bid.KindInf, u2.Kind)
	a.True(u2.Sign)
}

func TestFromCharsHexGrammar(t *testing.T) {
	a := assert.New(t)
	n, word, ec := fromChars(bid.D32, []byte("1.8p+3"), Hex)
	a.Equal(OK, ec)
	a.Equal(6, n)
	u := bid.Unpack(bid.D32, word)
	a.Equal(bid.KindFinite, u.Kind)
}

func TestFromCharsCaseInsensitive(t *testing.T) {
	a := assert.New(t)
	_, w1, _ := fromChars(bid.D32, []byte("NAN"), General)
	_, w2, _ := fromChars(bid.D32, []byte("nan"), General)
	u1 := bid.Unpack(bid.D32, w1)
	u2 := bid.Unpack(bid.D32, w2)
	a.Equal(u1.Kind, u2.Kind)
	a.Equal(u1.Signaling, u2.Signaling)
}

func TestFromCharsStopsAtFirstUnconsumedByte(t *testing.T) {
	a := assert.New(t)
	n, _, ec := fromChars(bid.D32, []byte("123abc"), General)
	a.Equal(OK, ec)
	a.Equal(3, n)
}
