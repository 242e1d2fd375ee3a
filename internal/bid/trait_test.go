package bid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraitEmin(t *testing.T) {
	a := assert.New(t)
	a.Equal(-95, D32.Emin())
	a.Equal(-383, D64.Emin())
	a.Equal(-6143, D128.Emin())
}

func TestTraitMaxSignificand(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, D32.MaxSignificand().Cmp(U128From64(9999999)))
	a.Equal(0, D64.MaxSignificand().Cmp(U128From64(9999999999999999)))
	a.Equal(0, D128.MaxSignificand().Cmp(Pow10u128(34).Sub(U128From64(1))))
}

func TestTraitMaxChars(t *testing.T) {
	a := assert.New(t)
	a.Equal(15, D32.MaxChars())
	a.Equal(25, D64.MaxChars())
	a.Equal(41, D128.MaxChars())
}
