package bid

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPow10u64Table(t *testing.T) {
	a := assert.New(t)
	want := uint64(1)
	for i, got := range Pow10u64 {
		a.Equal(want, got, "10^%d", i)
		if i != len(Pow10u64)-1 {
			want *= 10
		}
	}
}

func TestPow10u128Chains64(t *testing.T) {
	a := assert.New(t)
	for n := 0; n <= 19; n++ {
		t.Run(fmt.Sprintf("10^%d", n), func(t *testing.T) {
			a.Equal(Pow10u64[n], mustUint64(Pow10u128(n)))
		})
	}
}

func TestPow10u128Grows(t *testing.T) {
	a := assert.New(t)
	for n := 1; n <= 38; n++ {
		a.Equal(1, Pow10u128(n).Cmp(Pow10u128(n-1)))
	}
}

func TestPow10u256Chains128(t *testing.T) {
	a := assert.New(t)
	for n := 0; n <= 38; n++ {
		lo, exact := Pow10u256(n).Lo128()
		a.True(exact)
		a.Equal(0, lo.Cmp(Pow10u128(n)))
	}
}

func TestPow10u256Grows(t *testing.T) {
	a := assert.New(t)
	for n := 1; n <= 77; n++ {
		a.Equal(1, Pow10u256(n).Cmp(Pow10u256(n-1)))
	}
}
