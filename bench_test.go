package decimal

import (
	"testing"

	of "github.com/robaho/fixed"
	shopspring "github.com/shopspring/decimal"
)

// These mirror avdva-fixed/fixed/fixed_test.go's BenchmarkMul{OtherFixed,Fixed,Decimal}
// trio: instead of multiplication (arithmetic is out of scope for this
// package), they compare this package's parse/format round trip against
// the two other decimal-ish libraries in the same benchmark shape, so the
// numbers are directly comparable.

func BenchmarkParseDecimal64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseDecimal64("123456789.0123")
	}
}

func BenchmarkParseShopspringDecimal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = shopspring.NewFromString("123456789.0123")
	}
}

func BenchmarkFormatDecimal64(b *testing.B) {
	d := NewDecimal64(false, 1234567890123, -4)
	for i := 0; i < b.N; i++ {
		_ = d.String()
	}
}

func BenchmarkFormatOtherFixed(b *testing.B) {
	f := of.NewF(123456789.0123)
	for i := 0; i < b.N; i++ {
		_ = f.String()
	}
}

func BenchmarkFormatShopspringDecimal(b *testing.B) {
	d := shopspring.NewFromFloat(123456789.0123)
	for i := 0; i < b.N; i++ {
		_ = d.String()
	}
}
