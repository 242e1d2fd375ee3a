package bid

// Trait carries the per-format constants of IEEE 754-2019 table 3.6 that
// the shared pack/unpack, frexp10/ldexp10, rounding and text-conversion
// algorithms route through, instead of duplicating each algorithm's body
// three times.
type Trait struct {
	// Name is the format's name, used in error messages and doc strings.
	Name string
	// StorageWidth is the total bit width of the packed encoding (32/64/128).
	StorageWidth int
	// Precision is the number of representable decimal digits, p.
	Precision int
	// Emax is the maximum unbiased exponent.
	Emax int
	// Bias is the exponent bias.
	Bias int
	// CombWidth is the width in bits of the combination field.
	CombWidth int
	// TrailWidth is the width in bits of the trailing significand field.
	TrailWidth int
}

// Emin returns 1 - Emax, the minimum unbiased exponent of a normal value.
func (t Trait) Emin() int { return 1 - t.Emax }

// MaxSignificand returns 10^p - 1, the largest representable significand.
func (t Trait) MaxSignificand() U128 {
	return Pow10u128(t.Precision).Sub(U128From64(1))
}

// D32, D64 and D128 are the three traits of IEEE 754-2019 table 3.6.
var (
	D32 = Trait{
		Name: "decimal32", StorageWidth: 32, Precision: 7,
		Emax: 96, Bias: 101, CombWidth: 11, TrailWidth: 20,
	}
	D64 = Trait{
		Name: "decimal64", StorageWidth: 64, Precision: 16,
		Emax: 384, Bias: 398, CombWidth: 13, TrailWidth: 50,
	}
	D128 = Trait{
		Name: "decimal128", StorageWidth: 128, Precision: 34,
		Emax: 6144, Bias: 6176, CombWidth: 17, TrailWidth: 110,
	}
)

// MaxChars is the smallest caller-supplied buffer guaranteed to hold any
// value of this format in any presentation: sign + digits of precision +
// decimal point + exponent marker + sign + exponent digits + worst-case
// NaN payload, mirroring
// boost::decimal::detail::total_buffer_length.
func (t Trait) MaxChars() int {
	switch t.StorageWidth {
	case 32:
		return 15
	case 64:
		return 25
	case 128:
		return 41
	default:
		panic("bid: unknown format width")
	}
}
