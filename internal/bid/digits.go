package bid

// NumDigits64 returns the number of decimal digits in x (1 for x == 0),
// modeled on boost::decimal::detail::num_digits(std::uint64_t) in
// original_source/include/boost/decimal/detail/integer_search_trees.hpp:
// a cascade of at most 19 comparisons against literal powers of ten,
// smallest first, rather than a division loop.
func NumDigits64(x uint64) int {
	switch {
	case x < 10:
		return 1
	case x < 100:
		return 2
	case x < 1000:
		return 3
	case x < 10000:
		return 4
	case x < 100000:
		return 5
	case x < 1000000:
		return 6
	case x < 10000000:
		return 7
	case x < 100000000:
		return 8
	case x < 1000000000:
		return 9
	case x < 10000000000:
		return 10
	case x < 100000000000:
		return 11
	case x < 1000000000000:
		return 12
	case x < 10000000000000:
		return 13
	case x < 100000000000000:
		return 14
	case x < 1000000000000000:
		return 15
	case x < 10000000000000000:
		return 16
	case x < 100000000000000000:
		return 17
	case x < 1000000000000000000:
		return 18
	case x < 10000000000000000000:
		return 19
	default:
		return 20
	}
}

// NumDigits128 returns the number of decimal digits in x (1 for x == 0), via
// binary search over the precomputed powers of ten up to 10^38, mirroring
// boost::decimal::detail::num_digits(uint128_t).
func NumDigits128(x U128) int {
	if x.Hi == 0 {
		return NumDigits64(x.Lo)
	}
	left, right := 0, 38
	for left < right {
		mid := (left + right + 1) / 2
		if x.Cmp(Pow10u128(mid)) >= 0 {
			left = mid
		} else {
			right = mid - 1
		}
	}
	return left + 1
}

// NumDigits256 returns the number of decimal digits in x (1 for x == 0), for
// intermediate 256-bit values, binary search over 10^0..10^77.
func NumDigits256(x U256) int {
	lo, exact := x.Lo128()
	if exact {
		return NumDigits128(lo)
	}
	left, right := 0, 77
	for left < right {
		mid := (left + right + 1) / 2
		if x.Cmp(Pow10u256(mid)) >= 0 {
			left = mid
		} else {
			right = mid - 1
		}
	}
	return left + 1
}
