package utils

import "math"

// AddWithOverflow returns a+b and whether the addition overflowed int.
func AddWithOverflow(a int, b int) (int, bool) {
	if (b > 0 && a > math.MaxInt-b) ||
		(b < 0 && a < math.MinInt-b) {
		return 0, true
	}
	return a + b, false
}
