package ranking

import "math"

// Epsilon is the shared floating-point tolerance: metric differences
// smaller than this are rounding noise, not real quality differences.
// Winner determination and rank assignment must use the same value, so
// every tolerance check in this package goes through nearlyEqual.
const Epsilon = 0.001

// nearlyEqual reports whether a and b are equal within Epsilon.
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
