// Package metrics provides the pure numeric helpers shared by the corpus
// aggregation step and the ranking engine.
package metrics

import "math"

// Mean computes the arithmetic mean of a float64 slice.
// Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SafeDivide returns num/den, or 0 when the denominator is 0.
func SafeDivide(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// F1 computes the harmonic mean of precision and recall.
// Returns 0 when both are 0.
func F1(precision, recall float64) float64 {
	if precision+recall == 0 {
		return 0
	}
	return 2 * precision * recall / (precision + recall)
}

// RoundTo4 rounds to four decimal places for stable, display-friendly
// metric values.
func RoundTo4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
