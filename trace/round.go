package trace

import "math"

// maxDecimalPlaces caps display precision; float64 carries no more than
// ~15-17 significant decimal digits.
const maxDecimalPlaces = 15

// DecimalPlaces derives the display precision for a run from its
// tolerance: ceil(-log10(tol)) + 1, clamped to [0, 15].
//
// For tol = 1e-3 this yields 4 decimal places; for tol = 0.1 it yields 2.
// A non-positive or non-finite tolerance yields the maximum precision.
func DecimalPlaces(tol float64) int {
	if tol <= 0 || math.IsInf(tol, 0) || math.IsNaN(tol) {
		return maxDecimalPlaces
	}
	// The 1e-9 nudge keeps exact powers of ten stable when Log10 lands an
	// ulp above the true value (Ceil would otherwise overshoot by one).
	places := int(math.Ceil(-math.Log10(tol)-1e-9)) + 1
	if places < 0 {
		return 0
	}
	if places > maxDecimalPlaces {
		return maxDecimalPlaces
	}

	return places
}

// Round rounds x to the given number of decimal places, halves away from
// zero. Non-finite values pass through unchanged.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	factor := math.Pow(10, float64(places))

	return math.Round(x*factor) / factor
}
